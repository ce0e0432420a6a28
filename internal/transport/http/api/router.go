package apihttp

import (
	"net/http"
	"strconv"
	"strings"

	"rivalwatch/internal/intel"
	"rivalwatch/internal/types"

	"github.com/gin-gonic/gin"
)

const (
	defaultAlertDays = 7
	maxAlertDays     = 365
)

// Router mounts the intelligence query endpoints.
type Router struct {
	Intel       *intel.Service
	LatestBatch func() *types.BatchResult
}

func (r *Router) Register(group *gin.RouterGroup) {
	if group == nil {
		return
	}
	group.GET("/alerts", r.handleAlerts)
	group.GET("/competitors", r.handleCompetitors)
	group.GET("/competitors/:name", r.handleCompetitor)
	group.GET("/threat/:name", r.handleThreat)
	group.GET("/opportunities", r.handleOpportunities)
	group.GET("/batch/latest", r.handleLatestBatch)
}

func (r *Router) handleAlerts(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(defaultAlertDays)))
	if days <= 0 {
		days = defaultAlertDays
	}
	if days > maxAlertDays {
		days = maxAlertDays
	}
	alerts, err := r.Intel.RecentAlerts(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "alerts": alerts})
}

func (r *Router) handleCompetitors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"competitors": r.Intel.AllCompetitors()})
}

func (r *Router) handleCompetitor(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	profile := r.Intel.Competitor(name)
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown competitor", "name": name})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (r *Router) handleThreat(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	// Unknown names score 0 rather than 404: the score is defined everywhere.
	c.JSON(http.StatusOK, gin.H{"name": name, "score": r.Intel.ThreatScore(name)})
}

func (r *Router) handleOpportunities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"opportunities": r.Intel.IdentifyOpportunities()})
}

func (r *Router) handleLatestBatch(c *gin.Context) {
	if r.LatestBatch == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "batch status unavailable"})
		return
	}
	batch := r.LatestBatch()
	if batch == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no batch has run yet"})
		return
	}
	c.JSON(http.StatusOK, batch)
}
