package notifier

import (
	"strings"

	"rivalwatch/internal/types"
)

var severityIcons = map[types.Severity]string{
	types.SeverityLow:      "ℹ️",
	types.SeverityMedium:   "🟡",
	types.SeverityHigh:     "🔴",
	types.SeverityCritical: "🚨",
}

// FormatAlert renders an alert as a push message.
func FormatAlert(a types.CompetitiveAlert) string {
	var b strings.Builder
	icon := severityIcons[a.Severity]
	if icon != "" {
		b.WriteString(icon + " ")
	}
	b.WriteString("*" + a.Title + "*\n")
	b.WriteString(a.Summary + "\n")
	if a.StrategicRead != "" {
		b.WriteString("Read: " + a.StrategicRead + "\n")
	}
	b.WriteString("Severity: " + string(a.Severity))
	if !a.Date.IsZero() {
		b.WriteString(" | " + a.Date.Format("2006-01-02 15:04 MST"))
	}
	return b.String()
}
