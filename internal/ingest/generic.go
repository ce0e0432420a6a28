package ingest

import (
	"fmt"
	"os"
	"strings"

	"rivalwatch/internal/types"

	"github.com/tidwall/gjson"
)

// ParseGeneric flattens a loosely shaped domain document (jobs, social,
// funding, news) into competitor-qualified key -> display value.
func ParseGeneric(raw []byte) (types.GenericSnapshot, error) {
	snap := types.GenericSnapshot{}
	if err := validateAgainst(genericCompiled, raw); err != nil {
		return snap, err
	}
	gjson.ParseBytes(raw).ForEach(func(key, value gjson.Result) bool {
		k := strings.TrimSpace(key.String())
		if k != "" {
			snap[k] = value.String()
		}
		return true
	})
	return snap, nil
}

// ReadDocument loads the raw current document for a source. A missing file is
// ErrSourceUnavailable so the collector can skip the source and continue.
func ReadDocument(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return buf, nil
}
