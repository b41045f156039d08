package inventory

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrLocationNotFound  = errors.New("location not found")
	// ErrNoWarehouse means equipment was created without a location and no
	// Warehouse room exists to default to.
	ErrNoWarehouse = errors.New("no warehouse location configured")
)

// ValidationError carries a message per offending field, keyed by the field's
// JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
