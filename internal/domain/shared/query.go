package shared

import "strconv"

// List query limits shared by all entity collections.
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// FieldKind declares how a filterable column is typed so query-string
// values can be coerced before they reach the store.
type FieldKind int

const (
	FieldString FieldKind = iota
	FieldInt
	FieldFloat
)

// FilterSpec maps filterable column names to their kinds. Each entity
// declares one; query parameters outside the spec are rejected.
type FilterSpec map[string]FieldKind

// ListQuery carries a validated equality-filter set plus a row limit.
type ListQuery struct {
	Filters map[string]interface{}
	Limit   int
}

// ParseFilters validates raw query parameters against the spec and coerces
// values to the declared kinds. Unknown parameters and values that do not
// parse yield an INVALID_INPUT domain error.
func (s FilterSpec) ParseFilters(params map[string]string) (map[string]interface{}, error) {
	filters := make(map[string]interface{}, len(params))
	for name, raw := range params {
		kind, ok := s[name]
		if !ok {
			return nil, NewDomainErrorf("INVALID_INPUT", "unknown filter parameter: %s", name)
		}
		switch kind {
		case FieldInt:
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, NewDomainErrorf("INVALID_INPUT", "filter %s expects an integer, got %q", name, raw)
			}
			filters[name] = v
		case FieldFloat:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, NewDomainErrorf("INVALID_INPUT", "filter %s expects a number, got %q", name, raw)
			}
			filters[name] = v
		default:
			filters[name] = raw
		}
	}
	return filters, nil
}

// ClampLimit normalizes a requested row limit into [1, MaxListLimit],
// falling back to DefaultListLimit when the request carries none.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
