package query

import (
	"encoding/json"
	"strings"
)

// RegexpFlag is an optional operator class enabled for a RegexpQuery.
type RegexpFlag string

const (
	// RegexpFlagAll enables all optional operators.
	RegexpFlagAll RegexpFlag = "ALL"
	// RegexpFlagAnystring allows @ to match any string.
	RegexpFlagAnystring RegexpFlag = "ANYSTRING"
	// RegexpFlagComplement enables ~ for shortest-pattern complement.
	RegexpFlagComplement RegexpFlag = "COMPLEMENT"
	// RegexpFlagEmpty allows # to match no strings.
	RegexpFlagEmpty RegexpFlag = "EMPTY"
	// RegexpFlagIntersection enables & to intersect patterns.
	RegexpFlagIntersection RegexpFlag = "INTERSECTION"
	// RegexpFlagInterval enables <> for numeric ranges.
	RegexpFlagInterval RegexpFlag = "INTERVAL"
	// RegexpFlagNone disables all optional operators.
	RegexpFlagNone RegexpFlag = "NONE"
)

// RegexpQuery matches documents where the field value matches a regular
// expression. The pattern is not validated; an illegal expression is
// rejected by the engine, not here.
type RegexpQuery struct {
	field string
	value string
	flags []RegexpFlag
}

// NewRegexpQuery creates a new RegexpQuery for the given field and pattern.
func NewRegexpQuery(field, value string) *RegexpQuery {
	return &RegexpQuery{
		field: field,
		value: value,
	}
}

// Flags sets the optional operator flags.
func (q *RegexpQuery) Flags(flags ...RegexpFlag) *RegexpQuery {
	q.flags = flags
	return q
}

// Source builds the wire representation. Flags are joined into a single
// "|"-separated string and emitted only when at least one flag is set.
func (q *RegexpQuery) Source() any {
	fieldObj := map[string]any{"value": q.value}
	if len(q.flags) > 0 {
		names := make([]string, len(q.flags))
		for i, f := range q.flags {
			names[i] = string(f)
		}
		fieldObj["flags"] = strings.Join(names, "|")
	}
	return map[string]any{
		"regexp": map[string]any{q.field: fieldObj},
	}
}

func (q *RegexpQuery) kind() string { return kindRegexp }
func (q *RegexpQuery) isQuery()     {}

type regexpQueryJSON struct {
	Field string       `json:"field"`
	Value string       `json:"value"`
	Flags []RegexpFlag `json:"flags,omitempty"`
}

func (q *RegexpQuery) MarshalJSON() ([]byte, error) {
	return json.Marshal(regexpQueryJSON{
		Field: q.field,
		Value: q.value,
		Flags: q.flags,
	})
}

func (q *RegexpQuery) UnmarshalJSON(data []byte) error {
	var raw regexpQueryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q.field = raw.Field
	q.value = raw.Value
	q.flags = raw.Flags
	return nil
}
