package query

import "encoding/json"

// TermQuery matches documents containing an exact value in the given field.
type TermQuery struct {
	field string
	value any
	boost *float64
}

// NewTermQuery creates a new TermQuery for the given field and value.
func NewTermQuery(field string, value any) *TermQuery {
	return &TermQuery{
		field: field,
		value: value,
	}
}

// Boost sets the boost value.
func (q *TermQuery) Boost(boost float64) *TermQuery {
	q.boost = &boost
	return q
}

// Source builds the wire representation. Without a boost the simple form
// {"term": {field: value}} is used; setting a boost switches to the object
// form {"term": {field: {"value": ..., "boost": ...}}}.
func (q *TermQuery) Source() any {
	var inner any
	if q.boost != nil {
		inner = map[string]any{
			"value": q.value,
			"boost": *q.boost,
		}
	} else {
		inner = q.value
	}
	return map[string]any{
		"term": map[string]any{q.field: inner},
	}
}

func (q *TermQuery) kind() string { return kindTerm }
func (q *TermQuery) isQuery()     {}

type termQueryJSON struct {
	Field string   `json:"field"`
	Value any      `json:"value"`
	Boost *float64 `json:"boost,omitempty"`
}

// MarshalJSON encodes the typed node, not the wire form. Use Source for the
// document sent to the engine.
func (q *TermQuery) MarshalJSON() ([]byte, error) {
	return json.Marshal(termQueryJSON{
		Field: q.field,
		Value: q.value,
		Boost: q.boost,
	})
}

// UnmarshalJSON decodes the typed node produced by MarshalJSON.
func (q *TermQuery) UnmarshalJSON(data []byte) error {
	var raw termQueryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q.field = raw.Field
	q.value = raw.Value
	q.boost = raw.Boost
	return nil
}
