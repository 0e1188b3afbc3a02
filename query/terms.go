package query

import "encoding/json"

// TermsQuery matches documents containing any of the exact values in the
// given field.
type TermsQuery struct {
	field  string
	values []any
	boost  *float64
}

// NewTermsQuery creates a new TermsQuery for the given field and values.
func NewTermsQuery(field string, values ...any) *TermsQuery {
	if values == nil {
		values = []any{}
	}
	return &TermsQuery{
		field:  field,
		values: values,
	}
}

// Boost sets the boost value.
func (q *TermsQuery) Boost(boost float64) *TermsQuery {
	q.boost = &boost
	return q
}

// Source builds the wire representation. Without a boost the simple form
// {"terms": {field: [values]}} is used; with a boost the values move under a
// nested "terms" key next to "boost".
func (q *TermsQuery) Source() any {
	var inner any
	if q.boost != nil {
		inner = map[string]any{
			"terms": q.values,
			"boost": *q.boost,
		}
	} else {
		inner = q.values
	}
	return map[string]any{
		"terms": map[string]any{q.field: inner},
	}
}

func (q *TermsQuery) kind() string { return kindTerms }
func (q *TermsQuery) isQuery()     {}

type termsQueryJSON struct {
	Field  string   `json:"field"`
	Values []any    `json:"values"`
	Boost  *float64 `json:"boost,omitempty"`
}

func (q *TermsQuery) MarshalJSON() ([]byte, error) {
	return json.Marshal(termsQueryJSON{
		Field:  q.field,
		Values: q.values,
		Boost:  q.boost,
	})
}

func (q *TermsQuery) UnmarshalJSON(data []byte) error {
	var raw termsQueryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Values == nil {
		raw.Values = []any{}
	}
	q.field = raw.Field
	q.values = raw.Values
	q.boost = raw.Boost
	return nil
}
