package query

import "encoding/json"

// RangeQuery matches documents whose field value falls inside the configured
// bounds. Bounds accept any JSON-representable value (numbers, date math
// strings, ...).
type RangeQuery struct {
	field string
	gte   any
	gt    any
	lte   any
	lt    any
	boost *float64
}

// NewRangeQuery creates a new RangeQuery for the given field with no bounds
// set.
func NewRangeQuery(field string) *RangeQuery {
	return &RangeQuery{field: field}
}

// Gte sets the greater-than-or-equal bound.
func (q *RangeQuery) Gte(value any) *RangeQuery {
	q.gte = value
	return q
}

// Gt sets the greater-than bound.
func (q *RangeQuery) Gt(value any) *RangeQuery {
	q.gt = value
	return q
}

// Lte sets the less-than-or-equal bound.
func (q *RangeQuery) Lte(value any) *RangeQuery {
	q.lte = value
	return q
}

// Lt sets the less-than bound.
func (q *RangeQuery) Lt(value any) *RangeQuery {
	q.lt = value
	return q
}

// Boost sets the boost value.
func (q *RangeQuery) Boost(boost float64) *RangeQuery {
	q.boost = &boost
	return q
}

// Source builds the wire representation. Range always uses the object form;
// each bound appears only when set.
func (q *RangeQuery) Source() any {
	fieldObj := map[string]any{}
	if q.gte != nil {
		fieldObj["gte"] = q.gte
	}
	if q.gt != nil {
		fieldObj["gt"] = q.gt
	}
	if q.lte != nil {
		fieldObj["lte"] = q.lte
	}
	if q.lt != nil {
		fieldObj["lt"] = q.lt
	}
	if q.boost != nil {
		fieldObj["boost"] = *q.boost
	}
	return map[string]any{
		"range": map[string]any{q.field: fieldObj},
	}
}

func (q *RangeQuery) kind() string { return kindRange }
func (q *RangeQuery) isQuery()     {}

type rangeQueryJSON struct {
	Field string   `json:"field"`
	Gte   any      `json:"gte,omitempty"`
	Gt    any      `json:"gt,omitempty"`
	Lte   any      `json:"lte,omitempty"`
	Lt    any      `json:"lt,omitempty"`
	Boost *float64 `json:"boost,omitempty"`
}

func (q *RangeQuery) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeQueryJSON{
		Field: q.field,
		Gte:   q.gte,
		Gt:    q.gt,
		Lte:   q.lte,
		Lt:    q.lt,
		Boost: q.boost,
	})
}

func (q *RangeQuery) UnmarshalJSON(data []byte) error {
	var raw rangeQueryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q.field = raw.Field
	q.gte = raw.Gte
	q.gt = raw.Gt
	q.lte = raw.Lte
	q.lt = raw.Lt
	q.boost = raw.Boost
	return nil
}

// RangeQueryBuilder incrementally assembles a RangeQuery. Unlike the fluent
// methods on RangeQuery it is meant for conditional construction: set bounds
// inside branches, then call Build once.
type RangeQueryBuilder struct {
	field string
	gte   any
	gt    any
	lte   any
	lt    any
	boost *float64
}

// NewRangeQueryBuilder creates a builder for the given field.
func NewRangeQueryBuilder(field string) *RangeQueryBuilder {
	return &RangeQueryBuilder{field: field}
}

// Gte sets the greater-than-or-equal bound.
func (b *RangeQueryBuilder) Gte(value any) *RangeQueryBuilder {
	b.gte = value
	return b
}

// Gt sets the greater-than bound.
func (b *RangeQueryBuilder) Gt(value any) *RangeQueryBuilder {
	b.gt = value
	return b
}

// Lte sets the less-than-or-equal bound.
func (b *RangeQueryBuilder) Lte(value any) *RangeQueryBuilder {
	b.lte = value
	return b
}

// Lt sets the less-than bound.
func (b *RangeQueryBuilder) Lt(value any) *RangeQueryBuilder {
	b.lt = value
	return b
}

// Boost sets the boost value.
func (b *RangeQueryBuilder) Boost(boost float64) *RangeQueryBuilder {
	b.boost = &boost
	return b
}

// Build produces the final RangeQuery.
func (b *RangeQueryBuilder) Build() *RangeQuery {
	return &RangeQuery{
		field: b.field,
		gte:   b.gte,
		gt:    b.gt,
		lte:   b.lte,
		lt:    b.lt,
		boost: b.boost,
	}
}
