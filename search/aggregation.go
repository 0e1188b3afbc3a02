package search

import (
	"encoding/json"
	"fmt"
)

// Aggregation is one named aggregation in a search request. The set of
// implementations is closed: TermsAggregation and CardinalityAggregation.
type Aggregation interface {
	// Source builds the wire-format representation of this aggregation.
	Source() any

	kind() string

	isAggregation()
}

// TermsAggregation buckets documents by the distinct values of a field,
// optionally computing named sub-aggregations per bucket.
type TermsAggregation struct {
	field   string
	size    *int
	subAggs map[string]Aggregation
}

// NewTermsAggregation creates a terms aggregation over the given field.
func NewTermsAggregation(field string) *TermsAggregation {
	return &TermsAggregation{field: field}
}

// Size caps the number of buckets returned.
func (a *TermsAggregation) Size(size int) *TermsAggregation {
	a.size = &size
	return a
}

// SubAggregation adds a named sub-aggregation computed within each bucket.
func (a *TermsAggregation) SubAggregation(name string, agg Aggregation) *TermsAggregation {
	if a.subAggs == nil {
		a.subAggs = make(map[string]Aggregation)
	}
	a.subAggs[name] = agg
	return a
}

// Source builds the wire representation. Sub-aggregations go under an "aggs"
// key that is a sibling of "terms", not nested inside it; the key is omitted
// when there are none.
func (a *TermsAggregation) Source() any {
	termsObj := map[string]any{"field": a.field}
	if a.size != nil {
		termsObj["size"] = *a.size
	}
	result := map[string]any{"terms": termsObj}
	if len(a.subAggs) > 0 {
		aggsObj := make(map[string]any, len(a.subAggs))
		for name, sub := range a.subAggs {
			aggsObj[name] = sub.Source()
		}
		result["aggs"] = aggsObj
	}
	return result
}

func (a *TermsAggregation) kind() string   { return aggKindTerms }
func (a *TermsAggregation) isAggregation() {}

type termsAggregationJSON struct {
	Field   string                     `json:"field"`
	Size    *int                       `json:"size,omitempty"`
	SubAggs map[string]json.RawMessage `json:"sub_aggs,omitempty"`
}

func (a *TermsAggregation) MarshalJSON() ([]byte, error) {
	raw := termsAggregationJSON{Field: a.field, Size: a.size}
	if len(a.subAggs) > 0 {
		raw.SubAggs = make(map[string]json.RawMessage, len(a.subAggs))
		for name, sub := range a.subAggs {
			subRaw, err := MarshalAggregation(sub)
			if err != nil {
				return nil, err
			}
			raw.SubAggs[name] = subRaw
		}
	}
	return json.Marshal(raw)
}

func (a *TermsAggregation) UnmarshalJSON(data []byte) error {
	var raw termsAggregationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.field = raw.Field
	a.size = raw.Size
	a.subAggs = nil
	if len(raw.SubAggs) > 0 {
		a.subAggs = make(map[string]Aggregation, len(raw.SubAggs))
		for name, subRaw := range raw.SubAggs {
			sub, err := UnmarshalAggregation(subRaw)
			if err != nil {
				return fmt.Errorf("sub-aggregation %q: %w", name, err)
			}
			a.subAggs[name] = sub
		}
	}
	return nil
}

// CardinalityAggregation computes the approximate count of distinct values
// of a field.
type CardinalityAggregation struct {
	field string
}

// NewCardinalityAggregation creates a cardinality aggregation over the given
// field.
func NewCardinalityAggregation(field string) *CardinalityAggregation {
	return &CardinalityAggregation{field: field}
}

// Source builds the wire representation: {"cardinality": {"field": f}}.
func (a *CardinalityAggregation) Source() any {
	return map[string]any{
		"cardinality": map[string]any{"field": a.field},
	}
}

func (a *CardinalityAggregation) kind() string   { return aggKindCardinality }
func (a *CardinalityAggregation) isAggregation() {}

type cardinalityAggregationJSON struct {
	Field string `json:"field"`
}

func (a *CardinalityAggregation) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardinalityAggregationJSON{Field: a.field})
}

func (a *CardinalityAggregation) UnmarshalJSON(data []byte) error {
	var raw cardinalityAggregationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.field = raw.Field
	return nil
}
