package query

import "encoding/json"

// BoolQuery combines child queries across four clause buckets: must,
// must_not, should and filter. Serialization order inside a bucket equals
// insertion order.
type BoolQuery struct {
	must               []Query
	mustNot            []Query
	should             []Query
	filter             []Query
	minimumShouldMatch *int
	boost              *float64
}

// NewBoolQuery creates a new empty BoolQuery. An all-empty bool query is
// legal and serializes to {"bool": {}}.
func NewBoolQuery() *BoolQuery {
	return &BoolQuery{}
}

// Must adds queries that all matching documents must satisfy.
func (q *BoolQuery) Must(queries ...Query) *BoolQuery {
	q.must = append(q.must, queries...)
	return q
}

// MustNot adds queries that matching documents must not satisfy.
func (q *BoolQuery) MustNot(queries ...Query) *BoolQuery {
	q.mustNot = append(q.mustNot, queries...)
	return q
}

// Should adds queries that contribute to the score when satisfied.
func (q *BoolQuery) Should(queries ...Query) *BoolQuery {
	q.should = append(q.should, queries...)
	return q
}

// Filter adds queries that must match but do not affect scoring.
func (q *BoolQuery) Filter(queries ...Query) *BoolQuery {
	q.filter = append(q.filter, queries...)
	return q
}

// MinimumShouldMatch sets how many should clauses must match. Only integer
// counts are supported at this layer.
func (q *BoolQuery) MinimumShouldMatch(minimumShouldMatch int) *BoolQuery {
	q.minimumShouldMatch = &minimumShouldMatch
	return q
}

// Boost sets the boost value.
func (q *BoolQuery) Boost(boost float64) *BoolQuery {
	q.boost = &boost
	return q
}

// Source builds the wire representation. Empty buckets are omitted entirely,
// never serialized as [].
func (q *BoolQuery) Source() any {
	boolObj := map[string]any{}
	if len(q.must) > 0 {
		boolObj["must"] = sourceList(q.must)
	}
	if len(q.mustNot) > 0 {
		boolObj["must_not"] = sourceList(q.mustNot)
	}
	if len(q.should) > 0 {
		boolObj["should"] = sourceList(q.should)
	}
	if len(q.filter) > 0 {
		boolObj["filter"] = sourceList(q.filter)
	}
	if q.minimumShouldMatch != nil {
		boolObj["minimum_should_match"] = *q.minimumShouldMatch
	}
	if q.boost != nil {
		boolObj["boost"] = *q.boost
	}
	return map[string]any{"bool": boolObj}
}

func sourceList(queries []Query) []any {
	sources := make([]any, len(queries))
	for i, q := range queries {
		sources[i] = q.Source()
	}
	return sources
}

func (q *BoolQuery) kind() string { return kindBool }
func (q *BoolQuery) isQuery()     {}

type boolQueryJSON struct {
	Must               []json.RawMessage `json:"must,omitempty"`
	MustNot            []json.RawMessage `json:"must_not,omitempty"`
	Should             []json.RawMessage `json:"should,omitempty"`
	Filter             []json.RawMessage `json:"filter,omitempty"`
	MinimumShouldMatch *int              `json:"minimum_should_match,omitempty"`
	Boost              *float64          `json:"boost,omitempty"`
}

func (q *BoolQuery) MarshalJSON() ([]byte, error) {
	must, err := marshalQueryList(q.must)
	if err != nil {
		return nil, err
	}
	mustNot, err := marshalQueryList(q.mustNot)
	if err != nil {
		return nil, err
	}
	should, err := marshalQueryList(q.should)
	if err != nil {
		return nil, err
	}
	filter, err := marshalQueryList(q.filter)
	if err != nil {
		return nil, err
	}
	return json.Marshal(boolQueryJSON{
		Must:               must,
		MustNot:            mustNot,
		Should:             should,
		Filter:             filter,
		MinimumShouldMatch: q.minimumShouldMatch,
		Boost:              q.boost,
	})
}

func (q *BoolQuery) UnmarshalJSON(data []byte) error {
	var raw boolQueryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	if q.must, err = unmarshalQueryList(raw.Must); err != nil {
		return err
	}
	if q.mustNot, err = unmarshalQueryList(raw.MustNot); err != nil {
		return err
	}
	if q.should, err = unmarshalQueryList(raw.Should); err != nil {
		return err
	}
	if q.filter, err = unmarshalQueryList(raw.Filter); err != nil {
		return err
	}
	q.minimumShouldMatch = raw.MinimumShouldMatch
	q.boost = raw.Boost
	return nil
}

// BoolQueryBuilder incrementally assembles a BoolQuery, e.g. adding clauses
// inside loops or branches before a terminal Build.
type BoolQueryBuilder struct {
	must               []Query
	mustNot            []Query
	should             []Query
	filter             []Query
	minimumShouldMatch *int
	boost              *float64
}

// NewBoolQueryBuilder creates a new empty BoolQueryBuilder.
func NewBoolQueryBuilder() *BoolQueryBuilder {
	return &BoolQueryBuilder{}
}

// Must adds queries to the must bucket.
func (b *BoolQueryBuilder) Must(queries ...Query) *BoolQueryBuilder {
	b.must = append(b.must, queries...)
	return b
}

// MustNot adds queries to the must_not bucket.
func (b *BoolQueryBuilder) MustNot(queries ...Query) *BoolQueryBuilder {
	b.mustNot = append(b.mustNot, queries...)
	return b
}

// Should adds queries to the should bucket.
func (b *BoolQueryBuilder) Should(queries ...Query) *BoolQueryBuilder {
	b.should = append(b.should, queries...)
	return b
}

// Filter adds queries to the filter bucket.
func (b *BoolQueryBuilder) Filter(queries ...Query) *BoolQueryBuilder {
	b.filter = append(b.filter, queries...)
	return b
}

// MinimumShouldMatch sets how many should clauses must match.
func (b *BoolQueryBuilder) MinimumShouldMatch(minimumShouldMatch int) *BoolQueryBuilder {
	b.minimumShouldMatch = &minimumShouldMatch
	return b
}

// Boost sets the boost value.
func (b *BoolQueryBuilder) Boost(boost float64) *BoolQueryBuilder {
	b.boost = &boost
	return b
}

// Build freezes the buckets into a BoolQuery. The builder can keep being
// mutated afterwards without affecting the built query.
func (b *BoolQueryBuilder) Build() *BoolQuery {
	return &BoolQuery{
		must:               append([]Query(nil), b.must...),
		mustNot:            append([]Query(nil), b.mustNot...),
		should:             append([]Query(nil), b.should...),
		filter:             append([]Query(nil), b.filter...),
		minimumShouldMatch: b.minimumShouldMatch,
		boost:              b.boost,
	}
}
