// Package search models whole OpenSearch search-request documents: a query
// tree plus paging, sorting, aggregations, source filtering, highlighting
// and collapsing. SearchRequest offers consuming fluent construction;
// RequestBuilder offers mutable, incremental construction with
// add/set/clear/remove operations before a terminal Build.
package search

import "github.com/opensearch-tools/osdsl/query"

// SearchRequest is the aggregate root of one search-request document.
type SearchRequest struct {
	query          query.Query
	size           *int
	from           *int
	sort           []Sort
	aggs           map[string]Aggregation
	sourceFields   []string
	highlight      *Highlight
	trackTotalHits *bool
	collapse       *Collapse
}

// NewSearchRequest creates an empty SearchRequest.
func NewSearchRequest() *SearchRequest {
	return &SearchRequest{}
}

// Query sets the query.
func (r *SearchRequest) Query(q query.Query) *SearchRequest {
	r.query = q
	return r
}

// Size sets the maximum number of hits to return.
func (r *SearchRequest) Size(size int) *SearchRequest {
	r.size = &size
	return r
}

// From sets the offset into the result set.
func (r *SearchRequest) From(from int) *SearchRequest {
	r.from = &from
	return r
}

// Sort appends a sort criterion; criteria apply in insertion order.
func (r *SearchRequest) Sort(sort Sort) *SearchRequest {
	r.sort = append(r.sort, sort)
	return r
}

// Aggregation adds a named aggregation.
func (r *SearchRequest) Aggregation(name string, agg Aggregation) *SearchRequest {
	if r.aggs == nil {
		r.aggs = make(map[string]Aggregation)
	}
	r.aggs[name] = agg
	return r
}

// SourceFields sets which document fields are returned, replacing any
// previous list.
func (r *SearchRequest) SourceFields(fields ...string) *SearchRequest {
	r.sourceFields = fields
	return r
}

// Highlight sets the highlight configuration.
func (r *SearchRequest) Highlight(highlight *Highlight) *SearchRequest {
	r.highlight = highlight
	return r
}

// TrackTotalHits sets whether the engine counts all matching documents.
func (r *SearchRequest) TrackTotalHits(track bool) *SearchRequest {
	r.trackTotalHits = &track
	return r
}

// Collapse sets the collapse configuration.
func (r *SearchRequest) Collapse(collapse *Collapse) *SearchRequest {
	r.collapse = collapse
	return r
}

// Source builds the wire-format document. Every absent option and every
// empty collection is omitted entirely; sequences keep insertion order.
func (r *SearchRequest) Source() any {
	result := map[string]any{}
	if r.query != nil {
		result["query"] = r.query.Source()
	}
	if r.size != nil {
		result["size"] = *r.size
	}
	if r.from != nil {
		result["from"] = *r.from
	}
	if len(r.sort) > 0 {
		sorts := make([]any, len(r.sort))
		for i, s := range r.sort {
			sorts[i] = s.Source()
		}
		result["sort"] = sorts
	}
	if len(r.aggs) > 0 {
		aggsObj := make(map[string]any, len(r.aggs))
		for name, agg := range r.aggs {
			aggsObj[name] = agg.Source()
		}
		result["aggs"] = aggsObj
	}
	if len(r.sourceFields) > 0 {
		result["_source"] = stringList(r.sourceFields)
	}
	if r.highlight != nil {
		result["highlight"] = r.highlight.Source()
	}
	if r.trackTotalHits != nil {
		result["track_total_hits"] = *r.trackTotalHits
	}
	if r.collapse != nil {
		result["collapse"] = r.collapse.Source()
	}
	return result
}

// RequestBuilder incrementally assembles a SearchRequest: add fields inside
// loops or branches, undo with the clear/remove operations, then call Build
// once.
type RequestBuilder struct {
	query          query.Query
	size           *int
	from           *int
	sort           []Sort
	aggs           map[string]Aggregation
	sourceFields   []string
	highlight      *Highlight
	trackTotalHits *bool
	collapse       *Collapse
}

// NewRequestBuilder creates an empty RequestBuilder.
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{}
}

// Query sets the query, replacing any previous one.
func (b *RequestBuilder) Query(q query.Query) *RequestBuilder {
	b.query = q
	return b
}

// Size sets the maximum number of hits to return.
func (b *RequestBuilder) Size(size int) *RequestBuilder {
	b.size = &size
	return b
}

// From sets the offset into the result set.
func (b *RequestBuilder) From(from int) *RequestBuilder {
	b.from = &from
	return b
}

// AddSort appends a sort criterion; call repeatedly to add several.
func (b *RequestBuilder) AddSort(sort Sort) *RequestBuilder {
	b.sort = append(b.sort, sort)
	return b
}

// SetSorts replaces all sort criteria at once.
func (b *RequestBuilder) SetSorts(sorts []Sort) *RequestBuilder {
	b.sort = sorts
	return b
}

// ClearSorts removes all sort criteria.
func (b *RequestBuilder) ClearSorts() *RequestBuilder {
	b.sort = nil
	return b
}

// AddAggregation adds a named aggregation.
func (b *RequestBuilder) AddAggregation(name string, agg Aggregation) *RequestBuilder {
	if b.aggs == nil {
		b.aggs = make(map[string]Aggregation)
	}
	b.aggs[name] = agg
	return b
}

// RemoveAggregation removes an aggregation by name.
func (b *RequestBuilder) RemoveAggregation(name string) *RequestBuilder {
	delete(b.aggs, name)
	return b
}

// ClearAggregations removes all aggregations.
func (b *RequestBuilder) ClearAggregations() *RequestBuilder {
	b.aggs = nil
	return b
}

// AddSourceField appends one field to the source-field list.
func (b *RequestBuilder) AddSourceField(field string) *RequestBuilder {
	b.sourceFields = append(b.sourceFields, field)
	return b
}

// SetSourceFields replaces the source-field list.
func (b *RequestBuilder) SetSourceFields(fields ...string) *RequestBuilder {
	b.sourceFields = fields
	return b
}

// ClearSourceFields removes all source fields.
func (b *RequestBuilder) ClearSourceFields() *RequestBuilder {
	b.sourceFields = nil
	return b
}

// Highlight sets the highlight configuration.
func (b *RequestBuilder) Highlight(highlight *Highlight) *RequestBuilder {
	b.highlight = highlight
	return b
}

// TrackTotalHits sets whether the engine counts all matching documents.
func (b *RequestBuilder) TrackTotalHits(track bool) *RequestBuilder {
	b.trackTotalHits = &track
	return b
}

// Collapse sets the collapse configuration.
func (b *RequestBuilder) Collapse(collapse *Collapse) *RequestBuilder {
	b.collapse = collapse
	return b
}

// Build freezes the builder into a SearchRequest. The builder can keep being
// mutated afterwards without affecting the built request.
func (b *RequestBuilder) Build() *SearchRequest {
	req := &SearchRequest{
		query:          b.query,
		size:           b.size,
		from:           b.from,
		sort:           append([]Sort(nil), b.sort...),
		sourceFields:   append([]string(nil), b.sourceFields...),
		highlight:      b.highlight,
		trackTotalHits: b.trackTotalHits,
		collapse:       b.collapse,
	}
	if len(b.aggs) > 0 {
		req.aggs = make(map[string]Aggregation, len(b.aggs))
		for name, agg := range b.aggs {
			req.aggs[name] = agg
		}
	}
	return req
}
