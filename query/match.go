package query

import "encoding/json"

// MatchQuery performs an analyzed full-text search on a single field.
type MatchQuery struct {
	field              string
	query              string
	operator           *string
	fuzziness          *string
	boost              *float64
	minimumShouldMatch *string
}

// NewMatchQuery creates a new MatchQuery for the given field and query text.
func NewMatchQuery(field, queryText string) *MatchQuery {
	return &MatchQuery{
		field: field,
		query: queryText,
	}
}

// Operator sets how multiple terms are combined ("and" or "or").
func (q *MatchQuery) Operator(operator string) *MatchQuery {
	q.operator = &operator
	return q
}

// Fuzziness sets the typo tolerance, e.g. "AUTO", "0", "1", "2".
func (q *MatchQuery) Fuzziness(fuzziness string) *MatchQuery {
	q.fuzziness = &fuzziness
	return q
}

// Boost sets the boost value.
func (q *MatchQuery) Boost(boost float64) *MatchQuery {
	q.boost = &boost
	return q
}

// MinimumShouldMatch sets the minimum-should-match expression, e.g. "80%".
func (q *MatchQuery) MinimumShouldMatch(minimumShouldMatch string) *MatchQuery {
	q.minimumShouldMatch = &minimumShouldMatch
	return q
}

// Source builds the wire representation. With no options set the simple form
// {"match": {field: "query"}} is used; any option switches to the object
// form with an explicit "query" key.
func (q *MatchQuery) Source() any {
	hasOptions := q.operator != nil || q.fuzziness != nil || q.boost != nil || q.minimumShouldMatch != nil
	var inner any
	if hasOptions {
		fieldObj := map[string]any{"query": q.query}
		if q.operator != nil {
			fieldObj["operator"] = *q.operator
		}
		if q.fuzziness != nil {
			fieldObj["fuzziness"] = *q.fuzziness
		}
		if q.boost != nil {
			fieldObj["boost"] = *q.boost
		}
		if q.minimumShouldMatch != nil {
			fieldObj["minimum_should_match"] = *q.minimumShouldMatch
		}
		inner = fieldObj
	} else {
		inner = q.query
	}
	return map[string]any{
		"match": map[string]any{q.field: inner},
	}
}

func (q *MatchQuery) kind() string { return kindMatch }
func (q *MatchQuery) isQuery()     {}

type matchQueryJSON struct {
	Field              string   `json:"field"`
	Query              string   `json:"query"`
	Operator           *string  `json:"operator,omitempty"`
	Fuzziness          *string  `json:"fuzziness,omitempty"`
	Boost              *float64 `json:"boost,omitempty"`
	MinimumShouldMatch *string  `json:"minimum_should_match,omitempty"`
}

func (q *MatchQuery) MarshalJSON() ([]byte, error) {
	return json.Marshal(matchQueryJSON{
		Field:              q.field,
		Query:              q.query,
		Operator:           q.operator,
		Fuzziness:          q.fuzziness,
		Boost:              q.boost,
		MinimumShouldMatch: q.minimumShouldMatch,
	})
}

func (q *MatchQuery) UnmarshalJSON(data []byte) error {
	var raw matchQueryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q.field = raw.Field
	q.query = raw.Query
	q.operator = raw.Operator
	q.fuzziness = raw.Fuzziness
	q.boost = raw.Boost
	q.minimumShouldMatch = raw.MinimumShouldMatch
	return nil
}
