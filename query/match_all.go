package query

// MatchAllQuery matches every document. It carries no parameters.
type MatchAllQuery struct{}

// NewMatchAllQuery creates a new MatchAllQuery.
func NewMatchAllQuery() *MatchAllQuery {
	return &MatchAllQuery{}
}

// Source builds the wire representation: always {"match_all": {}}.
func (q *MatchAllQuery) Source() any {
	return map[string]any{
		"match_all": map[string]any{},
	}
}

func (q *MatchAllQuery) kind() string { return kindMatchAll }
func (q *MatchAllQuery) isQuery()     {}
