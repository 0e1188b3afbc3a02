// Package query models OpenSearch query-DSL documents as a typed tree.
//
// Callers assemble a query from typed nodes (TermQuery, BoolQuery,
// FunctionScoreQuery, ...) and project it to the engine's wire schema with
// Source. Source returns the plain JSON value model (nil, bool, numbers,
// string, []any, map[string]any) so the result can be handed straight to
// encoding/json or an HTTP client body.
//
// Nodes are plain values with no back-references: composite nodes own their
// children exclusively, so a query tree can be built, copied, and serialized
// without any synchronization.
package query

// Query is a single node in the query tree.
//
// The set of implementations is closed: Term, Terms, Match, MatchPhrase,
// MatchPhrasePrefix, Bool, Range, MatchAll, Wildcard, Regexp and
// FunctionScore. Recursion happens only through BoolQuery clause buckets and
// FunctionScoreQuery (base query and per-function filters).
type Query interface {
	// Source builds the wire-format representation of this node.
	// It is a pure fold over the tree and never fails.
	Source() any

	// kind returns the envelope tag used by Marshal/Unmarshal.
	kind() string

	isQuery()
}
