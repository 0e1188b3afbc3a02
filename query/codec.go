package query

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Variant tags used in the typed-model envelope. These identify the node
// kind, not the wire-format key (most coincide, but the envelope is our own
// format).
const (
	kindTerm              = "term"
	kindTerms             = "terms"
	kindMatch             = "match"
	kindMatchPhrase       = "match_phrase"
	kindMatchPhrasePrefix = "match_phrase_prefix"
	kindBool              = "bool"
	kindRange             = "range"
	kindMatchAll          = "match_all"
	kindWildcard          = "wildcard"
	kindRegexp            = "regexp"
	kindFunctionScore     = "function_score"
)

type queryEnvelope struct {
	Type   string          `json:"type"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Marshal encodes a query tree as typed-model JSON: an envelope holding the
// variant tag and the node parameters, recursively. This is the structural
// round-trip format, distinct from the wire document built by Source.
func Marshal(q Query) ([]byte, error) {
	if q == nil {
		return nil, errors.New("query: cannot marshal nil query")
	}
	params, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("query: encode %s params: %w", q.kind(), err)
	}
	return json.Marshal(queryEnvelope{Type: q.kind(), Params: params})
}

// Unmarshal decodes typed-model JSON produced by Marshal back into a query
// tree. Malformed input fails with an error naming the offending variant; it
// never panics or silently coerces.
func Unmarshal(data []byte) (Query, error) {
	var env queryEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("query: decode envelope: %w", err)
	}
	q, err := newQueryNode(env.Type)
	if err != nil {
		return nil, err
	}
	if len(env.Params) > 0 {
		if err := json.Unmarshal(env.Params, q); err != nil {
			return nil, fmt.Errorf("query: decode %s params: %w", env.Type, err)
		}
	}
	return q, nil
}

func newQueryNode(kind string) (Query, error) {
	switch kind {
	case kindTerm:
		return &TermQuery{}, nil
	case kindTerms:
		return &TermsQuery{}, nil
	case kindMatch:
		return &MatchQuery{}, nil
	case kindMatchPhrase:
		return &MatchPhraseQuery{}, nil
	case kindMatchPhrasePrefix:
		return &MatchPhrasePrefixQuery{}, nil
	case kindBool:
		return &BoolQuery{}, nil
	case kindRange:
		return &RangeQuery{}, nil
	case kindMatchAll:
		return &MatchAllQuery{}, nil
	case kindWildcard:
		return &WildcardQuery{}, nil
	case kindRegexp:
		return &RegexpQuery{}, nil
	case kindFunctionScore:
		return &FunctionScoreQuery{}, nil
	default:
		return nil, fmt.Errorf("query: unknown query type %q", kind)
	}
}

func marshalQueryList(queries []Query) ([]json.RawMessage, error) {
	if len(queries) == 0 {
		return nil, nil
	}
	raws := make([]json.RawMessage, len(queries))
	for i, q := range queries {
		raw, err := Marshal(q)
		if err != nil {
			return nil, err
		}
		raws[i] = raw
	}
	return raws, nil
}

func unmarshalQueryList(raws []json.RawMessage) ([]Query, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	queries := make([]Query, len(raws))
	for i, raw := range raws {
		q, err := Unmarshal(raw)
		if err != nil {
			return nil, err
		}
		queries[i] = q
	}
	return queries, nil
}
