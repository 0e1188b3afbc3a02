package search

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Variant tags used in the typed-model envelopes for sorts and aggregations.
const (
	sortKindField          = "field"
	sortKindScore          = "score"
	sortKindScoreWithOrder = "score_with_order"
	sortKindScript         = "script"

	aggKindTerms       = "terms"
	aggKindCardinality = "cardinality"
)

type sortEnvelope struct {
	Type   string          `json:"type"`
	Params json.RawMessage `json:"params,omitempty"`
}

// MarshalSort encodes a sort criterion as typed-model JSON: an envelope
// holding the variant tag and the node parameters. This is the structural
// round-trip format, distinct from the wire document built by Source.
func MarshalSort(s Sort) ([]byte, error) {
	if s == nil {
		return nil, errors.New("search: cannot marshal nil sort")
	}
	params, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("search: encode %s sort params: %w", s.kind(), err)
	}
	return json.Marshal(sortEnvelope{Type: s.kind(), Params: params})
}

// UnmarshalSort decodes typed-model JSON produced by MarshalSort back into a
// sort criterion. Malformed input fails with an error naming the offending
// variant.
func UnmarshalSort(data []byte) (Sort, error) {
	var env sortEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("search: decode sort envelope: %w", err)
	}
	s, err := newSortNode(env.Type)
	if err != nil {
		return nil, err
	}
	if len(env.Params) > 0 {
		if err := json.Unmarshal(env.Params, s); err != nil {
			return nil, fmt.Errorf("search: decode %s sort params: %w", env.Type, err)
		}
	}
	return s, nil
}

func newSortNode(kind string) (Sort, error) {
	switch kind {
	case sortKindField:
		return &FieldSort{}, nil
	case sortKindScore:
		return &ScoreSort{}, nil
	case sortKindScoreWithOrder:
		return &ScoreWithOrderSort{}, nil
	case sortKindScript:
		return &ScriptSort{}, nil
	default:
		return nil, fmt.Errorf("search: unknown sort type %q", kind)
	}
}

type aggregationEnvelope struct {
	Type   string          `json:"type"`
	Params json.RawMessage `json:"params,omitempty"`
}

// MarshalAggregation encodes an aggregation as typed-model JSON, recursively
// covering sub-aggregations.
func MarshalAggregation(a Aggregation) ([]byte, error) {
	if a == nil {
		return nil, errors.New("search: cannot marshal nil aggregation")
	}
	params, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("search: encode %s aggregation params: %w", a.kind(), err)
	}
	return json.Marshal(aggregationEnvelope{Type: a.kind(), Params: params})
}

// UnmarshalAggregation decodes typed-model JSON produced by
// MarshalAggregation back into an aggregation.
func UnmarshalAggregation(data []byte) (Aggregation, error) {
	var env aggregationEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("search: decode aggregation envelope: %w", err)
	}
	a, err := newAggregationNode(env.Type)
	if err != nil {
		return nil, err
	}
	if len(env.Params) > 0 {
		if err := json.Unmarshal(env.Params, a); err != nil {
			return nil, fmt.Errorf("search: decode %s aggregation params: %w", env.Type, err)
		}
	}
	return a, nil
}

func newAggregationNode(kind string) (Aggregation, error) {
	switch kind {
	case aggKindTerms:
		return &TermsAggregation{}, nil
	case aggKindCardinality:
		return &CardinalityAggregation{}, nil
	default:
		return nil, fmt.Errorf("search: unknown aggregation type %q", kind)
	}
}
