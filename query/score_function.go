package query

import (
	"encoding/json"
	"fmt"
)

// ScoreFunctionType is one concrete scoring function of the function_score
// sub-language: gauss/exp/linear decay, field_value_factor, random_score,
// script_score, or a bare weight.
type ScoreFunctionType interface {
	// functionKind returns the wire key of the function ("" for Weight,
	// which emits no function-type key).
	functionKind() string

	// functionSource returns the value placed under the function-type key.
	functionSource() any

	isScoreFunctionType()
}

// ScoreFunction pairs a scoring function with an optional filter gating
// which documents it applies to, and an optional weight multiplier.
type ScoreFunction struct {
	function ScoreFunctionType
	filter   Query
	weight   *float64
}

// NewScoreFunction wraps a ScoreFunctionType.
func NewScoreFunction(function ScoreFunctionType) *ScoreFunction {
	return &ScoreFunction{function: function}
}

// NewWeightFunction creates a weight-only score function: no function-type
// key, just a constant multiplier.
func NewWeightFunction(weight float64) *ScoreFunction {
	return &ScoreFunction{function: Weight(weight)}
}

// Filter gates the function to documents matching the given query.
func (f *ScoreFunction) Filter(filter Query) *ScoreFunction {
	f.filter = filter
	return f
}

// Weight sets the weight multiplier.
func (f *ScoreFunction) Weight(weight float64) *ScoreFunction {
	f.weight = &weight
	return f
}

// Source builds the wire representation: the function-type entry (if any),
// then filter and weight when present.
func (f *ScoreFunction) Source() any {
	obj := map[string]any{}
	if f.function != nil {
		if key := f.function.functionKind(); key != "" {
			obj[key] = f.function.functionSource()
		} else if w, ok := f.function.(Weight); ok {
			obj["weight"] = float64(w)
		}
	}
	if f.filter != nil {
		obj["filter"] = f.filter.Source()
	}
	if f.weight != nil {
		obj["weight"] = *f.weight
	}
	return obj
}

// Function type tags used by the typed-model codec.
const (
	functionKindGauss            = "gauss"
	functionKindExp              = "exp"
	functionKindLinear           = "linear"
	functionKindFieldValueFactor = "field_value_factor"
	functionKindRandomScore      = "random_score"
	functionKindScriptScore      = "script_score"
	functionKindWeight           = "weight"
)

type scoreFunctionJSON struct {
	Function *functionEnvelope `json:"function,omitempty"`
	Filter   json.RawMessage   `json:"filter,omitempty"`
	Weight   *float64          `json:"weight,omitempty"`
}

type functionEnvelope struct {
	Kind   string          `json:"kind"`
	Params json.RawMessage `json:"params,omitempty"`
}

func (f *ScoreFunction) MarshalJSON() ([]byte, error) {
	raw := scoreFunctionJSON{Weight: f.weight}
	if f.function != nil {
		kind := f.function.functionKind()
		if kind == "" {
			kind = functionKindWeight
		}
		params, err := json.Marshal(f.function)
		if err != nil {
			return nil, err
		}
		raw.Function = &functionEnvelope{Kind: kind, Params: params}
	}
	if f.filter != nil {
		filterRaw, err := Marshal(f.filter)
		if err != nil {
			return nil, err
		}
		raw.Filter = filterRaw
	}
	return json.Marshal(raw)
}

func (f *ScoreFunction) UnmarshalJSON(data []byte) error {
	var raw scoreFunctionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.function = nil
	if raw.Function != nil {
		function, err := unmarshalScoreFunctionType(raw.Function)
		if err != nil {
			return err
		}
		f.function = function
	}
	f.filter = nil
	if len(raw.Filter) > 0 {
		filter, err := Unmarshal(raw.Filter)
		if err != nil {
			return err
		}
		f.filter = filter
	}
	f.weight = raw.Weight
	return nil
}

func unmarshalScoreFunctionType(env *functionEnvelope) (ScoreFunctionType, error) {
	var function ScoreFunctionType
	switch env.Kind {
	case functionKindGauss, functionKindExp, functionKindLinear:
		function = &DecayFunction{decayKind: env.Kind}
	case functionKindFieldValueFactor:
		function = &FieldValueFactor{}
	case functionKindRandomScore:
		function = &RandomScore{}
	case functionKindScriptScore:
		function = &ScriptScore{}
	case functionKindWeight:
		var w Weight
		if err := json.Unmarshal(env.Params, &w); err != nil {
			return nil, fmt.Errorf("decode weight function: %w", err)
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unknown score function kind %q", env.Kind)
	}
	if len(env.Params) > 0 {
		if err := json.Unmarshal(env.Params, function); err != nil {
			return nil, fmt.Errorf("decode %s function params: %w", env.Kind, err)
		}
	}
	return function, nil
}

// DecayFunction scores documents by their distance from an origin over a
// scale, using a gauss, exp or linear curve.
type DecayFunction struct {
	decayKind string
	field     string
	origin    any
	scale     string
	offset    *string
	decay     *float64
}

// NewGaussFunction creates a gaussian decay function over the given field
// and scale.
func NewGaussFunction(field, scale string) *DecayFunction {
	return &DecayFunction{decayKind: functionKindGauss, field: field, scale: scale}
}

// NewExpFunction creates an exponential decay function over the given field
// and scale.
func NewExpFunction(field, scale string) *DecayFunction {
	return &DecayFunction{decayKind: functionKindExp, field: field, scale: scale}
}

// NewLinearFunction creates a linear decay function over the given field and
// scale.
func NewLinearFunction(field, scale string) *DecayFunction {
	return &DecayFunction{decayKind: functionKindLinear, field: field, scale: scale}
}

// Origin sets the point the decay is measured from, e.g. "now" or a
// geo-point.
func (f *DecayFunction) Origin(origin any) *DecayFunction {
	f.origin = origin
	return f
}

// Offset sets the distance from the origin before decay starts.
func (f *DecayFunction) Offset(offset string) *DecayFunction {
	f.offset = &offset
	return f
}

// Decay sets the score a document receives at the scale distance.
func (f *DecayFunction) Decay(decay float64) *DecayFunction {
	f.decay = &decay
	return f
}

func (f *DecayFunction) functionKind() string { return f.decayKind }

// functionSource builds {field: {origin?, scale, offset?, decay?}}. Scale is
// always present.
func (f *DecayFunction) functionSource() any {
	fieldObj := map[string]any{"scale": f.scale}
	if f.origin != nil {
		fieldObj["origin"] = f.origin
	}
	if f.offset != nil {
		fieldObj["offset"] = *f.offset
	}
	if f.decay != nil {
		fieldObj["decay"] = *f.decay
	}
	return map[string]any{f.field: fieldObj}
}

func (f *DecayFunction) isScoreFunctionType() {}

type decayFunctionJSON struct {
	Field  string   `json:"field"`
	Origin any      `json:"origin,omitempty"`
	Scale  string   `json:"scale"`
	Offset *string  `json:"offset,omitempty"`
	Decay  *float64 `json:"decay,omitempty"`
}

func (f *DecayFunction) MarshalJSON() ([]byte, error) {
	return json.Marshal(decayFunctionJSON{
		Field:  f.field,
		Origin: f.origin,
		Scale:  f.scale,
		Offset: f.offset,
		Decay:  f.decay,
	})
}

func (f *DecayFunction) UnmarshalJSON(data []byte) error {
	var raw decayFunctionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.field = raw.Field
	f.origin = raw.Origin
	f.scale = raw.Scale
	f.offset = raw.Offset
	f.decay = raw.Decay
	return nil
}

// FieldValueFactor scores documents by a numeric field's value.
type FieldValueFactor struct {
	field    string
	factor   *float64
	modifier *string
	missing  *float64
}

// NewFieldValueFactor creates a field_value_factor function over the given
// field.
func NewFieldValueFactor(field string) *FieldValueFactor {
	return &FieldValueFactor{field: field}
}

// Factor sets the multiplier applied to the field value.
func (f *FieldValueFactor) Factor(factor float64) *FieldValueFactor {
	f.factor = &factor
	return f
}

// Modifier sets the math applied to the field value, e.g. "log1p".
func (f *FieldValueFactor) Modifier(modifier string) *FieldValueFactor {
	f.modifier = &modifier
	return f
}

// Missing sets the value used for documents lacking the field.
func (f *FieldValueFactor) Missing(missing float64) *FieldValueFactor {
	f.missing = &missing
	return f
}

func (f *FieldValueFactor) functionKind() string { return functionKindFieldValueFactor }

func (f *FieldValueFactor) functionSource() any {
	obj := map[string]any{"field": f.field}
	if f.factor != nil {
		obj["factor"] = *f.factor
	}
	if f.modifier != nil {
		obj["modifier"] = *f.modifier
	}
	if f.missing != nil {
		obj["missing"] = *f.missing
	}
	return obj
}

func (f *FieldValueFactor) isScoreFunctionType() {}

type fieldValueFactorJSON struct {
	Field    string   `json:"field"`
	Factor   *float64 `json:"factor,omitempty"`
	Modifier *string  `json:"modifier,omitempty"`
	Missing  *float64 `json:"missing,omitempty"`
}

func (f *FieldValueFactor) MarshalJSON() ([]byte, error) {
	return json.Marshal(fieldValueFactorJSON{
		Field:    f.field,
		Factor:   f.factor,
		Modifier: f.modifier,
		Missing:  f.missing,
	})
}

func (f *FieldValueFactor) UnmarshalJSON(data []byte) error {
	var raw fieldValueFactorJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.field = raw.Field
	f.factor = raw.Factor
	f.modifier = raw.Modifier
	f.missing = raw.Missing
	return nil
}

// RandomScore scores documents with a reproducible pseudo-random value.
// Both seed and field are optional; an empty random_score object is valid.
type RandomScore struct {
	seed  any
	field *string
}

// NewRandomScore creates a new empty RandomScore.
func NewRandomScore() *RandomScore {
	return &RandomScore{}
}

// Seed sets the random seed.
func (f *RandomScore) Seed(seed any) *RandomScore {
	f.seed = seed
	return f
}

// Field sets the field the per-document hash is computed from.
func (f *RandomScore) Field(field string) *RandomScore {
	f.field = &field
	return f
}

func (f *RandomScore) functionKind() string { return functionKindRandomScore }

func (f *RandomScore) functionSource() any {
	obj := map[string]any{}
	if f.seed != nil {
		obj["seed"] = f.seed
	}
	if f.field != nil {
		obj["field"] = *f.field
	}
	return obj
}

func (f *RandomScore) isScoreFunctionType() {}

type randomScoreJSON struct {
	Seed  any     `json:"seed,omitempty"`
	Field *string `json:"field,omitempty"`
}

func (f *RandomScore) MarshalJSON() ([]byte, error) {
	return json.Marshal(randomScoreJSON{Seed: f.seed, Field: f.field})
}

func (f *RandomScore) UnmarshalJSON(data []byte) error {
	var raw randomScoreJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.seed = raw.Seed
	f.field = raw.Field
	return nil
}

// ScriptScore scores documents with a script.
type ScriptScore struct {
	source string
	params map[string]any
}

// NewScriptScore creates a script_score function with the given script
// source.
func NewScriptScore(source string) *ScriptScore {
	return &ScriptScore{source: source}
}

// Params sets the parameters injected into the script.
func (f *ScriptScore) Params(params map[string]any) *ScriptScore {
	f.params = params
	return f
}

func (f *ScriptScore) functionKind() string { return functionKindScriptScore }

func (f *ScriptScore) functionSource() any {
	scriptObj := map[string]any{"source": f.source}
	if f.params != nil {
		scriptObj["params"] = f.params
	}
	return map[string]any{"script": scriptObj}
}

func (f *ScriptScore) isScoreFunctionType() {}

type scriptScoreJSON struct {
	Source string         `json:"source"`
	Params map[string]any `json:"params,omitempty"`
}

func (f *ScriptScore) MarshalJSON() ([]byte, error) {
	return json.Marshal(scriptScoreJSON{Source: f.source, Params: f.params})
}

func (f *ScriptScore) UnmarshalJSON(data []byte) error {
	var raw scriptScoreJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.source = raw.Source
	f.params = raw.Params
	return nil
}

// Weight is a bare numeric weight with no function-type key of its own; the
// value surfaces as the score function's "weight".
type Weight float64

func (w Weight) functionKind() string { return "" }
func (w Weight) functionSource() any  { return nil }
func (w Weight) isScoreFunctionType() {}
