package search

import "encoding/json"

// ScriptLang is the scripting language of a Script.
type ScriptLang string

const (
	// LangPainless is the default and recommended scripting language.
	LangPainless ScriptLang = "painless"
	// LangExpression is the fast, numeric-only expression language.
	LangExpression ScriptLang = "expression"
	// LangMustache is the template language; mainly for search templates.
	LangMustache ScriptLang = "mustache"
)

// ScriptSortType is the type the script's return value is sorted as.
type ScriptSortType string

const (
	// SortTypeNumber sorts numeric script values.
	SortTypeNumber ScriptSortType = "number"
	// SortTypeString sorts string script values lexicographically.
	SortTypeString ScriptSortType = "string"
	// SortTypeVersion sorts version strings like "1.2.3".
	SortTypeVersion ScriptSortType = "version"
)

// Script is an inline script with a language and optional parameters.
type Script struct {
	source string
	lang   ScriptLang
	params map[string]any
}

// NewScript creates a Script with the given source, defaulting to painless.
func NewScript(source string) *Script {
	return &Script{source: source, lang: LangPainless}
}

// Lang sets the scripting language.
func (s *Script) Lang(lang ScriptLang) *Script {
	s.lang = lang
	return s
}

// Params sets the parameters injected into the script.
func (s *Script) Params(params map[string]any) *Script {
	s.params = params
	return s
}

// Source builds the wire representation of the script object.
func (s *Script) Source() any {
	obj := map[string]any{
		"source": s.source,
		"lang":   string(s.lang),
	}
	if s.params != nil {
		obj["params"] = s.params
	}
	return obj
}

type scriptJSON struct {
	Source string         `json:"source"`
	Lang   ScriptLang     `json:"lang"`
	Params map[string]any `json:"params,omitempty"`
}

func (s *Script) MarshalJSON() ([]byte, error) {
	return json.Marshal(scriptJSON{Source: s.source, Lang: s.lang, Params: s.params})
}

func (s *Script) UnmarshalJSON(data []byte) error {
	var raw scriptJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.source = raw.Source
	s.lang = raw.Lang
	s.params = raw.Params
	return nil
}

// ScriptSort sorts by a script-computed value.
type ScriptSort struct {
	script   *Script
	sortType ScriptSortType
	order    SortOrder
	mode     *SortMode
}

// NewScriptSort creates a sort on the given script, value type and order.
func NewScriptSort(script *Script, sortType ScriptSortType, order SortOrder) *ScriptSort {
	return &ScriptSort{script: script, sortType: sortType, order: order}
}

// Mode sets the multi-value aggregation mode.
func (s *ScriptSort) Mode(mode SortMode) *ScriptSort {
	s.mode = &mode
	return s
}

// Source builds the wire representation:
// {"_script": {"type": ..., "script": {...}, "order": ..., "mode"?: ...}}.
func (s *ScriptSort) Source() any {
	scriptObj := map[string]any{
		"type":   string(s.sortType),
		"script": s.script.Source(),
		"order":  string(s.order),
	}
	if s.mode != nil {
		scriptObj["mode"] = string(*s.mode)
	}
	return map[string]any{"_script": scriptObj}
}

func (s *ScriptSort) kind() string { return sortKindScript }
func (s *ScriptSort) isSort()      {}

type scriptSortJSON struct {
	Script   *Script        `json:"script"`
	SortType ScriptSortType `json:"type"`
	Order    SortOrder      `json:"order"`
	Mode     *SortMode      `json:"mode,omitempty"`
}

func (s *ScriptSort) MarshalJSON() ([]byte, error) {
	return json.Marshal(scriptSortJSON{
		Script:   s.script,
		SortType: s.sortType,
		Order:    s.order,
		Mode:     s.mode,
	})
}

func (s *ScriptSort) UnmarshalJSON(data []byte) error {
	var raw scriptSortJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.script = raw.Script
	s.sortType = raw.SortType
	s.order = raw.Order
	s.mode = raw.Mode
	return nil
}
