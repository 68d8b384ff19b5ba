package config

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// intBound describes one numeric field: its JSON key, clamp range and
// default.
type intBound struct {
	key   string
	lo    int
	hi    int
	def   int
	field func(*Config) *int
}

var intBounds = []intBound{
	{"min_integer", 0, 100, 1, func(c *Config) *int { return &c.MinInteger }},
	{"max_integer", 1, 1000, 10, func(c *Config) *int { return &c.MaxInteger }},
	{"maximum_sum", 2, 1000, 16, func(c *Config) *int { return &c.MaximumSum }},
	{"minimum_difference", 0, 100, 1, func(c *Config) *int { return &c.MinimumDifference }},
	{"maximum_product", 1, 10000, 100, func(c *Config) *int { return &c.MaximumProduct }},
	{"minimum_quotient", 1, 100, 1, func(c *Config) *int { return &c.MinimumQuotient }},
	{"math_problem_count", 1, 50, 5, func(c *Config) *int { return &c.MathProblemCount }},
	{"dictation_lines", 1, 20, 4, func(c *Config) *int { return &c.DictationLines }},
}

// boolField describes one boolean switch and its default.
type boolField struct {
	key   string
	def   bool
	field func(*Config) *bool
}

var boolFields = []boolField{
	{"addition_allowed", true, func(c *Config) *bool { return &c.AdditionAllowed }},
	{"subtraction_allowed", true, func(c *Config) *bool { return &c.SubtractionAllowed }},
	{"multiplication_allowed", false, func(c *Config) *bool { return &c.MultiplicationAllowed }},
	{"division_allowed", false, func(c *Config) *bool { return &c.DivisionAllowed }},
	{"comparison_allowed", false, func(c *Config) *bool { return &c.ComparisonAllowed }},
}

// Validate builds a Config from an arbitrary, possibly untrusted, partial
// configuration object. Unknown keys are ignored; missing or unparsable
// numeric fields take their default, as does a zero for fields whose range
// excludes zero; every other value is clamped to its range; and MaxInteger
// is raised above MinInteger when needed.
//
// Validate is pure and idempotent: Validate(Validate(raw).Raw()) equals
// Validate(raw).
func Validate(raw map[string]any) Config {
	var c Config

	for _, b := range intBounds {
		n, ok := parseInt(raw[b.key])
		if !ok || (n == 0 && b.lo > 0) {
			n = b.def
		}
		*b.field(&c) = clamp(n, b.lo, b.hi)
	}

	for _, f := range boolFields {
		v, present := raw[f.key]
		if !present {
			*f.field(&c) = f.def
			continue
		}
		*f.field(&c) = truthy(v)
	}

	c.PreferSentencesWith = parseTerms(raw["prefer_sentences_with"])

	if c.MinInteger >= c.MaxInteger {
		c.MaxInteger = c.MinInteger + 1
	}
	return c
}

func clamp(n, lo, hi int) int {
	return max(lo, min(hi, n))
}

// saturation keeps parsed values far outside every bound without risking
// int overflow; clamping brings them back into range.
const saturation = 1 << 30

// parseInt applies the leading-integer rule: JSON numbers truncate toward
// zero, strings yield their leading signed integer ("12px" is 12), and
// anything else fails.
func parseInt(v any) (int, bool) {
	switch x := v.(type) {
	case float64:
		return parseFloat(x)
	case float32:
		return parseFloat(float64(x))
	case int:
		return x, true
	case int64:
		return int(max(-saturation, min(saturation, x))), true
	case json.Number:
		return parseString(x.String())
	case string:
		return parseString(x)
	default:
		return 0, false
	}
}

func parseFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	t = math.Max(-saturation, math.Min(saturation, t))
	return int(t), true
}

func parseString(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	sign := 1
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	digits := strings.TrimLeft(s[:end], "0")
	if len(digits) > 12 {
		return sign * saturation, true
	}
	if digits == "" {
		return 0, true
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return sign * n, true
}

// truthy reports whether a JSON value counts as set. Zero, the empty
// string and null are false; objects and arrays are true.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

// parseTerms accepts a list of strings or a single string. Empty terms and
// repeats are dropped; order of first appearance is kept.
func parseTerms(v any) []string {
	var items []string
	switch x := v.(type) {
	case string:
		items = []string{x}
	case []string:
		items = x
	case []any:
		for _, item := range x {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
	}

	var terms []string
	seen := make(map[string]bool, len(items))
	for _, s := range items {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		terms = append(terms, s)
	}
	return terms
}
