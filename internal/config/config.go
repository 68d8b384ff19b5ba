// Package config normalizes the exercise configuration supplied by the
// page owner (config.json) into a fully populated, internally consistent
// value.
package config

// Config holds the constraints shared by the problem generator and the
// dictation selector. It is a plain value: a reload produces a new Config
// and never mutates one in place.
type Config struct {
	MinInteger        int `json:"min_integer"`
	MaxInteger        int `json:"max_integer"`
	MaximumSum        int `json:"maximum_sum"`
	MinimumDifference int `json:"minimum_difference"`
	MaximumProduct    int `json:"maximum_product"`
	MinimumQuotient   int `json:"minimum_quotient"`

	AdditionAllowed       bool `json:"addition_allowed"`
	SubtractionAllowed    bool `json:"subtraction_allowed"`
	MultiplicationAllowed bool `json:"multiplication_allowed"`
	DivisionAllowed       bool `json:"division_allowed"`
	ComparisonAllowed     bool `json:"comparison_allowed"`

	DictationLines   int `json:"dictation_lines"`
	MathProblemCount int `json:"math_problem_count"`

	// PreferSentencesWith lists substrings the dictation selector favours.
	// Matching is case-insensitive. Nil when no preference is configured.
	PreferSentencesWith []string `json:"prefer_sentences_with,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	c := Config{
		AdditionAllowed:    true,
		SubtractionAllowed: true,
	}
	for _, b := range intBounds {
		*b.field(&c) = b.def
	}
	return c
}

// ComparisonOnly reports whether comparisons are the only enabled family.
func (c Config) ComparisonOnly() bool {
	return c.ComparisonAllowed &&
		!c.AdditionAllowed &&
		!c.SubtractionAllowed &&
		!c.MultiplicationAllowed &&
		!c.DivisionAllowed
}

// Raw renders c in the shape Validate accepts, so that
// Validate(c.Raw()) reproduces c for any validated c.
func (c Config) Raw() map[string]any {
	raw := map[string]any{
		"addition_allowed":       c.AdditionAllowed,
		"subtraction_allowed":    c.SubtractionAllowed,
		"multiplication_allowed": c.MultiplicationAllowed,
		"division_allowed":       c.DivisionAllowed,
		"comparison_allowed":     c.ComparisonAllowed,
	}
	for _, b := range intBounds {
		raw[b.key] = *b.field(&c)
	}
	if len(c.PreferSentencesWith) > 0 {
		prefs := make([]string, len(c.PreferSentencesWith))
		copy(prefs, c.PreferSentencesWith)
		raw["prefer_sentences_with"] = prefs
	}
	return raw
}
