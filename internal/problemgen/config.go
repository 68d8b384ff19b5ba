package problemgen

// Config controls the behavior of the batch Generator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// synthesized problem. The first failure rejects the candidate.
	Validators []Validator

	// AttemptBudget caps synthesis attempts per batch.
	AttemptBudget int

	// ComparisonOnlyAttemptBudget replaces AttemptBudget when comparisons
	// are the only enabled family; simple ">" and "<" statements are
	// rejected far more often than plain arithmetic.
	ComparisonOnlyAttemptBudget int
}

const (
	defaultAttemptBudget               = 1000
	defaultComparisonOnlyAttemptBudget = 10 * defaultAttemptBudget
)

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&BoundsValidator{},
			&MathCheckValidator{},
		},
		AttemptBudget:               defaultAttemptBudget,
		ComparisonOnlyAttemptBudget: defaultComparisonOnlyAttemptBudget,
	}
}
