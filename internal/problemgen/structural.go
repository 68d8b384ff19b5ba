package problemgen

import (
	"slices"
	"strings"

	"github.com/abhisek/harjutus/internal/config"
)

// StructuralValidator checks that a problem is well formed: its kind and
// operator agree, exactly one slot is masked with a role valid for the
// kind, and an answer is recorded.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem, _ config.Config) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}

	switch p.Kind {
	case KindArithmetic:
		if !p.Op.IsArithmetic() || p.Left.Op != p.Op {
			return fail("arithmetic problem must use its expression operator")
		}
		if p.Right != nil {
			return fail("arithmetic problem has a right-hand expression")
		}
	case KindSimpleComparison:
		if !p.Op.IsComparison() {
			return fail("comparison problem must use = > or <")
		}
		if p.Right != nil {
			return fail("simple comparison has a right-hand expression")
		}
	case KindComplexComparison:
		if !p.Op.IsComparison() {
			return fail("comparison problem must use = > or <")
		}
		if p.Right == nil {
			return fail("complex comparison is missing its right-hand expression")
		}
	default:
		return fail("unknown kind " + string(p.Kind))
	}

	if !slices.Contains(Roles(p.Kind), p.Unknown) {
		return fail("role " + string(p.Unknown) + " is not valid for " + string(p.Kind))
	}
	if p.Text == "" {
		return fail("text is empty")
	}
	holes := 0
	for _, tok := range strings.Fields(p.Text) {
		if tok == Placeholder {
			holes++
		}
	}
	if holes != 1 {
		return fail("text must contain exactly one placeholder")
	}
	if p.Answer == "" {
		return fail("answer is empty")
	}
	return nil
}
