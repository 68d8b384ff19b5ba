package problemgen

import (
	"fmt"

	"github.com/abhisek/harjutus/internal/config"
)

// BoundsValidator checks every number of a problem against the config:
// operands inside [MinInteger, MaxInteger] and each operator's own limit
// (sum, difference, product, quotient). It also checks that the stored
// result or relation matches the expressions.
type BoundsValidator struct{}

func (v *BoundsValidator) Name() string { return "bounds" }

func (v *BoundsValidator) Validate(p *Problem, cfg config.Config) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
	}

	if msg := checkExpr(p.Left, cfg); msg != "" {
		return fail("%s", msg)
	}

	switch p.Kind {
	case KindArithmetic:
		if got := p.Left.Value(); got != p.Value {
			return fail("%s is %d, not %d", p.Left, got, p.Value)
		}
	case KindSimpleComparison:
		if got := relate(p.Left.Value(), p.Value); got != p.Op {
			return fail("%s %s %d does not hold", p.Left, p.Op, p.Value)
		}
	case KindComplexComparison:
		if p.Right == nil {
			return fail("missing right-hand expression")
		}
		if msg := checkExpr(*p.Right, cfg); msg != "" {
			return fail("%s", msg)
		}
		if got := relate(p.Left.Value(), p.Right.Value()); got != p.Op {
			return fail("%s %s %s does not hold", p.Left, p.Op, p.Right)
		}
	}
	return nil
}

// checkExpr returns a description of the first constraint e violates, or
// "" when e is within bounds.
func checkExpr(e Expr, cfg config.Config) string {
	lo, hi := cfg.MinInteger, cfg.MaxInteger
	if e.X < lo || e.X > hi || e.Y < lo || e.Y > hi {
		return fmt.Sprintf("operands of %s outside [%d, %d]", e, lo, hi)
	}

	switch e.Op {
	case OpAdd:
		if e.X+e.Y > cfg.MaximumSum {
			return fmt.Sprintf("%s exceeds maximum sum %d", e, cfg.MaximumSum)
		}
	case OpSub:
		if e.X-e.Y < cfg.MinimumDifference {
			return fmt.Sprintf("%s is below minimum difference %d", e, cfg.MinimumDifference)
		}
	case OpMul:
		if e.X*e.Y > cfg.MaximumProduct {
			return fmt.Sprintf("%s exceeds maximum product %d", e, cfg.MaximumProduct)
		}
	case OpDiv:
		if e.Y < 1 {
			return fmt.Sprintf("%s divides by %d", e, e.Y)
		}
		if e.X%e.Y != 0 {
			return fmt.Sprintf("%s is not exact", e)
		}
		if q := e.X / e.Y; q < max(cfg.MinimumQuotient, 1) {
			return fmt.Sprintf("%s is below minimum quotient %d", e, cfg.MinimumQuotient)
		}
	default:
		return fmt.Sprintf("unsupported expression operator %q", e.Op)
	}
	return ""
}
