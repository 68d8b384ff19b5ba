package problemgen

import (
	"fmt"

	"github.com/abhisek/harjutus/internal/config"
	"github.com/abhisek/harjutus/internal/rng"
)

// Synthesize makes one attempt at a problem for op. seen holds the texts
// already accepted into the current batch and is not modified.
//
// A failed attempt returns a *Rejection, which callers handle by retrying;
// any other error means op is not a supported operator.
func Synthesize(src rng.Source, op Operator, cfg config.Config, seen map[string]bool) (Problem, error) {
	var (
		p   Problem
		err error
	)
	switch {
	case op.IsArithmetic():
		p, err = synthesizeArithmetic(src, op, cfg)
	case op.IsComparison():
		p, err = synthesizeComparison(src, op, cfg)
	default:
		return Problem{}, fmt.Errorf("unsupported operator %q", op)
	}
	if err != nil {
		return Problem{}, err
	}
	if seen[p.Text] {
		return Problem{}, reject(op, ReasonDuplicate, "%q already in batch", p.Text)
	}
	return p, nil
}

func synthesizeArithmetic(src rng.Source, op Operator, cfg config.Config) (Problem, error) {
	e, err := drawExpr(src, op, cfg)
	if err != nil {
		return Problem{}, err
	}
	p := Problem{
		Kind:    KindArithmetic,
		Op:      op,
		Left:    e,
		Value:   e.Value(),
		Unknown: rng.Choice(src, Roles(KindArithmetic)),
	}
	return p.masked()
}

// drawExpr draws "x op y" within [MinInteger, MaxInteger] under the
// operator's constraint. The second operand is drawn first and bounds the
// first.
func drawExpr(src rng.Source, op Operator, cfg config.Config) (Expr, error) {
	lo, hi := cfg.MinInteger, cfg.MaxInteger

	switch op {
	case OpAdd:
		y, ok := rng.Int(src, lo, hi)
		if !ok {
			return Expr{}, reject(op, ReasonUnsatisfiable, "empty operand range [%d, %d]", lo, hi)
		}
		xHi := min(hi, cfg.MaximumSum-y)
		x, ok := rng.Int(src, lo, xHi)
		if !ok {
			return Expr{}, reject(op, ReasonUnsatisfiable, "no x in [%d, %d] keeps x + %d <= %d", lo, xHi, y, cfg.MaximumSum)
		}
		return Expr{X: x, Op: op, Y: y}, nil

	case OpSub:
		y, ok := rng.Int(src, lo, hi)
		if !ok {
			return Expr{}, reject(op, ReasonUnsatisfiable, "empty operand range [%d, %d]", lo, hi)
		}
		xLo := y + cfg.MinimumDifference
		x, ok := rng.Int(src, xLo, hi)
		if !ok {
			return Expr{}, reject(op, ReasonUnsatisfiable, "no x in [%d, %d] keeps x - %d >= %d", xLo, hi, y, cfg.MinimumDifference)
		}
		return Expr{X: x, Op: op, Y: y}, nil

	case OpMul:
		y, ok := rng.Int(src, lo, hi)
		if !ok {
			return Expr{}, reject(op, ReasonUnsatisfiable, "empty operand range [%d, %d]", lo, hi)
		}
		xHi := min(hi, cfg.MaximumProduct/max(1, y))
		x, ok := rng.Int(src, lo, xHi)
		if !ok {
			return Expr{}, reject(op, ReasonUnsatisfiable, "no x in [%d, %d] keeps x * %d <= %d", lo, xHi, y, cfg.MaximumProduct)
		}
		return Expr{X: x, Op: op, Y: y}, nil

	case OpDiv:
		// A zero divisor is never drawn, even when MinInteger is 0.
		y, ok := rng.Int(src, max(lo, 1), hi)
		if !ok {
			return Expr{}, reject(op, ReasonUnsatisfiable, "empty divisor range [%d, %d]", max(lo, 1), hi)
		}
		qLo, qHi := max(cfg.MinimumQuotient, 1), hi/y
		q, ok := rng.Int(src, qLo, qHi)
		if !ok {
			return Expr{}, reject(op, ReasonUnsatisfiable, "no quotient in [%d, %d] for divisor %d", qLo, qHi, y)
		}
		return Expr{X: q * y, Op: op, Y: y}, nil

	default:
		return Expr{}, fmt.Errorf("%q is not an arithmetic operator", op)
	}
}
