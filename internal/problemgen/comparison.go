package problemgen

import (
	"github.com/abhisek/harjutus/internal/config"
	"github.com/abhisek/harjutus/internal/rng"
)

// ComplexComparisonProbability is the share of comparison problems that
// compare two expressions instead of an expression and a constant.
const ComplexComparisonProbability = 0.25

// comparisonSides are the operators used inside comparison statements.
var comparisonSides = []Operator{OpAdd, OpSub}

func synthesizeComparison(src rng.Source, op Operator, cfg config.Config) (Problem, error) {
	if rng.Chance(src, ComplexComparisonProbability) {
		return synthesizeComplex(src, op, cfg)
	}
	return synthesizeSimple(src, op, cfg)
}

// synthesizeComplex builds "a op b REL c op d". The requested relation is
// ignored: the displayed relation is inferred from the two sides before
// any slot is masked, so masking the operator asks for the true relation.
func synthesizeComplex(src rng.Source, requested Operator, cfg config.Config) (Problem, error) {
	leftOp := rng.Choice(src, comparisonSides)
	rightOp := rng.Choice(src, comparisonSides)

	left, err := drawExpr(src, leftOp, cfg)
	if err != nil {
		return Problem{}, asComparison(err, requested)
	}
	right, err := drawExpr(src, rightOp, cfg)
	if err != nil {
		return Problem{}, asComparison(err, requested)
	}

	p := Problem{
		Kind:    KindComplexComparison,
		Op:      relate(left.Value(), right.Value()),
		Left:    left,
		Right:   &right,
		Unknown: rng.Choice(src, Roles(KindComplexComparison)),
	}
	return p.masked()
}

// synthesizeSimple builds "x op y REL c" where the constant c is chosen so
// that REL holds.
func synthesizeSimple(src rng.Source, rel Operator, cfg config.Config) (Problem, error) {
	lo, hi := cfg.MinInteger, cfg.MaxInteger
	side := rng.Choice(src, comparisonSides)

	e, err := drawExpr(src, side, cfg)
	if err != nil {
		return Problem{}, asComparison(err, rel)
	}
	result := e.Value()

	var c int
	switch rel {
	case OpEq:
		c = result
	case OpGt:
		cLo := max(lo, result-(hi-lo))
		var ok bool
		if c, ok = rng.Int(src, cLo, result-1); !ok {
			return Problem{}, reject(rel, ReasonUnsatisfiable, "no constant in [%d, %d] below %s", cLo, result-1, e)
		}
	case OpLt:
		cHi := min(2*hi, result+(hi-lo))
		var ok bool
		if c, ok = rng.Int(src, result+1, cHi); !ok {
			return Problem{}, reject(rel, ReasonUnsatisfiable, "no constant in [%d, %d] above %s", result+1, cHi, e)
		}
	}

	roles := Roles(KindSimpleComparison)
	if side == OpSub && !subtrahendMaskable(rel, e.X, c, lo, hi) {
		roles = without(roles, RoleY)
	}
	if len(roles) == 0 {
		return Problem{}, reject(rel, ReasonUnsatisfiable, "no maskable role for %s %s %d", e, rel, c)
	}

	p := Problem{
		Kind:    KindSimpleComparison,
		Op:      rel,
		Left:    e,
		Value:   c,
		Unknown: rng.Choice(src, roles),
	}
	return p.masked()
}

// subtrahendMaskable reports whether "x - _ REL c" leaves the learner a
// subtrahend inside [lo, hi]. For ">" the answer must stay below x - c,
// for "<" above it.
func subtrahendMaskable(rel Operator, x, c, lo, hi int) bool {
	switch rel {
	case OpGt:
		return x-c > lo
	case OpLt:
		return x-c < hi
	default:
		return true
	}
}

// relate returns the relation that holds between a and b.
func relate(a, b int) Operator {
	switch {
	case a == b:
		return OpEq
	case a > b:
		return OpGt
	default:
		return OpLt
	}
}

func without(roles []Role, r Role) []Role {
	out := make([]Role, 0, len(roles))
	for _, x := range roles {
		if x != r {
			out = append(out, x)
		}
	}
	return out
}

// asComparison re-labels a sub-expression rejection with the comparison
// operator that was requested, so batch diagnostics count it there.
func asComparison(err error, op Operator) error {
	if r, ok := err.(*Rejection); ok {
		return &Rejection{Op: op, Reason: r.Reason, Detail: r.Detail}
	}
	return err
}
