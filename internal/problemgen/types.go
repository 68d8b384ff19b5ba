package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Placeholder is the token shown in place of the masked slot.
const Placeholder = "_"

// Operator is an arithmetic operator or a relation symbol.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"

	OpEq Operator = "="
	OpGt Operator = ">"
	OpLt Operator = "<"
)

// ArithmeticOperators returns the four arithmetic operators.
func ArithmeticOperators() []Operator {
	return []Operator{OpAdd, OpSub, OpMul, OpDiv}
}

// ComparisonOperators returns the relation symbols of the comparison family.
func ComparisonOperators() []Operator {
	return []Operator{OpEq, OpGt, OpLt}
}

// IsArithmetic reports whether o is one of + - * /.
func (o Operator) IsArithmetic() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// IsComparison reports whether o is one of = > <.
func (o Operator) IsComparison() bool {
	switch o {
	case OpEq, OpGt, OpLt:
		return true
	}
	return false
}

// Kind distinguishes the three statement shapes.
type Kind string

const (
	// KindArithmetic is "x op y = z".
	KindArithmetic Kind = "arithmetic"

	// KindSimpleComparison is "x op y REL c" for a constant c.
	KindSimpleComparison Kind = "simple_comparison"

	// KindComplexComparison is "x op y REL a op b".
	KindComplexComparison Kind = "complex_comparison"
)

// Role names the masked slot of a problem. The set of valid roles depends
// on the problem's Kind; see Roles.
type Role string

const (
	RoleX        Role = "x"
	RoleY        Role = "y"
	RoleZ        Role = "z"
	RoleOperator Role = "operator"
	RoleLeftX    Role = "leftX"
	RoleLeftY    Role = "leftY"
	RoleRightA   Role = "rightA"
	RoleRightB   Role = "rightB"
)

// Roles returns the maskable roles for a kind, in display order.
func Roles(k Kind) []Role {
	switch k {
	case KindArithmetic:
		return []Role{RoleX, RoleY, RoleZ}
	case KindSimpleComparison:
		return []Role{RoleX, RoleY, RoleOperator}
	case KindComplexComparison:
		return []Role{RoleLeftX, RoleLeftY, RoleRightA, RoleRightB, RoleOperator}
	default:
		return nil
	}
}

// Expr is a binary arithmetic expression over two operands.
type Expr struct {
	X  int      `json:"x"`
	Op Operator `json:"op"`
	Y  int      `json:"y"`
}

// Value evaluates e. Division is integer division; the synthesizer only
// builds exact quotients.
func (e Expr) Value() int {
	switch e.Op {
	case OpAdd:
		return e.X + e.Y
	case OpSub:
		return e.X - e.Y
	case OpMul:
		return e.X * e.Y
	case OpDiv:
		if e.Y == 0 {
			return 0
		}
		return e.X / e.Y
	default:
		return 0
	}
}

func (e Expr) String() string {
	return fmt.Sprintf("%d %s %d", e.X, e.Op, e.Y)
}

// Problem is one generated fill-in-the-blank exercise. Problems are
// immutable once returned by the synthesizer.
type Problem struct {
	Kind Kind `json:"kind"`

	// Op is the arithmetic operator for KindArithmetic and the displayed
	// relation for comparisons. For complex comparisons the relation is the
	// one that actually holds between the two sides.
	Op Operator `json:"op"`

	// Left is the (first) arithmetic expression. For KindArithmetic it is
	// "x op y"; for division X is the dividend.
	Left Expr `json:"left"`

	// Right is the second expression of a complex comparison, nil otherwise.
	Right *Expr `json:"right,omitempty"`

	// Value is z for KindArithmetic and the constant of a simple
	// comparison. It is zero for complex comparisons.
	Value int `json:"value"`

	// Unknown is the masked role.
	Unknown Role `json:"unknown"`

	// Text is the rendered statement with the masked slot shown as
	// Placeholder, e.g. "7 + _ = 12".
	Text string `json:"text"`

	// Answer is the masked slot's true content: a number, or a relation
	// symbol when Unknown is RoleOperator.
	Answer string `json:"answer"`
}

// tokens lays out the unmasked statement.
func (p Problem) tokens() []string {
	left := []string{strconv.Itoa(p.Left.X), string(p.Left.Op), strconv.Itoa(p.Left.Y)}
	switch p.Kind {
	case KindArithmetic:
		return append(left, string(OpEq), strconv.Itoa(p.Value))
	case KindSimpleComparison:
		return append(left, string(p.Op), strconv.Itoa(p.Value))
	case KindComplexComparison:
		right := Expr{}
		if p.Right != nil {
			right = *p.Right
		}
		return append(left, string(p.Op), strconv.Itoa(right.X), string(right.Op), strconv.Itoa(right.Y))
	default:
		return nil
	}
}

// slot returns the token index of the masked role, or -1 when the role is
// not valid for the problem's kind.
func (p Problem) slot() int {
	switch p.Kind {
	case KindArithmetic:
		switch p.Unknown {
		case RoleX:
			return 0
		case RoleY:
			return 2
		case RoleZ:
			return 4
		}
	case KindSimpleComparison:
		switch p.Unknown {
		case RoleX:
			return 0
		case RoleY:
			return 2
		case RoleOperator:
			return 3
		}
	case KindComplexComparison:
		switch p.Unknown {
		case RoleLeftX:
			return 0
		case RoleLeftY:
			return 2
		case RoleOperator:
			return 3
		case RoleRightA:
			return 4
		case RoleRightB:
			return 6
		}
	}
	return -1
}

// masked fills in Text and Answer from the structural fields.
func (p Problem) masked() (Problem, error) {
	toks := p.tokens()
	i := p.slot()
	if i < 0 || i >= len(toks) {
		return Problem{}, fmt.Errorf("role %q is not valid for %s problems", p.Unknown, p.Kind)
	}
	p.Answer = toks[i]
	toks[i] = Placeholder
	p.Text = strings.Join(toks, " ")
	return p, nil
}
