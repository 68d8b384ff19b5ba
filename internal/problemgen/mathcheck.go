package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/harjutus/internal/config"
)

// MathCheckValidator independently re-evaluates the rendered statement:
// it writes the answer back into the placeholder, parses the text and
// checks that the statement holds. It catches rendering bugs that the
// structural fields alone would not show.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(p *Problem, _ config.Config) *ValidationError {
	statement, err := fill(p.Text, p.Answer)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	ok, err := evaluate(statement)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	if !ok {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%q does not hold", statement),
		}
	}
	return nil
}

// statementRe matches "a op b REL c" and "a op b REL c op d".
var statementRe = regexp.MustCompile(`^(\d+) ([+\-*/]) (\d+) ([=<>]) (\d+)(?: ([+\-*/]) (\d+))?$`)

// fill substitutes value for the single placeholder token of text.
func fill(text, value string) (string, error) {
	toks := strings.Fields(text)
	idx := -1
	for i, tok := range toks {
		if tok == Placeholder {
			if idx >= 0 {
				return "", fmt.Errorf("%q has more than one placeholder", text)
			}
			idx = i
		}
	}
	if idx < 0 {
		return "", fmt.Errorf("%q has no placeholder", text)
	}
	toks[idx] = value
	return strings.Join(toks, " "), nil
}

// evaluate parses a fully filled-in statement and reports whether it is
// true. It fails for text that is not a statement this package renders.
func evaluate(statement string) (bool, error) {
	m := statementRe.FindStringSubmatch(statement)
	if m == nil {
		return false, fmt.Errorf("%q is not a computable statement", statement)
	}

	left, err := evalExpr(m[1], m[2], m[3])
	if err != nil {
		return false, err
	}

	var right int
	if m[6] == "" {
		right, err = strconv.Atoi(m[5])
	} else {
		right, err = evalExpr(m[5], m[6], m[7])
	}
	if err != nil {
		return false, err
	}

	switch Operator(m[4]) {
	case OpEq:
		return left == right, nil
	case OpGt:
		return left > right, nil
	case OpLt:
		return left < right, nil
	default:
		return false, fmt.Errorf("unsupported relation %q", m[4])
	}
}

// evalExpr evaluates one binary expression given as strings. Division must
// be exact.
func evalExpr(aStr, op, bStr string) (int, error) {
	a, err := strconv.Atoi(aStr)
	if err != nil {
		return 0, err
	}
	b, err := strconv.Atoi(bStr)
	if err != nil {
		return 0, err
	}

	switch Operator(op) {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		if a%b != 0 {
			return 0, fmt.Errorf("%d / %d is not exact", a, b)
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("unsupported operator: %s", op)
	}
}
