package problemgen

import (
	"strconv"
	"strings"
)

// CheckAnswer compares the learner's input against the problem.
// Returns true if the answer is correct.
//
// Normalization rules:
//   - Whitespace is trimmed
//   - For numeric slots leading zeros are ignored ("007" matches "7")
//   - Any number that makes the statement true is accepted, so "_ + 3 > 4"
//     takes every x above 1
//   - For a masked relation the input must be one of = > <
func CheckAnswer(learnerAnswer string, p *Problem) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" {
		return false
	}

	if p.Unknown == RoleOperator {
		return Operator(learnerAnswer).IsComparison() && learnerAnswer == p.Answer
	}

	n, err := strconv.Atoi(learnerAnswer)
	if err != nil || n < 0 {
		return false
	}
	statement, err := fill(p.Text, strconv.Itoa(n))
	if err != nil {
		return false
	}
	ok, err := evaluate(statement)
	return err == nil && ok
}
