package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProblem(t *testing.T) {
	tests := []string{
		"4 + 3 = _",
		"_ / 3 = 2",
		"4 + 3 _ 2 + 5",
	}

	for _, text := range tests {
		got := Problem(text, "_")
		assert.Equal(t, text, Plain(got), "Problem(%q)", text)
	}
}

func TestNumbered(t *testing.T) {
	assert.Equal(t, " 3. Kass magab.", Plain(Numbered(3, "Kass magab.")))
	assert.Equal(t, "12. üks\n    kaks", Plain(Numbered(12, "üks\nkaks")))
}

func TestSentence(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("sõna ", 30))

	for _, match := range []bool{false, true} {
		got := Plain(Sentence(long, 20, match))
		for _, line := range strings.Split(got, "\n") {
			assert.LessOrEqual(t, len([]rune(strings.TrimRight(line, " "))), 20, "line %q", line)
		}
		assert.Equal(t, strings.Fields(long), strings.Fields(got))
	}
}

func TestSentence_DefaultWidth(t *testing.T) {
	short := "Päike paistab."
	assert.Equal(t, short, Plain(Sentence(short, 0, false)))
}
