package dictation

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Corpus
	}{
		{"empty", "", nil},
		{"blank lines", "\n  \n\t\n", nil},
		{"trims", "  Tere hommikust.  \r\nKoer haugub.\r\n", Corpus{"Tere hommikust.", "Koer haugub."}},
		{"strips tag", "a1|Päike paistab.\nb2 |  Vihma sajab. ", Corpus{"Päike paistab.", "Vihma sajab."}},
		{"keeps later separators", "t|üks|kaks", Corpus{"üks|kaks"}},
		{"drops empty after tag", "tag|\n|  \nLõpp.", Corpus{"Lõpp."}},
		{"untagged line kept whole", "Kass magab.", Corpus{"Kass magab."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text))
		})
	}
}

func TestParse_LineCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < MaxLines+20; i++ {
		fmt.Fprintf(&b, "Lause %d.\n\n", i)
	}

	corpus := Parse(b.String())
	require.Len(t, corpus, MaxLines)
	assert.Equal(t, "Lause 0.", corpus[0])
	assert.Equal(t, fmt.Sprintf("Lause %d.", MaxLines-1), corpus[MaxLines-1])
}

func TestParse_LineCapCountsDroppedLines(t *testing.T) {
	// Overlong lines still use up the line cap.
	long := strings.Repeat("a", MaxLineLength+1)
	text := strings.Repeat(long+"\n", MaxLines) + "Liiga hilja.\n"

	assert.Empty(t, Parse(text))
}

func TestParse_LengthCap(t *testing.T) {
	atLimit := strings.Repeat("õ", MaxLineLength)
	overLimit := strings.Repeat("õ", MaxLineLength+1)

	corpus := Parse("x|" + atLimit + "\n" + overLimit)
	assert.Equal(t, Corpus{atLimit}, corpus)
}

func TestLoad(t *testing.T) {
	corpus, err := Load(strings.NewReader("a|Üks.\nKaks.\n"))
	require.NoError(t, err)
	assert.Equal(t, Corpus{"Üks.", "Kaks."}, corpus)
}

func TestLoad_ReadError(t *testing.T) {
	boom := errors.New("boom")

	_, err := Load(iotest.ErrReader(boom))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "read corpus")
}
