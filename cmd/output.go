package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"

	"github.com/abhisek/harjutus/internal/dictation"
	"github.com/abhisek/harjutus/internal/problemgen"
	"github.com/abhisek/harjutus/internal/ui/theme"
)

// styled wraps w so ANSI styling is downsampled, or dropped, to what the
// terminal supports.
func styled(w io.Writer) io.Writer {
	return colorprofile.NewWriter(w, os.Environ())
}

// problemRecord is the JSON shape of one problem for a renderer.
type problemRecord struct {
	Text    string              `json:"text"`
	Op      problemgen.Operator `json:"op"`
	Unknown problemgen.Role     `json:"unknown"`
	Answer  string              `json:"answer"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeProblems(w io.Writer, problems []problemgen.Problem, asJSON bool) error {
	if asJSON {
		records := make([]problemRecord, len(problems))
		for i, p := range problems {
			records[i] = problemRecord{Text: p.Text, Op: p.Op, Unknown: p.Unknown, Answer: p.Answer}
		}
		return writeJSON(w, records)
	}

	if len(problems) == 0 {
		_, err := fmt.Fprintln(w, theme.Hint.Render("No problems could be generated for this config."))
		return err
	}
	for i, p := range problems {
		if _, err := fmt.Fprintln(w, theme.Numbered(i+1, theme.Problem(p.Text, problemgen.Placeholder))); err != nil {
			return err
		}
	}
	return nil
}

func writeSentences(w io.Writer, sentences []string, prefs []string, asJSON bool) error {
	if asJSON {
		return writeJSON(w, sentences)
	}

	if len(sentences) == 0 {
		_, err := fmt.Fprintln(w, theme.Hint.Render("No sentences found."))
		return err
	}
	for i, s := range sentences {
		line := theme.Sentence(s, theme.DefaultWrap, dictation.Matches(s, prefs))
		if _, err := fmt.Fprintln(w, theme.Numbered(i+1, line)); err != nil {
			return err
		}
	}
	return nil
}
