package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/harjutus/internal/problemgen"
	"github.com/abhisek/harjutus/internal/ui/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Answer generated problems interactively",
	Long: `Generate a batch of problems and answer them one by one on stdin.

Numeric blanks take a number; a blank relation takes one of = > <.
An empty line skips the problem.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")

		batch := generateBatch(loadConfig(cmd), newSource(cmd), count)
		runPreview(cmd.InOrStdin(), styled(cmd.OutOrStdout()), batch.Problems)
		return nil
	},
}

func init() {
	previewCmd.Flags().Int("count", 0, "Number of problems (0 = math_problem_count from config)")
}

// runPreview asks each problem on out, reads answers from in and returns
// the number answered correctly.
func runPreview(in io.Reader, out io.Writer, problems []problemgen.Problem) int {
	scanner := bufio.NewScanner(in)
	total := len(problems)

	fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("%d problems", total)))
	fmt.Fprintln(out)

	var correct int
	for i := range problems {
		p := &problems[i]

		fmt.Fprintf(out, "── Problem %d/%d ──\n", i+1, total)
		fmt.Fprintln(out, theme.Problem(p.Text, problemgen.Placeholder))

		// Read answer.
		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Fprint(out, "(skipped)\n\n")
			continue
		}

		if problemgen.CheckAnswer(answer, p) {
			correct++
			fmt.Fprintln(out, theme.Correct.Render("✓ Correct!"))
		} else {
			fmt.Fprintf(out, "%s Answer: %s\n", theme.Incorrect.Render("✗ Wrong."), p.Answer)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, theme.Card.Render(fmt.Sprintf("Summary: %d/%d correct", correct, total)))
	return correct
}
