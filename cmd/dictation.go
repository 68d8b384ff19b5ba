package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/harjutus/internal/dictation"
)

var dictationCmd = &cobra.Command{
	Use:   "dictation",
	Short: "Pick sentences for a dictation exercise",
	Long: `Pick dictation sentences from the sentence file.

Lines may be tagged as "tag|sentence"; only the sentence is kept. When
prefer_sentences_with is set in the config, sentences containing one of
those terms are favoured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, _ := cmd.Flags().GetInt("lines")
		asJSON, _ := cmd.Flags().GetBool("json")

		cfg := loadConfig(cmd)
		if lines <= 0 {
			lines = cfg.DictationLines
		}

		corpus, err := loadCorpus(cmd)
		if err != nil {
			return err
		}

		picked := dictation.Select(newSource(cmd), corpus, cfg.PreferSentencesWith, lines)

		out := cmd.OutOrStdout()
		if !asJSON {
			out = styled(out)
		}
		return writeSentences(out, picked, cfg.PreferSentencesWith, asJSON)
	},
}

func init() {
	dictationCmd.Flags().Int("lines", 0, "Number of sentences (0 = dictation_lines from config)")
	dictationCmd.Flags().Bool("json", false, "Print sentences as a JSON array")
}
