package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/harjutus/internal/config"
	"github.com/abhisek/harjutus/internal/logging"
	"github.com/abhisek/harjutus/internal/problemgen"
	"github.com/abhisek/harjutus/internal/rng"
)

var mathCmd = &cobra.Command{
	Use:   "math",
	Short: "Generate a batch of arithmetic problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		asJSON, _ := cmd.Flags().GetBool("json")

		batch := generateBatch(loadConfig(cmd), newSource(cmd), count)

		out := cmd.OutOrStdout()
		if !asJSON {
			out = styled(out)
		}
		return writeProblems(out, batch.Problems, asJSON)
	},
}

func init() {
	mathCmd.Flags().Int("count", 0, "Number of problems (0 = math_problem_count from config)")
	mathCmd.Flags().Bool("json", false, "Print problems as JSON records")
}

// generateBatch runs the generator and logs a short batch.
func generateBatch(cfg config.Config, src rng.Source, count int) *problemgen.Batch {
	gen := problemgen.New(problemgen.DefaultConfig(), problemgen.WithSource(src))
	batch := gen.Generate(cfg, count)
	if batch.Short() {
		logging.WithComponent("math").Info("short batch",
			"batch_id", batch.ID,
			"produced", len(batch.Problems),
			"requested", batch.Requested,
			"attempts", batch.Attempts,
		)
	}
	return batch
}
