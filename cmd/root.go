package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/harjutus/internal/config"
	"github.com/abhisek/harjutus/internal/dictation"
	"github.com/abhisek/harjutus/internal/logging"
	"github.com/abhisek/harjutus/internal/rng"
)

const (
	configEnv    = "HARJUTUS_CONFIG"
	sentencesEnv = "HARJUTUS_SENTENCES"

	defaultConfigPath    = "config.json"
	defaultSentencesPath = "sentences.txt"
)

var rootCmd = &cobra.Command{
	Use:   "harjutus",
	Short: "Arithmetic and dictation exercise generator",
	Long: `Harjutus generates fill-in-the-blank arithmetic problems and picks
dictation sentences under the constraints of a config.json file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		logging.Init(cmd.ErrOrStderr(), level)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config.json (overrides "+configEnv+" env var)")
	rootCmd.PersistentFlags().String("sentences", "", "Path to the sentence file (overrides "+sentencesEnv+" env var)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed for reproducible output (0 = random)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides "+logging.EnvVar+")")

	rootCmd.AddCommand(mathCmd)
	rootCmd.AddCommand(dictationCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolvePath returns the --<flag> value (highest priority), then the env
// var, then def.
func resolvePath(cmd *cobra.Command, flag, env, def string) string {
	if p, _ := cmd.Flags().GetString(flag); p != "" {
		return p
	}
	if p := os.Getenv(env); p != "" {
		return p
	}
	return def
}

// loadConfig reads the effective config. A malformed file is logged and
// the defaults are used, the same as when no file exists.
func loadConfig(cmd *cobra.Command) config.Config {
	path := resolvePath(cmd, "config", configEnv, defaultConfigPath)
	logger := logging.WithComponent("config")

	cfg, err := config.Load(path)
	if err != nil {
		var perr *config.PayloadError
		if errors.As(err, &perr) {
			logger.Warn("ignoring invalid config, using defaults", "path", path, "error", perr.Err)
		} else {
			logger.Warn("ignoring config", "path", path, "error", err)
		}
		return cfg
	}
	logger.Debug("config loaded", "path", path)
	return cfg
}

// loadCorpus reads the sentence file.
func loadCorpus(cmd *cobra.Command) (dictation.Corpus, error) {
	path := resolvePath(cmd, "sentences", sentencesEnv, defaultSentencesPath)

	f, err := os.Open(path)
	if err != nil {
		logging.WithComponent("dictation").Warn("could not load sentences", "path", path, "error", err)
		return nil, fmt.Errorf("open sentences: %w", err)
	}
	defer f.Close()

	corpus, err := dictation.Load(f)
	if err != nil {
		logging.WithComponent("dictation").Warn("could not load sentences", "path", path, "error", err)
		return nil, err
	}
	logging.WithComponent("dictation").Debug("corpus loaded", "path", path, "sentences", len(corpus))
	return corpus, nil
}

// newSource returns a seeded source for --seed, else the process source.
func newSource(cmd *cobra.Command) rng.Source {
	if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
		return rng.NewSeeded(seed)
	}
	return rng.Default()
}
