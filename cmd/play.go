package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chemiz/chemiz/internal/app"
	"github.com/chemiz/chemiz/internal/config"
	"github.com/chemiz/chemiz/internal/illustration"
	"github.com/chemiz/chemiz/internal/logging"
	"github.com/chemiz/chemiz/internal/quiz"
	"github.com/chemiz/chemiz/internal/screens/home"
	"github.com/chemiz/chemiz/internal/session"
	"github.com/chemiz/chemiz/internal/store"
	"github.com/chemiz/chemiz/internal/substance"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	playCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
}

// content is everything a session needs that comes from configuration.
type content struct {
	dataset   *substance.Dataset
	art       illustration.Provider
	generator *quiz.Generator
	theme     quiz.Theme
	mode      quiz.Mode
}

func loadContent(cfg *config.Config) (*content, error) {
	ds := substance.Default()
	if cfg.Data.Dataset != "" {
		loaded, err := substance.LoadFile(cfg.Data.Dataset)
		if err != nil {
			return nil, err
		}
		ds = loaded
	}

	art, err := illustration.Default(cfg.Data.Illustrations)
	if err != nil {
		return nil, fmt.Errorf("illustrations %s: %w", cfg.Data.Illustrations, err)
	}

	gen, err := quiz.NewGenerator(ds, quiz.DefaultBank(), art, quiz.NewRand(cfg.Quiz.Seed))
	if err != nil {
		return nil, fmt.Errorf("question generator: %w", err)
	}

	// Both parse cleanly: config.Load validated them.
	theme, _ := cfg.Quiz.ParsedTheme()
	mode, _ := cfg.Quiz.ParsedMode()

	return &content{dataset: ds, art: art, generator: gen, theme: theme, mode: mode}, nil
}

// runApp loads configuration, opens the optional journal and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	c, err := loadContent(cfg)
	if err != nil {
		return err
	}

	deps := home.Deps{Dataset: c.dataset, Art: c.art}
	opts := session.Options{
		Source:         c.generator,
		Matcher:        c.dataset.Index(),
		Theme:          c.theme,
		Mode:           c.mode,
		AdvanceConcept: cfg.Quiz.AdvanceConcept,
		Logger:         logger,
	}

	// The journal is optional: the quiz works without it.
	if dbPath, err := resolveDBPath(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Journal not available:", err)
	} else if dbPath != "" {
		st, err := store.Open(dbPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Journal not available:", err)
			fmt.Fprintln(os.Stderr, "History will not be saved.")
		} else {
			defer st.Close()
			deps.Journal = st.EventRepo()
			opts.Recorder = deps.Journal
			logger.Info("journal opened", zap.String("path", dbPath))
		}
	}

	state, err := session.New(opts)
	if err != nil {
		return err
	}
	deps.State = state

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	_, err = app.Run(cmd.Context(), app.Options{
		Home:   deps,
		Splash: !noSplash,
		Logger: logger,
	})
	return err
}
