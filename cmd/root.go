package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chemiz/chemiz/internal/config"
	"github.com/chemiz/chemiz/internal/store"
)

// defaultDBFlag is the --db value when the flag is given without a path.
const defaultDBFlag = "default"

var rootCmd = &cobra.Command{
	Use:   "chemiz",
	Short: "Chemistry formula self-quiz",
	Long:  "Chemiz: a terminal quiz for memorising chemical names, formulas and structures.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default: ./chemiz.yaml or $XDG_CONFIG_HOME/chemiz/chemiz.yaml)")
	flags.String("db", "", "Path to SQLite journal as --db=PATH (bare --db uses CHEMIZ_DB or the XDG data dir)")
	flags.Lookup("db").NoOptDefVal = defaultDBFlag
	flags.String("dataset", "", "Path to a custom dataset JSON file")
	flags.String("log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and environment, then applies the
// persistent flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{File: file})
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("db") {
		cfg.Store.DB, _ = cmd.Flags().GetString("db")
	}
	if cmd.Flags().Changed("dataset") {
		cfg.Data.Dataset, _ = cmd.Flags().GetString("dataset")
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File, _ = cmd.Flags().GetString("log-file")
	}
	return cfg, nil
}

// resolveDBPath turns the configured journal path into a usable one. An
// empty result means the journal is disabled.
func resolveDBPath(cfg *config.Config) (string, error) {
	switch p := cfg.Store.DB; p {
	case "":
		return "", nil
	case defaultDBFlag:
		return store.DefaultDBPath()
	case ":memory:":
		return p, nil
	default:
		return p, store.EnsureDir(p)
	}
}

// openJournal opens the journal for the maintenance commands, which have
// nothing to do without one.
func openJournal(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	if dbPath == "" {
		return nil, fmt.Errorf("journal disabled: pass --db or set CHEMIZ_STORE_DB")
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
