package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"todolist/internal/config"
	"todolist/internal/logging"
)

var (
	// persistent flags
	cfgFile    string
	dbPath     string
	storageKey string
	verbose    bool

	appConfig *config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo - a small to-do list for your terminal",
	Long: `todo keeps a single to-do list in a local SQLite file.

Run without a command to open the interactive list: type to filter,
press enter to add what you typed.`,
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.todo/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file (overrides db_path)")
	rootCmd.PersistentFlags().StringVar(&storageKey, "key", "", "Storage key of the list (overrides storage_key)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loads config, applies flag overrides and builds the logger
func initRuntime(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		config.SetConfigFile(cfgFile)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if storageKey != "" {
		cfg.StorageKey = storageKey
	}

	l, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Verbose: verbose,
	})
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = l
	logger.Debug("runtime ready",
		zap.String("command", cmd.Name()),
		zap.String("db", cfg.DBPath),
		zap.String("key", cfg.StorageKey),
	)
	return nil
}
