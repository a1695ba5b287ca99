package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/config"
)

var (
	cfg        config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "datenorm",
	Short: "Consistent date-string normalization",
	Long: "Parses date strings the same way on every host: plain dates are UTC midnight, " +
		"space-separated date-times are local, ISO 8601 goes to the native parser.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			return nil
		}
		return cfg.LoadFromFile(configPath)
	},
	SilenceUsage: true,
}

func init() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATENORM_DB_URL"), "Postgres connection string (or set DATENORM_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&cfg.Timezone, "tz", "", "IANA timezone for local date-times (default: process local zone)")
	pf.IntVar(&cfg.BatchSize, "batch-size", config.DefaultBatchSize, "Rows per Parquet read")
	pf.StringVar(&configPath, "config", "", "YAML config file (timezone, batch_size, log_format, log_level)")
}
