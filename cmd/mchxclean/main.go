// Package main provides the CLI entry point for mchxclean.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hvaclab/mchxclean/pkg/mchxclean"
)

var rootCmd = &cobra.Command{
	Use:   "mchxclean",
	Short: "Consolidate MCHX (Charge-EEV) experimental result workbooks",
	Long: `mchxclean extracts fixed-position values from every worksheet of an
MCHX experimental-results workbook and consolidates them into a single
clean table, emitted as a new single-sheet workbook.

The "clean" subcommand processes a file on disk; "serve" starts a web
front end with upload, progress display, preview and download.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mchxclean.yaml or ~/.config/mchxclean/config.yaml)")
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(serveCmd)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mchxclean")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mchxclean"))
		}
	}

	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("max_upload_bytes", 32<<20)
	viper.SetDefault("output_filename", mchxclean.OutputFilename)
	viper.SetDefault("download_ttl", "10m")

	viper.SetEnvPrefix("MCHXCLEAN")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
