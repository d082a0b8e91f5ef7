package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hvaclab/mchxclean/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web front end (upload, progress, preview, download)",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("listen", ":8080", "Listen address")
	_ = viper.BindPFlag("listen_addr", serveCmd.Flags().Lookup("listen"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := server.Config{
		ListenAddr:     viper.GetString("listen_addr"),
		MaxUploadBytes: viper.GetInt64("max_upload_bytes"),
		OutputFilename: viper.GetString("output_filename"),
		DownloadTTL:    viper.GetDuration("download_ttl"),
	}
	return server.New(cfg).Run()
}
