package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ipma-mcp/internal/config"
	"ipma-mcp/internal/dispatch"
	"ipma-mcp/internal/logger"
	"ipma-mcp/internal/server"
	"ipma-mcp/services/ipma"
)

// version is overridable at build time via -ldflags.
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:          "ipma-mcp",
		Short:        "MCP stdio server for the IPMA open-data API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	logger.Info("starting ipma-mcp", "version", version, "base_url", cfg.BaseURL)

	client := ipma.NewClient(cfg)
	dispatcher := dispatch.New(client)

	if err := server.Serve(server.New(dispatcher, version)); err != nil {
		logger.Error("server stopped", "error", err)
		return err
	}

	logger.Info("shutdown complete")
	return nil
}
