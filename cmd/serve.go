package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/uthuyomi/ai-workbench/constants/lipgloss"
	"github.com/uthuyomi/ai-workbench/server"
)

// serveCmd: aiwb serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the pipeline over HTTP.",
	Long: `The 'serve' subcommand starts an HTTP server with endpoints for
scanning workspaces, building snapshots, requesting AI proposals, and
managing project records. The server runs until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		handleServeCommand(cmd, rootDependencies)
	},
}

func init() {
	serveCmd.Flags().String("host", "", "The listen host (overrides the configured value).")
	serveCmd.Flags().Int("port", 0, "The listen port (overrides the configured value).")
	rootCmd.AddCommand(serveCmd)
}

func handleServeCommand(cmd *cobra.Command, rootDependencies *RootDependencies) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	serverConfig := rootDependencies.Config.Server
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		serverConfig.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		serverConfig.Port = port
	}

	workspaceStore := openStore(rootDependencies)
	defer workspaceStore.Close()

	httpServer := server.NewServer(
		serverConfig,
		rootDependencies.Scanner,
		rootDependencies.SnapshotBuilder,
		rootDependencies.Analyzer,
		rootDependencies.Workflow,
		workspaceStore,
		rootDependencies.Logger,
	)

	if err := httpServer.Run(ctx); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}
