package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/uthuyomi/ai-workbench/constants/lipgloss"
)

// snapshotCmd: aiwb snapshot
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Build a content snapshot from a fresh workspace index.",
	Long: `The 'snapshot' subcommand scans the workspace root and loads the
content of the indexed files into a snapshot. With --target the snapshot is
restricted to the named paths; indexed files that vanished or turned binary
between the scan and the read are skipped.`,
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		handleSnapshotCommand(cmd, rootDependencies)
	},
}

func init() {
	snapshotCmd.Flags().String("project", "", "The project id the snapshot belongs to.")
	snapshotCmd.Flags().String("path", "", "The workspace root (defaults to the current directory).")
	snapshotCmd.Flags().StringSlice("target", nil, "Restrict the snapshot to these relative paths (repeatable).")
	_ = snapshotCmd.MarkFlagRequired("project")
	rootCmd.AddCommand(snapshotCmd)
}

func handleSnapshotCommand(cmd *cobra.Command, rootDependencies *RootDependencies) {
	projectID, _ := cmd.Flags().GetString("project")
	rootPath, _ := cmd.Flags().GetString("path")
	targetPaths, _ := cmd.Flags().GetStringSlice("target")

	if rootPath == "" {
		rootPath = rootDependencies.Cwd
	}
	if len(targetPaths) == 0 {
		targetPaths = nil
	}

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithRemoveWhenDone(true)
	buildSpinner, _ := spinner.Start("Building snapshot...")

	index, err := rootDependencies.Scanner.Scan(projectID, rootPath)
	if err != nil {
		buildSpinner.Stop()
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	snapshot, err := rootDependencies.SnapshotBuilder.Build(index, rootPath, targetPaths)
	if err != nil {
		buildSpinner.Stop()
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
	buildSpinner.Stop()

	totalBytes := 0
	for _, file := range snapshot.Files {
		totalBytes += len(file.Content)
	}

	summary := fmt.Sprintf("Project: %s\nFiles captured: %d\nTotal content: %d bytes",
		snapshot.ProjectID, len(snapshot.Files), totalBytes)
	fmt.Println(lipgloss.BoxStyle.Render(summary))

	for _, file := range snapshot.Files {
		fmt.Printf("%8d  %s\n", len(file.Content), file.Path)
	}
}
