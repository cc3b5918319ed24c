package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/uthuyomi/ai-workbench/constants/lipgloss"
	"github.com/uthuyomi/ai-workbench/domain"
)

// scanCmd: aiwb scan
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Index the files under a workspace root.",
	Long: `The 'scan' subcommand walks the workspace root, skips ignored and
hidden entries, hashes every remaining file, and prints the resulting index.
With --analyze the index is enriched with per-file language, imports and
exports. With --save the index is persisted to the embedded store.`,
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		handleScanCommand(cmd, rootDependencies)
	},
}

func init() {
	scanCmd.Flags().String("project", "", "The project id the index belongs to.")
	scanCmd.Flags().String("path", "", "The workspace root to scan (defaults to the current directory).")
	scanCmd.Flags().Bool("analyze", false, "Enrich the index with language, imports and exports.")
	scanCmd.Flags().Bool("save", false, "Persist the index to the embedded store.")
	_ = scanCmd.MarkFlagRequired("project")
	rootCmd.AddCommand(scanCmd)
}

func handleScanCommand(cmd *cobra.Command, rootDependencies *RootDependencies) {
	projectID, _ := cmd.Flags().GetString("project")
	rootPath, _ := cmd.Flags().GetString("path")
	analyze, _ := cmd.Flags().GetBool("analyze")
	save, _ := cmd.Flags().GetBool("save")

	if rootPath == "" {
		rootPath = rootDependencies.Cwd
	}

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithRemoveWhenDone(true)
	scanSpinner, _ := spinner.Start("Scanning workspace...")

	index, err := rootDependencies.Scanner.Scan(projectID, rootPath)
	if err != nil {
		scanSpinner.Stop()
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	if analyze {
		index, err = rootDependencies.Analyzer.Enrich(index, rootPath)
		if err != nil {
			scanSpinner.Stop()
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			os.Exit(1)
		}
	}
	scanSpinner.Stop()

	if save {
		workspaceStore := openStore(rootDependencies)
		defer workspaceStore.Close()
		if err := workspaceStore.SaveIndex(index); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			os.Exit(1)
		}
		fmt.Println(lipgloss.Green.Render("Index saved."))
	}

	summary := fmt.Sprintf("Project: %s\nFiles indexed: %d\nIndex version: %s\nFingerprint: %s",
		index.ProjectID, len(index.Files), index.IndexVersion, domain.Fingerprint(index))
	fmt.Println(lipgloss.BoxStyle.Render(summary))

	for _, file := range index.Files {
		line := fmt.Sprintf("%s  %s", file.Hash[:12], file.Path)
		if file.Language != "" {
			line += fmt.Sprintf("  [%s]", file.Language)
		}
		fmt.Println(line)
	}
}
