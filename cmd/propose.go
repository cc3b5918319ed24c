package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/uthuyomi/ai-workbench/constants/lipgloss"
	"github.com/uthuyomi/ai-workbench/domain"
	"github.com/uthuyomi/ai-workbench/utils"
)

const proposalTheme = "dracula"

// proposeCmd: aiwb propose
var proposeCmd = &cobra.Command{
	Use:   "propose",
	Short: "Run the full pipeline and print an AI change proposal.",
	Long: `The 'propose' subcommand runs the whole pipeline in one pass: index
the workspace, load the file contents into a snapshot, send the snapshot to
the configured AI provider, and print the returned proposal as a per-file
diff. The proposal is only printed; nothing is applied to the workspace.`,
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		handleProposeCommand(cmd, rootDependencies)
	},
}

func init() {
	proposeCmd.Flags().String("project", "", "The project id the proposal belongs to.")
	proposeCmd.Flags().String("path", "", "The workspace root (defaults to the current directory).")
	proposeCmd.Flags().String("mode", "", "The pipeline mode ('dev' or 'casual'; empty means dev).")
	proposeCmd.Flags().StringSlice("target", nil, "Restrict the snapshot to these relative paths (repeatable).")
	_ = proposeCmd.MarkFlagRequired("project")
	rootCmd.AddCommand(proposeCmd)
}

func handleProposeCommand(cmd *cobra.Command, rootDependencies *RootDependencies) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	projectID, _ := cmd.Flags().GetString("project")
	rootPath, _ := cmd.Flags().GetString("path")
	mode, _ := cmd.Flags().GetString("mode")
	targetPaths, _ := cmd.Flags().GetStringSlice("target")

	if rootPath == "" {
		rootPath = rootDependencies.Cwd
	}
	if len(targetPaths) == 0 {
		targetPaths = nil
	}

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithRemoveWhenDone(true)

	scanSpinner, _ := spinner.Start("Indexing workspace...")
	index, err := rootDependencies.Scanner.Scan(projectID, rootPath)
	if err != nil {
		scanSpinner.Stop()
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
	scanSpinner.Stop()

	snapshot, err := rootDependencies.SnapshotBuilder.Build(index, rootPath, targetPaths)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	proposeSpinner, _ := spinner.Start("Waiting for the AI proposal...")
	diff, err := rootDependencies.Workflow.Execute(ctx, snapshot, mode, nil)
	proposeSpinner.Stop()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	if err := utils.RenderDiff(os.Stdout, diff, proposalTheme); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error rendering proposal: %v", err)))
	}

	fmt.Println(lipgloss.BoxStyle.Render(styledSummary(rootDependencies, diff)))
	rootDependencies.TokenManagement.DisplayTokens(rootDependencies.Config.AIProviderConfig.Model)
}

// styledSummary runs the one-line result summary through the configured
// expression character. An unknown character falls back to plain text.
func styledSummary(rootDependencies *RootDependencies, diff *domain.Diff) string {
	summary := fmt.Sprintf("Proposal covers %d files for project %s", len(diff.Files), diff.ProjectID)

	character, err := rootDependencies.Expressions.Get(rootDependencies.Config.Character)
	if err != nil {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("%v, using plain output", err)))
		return summary
	}
	return character.Format(summary, nil)
}
