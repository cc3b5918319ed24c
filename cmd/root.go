package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uthuyomi/ai-workbench/analysis"
	analysisContracts "github.com/uthuyomi/ai-workbench/analysis/contracts"
	"github.com/uthuyomi/ai-workbench/config"
	"github.com/uthuyomi/ai-workbench/constants/lipgloss"
	"github.com/uthuyomi/ai-workbench/engine"
	engineContracts "github.com/uthuyomi/ai-workbench/engine/contracts"
	"github.com/uthuyomi/ai-workbench/expression"
	"github.com/uthuyomi/ai-workbench/logging"
	"github.com/uthuyomi/ai-workbench/providers"
	providerContracts "github.com/uthuyomi/ai-workbench/providers/contracts"
	"github.com/uthuyomi/ai-workbench/store"
	storeContracts "github.com/uthuyomi/ai-workbench/store/contracts"
	"github.com/uthuyomi/ai-workbench/token_management"
	tokenContracts "github.com/uthuyomi/ai-workbench/token_management/contracts"
	"github.com/uthuyomi/ai-workbench/workspace"
	workspaceContracts "github.com/uthuyomi/ai-workbench/workspace/contracts"
)

// RootDependencies holds the wired collaborators shared by all
// subcommands. Everything is constructed once in handleRootCommand.
type RootDependencies struct {
	Cwd                 string
	Config              *config.Config
	Logger              *zap.Logger
	Scanner             workspaceContracts.IWorkspaceScanner
	SnapshotBuilder     workspaceContracts.ISnapshotBuilder
	Analyzer            analysisContracts.ICodeAnalyzer
	Workflow            engineContracts.IWorkflow
	CurrentChatProvider providerContracts.IChatAIProvider
	TokenManagement     tokenContracts.ITokenManagement
	Expressions         *expression.Registry
}

// rootCmd: aiwb
var rootCmd = &cobra.Command{
	Use:   "aiwb",
	Short: "aiwb scans a workspace, snapshots its files, and asks an AI for a change proposal.",
	Long: `aiwb is a workspace assistant built around a four stage pipeline:
index the files under a root, load their content into a snapshot, send the
snapshot to an AI provider, and package the response into a diff proposal.`,
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
			fmt.Println(config.DefaultConfig.Version)
			return
		}
		_ = cmd.Help()
	},
}

// handleRootCommand loads configuration and wires every collaborator.
func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		os.Exit(1)
	}

	cfg := config.LoadConfigs(cmd.Root(), cwd)

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error initializing logger: %v", err)))
		os.Exit(1)
	}

	tokenManagement := token_management.NewTokenManager()

	chatProvider, err := providers.ChatProviderFactory(cfg.AIProviderConfig, tokenManagement)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error initializing chat provider: %v", err)))
		os.Exit(1)
	}

	scanner := workspace.NewWorkspaceScanner(logger)
	snapshotBuilder := workspace.NewSnapshotBuilder(logger)
	analyzer := analysis.NewCodeAnalyzer(logger)

	promptBuilder := engine.NewPromptBuilder()
	devEngine := engine.NewDevEngine(chatProvider, promptBuilder, snapshotBuilder, logger)
	workflow := engine.NewWorkflow(engine.NewModeRouter(logger), devEngine, logger)

	return &RootDependencies{
		Cwd:                 cwd,
		Config:              cfg,
		Logger:              logger,
		Scanner:             scanner,
		SnapshotBuilder:     snapshotBuilder,
		Analyzer:            analyzer,
		Workflow:            workflow,
		CurrentChatProvider: chatProvider,
		TokenManagement:     tokenManagement,
		Expressions:         expression.NewDefaultRegistry(),
	}
}

// openStore opens the embedded store configured for this run. Only the
// subcommands that persist or read records call it; the pipeline itself
// never needs it.
func openStore(deps *RootDependencies) storeContracts.IWorkspaceStore {
	workspaceStore, err := store.NewBadgerStore(deps.Config.Store, deps.Logger)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error opening store: %v", err)))
		os.Exit(1)
	}
	return workspaceStore
}

func init() {
	config.InitFlags(rootCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}
