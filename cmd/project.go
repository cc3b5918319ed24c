package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uthuyomi/ai-workbench/constants/lipgloss"
	"github.com/uthuyomi/ai-workbench/domain"
)

// projectCmd: aiwb project
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage project records in the embedded store.",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a project record.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		description, _ := cmd.Flags().GetString("description")

		workspaceStore := openStore(rootDependencies)
		defer workspaceStore.Close()

		project := domain.NewProject(args[0], description)
		if err := workspaceStore.SaveProject(project); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			os.Exit(1)
		}
		fmt.Println(lipgloss.Green.Render(fmt.Sprintf("Project created: %s", project.ProjectID)))
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List project records.",
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)

		workspaceStore := openStore(rootDependencies)
		defer workspaceStore.Close()

		projects, err := workspaceStore.ListProjects()
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			os.Exit(1)
		}
		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return
		}
		for _, project := range projects {
			fmt.Printf("%s  %s  %s\n", project.ProjectID, project.Name, project.Description)
		}
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete [project-id]",
	Short: "Delete a project record.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)

		workspaceStore := openStore(rootDependencies)
		defer workspaceStore.Close()

		if err := workspaceStore.DeleteProject(args[0]); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			os.Exit(1)
		}
		fmt.Println(lipgloss.Green.Render("Project deleted."))
	},
}

func init() {
	projectCreateCmd.Flags().String("description", "", "A short description of the project.")
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	rootCmd.AddCommand(projectCmd)
}
