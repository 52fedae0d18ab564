package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/usecase"
)

func mixturesCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "mixtures",
		Short: "Manage mixtures in a workspace",
	}

	c.AddCommand(mixturesListCmd(g), mixturesShowCmd(g))
	return c
}

func mixturesListCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List mixtures",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g.workspace, true)
			if err != nil {
				return err
			}

			refs, err := usecase.NewListMixtures(ws.mixtures).Execute(ws.root)
			if err != nil {
				return err
			}

			if len(refs) == 0 {
				fmt.Println("(no mixtures found)")
				return nil
			}

			fmt.Printf("Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Printf("- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}
}

func mixturesShowCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the components of a mixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ws, err := loadWorkspace(g.workspace, true)
			if err != nil {
				return err
			}

			m, err := usecase.NewLoadMixture(ws.mixtures).Execute(resolveMixtureArg(ws, args[0]))
			if err != nil {
				return err
			}

			fmt.Printf("Mixture: %s\n\n", m.Name)
			for i, c := range m.Context.Components {
				mark := " "
				if i == m.Context.Interest {
					mark = "*"
				}
				fmt.Printf("%s %d. %-12s %g g/mol\n", mark, i+1, c.Name, c.MolarMass)
			}
			return nil
		},
	}
}
