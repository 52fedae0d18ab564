package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/convert/concentration"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <from> <to>",
		Short: "Show which parameters a concentration conversion needs",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, a := range args {
				if _, err := concentration.ParseUnit(a); err != nil {
					return err
				}
			}
			req := usecase.NewAnalyzeRequirements().Execute(args[0], args[1])
			printRequirement(os.Stdout, req)
			return nil
		},
	}
}

func printRequirement(w io.Writer, r concentration.Requirement) {
	if !r.Any() {
		fmt.Fprintln(w, "no additional parameters required")
		return
	}
	if r.MolarMass {
		fmt.Fprintln(w, "- molar mass (g/mol): --molar-mass or --substance")
	}
	if r.Density {
		fmt.Fprintln(w, "- solution density (g/mL): --density")
	}
	if r.Mixture {
		fmt.Fprintln(w, "- mixture composition: --mixture and --component")
	}
}
