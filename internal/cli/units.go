package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/convert"
	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units [family]",
		Short: "List families, or the units of one family",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				printFamilies(os.Stdout)
				return nil
			}

			f, err := domain.ParseFamily(args[0])
			if err != nil {
				return err
			}
			units, err := usecase.NewListUnits(convert.NewRegistry()).Execute(f)
			if err != nil {
				return err
			}
			printUnits(os.Stdout, f, units)
			return nil
		},
	}
}

func printFamilies(w io.Writer) {
	for i, f := range domain.Families {
		fmt.Fprintf(w, "%2d  %-14s %s\n", i+1, f, f.Label())
	}
}

func printUnits(w io.Writer, f domain.Family, units []domain.UnitInfo) {
	fmt.Fprintf(w, "%s units:\n", f.Label())
	for _, u := range units {
		fmt.Fprintf(w, "%2d  %-14s %s\n", u.Code, u.Key, u.Label)
	}
}
