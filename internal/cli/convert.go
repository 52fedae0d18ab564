package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

type convertFlags struct {
	molarMass float64
	density   float64
	mixture   string
	component string
	substance string
	format    string
	locale    string
	precision int
}

func convertCmd(g *globalFlags) *cobra.Command {
	var f convertFlags

	c := &cobra.Command{
		Use:   "convert <family> <from> <to> <quantity>",
		Short: "Convert a quantity between two units of a family",
		Long: `Convert a quantity between two units of a family.

Families and units accept names, aliases or the numeric codes listed by
"unitconv units". Concentration conversions may need a molar mass (g/mol),
a solution density (g/mL) or a mixture; "unitconv analyze" tells which.`,
		Example: `  unitconv convert concentration molarity g_l 2 --molar-mass 58.44
  unitconv convert 3 1 9 2 --substance nacl
  unitconv convert concentration mass_fraction mole_fraction 0.5 --mixture water:18,nacl:58.44 --component nacl
  unitconv convert temperature f c 212`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(g.workspace, false)
			if err != nil {
				return err
			}

			req, err := buildConvertRequest(cmd, ws, f, args)
			if err != nil {
				return err
			}

			res, err := ws.convertUseCase().Execute(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := outputOptions{
				Format:    ws.cfg.Output.Format,
				Locale:    ws.cfg.Output.Locale,
				Precision: ws.cfg.Output.Precision,
			}
			if cmd.Flags().Changed("format") {
				out.Format = f.format
			}
			if cmd.Flags().Changed("locale") {
				out.Locale = f.locale
			}
			if cmd.Flags().Changed("precision") {
				out.Precision = f.precision
			}
			return printResult(cmd.OutOrStdout(), res, out)
		},
	}

	c.Flags().Float64Var(&f.molarMass, "molar-mass", 0, "Solute molar mass in g/mol")
	c.Flags().Float64Var(&f.density, "density", 0, "Solution density in g/mL")
	c.Flags().StringVar(&f.mixture, "mixture", "", "Mixture name, path, or inline list name:mm,name:mm")
	c.Flags().StringVar(&f.component, "component", "", "Component of interest (name or 1-based index)")
	c.Flags().StringVar(&f.substance, "substance", "", "Take the molar mass from the workspace substance catalog")
	c.Flags().StringVar(&f.format, "format", "pretty", "Output format: pretty|json")
	c.Flags().StringVar(&f.locale, "locale", "en", "Locale used to print numbers (e.g. en, es, de)")
	c.Flags().IntVar(&f.precision, "precision", 6, "Decimals printed for ordinary magnitudes")
	return c
}

func buildConvertRequest(cmd *cobra.Command, ws *workspaceCtx, f convertFlags, args []string) (usecase.ConvertRequest, error) {
	family, err := domain.ParseFamily(args[0])
	if err != nil {
		return usecase.ConvertRequest{}, err
	}

	q, err := domain.ParseQuantity(args[3])
	if err != nil {
		return usecase.ConvertRequest{}, err
	}

	req := usecase.ConvertRequest{
		ConversionRequest: domain.ConversionRequest{
			Family:   family,
			From:     args[1],
			To:       args[2],
			Quantity: q,
		},
		Substance: strings.TrimSpace(f.substance),
		Component: strings.TrimSpace(f.component),
	}

	// Zero is a meaningful (invalid) input, so presence is decided by the flag.
	if cmd.Flags().Changed("molar-mass") {
		mm := f.molarMass
		req.MolarMass = &mm
	}
	if cmd.Flags().Changed("density") {
		d := f.density
		req.Density = &d
	}

	if m := strings.TrimSpace(f.mixture); m != "" {
		if domain.LooksInline(m) {
			comps, err := domain.ParseComponents(m)
			if err != nil {
				return usecase.ConvertRequest{}, err
			}
			req.Mixture = &domain.MixtureContext{Components: comps}
		} else {
			req.MixtureRef = resolveMixtureArg(ws, m)
		}
	}

	return req, nil
}
