package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/infra/logger"
	"github.com/aalvaropc/unitconv/internal/ui/tui"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	debug     bool
	workspace string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "unitconv",
		Short:        "unitconv, unit conversion for the lab bench",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// Logging is best effort; a read-only workspace must not block conversions.
			cleanup, _ = logger.Setup(logger.Config{
				Root:  findWorkspaceRoot(g.workspace),
				Debug: g.debug,
			})
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g.workspace, false)
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Convert:  ws.convertUseCase(),
				Units:    usecase.NewListUnits(ws.registry),
				Analyze:  usecase.NewAnalyzeRequirements(),
				Mixtures: usecase.NewLoadMixture(ws.mixtures),

				Config:         ws.cfg,
				WorkspaceRoot:  ws.root,
				WorkspaceFound: ws.found,

				Logger: logger.L(),
				Debug:  g.debug,
			}

			return tui.Run(cmd.Context(), deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .unitconv/logs/unitconv.log")
	cmd.PersistentFlags().StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		convertCmd(g),
		analyzeCmd(),
		unitsCmd(),
		mixturesCmd(g),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
