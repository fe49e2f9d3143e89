package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fpgroup/coset"
	"github.com/katalvlaran/fpgroup/group"
	"github.com/katalvlaran/fpgroup/internal/render"
)

// NewEnumerateCommand creates the enumerate command.
func NewEnumerateCommand() *cobra.Command {
	var (
		generators []string
		relators   []string
	)

	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Enumerate a finitely presented group",
		Long: `Run coset enumeration on <generators | relators> and print the group
elements with their multiplication table.`,
		Example: `  fpgroup enumerate -g a,b -r 'a^2' -r 'b^2' -r '(a*b)^2'
  fpgroup enumerate -g r,s -r 'r^4' -r 's^2' -r 's r s = R' -o json
  fpgroup enumerate -g a,b -r 'a^2' -r 'b^3' -r '(a b)^5' --max-cosets 500`,
		Aliases: []string{"enum"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEnumerate(cmd, generators, relators)
		},
	}

	cmd.Flags().StringSliceVarP(&generators, "generators", "g", nil, "Generator names, comma separated")
	cmd.Flags().StringArrayVarP(&relators, "relators", "r", nil, "Relator, repeat for each one")
	_ = cmd.MarkFlagRequired("generators")

	return cmd
}

func runEnumerate(cmd *cobra.Command, generators, relators []string) error {
	cfg := GetConfig(cmd.Context())
	logger := GetLogger(cmd.Context())

	ctx := cmd.Context()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	p, err := group.NewPresentation(generators, relators)
	if err != nil {
		return err
	}
	logger.Debug("enumerating", "presentation", p.String(), "max_cosets", cfg.MaxCosets)

	g, err := p.Enumerate(ctx, cfg.CosetOptions()...)
	if err != nil {
		var tm *coset.TooManyCosetsError
		if errors.As(err, &tm) {
			return fmt.Errorf("%w (raise --max-cosets if the group is finite)", err)
		}
		return err
	}

	st := g.Stats()
	logger.Debug("enumeration done",
		"order", g.Order(),
		"defined", st.Defined,
		"deductions", st.Deductions,
		"coincidences", st.Coincidences,
		"max_live", st.MaxLive,
	)

	return render.Group(cmd.OutOrStdout(), g, cfg.Output)
}
