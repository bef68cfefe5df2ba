// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/ghep/builder"
	"github.com/katalvlaran/ghep/config"
	"github.com/katalvlaran/ghep/eigen"
	"github.com/katalvlaran/ghep/matio"
	"github.com/katalvlaran/ghep/matrix"
	"github.com/katalvlaran/ghep/report"
)

// newCommand returns the cobra skeleton shared by the drivers: no positional
// arguments, errors returned to Execute instead of printed, flag errors as
// usage errors.
func newCommand(use, short string, addFlags func(*pflag.FlagSet), run func(cmd *cobra.Command, v *viper.Viper) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd, v)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", config.ErrUsage, err)
	})
	addFlags(cmd.Flags())

	return cmd
}

// noArgs is cobra.NoArgs reported as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return fmt.Errorf("%w: %w", config.ErrUsage, err)
	}

	return nil
}

// NewEx1Command builds A and B in process and solves the eigenproblem.
func NewEx1Command() *cobra.Command {
	return newCommand("ex1", "Generalized Hermitian eigenproblem of the 1-D stiffness/mass pencil",
		config.AddEx1Flags, func(cmd *cobra.Command, v *viper.Viper) error {
			cfg, err := config.LoadEx1(v)
			if err != nil {
				return err
			}
			mopts := []matrix.Option{matrix.WithRanks(cfg.Ranks)}

			a, err := builder.Build(cfg.N, mopts, []builder.BuilderOption{builder.WithShift(cfg.Shift)}, builder.Stiffness())
			if err != nil {
				return fmt.Errorf("ex1: A: %w", err)
			}
			var b *matrix.Sparse
			if cfg.Type == eigen.GHEP || cfg.Type == eigen.ProblemAuto {
				if b, err = builder.BuildRole(cfg.N, builder.RoleMass, mopts...); err != nil {
					return fmt.Errorf("ex1: B: %w", err)
				}
			}
			klog.V(1).InfoS("Operators assembled", "n", cfg.N, "ranks", cfg.Ranks, "problem", cfg.Type, "withB", b != nil)

			return solveAndReport(cmd.OutOrStdout(), a, b, cfg.Solver, cfg.Output)
		})
}

// NewGenerateCommand builds A and B and saves them to -outA and -outB.
func NewGenerateCommand() *cobra.Command {
	return newCommand("gen", "Generate and save the stiffness (A) and mass (B) matrices",
		config.AddGenerateFlags, func(_ *cobra.Command, v *viper.Viper) error {
			cfg, err := config.LoadGenerate(v)
			if err != nil {
				return err
			}
			mopts := []matrix.Option{matrix.WithRanks(cfg.Ranks)}
			bopts := []builder.BuilderOption{builder.WithScale(cfg.Scale)}

			for _, out := range []struct {
				role builder.Role
				path string
			}{{builder.RoleStiffness, cfg.OutA}, {builder.RoleMass, cfg.OutB}} {
				con, err := builder.ForRole(out.role)
				if err != nil {
					return err
				}
				m, err := builder.Build(cfg.N, mopts, bopts, con)
				if err != nil {
					return fmt.Errorf("gen: %v: %w", out.role, err)
				}
				if err = matio.Save(out.path, m, cfg.Format); err != nil {
					return fmt.Errorf("gen: %v: %w", out.role, err)
				}
				klog.V(1).InfoS("Matrix written", "role", out.role, "path", out.path, "format", cfg.Format)
			}

			return nil
		})
}

// NewSolveCommand loads -fileA and -fileB and solves the eigenproblem.
func NewSolveCommand() *cobra.Command {
	return newCommand("solve", "Solve the generalized Hermitian eigenproblem of two saved matrices",
		config.AddSolveFlags, func(cmd *cobra.Command, v *viper.Viper) error {
			cfg, err := config.LoadSolve(v)
			if err != nil {
				return err
			}
			mopts := []matrix.Option{matrix.WithRanks(cfg.Ranks)}

			a, err := matio.Load(cfg.FileA, mopts...)
			if err != nil {
				return fmt.Errorf("solve: A: %w", err)
			}
			var b *matrix.Sparse
			if cfg.Type == eigen.GHEP || cfg.Type == eigen.ProblemAuto {
				if b, err = matio.Load(cfg.FileB, mopts...); err != nil {
					return fmt.Errorf("solve: B: %w", err)
				}
			}
			klog.V(1).InfoS("Operators loaded", "fileA", cfg.FileA, "fileB", cfg.FileB, "problem", cfg.Type, "withB", b != nil)

			return solveAndReport(cmd.OutOrStdout(), a, b, cfg.Solver, cfg.Output)
		})
}

func solveAndReport(w io.Writer, a, b *matrix.Sparse, sc config.Solver, oc config.Output) error {
	s := eigen.NewSolver(sc.Options()...)
	if err := s.SetProblemType(sc.Type); err != nil {
		return err
	}
	var bm mat.Matrix
	if b != nil {
		bm = b
	}
	if err := s.SetOperators(a, bm); err != nil {
		return err
	}
	sol, err := s.Solve()
	if err != nil {
		return err
	}

	return report.New(w, oc.Options()...).Solution(sol)
}
