// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/ghep/eigen"
	"github.com/katalvlaran/ghep/matio"
	"github.com/katalvlaran/ghep/report"
)

// Problem is the model problem size.
type Problem struct {
	// N is the matrix dimension. It is not validated here: a non-positive
	// value is rejected when the matrix is created.
	N int
}

// InProcess configures the in-process partitioning.
type InProcess struct {
	Ranks int
}

// Solver configures the eigensolve.
type Solver struct {
	Type  eigen.ProblemType
	Nev   int
	Tol   float64
	Which eigen.Which
}

// Options returns the eigen options equivalent to s.
func (s Solver) Options() []eigen.Option {
	return []eigen.Option{eigen.WithNev(s.Nev), eigen.WithTolerance(s.Tol), eigen.WithWhich(s.Which)}
}

// Output configures the report.
type Output struct {
	Label  report.Label
	Format report.Format
}

// Options returns the report options equivalent to o.
func (o Output) Options() []report.Option {
	return []report.Option{report.WithPairsLabel(o.Label), report.WithFormat(o.Format)}
}

// Ex1 is the configuration of the in-process driver.
type Ex1 struct {
	Problem
	InProcess
	Solver
	Output
	Shift float64
}

// Generate is the configuration of the matrix generator.
type Generate struct {
	Problem
	InProcess
	OutA, OutB string
	Format     matio.Format
	Scale      float64
}

// Solve is the configuration of the file-reading driver.
type Solve struct {
	InProcess
	Solver
	Output
	FileA, FileB string
}

// AddProblemFlags registers -n.
func AddProblemFlags(fs *pflag.FlagSet) {
	fs.Int(KeyN, DefaultN, "matrix dimension")
}

// AddInProcessFlags registers -ranks.
func AddInProcessFlags(fs *pflag.FlagSet) {
	fs.Int(KeyRanks, DefaultRanks, "number of in-process row partitions")
}

// AddSolverFlags registers the -eps_* options.
func AddSolverFlags(fs *pflag.FlagSet) {
	fs.String(KeyProblemType, DefaultProblemType, "problem type: hep, ghep or nhep")
	fs.Int(KeyNev, eigen.DefaultNev, "number of requested eigenpairs")
	fs.Float64(KeyTol, eigen.DefaultTolerance, "tolerance on the relative residual")
	fs.String(KeyWhich, eigen.DefaultWhich.String(),
		"largest_magnitude, smallest_magnitude, largest_real or smallest_real")
}

// AddOutputFlags registers -pairs_label and -output.
func AddOutputFlags(fs *pflag.FlagSet) {
	fs.String(KeyPairsLabel, DefaultPairsLabel, "count label: npairs or neigenpairs")
	fs.String(KeyOutput, DefaultOutput, "report format: text, yaml or json")
}

// AddConfigFlag registers -config.
func AddConfigFlag(fs *pflag.FlagSet) {
	fs.String(KeyConfig, "", "configuration file (yaml, json or toml) with the same keys as the flags")
}

// AddEx1Flags registers every option of the in-process driver.
func AddEx1Flags(fs *pflag.FlagSet) {
	AddProblemFlags(fs)
	AddInProcessFlags(fs)
	AddSolverFlags(fs)
	AddOutputFlags(fs)
	fs.Float64(KeyShift, 0, "diagonal shift added to A")
	AddConfigFlag(fs)
}

// AddGenerateFlags registers every option of the generator.
func AddGenerateFlags(fs *pflag.FlagSet) {
	AddProblemFlags(fs)
	AddInProcessFlags(fs)
	fs.String(KeyOutA, DefaultOutA, "output file of the stiffness matrix A")
	fs.String(KeyOutB, DefaultOutB, "output file of the mass matrix B")
	fs.String(KeyFormat, DefaultFormat, "output encoding: petsc or gonum")
	fs.Float64(KeyScale, 1, "coefficient scale applied to A and B")
	AddConfigFlag(fs)
}

// AddSolveFlags registers every option of the file-reading driver.
func AddSolveFlags(fs *pflag.FlagSet) {
	fs.String(KeyFileA, "", "file holding the matrix A (required)")
	fs.String(KeyFileB, "", "file holding the matrix B (required)")
	AddInProcessFlags(fs)
	AddSolverFlags(fs)
	AddOutputFlags(fs)
	AddConfigFlag(fs)
}

// NewViper layers GHEP_* environment variables and the -config file over fs.
//
// Errors:
//   - ErrConfigFile when -config names an unreadable or malformed file.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("NewViper: %w", err)
	}
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("NewViper(%q): %w: %w", path, ErrConfigFile, err)
		}
	}

	return v, nil
}

// LoadProblem reads Problem from v.
func LoadProblem(v *viper.Viper) Problem {
	return Problem{N: v.GetInt(KeyN)}
}

// LoadInProcess reads InProcess from v. Returns ErrOutOfRange when ranks < 1.
func LoadInProcess(v *viper.Viper) (InProcess, error) {
	ranks := v.GetInt(KeyRanks)
	if ranks < 1 {
		return InProcess{}, fmt.Errorf("-%s=%d: %w", KeyRanks, ranks, ErrOutOfRange)
	}

	return InProcess{Ranks: ranks}, nil
}

// LoadSolver reads Solver from v.
//
// Errors:
//   - ErrUsage for unknown problem type or selection names.
//   - ErrOutOfRange for eps_nev < 1 or an eps_tol that is not finite and positive.
func LoadSolver(v *viper.Viper) (Solver, error) {
	pt, err := eigen.ParseProblemType(v.GetString(KeyProblemType))
	if err != nil {
		return Solver{}, fmt.Errorf("-%s: %w: %w", KeyProblemType, ErrUsage, err)
	}
	which, err := eigen.ParseWhich(v.GetString(KeyWhich))
	if err != nil {
		return Solver{}, fmt.Errorf("-%s: %w: %w", KeyWhich, ErrUsage, err)
	}
	s := Solver{Type: pt, Nev: v.GetInt(KeyNev), Tol: v.GetFloat64(KeyTol), Which: which}
	if s.Nev < 1 {
		return Solver{}, fmt.Errorf("-%s=%d: %w", KeyNev, s.Nev, ErrOutOfRange)
	}
	if !(s.Tol > 0) || math.IsInf(s.Tol, 0) {
		return Solver{}, fmt.Errorf("-%s=%g: %w", KeyTol, s.Tol, ErrOutOfRange)
	}

	return s, nil
}

// LoadOutput reads Output from v. Returns ErrUsage for unknown names.
func LoadOutput(v *viper.Viper) (Output, error) {
	label, err := report.ParseLabel(v.GetString(KeyPairsLabel))
	if err != nil {
		return Output{}, fmt.Errorf("-%s: %w: %w", KeyPairsLabel, ErrUsage, err)
	}
	format, err := report.ParseFormat(v.GetString(KeyOutput))
	if err != nil {
		return Output{}, fmt.Errorf("-%s: %w: %w", KeyOutput, ErrUsage, err)
	}

	return Output{Label: label, Format: format}, nil
}

// LoadEx1 reads the in-process driver configuration.
func LoadEx1(v *viper.Viper) (Ex1, error) {
	ip, err := LoadInProcess(v)
	if err != nil {
		return Ex1{}, fmt.Errorf("LoadEx1: %w", err)
	}
	s, err := LoadSolver(v)
	if err != nil {
		return Ex1{}, fmt.Errorf("LoadEx1: %w", err)
	}
	o, err := LoadOutput(v)
	if err != nil {
		return Ex1{}, fmt.Errorf("LoadEx1: %w", err)
	}

	shift := v.GetFloat64(KeyShift)
	if math.IsNaN(shift) || math.IsInf(shift, 0) {
		return Ex1{}, fmt.Errorf("LoadEx1: -%s=%g: %w", KeyShift, shift, ErrOutOfRange)
	}

	return Ex1{Problem: LoadProblem(v), InProcess: ip, Solver: s, Output: o, Shift: shift}, nil
}

// LoadGenerate reads the generator configuration.
// Returns ErrUsage for an unknown format and ErrOutOfRange for a zero or non-finite scale.
func LoadGenerate(v *viper.Viper) (Generate, error) {
	ip, err := LoadInProcess(v)
	if err != nil {
		return Generate{}, fmt.Errorf("LoadGenerate: %w", err)
	}
	f, err := matio.ParseFormat(v.GetString(KeyFormat))
	if err != nil {
		return Generate{}, fmt.Errorf("LoadGenerate: -%s: %w: %w", KeyFormat, ErrUsage, err)
	}
	g := Generate{
		Problem:   LoadProblem(v),
		InProcess: ip,
		OutA:      v.GetString(KeyOutA),
		OutB:      v.GetString(KeyOutB),
		Format:    f,
		Scale:     v.GetFloat64(KeyScale),
	}
	if g.OutA == "" || g.OutB == "" {
		return Generate{}, fmt.Errorf("LoadGenerate: empty -%s or -%s: %w", KeyOutA, KeyOutB, ErrUsage)
	}
	if g.Scale == 0 || math.IsNaN(g.Scale) || math.IsInf(g.Scale, 0) {
		return Generate{}, fmt.Errorf("LoadGenerate: -%s=%g: %w", KeyScale, g.Scale, ErrOutOfRange)
	}

	return g, nil
}

// LoadSolve reads the file-reading driver configuration. The file check runs
// first, so a missing -fileA or -fileB is reported before anything else.
func LoadSolve(v *viper.Viper) (Solve, error) {
	fileA, fileB := v.GetString(KeyFileA), v.GetString(KeyFileB)
	if fileA == "" || fileB == "" {
		return Solve{}, fmt.Errorf("LoadSolve: %w", ErrMissingFiles)
	}
	ip, err := LoadInProcess(v)
	if err != nil {
		return Solve{}, fmt.Errorf("LoadSolve: %w", err)
	}
	s, err := LoadSolver(v)
	if err != nil {
		return Solve{}, fmt.Errorf("LoadSolve: %w", err)
	}
	o, err := LoadOutput(v)
	if err != nil {
		return Solve{}, fmt.Errorf("LoadSolve: %w", err)
	}

	return Solve{InProcess: ip, Solver: s, Output: o, FileA: fileA, FileB: fileB}, nil
}
