// SPDX-License-Identifier: MIT

package config

// Option keys. Each is a flag name, a viper key and, upper-cased behind
// EnvPrefix, an environment variable (GHEP_EPS_NEV, GHEP_FILEA, ...).
const (
	KeyN           = "n"
	KeyRanks       = "ranks"
	KeyShift       = "shift"
	KeyScale       = "scale"
	KeyFileA       = "fileA"
	KeyFileB       = "fileB"
	KeyOutA        = "outA"
	KeyOutB        = "outB"
	KeyFormat      = "format"
	KeyProblemType = "eps_problem_type"
	KeyNev         = "eps_nev"
	KeyTol         = "eps_tol"
	KeyWhich       = "eps_which"
	KeyPairsLabel  = "pairs_label"
	KeyOutput      = "output"
	KeyConfig      = "config"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "GHEP"

// Defaults.
const (
	DefaultN           = 30
	DefaultRanks       = 1
	DefaultOutA        = "A.bin"
	DefaultOutB        = "B.bin"
	DefaultFormat      = "petsc"
	DefaultProblemType = "ghep"
	DefaultPairsLabel  = "npairs"
	DefaultOutput      = "text"
)
