// Package config holds the typed configuration of the drivers and fills it
// from command-line flags (pflag), GHEP_* environment variables and an
// optional configuration file (viper).
//
// Precedence, highest first: an explicitly set flag, the environment, the
// configuration file, the flag default. Option names follow the PETSc/SLEPc
// spellings (n, fileA, eps_nev, ...) and are shared by all three sources.
package config
