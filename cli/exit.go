// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"io"

	"github.com/katalvlaran/ghep/config"
	"github.com/katalvlaran/ghep/eigen"
	"github.com/katalvlaran/ghep/matio"
	"github.com/katalvlaran/ghep/matrix"
)

// Exit codes, numbered after the PETSc error codes of the same condition.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitOutOfRange     = 63 // PETSC_ERR_ARG_OUTOFRANGE
	ExitFileOpen       = 65 // PETSC_ERR_FILE_OPEN
	ExitFileRead       = 66 // PETSC_ERR_FILE_READ
	ExitFileWrite      = 67 // PETSC_ERR_FILE_WRITE
	ExitFileUnexpected = 79 // PETSC_ERR_FILE_UNEXPECTED
	ExitNotSPD         = 81 // PETSC_ERR_MAT_CH_ZRPVT
	ExitUsage          = 83 // PETSC_ERR_USER
)

// exitRules are checked in order; the first matching sentinel wins.
var exitRules = []struct {
	err  error
	code int
}{
	{config.ErrUsage, ExitUsage},
	{config.ErrOutOfRange, ExitOutOfRange},
	{matrix.ErrInvalidDimensions, ExitOutOfRange},
	{matrix.ErrInvalidRank, ExitOutOfRange},
	{config.ErrConfigFile, ExitFileOpen},
	{matio.ErrOpen, ExitFileOpen},
	{matio.ErrWrite, ExitFileWrite},
	{io.ErrUnexpectedEOF, ExitFileRead},
	{matio.ErrUnknownFormat, ExitFileUnexpected},
	{matio.ErrBadHeader, ExitFileUnexpected},
	{matio.ErrCorrupt, ExitFileUnexpected},
	{matio.ErrTooLarge, ExitFileUnexpected},
	{eigen.ErrNotPositiveDefinite, ExitNotSPD},
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	for _, r := range exitRules {
		if errors.Is(err, r.err) {
			return r.code
		}
	}

	return ExitFailure
}
