// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

// MissingFilesMessage is printed when a reader driver lacks an input file.
const MissingFilesMessage = "Please provide the `-fileA` and `-fileB` options."

var (
	// ErrUsage indicates a missing or malformed option.
	ErrUsage = errors.New("config: invalid usage")

	// ErrOutOfRange indicates a numeric option outside its domain (ranks < 1, eps_nev < 1, ...).
	ErrOutOfRange = errors.New("config: option value out of range")

	// ErrConfigFile indicates that the -config file could not be read or parsed.
	ErrConfigFile = errors.New("config: cannot read configuration file")

	// ErrMissingFiles indicates that -fileA or -fileB was not given. It is a usage error.
	ErrMissingFiles = fmt.Errorf("config: missing -fileA or -fileB: %w", ErrUsage)
)
