// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// NormalizeArgs rewrites "-name[=value]" into "--name[=value]" whenever name is
// a long flag registered in fs. Everything after "--" is left alone.
func NormalizeArgs(args []string, fs *pflag.FlagSet) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if len(arg) > 1 && arg[0] == '-' && arg[1] != '-' {
			name, _, _ := strings.Cut(arg[1:], "=")
			if fs.Lookup(name) != nil {
				arg = "-" + arg
			}
		}
		out = append(out, arg)
	}

	return out
}
