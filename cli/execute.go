// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/ghep/config"
)

// Execute runs cmd with args (without the program name) and returns the exit code.
// Failures are reported on the command's error stream, never on stdout.
func Execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(NormalizeArgs(args, cmd.Flags()))
	err := cmd.Execute()
	code := ExitCode(err)
	if err == nil {
		return code
	}

	if errors.Is(err, config.ErrMissingFiles) {
		fmt.Fprintln(cmd.ErrOrStderr(), config.MissingFilesMessage)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", cmd.Name(), err)
	}
	klog.V(1).ErrorS(err, "Command failed", "command", cmd.Name(), "exitCode", code)

	return code
}
