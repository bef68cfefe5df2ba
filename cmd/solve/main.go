// Command solve loads A and B written by gen (or by PETSc MatView) and
// solves A x = λ B x.
//
// Usage:
//
//	solve -fileA A.bin -fileB B.bin [-ranks 1] [-eps_nev 1] [-eps_which largest_magnitude]
//	      [-eps_problem_type ghep] [-pairs_label npairs] [-output text]
//
// Without -fileA or -fileB it prints "Please provide the `-fileA` and `-fileB` options."
// to stderr and exits with status 83.
package main

import (
	"flag"
	"os"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/ghep/cli"
)

func main() {
	klog.InitFlags(nil)
	cmd := cli.NewSolveCommand()
	cmd.Flags().AddGoFlagSet(flag.CommandLine)

	code := cli.Execute(cmd, os.Args[1:])
	klog.Flush()
	os.Exit(code)
}
