// Command ex1 solves the generalized eigenproblem A x = λ B x of the 1-D
// finite-element pencil in process: A = tridiag(-1, 2, -1) (stiffness),
// B = tridiag(1/6, 2/3, 1/6) (mass).
//
// Usage:
//
//	ex1 [-n 30] [-ranks 1] [-shift 0] [-eps_nev 1] [-eps_which largest_magnitude]
//	    [-eps_problem_type ghep] [-pairs_label npairs] [-output text] [-v 2]
//
// Output (text):
//
//	niterations=1
//	npairs=1
//	   11.908119  <relative residual>
//
// The exit status is the PETSc error number of the failure (63, 65, 66, 67, 79, 81, 83), or 1.
package main

import (
	"flag"
	"os"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/ghep/cli"
)

func main() {
	klog.InitFlags(nil)
	cmd := cli.NewEx1Command()
	cmd.Flags().AddGoFlagSet(flag.CommandLine)

	code := cli.Execute(cmd, os.Args[1:])
	klog.Flush()
	os.Exit(code)
}
