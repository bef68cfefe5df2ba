// Command gen writes the stiffness matrix A and the mass matrix B of the
// 1-D finite-element pencil to disk (PETSc binary by default) and prints nothing.
//
// Usage:
//
//	gen [-n 30] [-ranks 1] [-outA A.bin] [-outB B.bin] [-format petsc|gonum] [-scale 1]
package main

import (
	"flag"
	"os"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/ghep/cli"
)

func main() {
	klog.InitFlags(nil)
	cmd := cli.NewGenerateCommand()
	cmd.Flags().AddGoFlagSet(flag.CommandLine)

	code := cli.Execute(cmd, os.Args[1:])
	klog.Flush()
	os.Exit(code)
}
