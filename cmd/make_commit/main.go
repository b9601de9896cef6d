// make-commit - commitment generator for commit-reveal coin flips
package main

import (
	"fmt"
	"os"

	"github.com/colorfulnotion/commitreveal/commiterrors"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError prefixes coded errors with Code_Name, e.g. "E1_EntropyUnavailable".
func formatError(err error) string {
	if name := commiterrors.GetErrorCodeWithName(err); name != "" {
		return fmt.Sprintf("make-commit: %s: %v", name, err)
	}
	return fmt.Sprintf("make-commit: %v", err)
}
