package app

import (
	"fmt"
	"io"
)

// Build metadata, overridden at link time via -ldflags. The defaults
// identify a plain source build.
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit the build was made from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// HasVersionFlag reports whether args asks for version information. It is
// checked before flag parsing so -version works regardless of other flags.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-version", "--version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "seqgen %s (commit %s, built %s)\n", Version, Commit, Date)
}
