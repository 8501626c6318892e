package cli

import (
	"context"
	"os"

	"github.com/matzehuels/blockcanvas/pkg/buildinfo"
)

// SetVersion overrides the build information shown by --version.
// Builds normally inject these through ldflags on pkg/buildinfo.
func SetVersion(v, c, d string) {
	if v != "" {
		buildinfo.Version = v
	}
	if c != "" {
		buildinfo.Commit = c
	}
	if d != "" {
		buildinfo.Date = d
	}
}

// Execute runs the blockcanvas CLI with logging to stderr.
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	c := New(os.Stderr, LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}
