package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flightgraph/pkg/buildinfo"
	"github.com/matzehuels/flightgraph/pkg/errors"
	"github.com/matzehuels/flightgraph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and default file names.
const appName = "flightgraph"

// invalidCountsMessage is printed when the interactive prompt receives
// something that is not an integer.
const invalidCountsMessage = "Please enter a valid integer for both airports and flights."

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// In and Out are the terminal streams used by prompts and status lines.
	In  io.Reader
	Out io.Writer

	// Interactive forces the count prompt on or off. When nil, the prompt
	// runs only if In is a terminal.
	Interactive *bool
}

// New creates a new CLI instance that logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Flightgraph turns synthetic flight data into network graphs",
		Long: `Flightgraph samples synthetic flights between airports, builds an
undirected connectivity graph and draws it either as a static node-link
diagram or as an interactive 3D scene.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// reportUserError prints input-validation failures as a plain message and
// reports whether err was one. Commands return nil after reporting so that
// bad input is not treated as a crash.
func (c *CLI) reportUserError(err error) bool {
	if err == nil || !errors.IsUserError(err) {
		return false
	}
	printError(c.Out, "%s", errors.UserMessage(err))
	return true
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
