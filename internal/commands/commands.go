package commands

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
)

type Context struct {
	Timeout time.Duration
	Logger  *zap.Logger
	// Stdout receives command output; nil means os.Stdout.
	Stdout io.Writer
}

func (c *Context) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *Context) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

var Cli struct {
	Timeout time.Duration `help:"Timeout for Prometheus queries." default:"60s"`
	Verbose bool          `help:"Log debug output to stderr." short:"v"`

	Render  RenderCmd  `cmd:"" help:"Render a YAML or JSON data set as a bar chart."`
	Query   QueryCmd   `cmd:"" help:"Chart the result of an instant query."`
	View    ViewCmd    `cmd:"" help:"Browse a data set interactively."`
	Palette PaletteCmd `cmd:"" help:"Print the default color sequence."`
}
