package commands

import (
	"fmt"

	"github.com/gittymo/charaph/internal/paint"
	"github.com/gittymo/charaph/internal/render"
)

// PaletteCmd prints the colors entries receive by default, in order.
type PaletteCmd struct {
	Count int `help:"Number of colors to print." default:"12"`
}

func (p *PaletteCmd) Run(ctx *Context) error {
	if p.Count < 0 {
		return fmt.Errorf("count %d: %w", p.Count, paint.ErrInvalidArgument)
	}
	w := ctx.stdout()
	seq := paint.NewHueSequence()
	for i := 0; i < p.Count; i++ {
		hue := seq.Next()
		fill, err := paint.FromHSV(float64(hue), 1, 1)
		if err != nil {
			return err
		}
		swatch := render.Style(fill).Render("██")
		if _, err := fmt.Fprintf(w, "%s %3d° %s\n", swatch, hue, fill); err != nil {
			return err
		}
	}
	return nil
}
