package report

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// WritePNG renders the chart at the configured size and DPI and writes
// it to w as PNG.
func (c *Chart) WritePNG(w io.Writer) error {
	canvas := vgimg.NewWith(
		vgimg.UseWH(c.Config.Width, c.Config.Height),
		vgimg.UseDPI(c.Config.DPI),
	)
	c.Plot.Draw(draw.New(canvas))
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(w); err != nil {
		return errors.Wrap(err, "encode png")
	}
	return nil
}

// SavePNG writes the chart to path. The image is encoded in memory first
// so a failed render never leaves a partial file behind.
func (c *Chart) SavePNG(path string) error {
	buf := new(bytes.Buffer)
	if err := c.WritePNG(buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write chart to %q", path)
	}
	return nil
}
