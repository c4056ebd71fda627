// Package preview draws a mesh grid as a wireframe image for debugging.
//
// Only the grid edges and, optionally, the vertex indices are drawn; no page
// content is rendered.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/peyilo/pagemesh"
)

// MaxDimension is the largest width or height, in pixels, Render will
// allocate.
const MaxDimension = 1 << 13

// ErrTooLarge is returned when the image for a grid would exceed
// MaxDimension on either axis.
var ErrTooLarge = errors.New("preview: image too large")

// Options controls how a grid is drawn.
type Options struct {
	// Scale multiplies vertex coordinates to get pixels. Zero means 1.
	Scale float32

	// Margin is the empty border around the mesh, in pixels. It is used as
	// given; negative values mean 0.
	Margin int

	// LineWidth is the edge thickness in pixels. Zero means 1.
	LineWidth float32

	// Labels draws each vertex index next to its vertex.
	Labels bool

	Background color.Color
	Foreground color.Color
	LabelColor color.Color
}

// DefaultOptions returns the options the pagemesh command draws with.
// Render substitutes these for zero Scale, LineWidth and colors; Margin is
// never defaulted.
func DefaultOptions() Options {
	return Options{
		Scale:      1,
		Margin:     8,
		LineWidth:  1,
		Background: color.White,
		Foreground: color.RGBA{R: 0x20, G: 0x60, B: 0xc0, A: 0xff},
		LabelColor: color.RGBA{R: 0xc0, G: 0x20, B: 0x20, A: 0xff},
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Scale <= 0 {
		o.Scale = d.Scale
	}
	if o.Margin < 0 {
		o.Margin = 0
	}
	if o.LineWidth <= 0 {
		o.LineWidth = d.LineWidth
	}
	if o.Background == nil {
		o.Background = d.Background
	}
	if o.Foreground == nil {
		o.Foreground = d.Foreground
	}
	if o.LabelColor == nil {
		o.LabelColor = d.LabelColor
	}
	return o
}

// Render draws the edges of g into a new image sized to fit the grid's
// bounds plus the margin. It returns an error wrapping ErrTooLarge instead
// of allocating an image wider or taller than MaxDimension.
func Render(g *pagemesh.Grid, opts Options) (*image.RGBA, error) {
	o := opts.withDefaults()
	lo, hi := g.Bounds()

	w, err := extent(hi.X-lo.X, o)
	if err != nil {
		return nil, fmt.Errorf("%w: width: %w", ErrTooLarge, err)
	}
	h, err := extent(hi.Y-lo.Y, o)
	if err != nil {
		return nil, fmt.Errorf("%w: height: %w", ErrTooLarge, err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.Background), image.Point{}, draw.Src)

	// px maps a vertex to pixel space.
	px := func(v pagemesh.Vertex) pagemesh.Vertex {
		return pagemesh.Vertex{
			X: (v.X-lo.X)*o.Scale + float32(o.Margin) + 0.5,
			Y: (v.Y-lo.Y)*o.Scale + float32(o.Margin) + 0.5,
		}
	}

	z := vector.NewRasterizer(w, h)
	edges := pagemesh.LineIndices(g.Spec())
	for i := 0; i+1 < len(edges); i += 2 {
		segment(z, px(g.Vertex(int(edges[i]))), px(g.Vertex(int(edges[i+1]))), o.LineWidth)
	}
	z.Draw(img, img.Bounds(), image.NewUniform(o.Foreground), image.Point{})

	if o.Labels {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(o.LabelColor),
			Face: basicfont.Face7x13,
		}
		for i := 0; i < g.Len(); i++ {
			p := px(g.Vertex(i))
			d.Dot = fixed.P(int(p.X)+2, int(p.Y)-2)
			d.DrawString(strconv.Itoa(i))
		}
	}
	return img, nil
}

// extent returns the pixel size of a mesh span of size d, computed in
// float64 so that huge or non-finite spans cannot wrap.
func extent(d float32, o Options) (int, error) {
	px := math.Ceil(float64(d)*float64(o.Scale)) + 2*float64(o.Margin) + 1
	if !(px <= MaxDimension) {
		return 0, fmt.Errorf("%v px exceeds %d", px, MaxDimension)
	}
	return int(px), nil
}

// segment adds a filled quad of the given width covering the line a-b.
func segment(z *vector.Rasterizer, a, b pagemesh.Vertex, width float32) {
	d := b.Sub(a)
	n := pagemesh.Vertex{X: -d.Y, Y: d.X}.Normalize().Mul(width / 2)
	if n == (pagemesh.Vertex{}) {
		return
	}
	z.MoveTo(a.X+n.X, a.Y+n.Y)
	z.LineTo(b.X+n.X, b.Y+n.Y)
	z.LineTo(b.X-n.X, b.Y-n.Y)
	z.LineTo(a.X-n.X, a.Y-n.Y)
	z.ClosePath()
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
