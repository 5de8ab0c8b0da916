package internal

import (
	"os"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// This is for debugging purposes only

// Padding around the mesh so the base triangles stay visible
const dbgDrawPadding = 40

// Draw renders the mesh, the constraints and the advancing front. Interior
// triangles are filled once the sweep has run.
func (c *CDT) Draw(scale float64) *gg.Context {
	bounds := r2.RectFromPoints(c.baseLeft.Vec(), c.baseRight.Vec())
	for _, p := range c.input {
		bounds = bounds.AddPoint(p.Vec())
	}
	minX, minY := bounds.Lo().X, bounds.Lo().Y
	size := bounds.Size()

	width := int(scale*size.X) + dbgDrawPadding*2
	height := int(scale*size.Y) + dbgDrawPadding*2
	dc := gg.NewContext(width, height)
	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	// Maps mesh coordinates to the image, with the origin at the bottom left
	transform := func(p *Point) (float64, float64) {
		return dbgDrawPadding + scale*(p.X-minX), float64(height) - dbgDrawPadding - scale*(p.Y-minY)
	}
	path := func(points ...*Point) {
		dc.NewSubPath()
		for _, p := range points {
			dc.LineTo(transform(p))
		}
		dc.ClosePath()
	}

	if c.swept {
		dc.SetRGBA(0.3, 0.2, 1, 0.5)
		for _, id := range c.interior {
			t := c.mesh.Get(id)
			path(t.Points[:]...)
		}
		dc.Fill()
	}

	dc.SetLineWidth(1)
	for _, id := range c.mesh.Live() {
		t := c.mesh.Get(id)
		for i := 0; i < 3; i++ {
			a, b := t.Edge(i)
			ax, ay := transform(a)
			bx, by := transform(b)
			dc.DrawLine(ax, ay, bx, by)
			if t.Constrained[i] {
				dc.SetRGB(1, 1, 0)
				dc.SetLineWidth(3)
			} else {
				dc.SetRGB(0, 1, 0)
				dc.SetLineWidth(1)
			}
			dc.Stroke()
		}
	}

	// Front on top
	dc.SetRGB(1, 0.3, 0.3)
	dc.SetLineWidth(2)
	points := c.front.Points()
	for i := 1; i < len(points); i++ {
		ax, ay := transform(points[i-1])
		bx, by := transform(points[i])
		dc.DrawLine(ax, ay, bx, by)
	}
	dc.Stroke()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(1, 1, 1)
	for _, p := range c.input {
		x, y := transform(p)
		dc.DrawStringAnchored(strconv.Itoa(p.Index), x, y-8, 0.5, 0.5)
	}
	return dc
}

func (c *CDT) SavePNG(path string, scale float64) error {
	return c.Draw(scale).SavePNG(path)
}

// Helper to draw and print the mesh in the terminal (iTerm only) for debugging.
// The image is kept at path.
func (c *CDT) dbgDraw(path string, scale float64) error {
	if err := c.SavePNG(path, scale); err != nil {
		return errors.Wrap(err, "drawing mesh")
	}
	return imgcat.CatFile(path, os.Stdout)
}
