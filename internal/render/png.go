package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/calebwei/githeat/schema"
)

// Raster layout in pixels.
const (
	cellPx       = 12
	gapPx        = 3
	marginLeft   = 44
	marginTop    = 28
	marginRight  = 16
	marginBottom = 34
)

// githubGreensRGBA is the same ramp as the HTML renderer, decoded once.
var githubGreensRGBA = []color.RGBA{
	{0xeb, 0xed, 0xf0, 0xff},
	{0x9b, 0xe9, 0xa8, 0xff},
	{0x40, 0xc4, 0x63, 0xff},
	{0x30, 0xa1, 0x4e, 0xff},
	{0x21, 0x6e, 0x39, 0xff},
}

var (
	rasterBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	rasterText       = color.RGBA{0x24, 0x29, 0x2e, 0xff}
)

// SavePNG writes the year grid as heatmap_<year>.png into the heatmaps
// export directory under outDir, creating the directory on demand and
// overwriting any existing file. Returns the written path.
func SavePNG(grid *schema.YearGrid, outDir string) (string, error) {
	dir := filepath.Join(outDir, schema.HeatmapDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("heatmap_%d.png", grid.Year))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	if err := png.Encode(file, RenderImage(grid)); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}
	return path, nil
}

// RenderImage draws the year grid as an in-memory raster image with row
// labels, title and a color legend.
func RenderImage(grid *schema.YearGrid) *image.RGBA {
	weeks := grid.Weeks()
	scaleCap := grid.ColorCap()

	width := marginLeft + len(weeks)*(cellPx+gapPx) + marginRight
	height := marginTop + 7*(cellPx+gapPx) + marginBottom
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{rasterBackground}, image.Point{}, draw.Src)

	drawString(img, marginLeft, 16, fmt.Sprintf("Commit Heatmap %d", grid.Year))

	for weekday := 0; weekday < 7; weekday++ {
		rowY := marginTop + weekday*(cellPx+gapPx)
		drawString(img, 6, rowY+cellPx-2, schema.WeekdayLabels[weekday])
		for xi, week := range weeks {
			if !grid.Has(weekday, week) {
				continue
			}
			x := marginLeft + xi*(cellPx+gapPx)
			cell := image.Rect(x, rowY, x+cellPx, rowY+cellPx)
			shade := heatRGBA(grid.Value(weekday, week), scaleCap)
			draw.Draw(img, cell, &image.Uniform{shade}, image.Point{}, draw.Src)
		}
	}

	legendY := marginTop + 7*(cellPx+gapPx) + 12
	drawString(img, marginLeft, legendY+cellPx-2, "Less")
	swatchX := marginLeft + 34
	for _, shade := range githubGreensRGBA {
		cell := image.Rect(swatchX, legendY, swatchX+cellPx, legendY+cellPx)
		draw.Draw(img, cell, &image.Uniform{shade}, image.Point{}, draw.Src)
		swatchX += cellPx + gapPx
	}
	drawString(img, swatchX+6, legendY+cellPx-2, fmt.Sprintf("More (<=%d commits/day)", scaleCap))

	return img
}

// heatRGBA maps a cell count to its ramp color against the scale cap.
// Zero is always the neutral shade; any activity gets a green.
func heatRGBA(count, scaleCap int) color.RGBA {
	if count <= 0 {
		return githubGreensRGBA[0]
	}
	if scaleCap < 1 {
		scaleCap = 1
	}
	level := 1 + (count-1)*4/scaleCap
	if level > 4 {
		level = 4
	}
	return githubGreensRGBA[level]
}

// drawString renders text with the fixed 7x13 bitmap face; y is the text
// baseline.
func drawString(img *image.RGBA, x, y int, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(rasterText),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
