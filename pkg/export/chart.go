// Package export renders collection charts to local files. There is no
// serving or uploading; output is written to the given path or writer.
package export

import (
	"fmt"
	"io"
	"os"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"

	"github.com/nvalla/walletview/pkg/model"
)

const (
	svgWidth     = 800
	svgBarHeight = 28
	svgGutter    = 8
	svgMargin    = 120
)

// WriteSVG renders a horizontal floor-price bar chart of the collections.
func WriteSVG(w io.Writer, collections []model.Collection) error {
	if len(collections) == 0 {
		return fmt.Errorf("no collections to chart")
	}

	maxFloor := 0.0
	for _, c := range collections {
		if c.FloorPrice > maxFloor {
			maxFloor = c.FloorPrice
		}
	}
	if maxFloor == 0 {
		maxFloor = 1
	}

	height := len(collections)*(svgBarHeight+svgGutter) + svgGutter
	canvas := svg.New(w)
	canvas.Start(svgWidth, height)
	canvas.Rect(0, 0, svgWidth, height, "fill:#282a36")

	for i, c := range collections {
		y := svgGutter + i*(svgBarHeight+svgGutter)
		barMax := svgWidth - svgMargin - 80
		barWidth := int(float64(barMax) * c.FloorPrice / maxFloor)
		if barWidth < 2 {
			barWidth = 2
		}

		canvas.Text(svgMargin-8, y+svgBarHeight/2+4, c.Name,
			"text-anchor:end;font-family:monospace;font-size:12px;fill:#f8f8f2")
		canvas.Rect(svgMargin, y, barWidth, svgBarHeight, "fill:#bd93f9")
		canvas.Text(svgMargin+barWidth+6, y+svgBarHeight/2+4,
			fmt.Sprintf("%.2f", c.FloorPrice),
			"font-family:monospace;font-size:12px;fill:#bfbfbf")
	}

	canvas.End()
	return nil
}

// WriteSVGFile is WriteSVG to a file path.
func WriteSVGFile(path string, collections []model.Collection) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	return WriteSVG(f, collections)
}

const (
	pngWidth  = 640
	pngHeight = 200
	pngPad    = 16.0
)

// WritePNG renders the collections' floor prices as a sparkline, left to
// right in catalog order.
func WritePNG(path string, collections []model.Collection) error {
	if len(collections) == 0 {
		return fmt.Errorf("no collections to chart")
	}

	maxFloor := 0.0
	for _, c := range collections {
		if c.FloorPrice > maxFloor {
			maxFloor = c.FloorPrice
		}
	}
	if maxFloor == 0 {
		maxFloor = 1
	}

	dc := gg.NewContext(pngWidth, pngHeight)
	dc.SetRGB(0.157, 0.165, 0.212)
	dc.Clear()

	plotW := float64(pngWidth) - 2*pngPad
	plotH := float64(pngHeight) - 2*pngPad

	step := plotW
	if len(collections) > 1 {
		step = plotW / float64(len(collections)-1)
	}

	dc.SetRGB(0.741, 0.576, 0.976)
	dc.SetLineWidth(2)
	for i, c := range collections {
		x := pngPad + float64(i)*step
		y := pngPad + plotH*(1-c.FloorPrice/maxFloor)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()

	for i, c := range collections {
		x := pngPad + float64(i)*step
		y := pngPad + plotH*(1-c.FloorPrice/maxFloor)
		dc.DrawCircle(x, y, 3)
		dc.Fill()
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
