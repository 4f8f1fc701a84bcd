package viewer

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/software"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/philipparndt/gosimplify/pkg/halfedge"
	"golang.org/x/image/draw"
)

// legendOffset is the distance of the legend from the top left corner
const legendOffset = 8

var (
	// fyne keeps the current app and its settings in globals
	legendMu  sync.Mutex
	legendApp fyne.App
)

func legendText(text string, col color.Color) *canvas.Text {
	t := canvas.NewText(text, col)
	t.TextStyle = fyne.TextStyle{Monospace: true}
	t.TextSize = 12
	return t
}

// renderLegend lays out the edge counts with fyne's software renderer. The
// in-memory app from fyne's test package stands in for a driver.
func renderLegend(stats halfedge.Stats) image.Image {
	legendMu.Lock()
	defer legendMu.Unlock()

	if legendApp == nil {
		legendApp = test.NewApp()
	}

	content := container.NewPadded(container.NewVBox(
		legendText(fmt.Sprintf("%d boundary", stats.Boundary), boundaryColor),
		legendText(fmt.Sprintf("%d manifold", stats.Manifold), textColor),
		legendText(fmt.Sprintf("%d non-manifold", stats.NonManifold), nonManifoldColor),
	))
	return software.Render(content, theme.DarkTheme())
}

func drawLegend(img *image.RGBA, stats halfedge.Stats) {
	legend := renderLegend(stats)
	origin := img.Bounds().Min.Add(image.Pt(legendOffset, legendOffset))
	rect := image.Rectangle{Min: origin, Max: origin.Add(legend.Bounds().Size())}
	draw.Draw(img, rect, legend, legend.Bounds().Min, draw.Over)
}
