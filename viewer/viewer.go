// Package viewer displays the output of a gcode.Builder in a window so a
// conversion can be checked before sending it to a machine.
package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/quillvec/svg/gcode"
)

var _ ebiten.Game = &Viewer{}

const baseScale = 4.0

var (
	travelColor = colornames.Green
	drawColor   = colornames.Red
)

// Viewer renders a gcode.Builder's commands once into an image and
// displays it with mouse-wheel zoom. Cubic moves are shown as chords to
// their endpoints.
type Viewer struct {
	scale   float64
	builder *gcode.Builder
	current *ebiten.Image
}

func NewViewer(b *gcode.Builder) *Viewer {
	result := &Viewer{
		scale:   1,
		builder: b,
	}

	result.current = result.render()
	return result
}

func (v *Viewer) render() *ebiten.Image {
	scale := v.scale * baseScale
	dest := ebiten.NewImage(800, 600)
	dest.Fill(colornames.Black)

	var currentX, currentY float64
	isDrawing := false

	for _, cmd := range v.builder.Commands() {
		args := make(map[string]float64, len(cmd.Args))
		for _, arg := range cmd.Args {
			args[arg.Name] = arg.Value
		}

		switch cmd.Code {
		case gcode.G0, gcode.G1, gcode.G5:
			if z, ok := args["Z"]; ok {
				isDrawing = z == 0
			}

			x, okX := args["X"]
			y, okY := args["Y"]
			if !okX || !okY {
				continue
			}

			c := travelColor
			if isDrawing {
				c = drawColor
			}
			ebitenutil.DrawLine(dest, currentX*scale, currentY*scale, x*scale, y*scale, c)
			currentX, currentY = x, y
		}
	}

	return dest
}

func (v *Viewer) Update() error {
	_, wheelY := ebiten.Wheel()
	v.scale += wheelY * 0.1
	if v.scale < 1 {
		v.scale = 1
	}

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	const w, h = 800, 600
	mouseX, mouseY := ebiten.CursorPosition()
	if mouseX < 0 {
		mouseX = 0
	}
	if mouseY < 0 {
		mouseY = 0
	}

	renderable := v.current.SubImage(image.Rect(
		int((v.scale-1)*float64(mouseX)), int((v.scale-1)*float64(mouseY)),
		int(w+(v.scale-1)*float64(mouseX)), int(h+(v.scale-1)*float64(mouseY))))

	if renderable.Bounds().Dx() == 0 || renderable.Bounds().Dy() == 0 {
		renderable = v.current
	}

	geom := ebiten.GeoM{}
	geom.Scale(v.scale, v.scale)
	screen.DrawImage(ebiten.NewImageFromImage(renderable),
		&ebiten.DrawImageOptions{
			GeoM: geom,
		})
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}
