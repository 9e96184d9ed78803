package scenes

import (
	"image/color"

	"github.com/automoto/pong/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// drawCentered draws s horizontally centred on the screen with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, font fonts.FontName, y int, clr color.Color) {
	face := font.Get()
	bounds := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, clr) //nolint:staticcheck // TODO: migrate to text/v2
}

// drawAt draws s horizontally centred on centerX.
func drawAt(screen *ebiten.Image, s string, font fonts.FontName, centerX, y int, clr color.Color) {
	face := font.Get()
	bounds := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, s, face, centerX-bounds.Dx()/2, y, clr) //nolint:staticcheck // TODO: migrate to text/v2
}
