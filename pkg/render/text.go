package render

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Face is the bitmap font shared by the HUD and the menu screens
var Face = text.NewGoXFace(bitmapfont.Face)

// DrawText draws str with its top-left corner at (x, y), scaled by scale
func DrawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, Face, op)
}

// DrawTextCentered draws str horizontally centred on cx
func DrawTextCentered(screen *ebiten.Image, str string, cx, y, scale float64, clr color.Color) {
	w := text.Advance(str, Face) * scale
	DrawText(screen, str, cx-w/2, y, scale, clr)
}

// TextWidth returns the drawn width of str at scale
func TextWidth(str string, scale float64) float64 {
	return text.Advance(str, Face) * scale
}
