package vterm

// Color represents a terminal color
type Color struct {
	Type  ColorType
	Value uint32 // Indexed: 0-255, RGB: 0xRRGGBB
}

type ColorType uint8

const (
	ColorDefault ColorType = iota
	ColorIndexed
	ColorRGB
)

// ansiPalette is the standard ANSI color palette (0-15).
// Colors 0-7 are standard, 8-15 are bright variants.
var ansiPalette = [16][3]uint8{
	{0, 0, 0},       // 0: Black
	{205, 49, 49},   // 1: Red
	{13, 188, 121},  // 2: Green
	{229, 229, 16},  // 3: Yellow
	{36, 114, 200},  // 4: Blue
	{188, 63, 188},  // 5: Magenta
	{17, 168, 205},  // 6: Cyan
	{229, 229, 229}, // 7: White
	{102, 102, 102}, // 8: Bright Black
	{241, 76, 76},   // 9: Bright Red
	{35, 209, 139},  // 10: Bright Green
	{245, 245, 67},  // 11: Bright Yellow
	{59, 142, 234},  // 12: Bright Blue
	{214, 112, 214}, // 13: Bright Magenta
	{41, 184, 219},  // 14: Bright Cyan
	{255, 255, 255}, // 15: Bright White
}

// cubeLevels are the xterm component values for the 6x6x6 color cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// PaletteRGB maps a 256-color palette index to its RGB components.
// 0-15 are the standard palette, 16-231 the 6x6x6 cube, 232-255 a
// 24-step grayscale ramp.
func PaletteRGB(index uint8) (r, g, b uint8) {
	switch {
	case index < 16:
		p := ansiPalette[index]
		return p[0], p[1], p[2]
	case index < 232:
		i := index - 16
		return cubeLevels[(i/36)%6], cubeLevels[(i/6)%6], cubeLevels[i%6]
	default:
		gray := 8 + (index-232)*10
		return gray, gray, gray
	}
}

// RGB resolves the color to concrete components. Default colors resolve
// to defR/defG/defB.
func (c Color) RGB(defR, defG, defB uint8) (r, g, b uint8) {
	switch c.Type {
	case ColorIndexed:
		return PaletteRGB(uint8(c.Value))
	case ColorRGB:
		return uint8(c.Value >> 16), uint8(c.Value >> 8), uint8(c.Value)
	default:
		return defR, defG, defB
	}
}
