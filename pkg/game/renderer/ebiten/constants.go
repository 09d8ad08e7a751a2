package ebiten

import (
	"image/color"

	"lifeguard/pkg/game/renderer"
)

// Color palette for the game
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorFocusBackground = color.RGBA{60, 80, 100, 200}   // Cell the next interact would use
)

// tileColors maps shared text styles to tile fills
var tileColors = map[renderer.TextStyle]color.RGBA{
	renderer.StyleNormal:  colorMapBackground,
	renderer.StyleWall:    {60, 60, 80, 255},
	renderer.StyleFloor:   {100, 100, 120, 255},
	renderer.StyleWater:   {40, 110, 190, 255},
	renderer.StyleExit:    {100, 255, 100, 255},
	renderer.StyleZone:    {255, 150, 255, 255},
	renderer.StyleLocked:  {255, 220, 100, 255},
	renderer.StyleUsed:    {200, 180, 100, 255},
	renderer.StylePlayer:  {0, 255, 0, 255},
	renderer.StyleSubtle:  {120, 130, 180, 255},
	renderer.StyleAction:  {180, 150, 250, 255},
	renderer.StyleDenied:  {255, 100, 100, 255},
	renderer.StyleSuccess: {100, 255, 150, 255},
}

// Layout constants, in pixels. The debug font is 6x16.
const (
	defaultWindowWidth  = 1024
	defaultWindowHeight = 720

	tileSize   = 24
	margin     = 20
	lineHeight = 16
	charWidth  = 6
	panelWidth = 420
)

// Key repeat timing, in ticks at 60 TPS.
const (
	keyRepeatInitialDelay = 30
	keyRepeatInterval     = 6
)
