package constants

// Display Geometry
const (
	// ScreenWidth is the usable width of the 0.42" panel; the controller reports 128
	// but the visible window is offset, so 132 centres the frame correctly
	ScreenWidth = 132

	// ScreenHeight is the panel height in pixels
	ScreenHeight = 64

	// FrameWidth is the width of the animation frame
	FrameWidth = 72

	// FrameHeight is the height of the animation frame
	FrameHeight = 40

	// XOffset is the left edge of the frame (30)
	XOffset = (ScreenWidth - FrameWidth) / 2

	// YOffset is the top edge of the frame (12)
	YOffset = (ScreenHeight - FrameHeight) / 2
)

// Drawing Constants
const (
	StarMaxBrightness = 3
	FlameMaxHeight    = 4
	SleighWidth       = 12
	SleighHeight      = 6

	// ScrollText is drawn along the bottom of every scene
	ScrollText = "MERRY XMAS!"

	// ScrollTextGap is how far past the left edge the text travels before wrapping
	ScrollTextGap = 50
)
