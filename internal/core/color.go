package core

// Color is a palette slot for a screen cell. The platform layer decides
// the actual terminal color for each slot.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBoardDark
	ColorBoardLight
	ColorHead
	ColorTail
	ColorFood
	ColorText
	ColorDim
	ColorAlert
)
