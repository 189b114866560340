package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TextareaHeight is the number of lines for the chat input textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// SendButtonWidth is the outer width of the Send button beside the input
	SendButtonWidth = 10

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth and MinTerminalHeight keep layout math non-negative
	MinTerminalWidth  = 40
	MinTerminalHeight = 12
)

// Bubble layout
const (
	// BubbleWidthRatio limits a bubble to this share of the message area (numerator over 4)
	BubbleWidthRatio = 3

	// BubbleFrameWidth is border plus horizontal padding around bubble text
	BubbleFrameWidth = 4

	// MessageSpacing is the number of blank lines between bubbles
	MessageSpacing = 1
)

// FlashDuration is how long a footer flash stays visible
const FlashDuration = 3 * time.Second
