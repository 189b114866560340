package ui

import (
	"bytes"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/oashamkll/Myapp-02/internal/conversation"
)

// minBubbleTextWidth keeps bubbles readable in very narrow terminals
const minBubbleTextWidth = 10

// emptyConversationText is shown before the first message
const emptyConversationText = "Say hello to start the conversation..."

// renderOptions controls how the conversation is drawn
type renderOptions struct {
	width          int // Width of the message area
	userName       string
	botName        string
	showTimestamps bool
}

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return strings.TrimRight(buf.String(), "\n")
}

// wrapText word-wraps text to width, breaking long words when needed.
// ANSI sequences are preserved.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wrap(text, width, "")
}

// renderBody renders message text for a bubble of the given text width.
// Fenced code blocks are highlighted and hard-wrapped; everything else is
// word-wrapped.
func renderBody(text string, width int) string {
	var result []string
	var code strings.Builder
	inCode := false
	lang := ""

	flushCode := func() {
		highlighted := highlightCode(code.String(), lang)
		block := CodeBlockStyle.Render(ansi.Hardwrap(highlighted, width-2, true))
		result = append(result, block)
		code.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if !inCode {
				inCode = true
				lang = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "```"))
			} else {
				inCode = false
				flushCode()
				lang = ""
			}
			continue
		}

		if inCode {
			if code.Len() > 0 {
				code.WriteString("\n")
			}
			code.WriteString(line)
			continue
		}
		result = append(result, ChatMessageStyle.Render(wrapText(line, width)))
	}

	// Unterminated fence: highlight what we have
	if inCode {
		flushCode()
	}

	return strings.Join(result, "\n")
}

// bubbleTextWidth returns the widest a line of text may be inside a bubble
func bubbleTextWidth(areaWidth int) int {
	w := areaWidth*BubbleWidthRatio/4 - BubbleFrameWidth
	if w < minBubbleTextWidth {
		w = minBubbleTextWidth
	}
	return w
}

// renderLabel renders the author name and optional HH:MM timestamp
func renderLabel(msg conversation.Message, opts renderOptions) string {
	name, style := opts.botName, ChatBotStyle
	if msg.IsUser() {
		name, style = opts.userName, ChatUserStyle
	}

	label := style.Render(name)
	if opts.showTimestamps && !msg.CreatedAt.IsZero() {
		label += " " + ChatTimestampStyle.Render(msg.CreatedAt.Format("15:04"))
	}
	return label
}

// renderBubble renders one message with its label, aligned to its author's side
func renderBubble(msg conversation.Message, opts renderOptions) string {
	body := renderBody(msg.Text, bubbleTextWidth(opts.width))

	bubbleStyle, align := BotBubbleStyle, lipgloss.Left
	if msg.IsUser() {
		bubbleStyle, align = UserBubbleStyle, lipgloss.Right
	}

	block := lipgloss.JoinVertical(align, renderLabel(msg, opts), bubbleStyle.Render(body))
	return lipgloss.PlaceHorizontal(opts.width, align, block)
}

// renderConversation renders every message top to bottom
func renderConversation(messages []conversation.Message, opts renderOptions) string {
	if opts.width <= 0 {
		opts.width = DefaultWrapWidth
	}

	if len(messages) == 0 {
		return ChatEmptyStyle.Render(emptyConversationText)
	}

	separator := strings.Repeat("\n", MessageSpacing+1)
	parts := make([]string, 0, len(messages))
	for _, msg := range messages {
		parts = append(parts, renderBubble(msg, opts))
	}
	return strings.Join(parts, separator)
}
