// Package ui provides the user interface components for the chatmock TUI.
//
// # Overview
//
// The ui package implements the visual components of chatmock using the Bubble
// Tea framework and Lipgloss styling library. Components follow the
// Model-Update-View pattern; the app package owns the conversation and feeds
// snapshots of it into these components.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Message list (viewport)                           │
//	│                                                     │
//	├───────────────────────────────────────────┬─────────┤
//	│ Input (textarea, 3 lines)                 │  Send   │
//	├───────────────────────────────────────────┴─────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
// All size calculations should go through ViewContext to ensure consistency.
//
// Header: Displays the application title, the bot's name and the message
// count over a gradient background.
//
// Footer: Shows keyboard shortcuts and a character counter for the draft.
// A flash message temporarily replaces the shortcuts.
//
// Chat: The conversation panel. User bubbles sit on the right and bot
// bubbles on the left; fenced code inside a message is syntax highlighted.
//
// # Styles
//
// All styles are defined in styles.go using Lipgloss and are rebuilt from the
// active Theme by SetTheme.
package ui
