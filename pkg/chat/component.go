// Package chat decodes the JSON chat component grammar used by chat,
// system, and disconnect messages, and renders it to plain text spans.
package chat

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Component is one node of the chat component tree: either a bare string
// (unmarshaled directly into Text with no styling), a translate node
// (Translate + With), or a text node (Text + Extra + styling).
type Component struct {
	Text      string      `json:"text,omitempty"`
	Translate string      `json:"translate,omitempty"`
	With      []Component `json:"with,omitempty"`
	Extra     []Component `json:"extra,omitempty"`

	Color         string `json:"color,omitempty"`
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Underlined    bool   `json:"underlined,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
	Obfuscated    bool   `json:"obfuscated,omitempty"`
}

// UnmarshalJSON accepts both a bare JSON string (treated as plain text)
// and a full component object.
func (c *Component) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		c.Text = bare
		return nil
	}

	type alias Component
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("chat: invalid component: %w", err)
	}
	*c = Component(a)
	return nil
}

// Parse decodes a raw chat JSON payload into a Component tree.
func Parse(raw string) (Component, error) {
	var c Component
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Component{}, fmt.Errorf("chat: parse failed: %w", err)
	}
	return c, nil
}

// translations maps known translate keys to a format with positional
// placeholders {0}, {1}, ... substituted from With. Unknown keys render
// as the bare key.
var translations = map[string]string{
	"chat.type.announcement": "[Server Announcement] {0}: {1}",
	"chat.type.text":         "[{0}]: {1}",
}

// Span is one contiguously-styled run of rendered text.
type Span struct {
	Text          string
	Color         string
	Bold          bool
	Italic        bool
	Underlined    bool
	Strikethrough bool
	Obfuscated    bool
}

// Render flattens a Component tree into plain text.
func Render(c Component) string {
	var b strings.Builder
	renderInto(&b, c)
	return b.String()
}

// Spans flattens a Component tree into a list of styled runs, preserving
// per-node styling instead of collapsing everything to plain text.
func Spans(c Component) []Span {
	var out []Span
	collectSpans(c, &out)
	return out
}

func renderInto(b *strings.Builder, c Component) {
	if c.Translate != "" {
		b.WriteString(renderTranslate(c))
	} else {
		b.WriteString(c.Text)
	}
	for _, extra := range c.Extra {
		renderInto(b, extra)
	}
}

func renderTranslate(c Component) string {
	format, known := translations[c.Translate]
	if !known {
		return c.Translate
	}
	args := make([]any, len(c.With))
	for i, w := range c.With {
		args[i] = Render(w)
	}
	return sprintfPositional(format, args)
}

// sprintfPositional substitutes {0}, {1}, ... placeholders in format with
// args, in order of appearance.
func sprintfPositional(format string, args []any) string {
	out := format
	for i, a := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		out = strings.ReplaceAll(out, placeholder, fmt.Sprint(a))
	}
	return out
}

func collectSpans(c Component, out *[]Span) {
	text := c.Text
	if c.Translate != "" {
		text = renderTranslate(c)
	}
	if text != "" {
		*out = append(*out, Span{
			Text:          text,
			Color:         c.Color,
			Bold:          c.Bold,
			Italic:        c.Italic,
			Underlined:    c.Underlined,
			Strikethrough: c.Strikethrough,
			Obfuscated:    c.Obfuscated,
		})
	}
	for _, extra := range c.Extra {
		collectSpans(extra, out)
	}
}

// TruncateUTF8 trims s to at most n runes, safely on rune boundaries.
// Used to cap outbound chat submissions at 100 characters.
func TruncateUTF8(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
