// Package adf models the subset of the Atlassian Document Format that
// merge-request descriptions convert into. Block and Span are closed sum
// types so the JSON codec can be checked for exhaustiveness at compile
// time instead of dispatching on tagged maps.
package adf

// Document is the root ADF node. Version is always 1 on the wire.
type Document struct {
	Version int
	Content []Block
}

// Block is a top-level structural node: paragraph, heading, bullet list,
// rule, or panel.
type Block interface {
	blockNode()
}

// Paragraph is a run of inline spans.
type Paragraph struct {
	Content []Span
}

// Heading carries a level in [1,6] and inline spans.
type Heading struct {
	Level   int
	Content []Span
}

// BulletList is a flat list; items never nest.
type BulletList struct {
	Items []ListItem
}

// ListItem wraps one paragraph-equivalent run of spans.
type ListItem struct {
	Content []Span
}

// Rule is a visual divider.
type Rule struct{}

// Panel is a callout block grouping nested blocks, tagged with a kind
// such as "info".
type Panel struct {
	Kind    string
	Content []Block
}

func (Paragraph) blockNode()  {}
func (Heading) blockNode()    {}
func (BulletList) blockNode() {}
func (Rule) blockNode()       {}
func (Panel) blockNode()      {}

// Span is the smallest styled unit of inline text.
type Span interface {
	spanNode()
}

// Text is an unstyled run of characters.
type Text struct {
	Text string
}

// Style is an inline text style.
type Style string

// Inline styles supported by the converter.
const (
	StyleBold   Style = "bold"
	StyleItalic Style = "italic"
	StyleCode   Style = "code"
)

// Styled is a run of characters carrying a single style mark.
type Styled struct {
	Text  string
	Style Style
}

// Link is a run of characters carrying a hyperlink mark.
type Link struct {
	Text string
	Href string
}

// HardBreak forces a line break within a paragraph.
type HardBreak struct{}

func (Text) spanNode()      {}
func (Styled) spanNode()    {}
func (Link) spanNode()      {}
func (HardBreak) spanNode() {}
