package adf

import (
	"encoding/json"
	"fmt"
)

// node is the generic wire representation of an ADF node. The typed tree
// is lowered to nodes before encoding and lifted back after decoding.
type node struct {
	Type    string         `json:"type"`
	Version int            `json:"version,omitempty"`
	Text    string         `json:"text,omitempty"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Marks   []mark         `json:"marks,omitempty"`
	Content []node         `json:"content,omitempty"`
}

// mark is an inline formatting mark on a text node.
type mark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// MarshalJSON encodes the document as {"type":"doc","version":1,...}.
func (d Document) MarshalJSON() ([]byte, error) {
	n, err := d.toNode()
	if err != nil {
		return nil, err
	}
	return json.Marshal(n)
}

func (d Document) toNode() (node, error) {
	version := d.Version
	if version == 0 {
		version = 1
	}
	content, err := blocksToNodes(d.Content)
	if err != nil {
		return node{}, err
	}
	return node{Type: "doc", Version: version, Content: content}, nil
}

func blocksToNodes(blocks []Block) ([]node, error) {
	nodes := make([]node, 0, len(blocks))
	for _, b := range blocks {
		n, err := blockToNode(b)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func blockToNode(b Block) (node, error) {
	switch b := b.(type) {
	case Paragraph:
		return node{Type: "paragraph", Content: spansToNodes(b.Content)}, nil
	case Heading:
		level := b.Level
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		return node{
			Type:    "heading",
			Attrs:   map[string]any{"level": level},
			Content: spansToNodes(b.Content),
		}, nil
	case BulletList:
		items := make([]node, 0, len(b.Items))
		for _, item := range b.Items {
			items = append(items, node{
				Type: "listItem",
				Content: []node{
					{Type: "paragraph", Content: spansToNodes(item.Content)},
				},
			})
		}
		return node{Type: "bulletList", Content: items}, nil
	case Rule:
		return node{Type: "rule"}, nil
	case Panel:
		content, err := blocksToNodes(b.Content)
		if err != nil {
			return node{}, err
		}
		return node{
			Type:    "panel",
			Attrs:   map[string]any{"panelType": b.Kind},
			Content: content,
		}, nil
	default:
		return node{}, fmt.Errorf("adf: unknown block type %T", b)
	}
}

func spansToNodes(spans []Span) []node {
	nodes := make([]node, 0, len(spans))
	for _, s := range spans {
		nodes = append(nodes, spanToNode(s))
	}
	return nodes
}

func spanToNode(s Span) node {
	switch s := s.(type) {
	case Text:
		return node{Type: "text", Text: s.Text}
	case Styled:
		return node{Type: "text", Text: s.Text, Marks: []mark{{Type: markType(s.Style)}}}
	case Link:
		return node{
			Type:  "text",
			Text:  s.Text,
			Marks: []mark{{Type: "link", Attrs: map[string]any{"href": s.Href}}},
		}
	case HardBreak:
		return node{Type: "hardBreak"}
	default:
		// Span is a closed set; an unknown variant is a programming error.
		panic(fmt.Sprintf("adf: unknown span type %T", s))
	}
}

func markType(style Style) string {
	switch style {
	case StyleBold:
		return "strong"
	case StyleItalic:
		return "em"
	default:
		return "code"
	}
}
