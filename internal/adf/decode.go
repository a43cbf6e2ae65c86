package adf

import (
	"encoding/json"
	"fmt"
)

// UnmarshalJSON rebuilds the typed tree from the wire form. Only node
// types the encoder emits are accepted.
func (d *Document) UnmarshalJSON(data []byte) error {
	var n node
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if n.Type != "doc" {
		return fmt.Errorf("adf: expected doc node, got %q", n.Type)
	}
	content, err := nodesToBlocks(n.Content)
	if err != nil {
		return err
	}
	d.Version = n.Version
	d.Content = content
	return nil
}

func nodesToBlocks(nodes []node) ([]Block, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	blocks := make([]Block, 0, len(nodes))
	for _, n := range nodes {
		b, err := nodeToBlock(n)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func nodeToBlock(n node) (Block, error) {
	switch n.Type {
	case "paragraph":
		spans, err := nodesToSpans(n.Content)
		if err != nil {
			return nil, err
		}
		return Paragraph{Content: spans}, nil
	case "heading":
		spans, err := nodesToSpans(n.Content)
		if err != nil {
			return nil, err
		}
		return Heading{Level: intAttr(n.Attrs, "level"), Content: spans}, nil
	case "bulletList":
		items := make([]ListItem, 0, len(n.Content))
		for _, itemNode := range n.Content {
			item, err := nodeToListItem(itemNode)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return BulletList{Items: items}, nil
	case "rule":
		return Rule{}, nil
	case "panel":
		content, err := nodesToBlocks(n.Content)
		if err != nil {
			return nil, err
		}
		return Panel{Kind: stringAttr(n.Attrs, "panelType"), Content: content}, nil
	default:
		return nil, fmt.Errorf("adf: unsupported block node %q", n.Type)
	}
}

func nodeToListItem(n node) (ListItem, error) {
	if n.Type != "listItem" {
		return ListItem{}, fmt.Errorf("adf: expected listItem node, got %q", n.Type)
	}
	if len(n.Content) != 1 || n.Content[0].Type != "paragraph" {
		return ListItem{}, fmt.Errorf("adf: listItem must wrap a single paragraph")
	}
	spans, err := nodesToSpans(n.Content[0].Content)
	if err != nil {
		return ListItem{}, err
	}
	return ListItem{Content: spans}, nil
}

func nodesToSpans(nodes []node) ([]Span, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	spans := make([]Span, 0, len(nodes))
	for _, n := range nodes {
		s, err := nodeToSpan(n)
		if err != nil {
			return nil, err
		}
		spans = append(spans, s)
	}
	return spans, nil
}

func nodeToSpan(n node) (Span, error) {
	switch n.Type {
	case "hardBreak":
		return HardBreak{}, nil
	case "text":
		if len(n.Marks) == 0 {
			return Text{Text: n.Text}, nil
		}
		m := n.Marks[0]
		switch m.Type {
		case "strong":
			return Styled{Text: n.Text, Style: StyleBold}, nil
		case "em":
			return Styled{Text: n.Text, Style: StyleItalic}, nil
		case "code":
			return Styled{Text: n.Text, Style: StyleCode}, nil
		case "link":
			return Link{Text: n.Text, Href: stringAttr(m.Attrs, "href")}, nil
		default:
			return nil, fmt.Errorf("adf: unsupported mark %q", m.Type)
		}
	default:
		return nil, fmt.Errorf("adf: unsupported inline node %q", n.Type)
	}
}

func intAttr(attrs map[string]any, key string) int {
	// JSON numbers decode as float64.
	if f, ok := attrs[key].(float64); ok {
		return int(f)
	}
	return 0
}

func stringAttr(attrs map[string]any, key string) string {
	s, _ := attrs[key].(string)
	return s
}
