// Package markdown converts GitLab-flavored merge-request descriptions
// into ADF document trees. The dialect is deliberately small: headings,
// paragraphs, flat bullet lists, and the inline styles ParseInline
// recognizes. Tables, fenced code blocks, blockquotes, and nested lists
// are not handled.
package markdown

import (
	"regexp"
	"strings"

	"github.com/dt-pm-tools/gitlab-jira-cli/internal/adf"
)

// noDescription is the placeholder GitLab-less descriptions arrive as;
// it contributes no body blocks.
const noDescription = "No description provided"

var (
	headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	bulletRe  = regexp.MustCompile(`^\s*[-*+]\s+(.+)$`)
)

// ConvertBody converts a Markdown description into an ordered block
// sequence. Empty, whitespace-only, and placeholder input yield nil.
func ConvertBody(text string) []adf.Block {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == noDescription {
		return nil
	}

	c := converter{}
	for _, line := range strings.Split(text, "\n") {
		c.feed(strings.TrimRight(line, " \t\r"))
	}
	c.flushList()
	return c.blocks
}

// converter accumulates blocks for a single conversion. The pending
// list run is owned by this value; each ConvertBody call gets its own,
// so concurrent conversions never share state.
type converter struct {
	blocks  []adf.Block
	listRun []adf.ListItem
}

// feed classifies one trailing-trimmed line. Leading whitespace is kept:
// it only matters for bullet detection.
func (c *converter) feed(line string) {
	if line == "" {
		c.flushList()
		return
	}

	if m := headingRe.FindStringSubmatch(line); m != nil {
		c.flushList()
		level := len(m[1])
		if level > 6 {
			// The pattern already bounds this; kept as a safety clamp.
			level = 6
		}
		c.blocks = append(c.blocks, adf.Heading{Level: level, Content: ParseInline(m[2])})
		return
	}

	if m := bulletRe.FindStringSubmatch(line); m != nil {
		c.listRun = append(c.listRun, adf.ListItem{Content: ParseInline(m[1])})
		return
	}

	c.flushList()
	c.blocks = append(c.blocks, adf.Paragraph{Content: ParseInline(line)})
}

// flushList turns the pending run of consecutive bullet lines into one
// BulletList block. A no-op when the run is empty, so blank lines never
// produce empty blocks.
func (c *converter) flushList() {
	if len(c.listRun) == 0 {
		return
	}
	c.blocks = append(c.blocks, adf.BulletList{Items: c.listRun})
	c.listRun = nil
}
