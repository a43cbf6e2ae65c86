package markdown

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dt-pm-tools/gitlab-jira-cli/internal/adf"
)

func TestParseInline_PlainText(t *testing.T) {
	spans := ParseInline("no markup here")
	require.Len(t, spans, 1)
	assert.Equal(t, adf.Text{Text: "no markup here"}, spans[0])
}

func TestParseInline_BoldAndItalic(t *testing.T) {
	spans := ParseInline("**bold** and *italic*")
	require.Equal(t, []adf.Span{
		adf.Styled{Text: "bold", Style: adf.StyleBold},
		adf.Text{Text: " and "},
		adf.Styled{Text: "italic", Style: adf.StyleItalic},
	}, spans)
}

func TestParseInline_Link(t *testing.T) {
	spans := ParseInline("[click](http://x)")
	require.Equal(t, []adf.Span{
		adf.Link{Text: "click", Href: "http://x"},
	}, spans)
}

func TestParseInline_Code(t *testing.T) {
	spans := ParseInline("run `go build` first")
	require.Equal(t, []adf.Span{
		adf.Text{Text: "run "},
		adf.Styled{Text: "go build", Style: adf.StyleCode},
		adf.Text{Text: " first"},
	}, spans)
}

func TestParseInline_PrefixAndTail(t *testing.T) {
	spans := ParseInline("see **this** for details")
	require.Equal(t, []adf.Span{
		adf.Text{Text: "see "},
		adf.Styled{Text: "this", Style: adf.StyleBold},
		adf.Text{Text: " for details"},
	}, spans)
}

func TestParseInline_TieBreakPrefersBold(t *testing.T) {
	// Bold and italic both match at offset 0; bold is declared first
	// and takes the shortest content, delimiters unbalanced by design.
	spans := ParseInline("**a*b**")
	require.Equal(t, []adf.Span{
		adf.Styled{Text: "a*b", Style: adf.StyleBold},
	}, spans)
}

func TestParseInline_UnbalancedDegradesToPlainText(t *testing.T) {
	for _, input := range []string{"**unclosed", "[text](nope", "`tick"} {
		spans := ParseInline(input)
		require.Equal(t, []adf.Span{adf.Text{Text: input}}, spans, "input %q", input)
	}
}

func TestParseInline_MultipleLinks(t *testing.T) {
	spans := ParseInline("[a](u1) mid [b](u2)")
	require.Equal(t, []adf.Span{
		adf.Link{Text: "a", Href: "u1"},
		adf.Text{Text: " mid "},
		adf.Link{Text: "b", Href: "u2"},
	}, spans)
}

// TestParseInline_Reconstruction re-adds delimiters around each span and
// checks that no characters were lost or duplicated.
func TestParseInline_Reconstruction(t *testing.T) {
	lines := []string{
		"plain text only",
		"**bold** start and *em* mid and `code` end",
		"a [link](http://example.com/x?q=1) inline",
		"*i*`c`**b**",
		"edge ** empty ``",
		"🖼️ **shot**: http://host/img.png",
	}
	for _, line := range lines {
		var b strings.Builder
		for _, s := range ParseInline(line) {
			switch s := s.(type) {
			case adf.Text:
				b.WriteString(s.Text)
			case adf.Styled:
				switch s.Style {
				case adf.StyleBold:
					fmt.Fprintf(&b, "**%s**", s.Text)
				case adf.StyleItalic:
					fmt.Fprintf(&b, "*%s*", s.Text)
				case adf.StyleCode:
					fmt.Fprintf(&b, "`%s`", s.Text)
				}
			case adf.Link:
				fmt.Fprintf(&b, "[%s](%s)", s.Text, s.Href)
			}
		}
		assert.Equal(t, line, b.String())
	}
}
