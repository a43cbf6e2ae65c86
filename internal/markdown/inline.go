package markdown

import (
	"regexp"

	"github.com/dt-pm-tools/gitlab-jira-cli/internal/adf"
)

// inlinePatterns are tried against the unscanned suffix on every
// iteration; the earliest match wins, and ties at the same offset go to
// the pattern declared first. The declaration order and the non-greedy
// groups are load-bearing: `**a*b**` must parse as bold with the
// shortest content, which downstream consumers rely on. Do not reorder
// or "fix" to longest-match.
var inlinePatterns = []struct {
	re    *regexp.Regexp
	build func(m []string) adf.Span
}{
	{
		re: regexp.MustCompile(`\*\*(.*?)\*\*`),
		build: func(m []string) adf.Span {
			return adf.Styled{Text: m[1], Style: adf.StyleBold}
		},
	},
	{
		re: regexp.MustCompile(`\*(.*?)\*`),
		build: func(m []string) adf.Span {
			return adf.Styled{Text: m[1], Style: adf.StyleItalic}
		},
	},
	{
		re: regexp.MustCompile("`(.*?)`"),
		build: func(m []string) adf.Span {
			return adf.Styled{Text: m[1], Style: adf.StyleCode}
		},
	},
	{
		re: regexp.MustCompile(`\[(.*?)\]\((.*?)\)`),
		build: func(m []string) adf.Span {
			return adf.Link{Text: m[1], Href: m[2]}
		},
	},
}

// ParseInline tokenizes one line of text into spans. Every character of
// the input ends up in exactly one span: delimiters are consumed, text
// between and outside matched patterns passes through as plain text. A
// line with no markup yields a single plain-text span. Matching is a
// single left-to-right pass; delimiters are never balanced or nested.
func ParseInline(text string) []adf.Span {
	var spans []adf.Span

	rest := text
	for rest != "" {
		best := -1
		var bestLoc []int
		for i, p := range inlinePatterns {
			loc := p.re.FindStringSubmatchIndex(rest)
			if loc == nil {
				continue
			}
			if best < 0 || loc[0] < bestLoc[0] {
				best = i
				bestLoc = loc
			}
		}
		if best < 0 {
			break
		}

		if bestLoc[0] > 0 {
			spans = append(spans, adf.Text{Text: rest[:bestLoc[0]]})
		}

		groups := make([]string, 0, len(bestLoc)/2)
		for j := 0; j < len(bestLoc); j += 2 {
			if bestLoc[j] < 0 {
				groups = append(groups, "")
				continue
			}
			groups = append(groups, rest[bestLoc[j]:bestLoc[j+1]])
		}
		spans = append(spans, inlinePatterns[best].build(groups))

		rest = rest[bestLoc[1]:]
	}

	if rest != "" {
		spans = append(spans, adf.Text{Text: rest})
	}
	if len(spans) == 0 {
		return []adf.Span{adf.Text{Text: text}}
	}
	return spans
}
