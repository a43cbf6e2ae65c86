package markdown

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dt-pm-tools/gitlab-jira-cli/internal/adf"
)

// MRDetails is the merge-request metadata rendered into the details
// panel. Every field is required; the created-at timestamp is passed
// through verbatim.
type MRDetails struct {
	AuthorName   string
	SourceBranch string
	TargetBranch string
	State        string
	CreatedAt    string
}

// Validate reports the first missing field.
func (d MRDetails) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.AuthorName, validation.Required),
		validation.Field(&d.SourceBranch, validation.Required),
		validation.Field(&d.TargetBranch, validation.Required),
		validation.Field(&d.State, validation.Required),
		validation.Field(&d.CreatedAt, validation.Required),
	)
}

// BuildDocument wraps an already-converted body in the fixed ticket
// layout: a link-back paragraph, a rule, the body followed by a second
// rule when non-empty, and the MR-details info panel. Incomplete
// metadata aborts before anything is assembled.
func BuildDocument(mrURL string, details MRDetails, body []adf.Block) (*adf.Document, error) {
	if err := details.Validate(); err != nil {
		return nil, fmt.Errorf("merge request metadata: %w", err)
	}

	content := []adf.Block{
		adf.Paragraph{Content: []adf.Span{
			adf.Text{Text: "Created from "},
			adf.Link{Text: "GitLab Merge Request", Href: mrURL},
			adf.Text{Text: ":"},
		}},
		adf.Rule{},
	}

	if len(body) > 0 {
		content = append(content, body...)
		content = append(content, adf.Rule{})
	}

	content = append(content, adf.Panel{
		Kind: "info",
		Content: []adf.Block{
			adf.Heading{Level: 3, Content: []adf.Span{adf.Text{Text: "MR Details"}}},
			adf.Paragraph{Content: []adf.Span{
				adf.Text{Text: "Author: "},
				adf.Styled{Text: details.AuthorName, Style: adf.StyleBold},
				adf.HardBreak{},
				adf.Text{Text: "Source Branch: "},
				adf.Styled{Text: details.SourceBranch, Style: adf.StyleCode},
				adf.HardBreak{},
				adf.Text{Text: "Target Branch: "},
				adf.Styled{Text: details.TargetBranch, Style: adf.StyleCode},
				adf.HardBreak{},
				adf.Text{Text: "State: "},
				adf.Styled{Text: details.State, Style: adf.StyleBold},
				adf.HardBreak{},
				adf.Text{Text: "Created: "},
				adf.Styled{Text: details.CreatedAt, Style: adf.StyleBold},
			}},
		},
	})

	return &adf.Document{Version: 1, Content: content}, nil
}
