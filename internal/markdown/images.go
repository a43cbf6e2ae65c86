package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// ImageMode selects how embedded MR images are rewritten before
// conversion.
type ImageMode string

// Image handling modes.
const (
	// ImageModeLinks rewrites each image to a marker line with the alt
	// text in bold followed by the absolute URL.
	ImageModeLinks ImageMode = "links"
	// ImageModeJiraSyntax rewrites each image to Jira's !url! embed
	// literal. Whether Jira renders it depends on its external-image
	// settings.
	ImageModeJiraSyntax ImageMode = "jira-syntax"
	// ImageModeStrip replaces each image with a plain-text placeholder.
	ImageModeStrip ImageMode = "strip"
)

// ParseImageMode validates a mode string from a CLI flag.
func ParseImageMode(s string) (ImageMode, error) {
	switch ImageMode(s) {
	case ImageModeLinks, ImageModeJiraSyntax, ImageModeStrip:
		return ImageMode(s), nil
	}
	return "", fmt.Errorf("invalid image handling mode %q (want links, jira-syntax, or strip)", s)
}

// GitLab upload references: ![alt](/uploads/hash/file.ext) with an
// optional {width=60%}-style attribute suffix. Attributes are matched so
// they get consumed, but they have no Jira equivalent and are dropped.
var imageRe = regexp.MustCompile(`!\[([^\]]*)\]\((/uploads/[^)]+)\)(\{[^}]*\})?`)

// RewriteImages replaces relative upload references in text with one of
// three textual forms, resolving each against the GitLab instance URL
// and the project's numeric id. Purely textual; nothing is fetched.
// Non-matching text passes through unchanged.
func RewriteImages(text, baseURL string, projectID int, mode ImageMode) string {
	if text == "" {
		return text
	}
	base := strings.TrimRight(baseURL, "/")

	return imageRe.ReplaceAllStringFunc(text, func(match string) string {
		m := imageRe.FindStringSubmatch(match)
		alt := m[1]
		if alt == "" {
			alt = "image"
		}
		// Uploads are served from the numeric-id project route, not the
		// namespace path the MR URL uses.
		absoluteURL := fmt.Sprintf("%s/-/project/%d%s", base, projectID, m[2])

		switch mode {
		case ImageModeStrip:
			return fmt.Sprintf("[Image: %s - see original MR]", alt)
		case ImageModeJiraSyntax:
			return "!" + absoluteURL + "!"
		default:
			return fmt.Sprintf("🖼️ **%s**: %s", alt, absoluteURL)
		}
	})
}
