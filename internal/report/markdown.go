package report

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// The service answers with lightly structured Markdown. This is a minimal
// line-based renderer: headings, bold paragraphs, list items, and blank
// lines; anything else is a plain paragraph.

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)

	orderedItemRe = regexp.MustCompile(`^\d+\. `)
)

// RenderMarkdown converts the report text into styled terminal lines.
func RenderMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "### "):
			out = append(out, headingStyle.Render(strings.TrimPrefix(line, "### ")))
		case strings.HasPrefix(line, "## "):
			out = append(out, headingStyle.Render(strings.TrimPrefix(line, "## ")))
		case strings.HasPrefix(line, "# "):
			out = append(out, headingStyle.Render(strings.TrimPrefix(line, "# ")))
		case strings.HasPrefix(line, "**"):
			out = append(out, boldStyle.Render(stripBoldMarkers(line)))
		case strings.HasPrefix(line, "- "):
			out = append(out, "  • "+stripBoldMarkers(strings.TrimPrefix(line, "- ")))
		case orderedItemRe.MatchString(line):
			out = append(out, "  "+stripBoldMarkers(line))
		case strings.TrimSpace(line) == "":
			out = append(out, "")
		default:
			out = append(out, stripBoldMarkers(line))
		}
	}
	return strings.Join(out, "\n")
}

func stripBoldMarkers(line string) string {
	return strings.ReplaceAll(line, "**", "")
}
