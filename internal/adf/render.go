// Package adf flattens Atlassian Document Format trees into plain text.
//
// The output keeps line-oriented structure (one list item per line) but drops
// all formatting: marks, heading levels, and list numbering are discarded.
package adf

import (
	"regexp"
	"strings"

	"github.com/dt-pm-tools/prd-export/internal/jira"
)

var multiBlank = regexp.MustCompile(`\n{3,}`)

// RenderBody flattens an issue description body. Plain-string bodies are
// returned as-is (trimmed); ADF bodies are rendered; an empty body yields "".
func RenderBody(body jira.Body) string {
	if body.Doc != nil {
		return Render(body.Doc)
	}
	return strings.TrimSpace(body.Text)
}

// Render converts an ADF node tree to plain text. It never fails: unknown
// node kinds are skipped but their children are still visited, so text nested
// inside unrecognized wrappers survives.
func Render(node *jira.ADFNode) string {
	if node == nil {
		return ""
	}
	var b strings.Builder
	renderNode(&b, node)
	return normalize(b.String())
}

func renderNode(b *strings.Builder, node *jira.ADFNode) {
	switch node.Type {
	case "doc":
		renderChildren(b, node)

	case "paragraph", "heading":
		renderChildren(b, node)
		b.WriteString("\n")

	case "bulletList", "orderedList":
		// Enumeration semantics are not preserved: both list kinds render
		// as one "- " line per item.
		for i := range node.Content {
			child := &node.Content[i]
			if child.Type != "listItem" {
				renderNode(b, child)
				continue
			}
			item := renderItem(child)
			if item == "" {
				continue
			}
			b.WriteString("- ")
			b.WriteString(item)
			b.WriteString("\n")
		}
		b.WriteString("\n")

	case "text":
		b.WriteString(node.Text)

	case "hardBreak":
		b.WriteString("\n")

	default:
		// Best effort: unknown wrapper, render its children
		renderChildren(b, node)
	}
}

// renderItem flattens a list item's content onto a single line. Nested block
// structure inside the item collapses to space-separated text.
func renderItem(node *jira.ADFNode) string {
	var b strings.Builder
	renderChildren(&b, node)
	fields := strings.Fields(b.String())
	return strings.Join(fields, " ")
}

func renderChildren(b *strings.Builder, node *jira.ADFNode) {
	for i := range node.Content {
		renderNode(b, &node.Content[i])
	}
}

// normalize trims the result and collapses runs of blank lines so that at
// most one blank line separates blocks.
func normalize(s string) string {
	s = multiBlank.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
