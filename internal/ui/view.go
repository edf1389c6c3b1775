package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/single-mode-shortcuts/internal/format/table"
	"github.com/atomicstack/single-mode-shortcuts/internal/keymap"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	// split, when > 0, renders the first split bytes with prefixStyle.
	split       int
	prefixStyle *lipgloss.Style
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.header(), style: styles.Header})
	lines = append(lines, m.rowLines()...)
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerText, style: styles.Footer})
	}
	// Reserve 2 rows for the bottom bar (error/status + prompt).
	lines = limitHeight(lines, m.height-2)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottom := applyWidth([]styledLine{statusLine}, m.width)
	out := renderLines(append(lines, bottom...))

	prompt := m.input.View()
	if m.width > 0 && lipgloss.Width(prompt) > m.width {
		prompt = truncate.StringWithTail(prompt, uint(m.width), "…")
	}
	return out + "\n" + prompt
}

// rowLines lists the children of the node the input resolves to.
func (m *Model) rowLines() []styledLine {
	if m.session.Resolved() == nil {
		return []styledLine{{text: noMatchText, style: styles.NoMatch}}
	}
	rows := m.session.Rows()
	if len(rows) == 0 {
		return nil
	}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{row.Key, row.Label}
	}
	formatted := table.Format(cells, []table.Alignment{table.AlignRight, table.AlignLeft})
	lines := make([]styledLine, len(rows))
	for i, row := range rows {
		style := styles.Action
		if row.Branch {
			style = styles.Branch
		}
		text := formatted[i]
		lines[i] = styledLine{
			text:        text,
			style:       style,
			split:       len(text) - len(row.Label),
			prefixStyle: styles.Key,
		}
	}
	return lines
}

// header names the nodes along the input path, stopping where the input no
// longer matches.
func (m *Model) header() string {
	segments := headerSegments(m.session.Root(), m.session.Input())
	if len(segments) == 0 {
		return defaultRootTitle
	}
	return strings.Join(segments, headerSeparator)
}

func headerSegments(root keymap.Entry, input string) []string {
	node, ok := root.(*keymap.Node)
	if !ok {
		return nil
	}
	var segments []string
	for _, r := range input {
		child, found := node.Child(string(r))
		if !found {
			break
		}
		next, isNode := child.(*keymap.Node)
		if !isNode {
			break
		}
		if next.Name != "" {
			segments = append(segments, next.Name)
		}
		node = next
	}
	return segments
}

func limitHeight(lines []styledLine, height int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: "…"}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: "…"})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		if line.split > len(line.text) {
			line.split = 0
		}
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.split > 0 && line.split < len(text) {
			head := text[:line.split]
			tail := text[line.split:]
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
