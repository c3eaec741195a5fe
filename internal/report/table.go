package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
)

// minRuleWidth is the shortest rule drawn under a plain table header.
const minRuleWidth = 45

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Table is a titled grid of already formatted cells.
type Table struct {
	Title   string
	Headers []string
	Align   []Align // per column, missing entries are left aligned
	Rows    [][]string
}

func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

func (t Table) align(col int) Align {
	if col < len(t.Align) {
		return t.Align[col]
	}
	return AlignLeft
}

// widths measures every column in terminal cells, so wide CJK runes and
// emoji count double.
func (t Table) widths() []int {
	w := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		w[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(w) {
				if cw := runewidth.StringWidth(cell); cw > w[i] {
					w[i] = cw
				}
			}
		}
	}
	return w
}

func pad(s string, width int, a Align) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	if a == AlignRight {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

func (t Table) line(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = pad(cell, widths[i], t.align(i))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// Plain renders the table as space separated columns under a dashed rule.
func (t Table) Plain() string {
	widths := t.widths()
	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString("--- " + t.Title + " ---\n")
	}
	header := t.line(t.Headers, widths)
	sb.WriteString(header + "\n")
	sb.WriteString(strings.Repeat("-", max(minRuleWidth, runewidth.StringWidth(header))) + "\n")
	for _, row := range t.Rows {
		sb.WriteString(t.line(row, widths) + "\n")
	}
	return sb.String()
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginTop(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Styled renders the table with a rounded border and a bold header.
func (t Table) Styled() string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			if t.align(col) == AlignRight {
				return style.Align(lipgloss.Right)
			}
			return style
		})

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(titleStyle.Render(t.Title) + "\n")
	}
	sb.WriteString(tbl.Render() + "\n")
	return sb.String()
}
