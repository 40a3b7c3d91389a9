package renderer

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/umlstudio/umlstudio/internal/logging"
	"github.com/umlstudio/umlstudio/internal/ports"
	"github.com/umlstudio/umlstudio/internal/theme"
)

// ErrEmptyDefinition is returned when there is nothing to render
var ErrEmptyDefinition = errors.New("empty diagram definition")

// Keywords highlighted anywhere at the start of a statement
var keywords = map[string]bool{
	"activate":    true,
	"actor":       true,
	"alt":         true,
	"and":         true,
	"class":       true,
	"classDef":    true,
	"click":       true,
	"deactivate":  true,
	"direction":   true,
	"else":        true,
	"end":         true,
	"loop":        true,
	"note":        true,
	"opt":         true,
	"par":         true,
	"participant": true,
	"rect":        true,
	"state":       true,
	"style":       true,
	"subgraph":    true,
	"title":       true,
}

// Diagram headers that open a definition
var headers = map[string]bool{
	"classDiagram":    true,
	"erDiagram":       true,
	"flowchart":       true,
	"gantt":           true,
	"graph":           true,
	"journey":         true,
	"pie":             true,
	"sequenceDiagram": true,
	"stateDiagram":    true,
	"stateDiagram-v2": true,
}

var (
	arrowPattern = regexp.MustCompile(`<\|--|--\|>|\*--|--\*|o--|--o|-\.->|-->>|->>|-->|--x|-x|-\)|==>|\.\.>|<\.\.|<--|--|->|\.\.`)
	labelPattern = regexp.MustCompile(`"[^"]*"|\|[^|]*\|`)
)

// Options configures the terminal renderer
type Options struct {
	HideLineNumbers bool
	TabWidth        int // Defaults to 4
}

// TerminalRenderer draws a Mermaid definition as a styled, line-numbered block
type TerminalRenderer struct {
	opts Options
}

// NewTerminalRenderer creates a renderer
func NewTerminalRenderer(opts Options) *TerminalRenderer {
	if opts.TabWidth <= 0 {
		opts.TabWidth = 4
	}
	return &TerminalRenderer{opts: opts}
}

// Render replaces the target content with the styled definition
func (r *TerminalRenderer) Render(ctx context.Context, definition string, target ports.RenderTarget) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("render cancelled: %w", err)
	}
	if strings.TrimSpace(definition) == "" {
		return ErrEmptyDefinition
	}

	content := r.Format(definition)
	target.Replace(content)

	logging.Logger.Debug("Diagram rendered", "lines", strings.Count(definition, "\n")+1)
	return nil
}

// Format returns the styled text for definition without touching a target
func (r *TerminalRenderer) Format(definition string) string {
	definition = strings.ReplaceAll(definition, "\t", strings.Repeat(" ", r.opts.TabWidth))
	lines := strings.Split(strings.TrimRight(definition, "\n"), "\n")
	width := len(fmt.Sprint(len(lines)))

	var sb strings.Builder
	for i, line := range lines {
		if !r.opts.HideLineNumbers {
			sb.WriteString(theme.DiagramLineNumberStyle.Render(fmt.Sprintf("%*d ", width, i+1)))
			sb.WriteString(theme.DiagramLineNumberStyle.Render("│ "))
		}
		sb.WriteString(highlightLine(line))
		if i < len(lines)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// highlightLine styles one line of a definition
func highlightLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	if strings.HasPrefix(trimmed, "%%") {
		return indent + theme.DiagramCommentStyle.Render(trimmed)
	}

	first, rest, _ := strings.Cut(trimmed, " ")
	if headers[first] || keywords[first] {
		out := indent + theme.DiagramKeywordStyle.Render(first)
		if rest != "" {
			out += " " + highlightBody(rest)
		}
		return out
	}
	return indent + highlightBody(trimmed)
}

// span is a styled byte range of a statement
type span struct {
	end   int
	start int
	style lipgloss.Style
}

// highlightBody styles arrows and labels in a statement, leaving other text plain
func highlightBody(s string) string {
	var spans []span
	for _, loc := range labelPattern.FindAllStringIndex(s, -1) {
		spans = append(spans, span{end: loc[1], start: loc[0], style: theme.DiagramLabelStyle})
	}
	labels := len(spans)
	for _, loc := range arrowPattern.FindAllStringIndex(s, -1) {
		if overlaps(loc[0], loc[1], spans[:labels]) {
			continue
		}
		spans = append(spans, span{end: loc[1], start: loc[0], style: theme.DiagramArrowStyle})
	}
	if len(spans) == 0 {
		return theme.DiagramTextStyle.Render(s)
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var sb strings.Builder
	pos := 0
	for _, sp := range spans {
		if sp.start < pos {
			continue
		}
		if sp.start > pos {
			sb.WriteString(theme.DiagramTextStyle.Render(s[pos:sp.start]))
		}
		sb.WriteString(sp.style.Render(s[sp.start:sp.end]))
		pos = sp.end
	}
	if pos < len(s) {
		sb.WriteString(theme.DiagramTextStyle.Render(s[pos:]))
	}
	return sb.String()
}

func overlaps(start, end int, spans []span) bool {
	for _, sp := range spans {
		if start < sp.end && end > sp.start {
			return true
		}
	}
	return false
}
