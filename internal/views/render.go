package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	boxChecked   = "☑"
	boxUnchecked = "☐"
	pencil       = "✎"
)

// TerminalRenderer draws the view model for the terminal host. The fields
// carry host-only decoration that is not part of the model.
type TerminalRenderer struct {
	Cursor    int
	InputView string
	Editing   int
	EditView  string
	KeyHints  map[string]string
}

func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Cursor: NoIndex, Editing: NoIndex}
}

func (r *TerminalRenderer) Render(root Node) string {
	var lines []string
	var buttons []string
	for _, child := range root.Children {
		switch child.Kind {
		case KindHeading:
			lines = append(lines, r.header(child.Text, root))
		case KindTextInput:
			input := r.InputView
			if input == "" {
				input = mutedStyle.Render("(" + child.ID + ")")
			}
			lines = append(lines, input)
		case KindList:
			lines = append(lines, r.list(child)...)
		case KindButton:
			buttons = append(buttons, r.button(child))
		}
	}
	if len(buttons) > 0 {
		lines = append(lines, strings.Join(buttons, " "))
	}
	return strings.Join(lines, "\n")
}

func (r *TerminalRenderer) header(title string, root Node) string {
	done, total := 0, 0
	if list, ok := root.FindKind(KindList); ok {
		for _, item := range list.Children {
			total++
			if item.Class == ClassDone {
				done++
			}
		}
	}
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		headerStyle.Render(title),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), total-done,
		accentStyle.Render("Total"), total,
	)
}

func (r *TerminalRenderer) list(n Node) []string {
	if len(n.Children) == 0 {
		return []string{mutedStyle.Render("  (no items)")}
	}
	out := make([]string, 0, len(n.Children))
	for i, item := range n.Children {
		prefix := "  "
		if i == r.Cursor {
			prefix = selectedStyle.Render("> ")
		}
		var line string
		switch item.Kind {
		case KindItemInput:
			if i == r.Editing && r.EditView != "" {
				line = r.EditView
			} else {
				line = fmt.Sprintf("%s %s", accentStyle.Render(pencil), item.Value)
			}
		default:
			if item.Class == ClassDone {
				line = fmt.Sprintf("%s %s", successStyle.Render(boxChecked), doneStyle.Render(item.Text))
			} else {
				line = fmt.Sprintf("%s %s", mutedStyle.Render(boxUnchecked), item.Text)
			}
		}
		out = append(out, prefix+line)
	}
	return out
}

func (r *TerminalRenderer) button(n Node) string {
	label := n.Text
	if hint := r.KeyHints[n.ID]; hint != "" {
		label = fmt.Sprintf("%s (%s)", label, hint)
	}
	if n.Disabled {
		return mutedStyle.Render("[" + label + "]")
	}
	return accentStyle.Render("[" + label + "]")
}

type Frame struct {
	Body       string
	StatusLine string
	IsError    bool
	Help       string
	Footer     string
}

func RenderFrame(data Frame) string {
	lines := []string{panelStyle.Render(data.Body)}
	if data.StatusLine != "" {
		if data.IsError {
			lines = append(lines, errorStyle.Render("error: "+data.StatusLine))
		} else {
			lines = append(lines, statusStyle.Render(data.StatusLine))
		}
	}
	if data.Help != "" {
		lines = append(lines, data.Help)
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
