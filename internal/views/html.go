package views

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/sandeepkv93/samtodo/internal/commands"
)

// HTMLRenderer produces the markup fragment written into the page container.
// Event attributes call the samtodo.* functions defined by the page shell.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

func (r *HTMLRenderer) Render(root Node) string {
	var b strings.Builder
	r.render(&b, root)
	return b.String()
}

func (r *HTMLRenderer) render(b *strings.Builder, n Node) {
	switch n.Kind {
	case KindApp:
		for _, child := range n.Children {
			r.render(b, child)
			b.WriteString("\n")
		}
	case KindHeading:
		fmt.Fprintf(b, "<h2>%s</h2>", r.escape(n.Text))
	case KindTextInput:
		fmt.Fprintf(b, `<input id="%s" type="text" />`, r.escape(n.ID))
	case KindButton:
		b.WriteString("<button")
		if n.ID != "" {
			fmt.Fprintf(b, ` id="%s"`, r.escape(n.ID))
		}
		if n.OnClick != nil {
			fmt.Fprintf(b, ` onclick="%s"`, r.handler(n.OnClick))
		}
		if n.Disabled {
			b.WriteString(` disabled="disabled"`)
		}
		fmt.Fprintf(b, ">%s</button>", r.escape(n.Text))
	case KindList:
		b.WriteString("<ul>\n")
		for _, child := range n.Children {
			r.render(b, child)
			b.WriteString("\n")
		}
		b.WriteString("</ul>")
	case KindItem:
		b.WriteString("<li")
		if n.OnClick != nil {
			fmt.Fprintf(b, ` onclick="%s"`, r.handler(n.OnClick))
		}
		fmt.Fprintf(b, ` class="%s">%s</li>`, r.escape(n.Class), r.escape(n.Text))
	case KindItemInput:
		b.WriteString("<li><input")
		if n.OnChange != nil {
			fmt.Fprintf(b, ` onchange="%s"`, r.handler(n.OnChange))
		}
		fmt.Fprintf(b, ` value="%s"/></li>`, r.escape(n.Value))
	}
}

func (r *HTMLRenderer) handler(bind *Binding) string {
	switch bind.Action {
	case commands.TypeAdd:
		return fmt.Sprintf("samtodo.addItem('%s')", r.escape(bind.InputField))
	case commands.TypeDone:
		return fmt.Sprintf("samtodo.doneItem(%d)", bind.Index)
	case commands.TypeEdit:
		return fmt.Sprintf("samtodo.editItem(event, %d)", bind.Index)
	case commands.TypeRemoveDone:
		return "samtodo.removeDoneItems()"
	case commands.TypeToggleMode:
		return "samtodo.toggleEditMode()"
	default:
		return ""
	}
}

// escape encodes s for element text and quoted attribute values. The browser
// decodes it back to exactly s.
func (r *HTMLRenderer) escape(s string) string {
	return template.HTMLEscapeString(s)
}
