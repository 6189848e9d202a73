package views

import (
	"html"
	"strings"
	"testing"

	"github.com/charmbracelet/x/exp/golden"

	"github.com/sandeepkv93/samtodo/internal/model"
)

// renderCycle runs reqs through a model wired to an HTML presenter and
// returns the last displayed markup.
func renderCycle(t *testing.T, reqs ...model.Request) string {
	t.Helper()
	var container Container
	m := model.New(NewPresenter(NewHTMLRenderer(), &container, Options{}))
	for _, req := range reqs {
		if err := m.Update(req); err != nil {
			t.Fatalf("%s: %v", req.Kind(), err)
		}
	}
	return container.Markup()
}

func TestHTMLGoldenEmptyList(t *testing.T) {
	out := renderCycle(t, model.Init{Items: []model.Task{}})
	golden.RequireEqual(t, []byte(out))
}

func TestHTMLGoldenOneItem(t *testing.T) {
	out := renderCycle(t, model.Init{}, model.AddItem{Text: "Buy milk"})
	golden.RequireEqual(t, []byte(out))
}

func TestHTMLGoldenDoneItem(t *testing.T) {
	out := renderCycle(t,
		model.Init{},
		model.AddItem{Text: "Buy milk"},
		model.AddItem{Text: "Walk dog"},
		model.DoneItem{Index: 0},
	)
	golden.RequireEqual(t, []byte(out))
}

func TestHTMLGoldenEditMode(t *testing.T) {
	out := renderCycle(t,
		model.AddItem{Text: "A"},
		model.ToggleEditMode{},
		model.EditItem{Index: 0, Text: "A2"},
	)
	golden.RequireEqual(t, []byte(out))
}

func TestHTMLEscapesTaskText(t *testing.T) {
	out := renderCycle(t,
		model.AddItem{Text: `<script>alert(1)</script>Tom & "Jerry"`},
	)
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected markup in task text to be escaped: %s", out)
	}
	if !strings.Contains(out, `&lt;script&gt;alert(1)&lt;/script&gt;Tom &amp; &#34;Jerry&#34;`) {
		t.Fatalf("expected escaped text in output: %s", out)
	}

	out = renderCycle(t,
		model.AddItem{Text: `say "hi"`},
		model.ToggleEditMode{},
	)
	if !strings.Contains(out, `value="say &#34;hi&#34;"`) {
		t.Fatalf("expected escaped attribute value: %s", out)
	}
}

func TestHTMLKeepsTaskTextIntact(t *testing.T) {
	cases := []struct {
		text string
		list string
		edit string
	}{
		{`Buy <milk>`, `class="">Buy &lt;milk&gt;</li>`, `value="Buy &lt;milk&gt;"`},
		{`a&amp;b`, `class="">a&amp;amp;b</li>`, `value="a&amp;amp;b"`},
		{`a<b and c>d`, `class="">a&lt;b and c&gt;d</li>`, `value="a&lt;b and c&gt;d"`},
		{`it's`, `class="">it&#39;s</li>`, `value="it&#39;s"`},
	}
	for _, tc := range cases {
		out := renderCycle(t, model.AddItem{Text: tc.text})
		if !strings.Contains(out, tc.list) {
			t.Fatalf("%q: expected %q in list markup:\n%s", tc.text, tc.list, out)
		}
		if got := html.UnescapeString(tc.list[len(`class="">`) : len(tc.list)-len("</li>")]); got != tc.text {
			t.Fatalf("%q: list text decodes to %q", tc.text, got)
		}

		out = renderCycle(t, model.AddItem{Text: tc.text}, model.ToggleEditMode{})
		if !strings.Contains(out, tc.edit) {
			t.Fatalf("%q: expected %q in edit markup:\n%s", tc.text, tc.edit, out)
		}
		if got := html.UnescapeString(strings.TrimSuffix(strings.TrimPrefix(tc.edit, `value="`), `"`)); got != tc.text {
			t.Fatalf("%q: input value decodes to %q", tc.text, got)
		}
	}
}
