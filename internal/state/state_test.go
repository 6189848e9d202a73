package state

import (
	"testing"

	"github.com/sandeepkv93/samtodo/internal/model"
)

func TestComputeHasDoneItems(t *testing.T) {
	cases := []struct {
		name  string
		items []model.Task
		want  bool
		done  int
	}{
		{"empty", nil, false, 0},
		{"none done", []model.Task{{Text: "A"}, {Text: "B"}}, false, 0},
		{"one done", []model.Task{{Text: "A"}, {Text: "B", Done: true}}, true, 1},
		{"all done", []model.Task{{Text: "A", Done: true}, {Text: "B", Done: true}}, true, 2},
	}
	for _, tc := range cases {
		got := Compute(model.Snapshot{Items: tc.items})
		if got.HasDoneItems != tc.want {
			t.Fatalf("%s: HasDoneItems = %v, want %v", tc.name, got.HasDoneItems, tc.want)
		}
		if got.DoneCount != tc.done || got.PendingCount != len(tc.items)-tc.done || got.Total != len(tc.items) {
			t.Fatalf("%s: unexpected counters %+v", tc.name, got)
		}
	}
}

func TestComputeIsFreshOnEveryChange(t *testing.T) {
	var last State
	m := model.New(model.ListenerFunc(func(m *model.Model) {
		last = Compute(m.Snapshot())
	}))

	_ = m.Update(model.AddItem{Text: "A"})
	if last.HasDoneItems {
		t.Fatal("expected no done items after add")
	}
	_ = m.Update(model.DoneItem{Index: 0})
	if !last.HasDoneItems {
		t.Fatal("expected done items after doneItem")
	}
	_ = m.Update(model.RemoveDoneItems{})
	if last.HasDoneItems || last.Total != 0 {
		t.Fatalf("expected empty state after removal, got %+v", last)
	}
}
