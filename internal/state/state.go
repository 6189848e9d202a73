package state

import "github.com/sandeepkv93/samtodo/internal/model"

// State holds presentation flags derived from a model snapshot.
type State struct {
	HasDoneItems bool
	DoneCount    int
	PendingCount int
	Total        int
}

func Compute(snap model.Snapshot) State {
	done := 0
	for _, item := range snap.Items {
		if item.Done {
			done++
		}
	}
	return State{
		HasDoneItems: done > 0,
		DoneCount:    done,
		PendingCount: len(snap.Items) - done,
		Total:        len(snap.Items),
	}
}
