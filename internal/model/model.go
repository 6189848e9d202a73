package model

import "fmt"

// Listener is notified after every applied request.
type Listener interface {
	OnModelChanged(m *Model)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(m *Model)

func (f ListenerFunc) OnModelChanged(m *Model) { f(m) }

// Snapshot is a read-only copy of the model taken for rendering.
type Snapshot struct {
	Items      []Task
	IsEditMode bool
}

// Model is the sole owner of the task list and the edit-mode flag.
// It is not safe for concurrent use; hosts serialize calls to Update.
type Model struct {
	items      []Task
	isEditMode bool
	listener   Listener
}

func New(listener Listener) *Model {
	return &Model{
		items:    []Task{},
		listener: listener,
	}
}

// SetListener replaces the listener notified by later updates. nil silences them.
func (m *Model) SetListener(listener Listener) {
	m.listener = listener
}

func (m *Model) Len() int { return len(m.items) }

func (m *Model) IsEditMode() bool { return m.isEditMode }

func (m *Model) Snapshot() Snapshot {
	return Snapshot{
		Items:      cloneTasks(m.items),
		IsEditMode: m.isEditMode,
	}
}

// Update applies req and then notifies the listener. A rejected request
// leaves the model untouched and notifies nobody.
func (m *Model) Update(req Request) error {
	switch r := req.(type) {
	case Init:
		if r.Items == nil {
			m.items = []Task{}
		} else {
			m.items = cloneTasks(r.Items)
		}
	case AddItem:
		m.items = append(m.items, Task{Text: r.Text, Done: false})
	case DoneItem:
		if err := m.checkIndex(r.Kind(), r.Index); err != nil {
			return err
		}
		m.items[r.Index].Done = !m.items[r.Index].Done
	case EditItem:
		if err := m.checkIndex(r.Kind(), r.Index); err != nil {
			return err
		}
		m.items[r.Index].Text = r.Text
	case RemoveDoneItems:
		kept := make([]Task, 0, len(m.items))
		for _, t := range m.items {
			if !t.Done {
				kept = append(kept, t)
			}
		}
		m.items = kept
	case ToggleEditMode:
		m.isEditMode = !m.isEditMode
	default:
		return fmt.Errorf("%w: %T", ErrUnknownRequest, req)
	}

	if m.listener != nil {
		m.listener.OnModelChanged(m)
	}
	return nil
}

func (m *Model) checkIndex(kind Kind, index int) error {
	if index < 0 || index >= len(m.items) {
		return fmt.Errorf("%w: %s index %d (len %d)", ErrIndexOutOfRange, kind, index, len(m.items))
	}
	return nil
}
