package model

// Kind names a request for logging.
type Kind string

const (
	KindInit            Kind = "init"
	KindAddItem         Kind = "addItem"
	KindDoneItem        Kind = "doneItem"
	KindEditItem        Kind = "editItem"
	KindRemoveDoneItems Kind = "removeDoneItems"
	KindToggleEditMode  Kind = "toggleEditMode"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindInit, KindAddItem, KindDoneItem, KindEditItem, KindRemoveDoneItems, KindToggleEditMode:
		return true
	default:
		return false
	}
}

// Request is the closed set of updates a Model accepts.
type Request interface {
	Kind() Kind
	isRequest()
}

// Init replaces the whole list. Nil Items means an empty list.
type Init struct {
	Items []Task
}

// AddItem appends a task that is not done.
type AddItem struct {
	Text string
}

// DoneItem flips the done flag of the task at Index.
type DoneItem struct {
	Index int
}

// EditItem overwrites the text of the task at Index.
type EditItem struct {
	Index int
	Text  string
}

// RemoveDoneItems drops every done task, keeping the order of the rest.
type RemoveDoneItems struct{}

// ToggleEditMode switches between list mode and edit mode.
type ToggleEditMode struct{}

func (Init) Kind() Kind            { return KindInit }
func (AddItem) Kind() Kind         { return KindAddItem }
func (DoneItem) Kind() Kind        { return KindDoneItem }
func (EditItem) Kind() Kind        { return KindEditItem }
func (RemoveDoneItems) Kind() Kind { return KindRemoveDoneItems }
func (ToggleEditMode) Kind() Kind  { return KindToggleEditMode }

func (Init) isRequest()            {}
func (AddItem) isRequest()         {}
func (DoneItem) isRequest()        {}
func (EditItem) isRequest()        {}
func (RemoveDoneItems) isRequest() {}
func (ToggleEditMode) isRequest()  {}
