package model

import (
	"errors"
	"strings"
)

var (
	ErrIndexOutOfRange = errors.New("model: index out of range")
	ErrUnknownRequest  = errors.New("model: unknown request")
)

// Task is one todo entry. Its position in the owning Model is its only identity.
type Task struct {
	Text string `json:"text" toml:"text"`
	Done bool   `json:"done" toml:"done"`
}

func (t Task) IsBlank() bool {
	return strings.TrimSpace(t.Text) == ""
}

func cloneTasks(in []Task) []Task {
	out := make([]Task, len(in))
	copy(out, in)
	return out
}
