package commands

import (
	"errors"
	"testing"
)

func TestDecodeEnvelopes(t *testing.T) {
	cmd, err := Decode([]byte(`{"action":"addItem","inputField":"inputText","fields":{"inputText":"Buy milk"}}`))
	if err != nil {
		t.Fatalf("decode add: %v", err)
	}
	if cmd.Type != TypeAdd || cmd.Add == nil || cmd.Add.InputField != "inputText" || cmd.Add.Fields["inputText"] != "Buy milk" {
		t.Fatalf("unexpected add command: %+v", cmd)
	}

	cmd, err = Decode([]byte(`{"action":"doneItem","index":3}`))
	if err != nil {
		t.Fatalf("decode done: %v", err)
	}
	if cmd.Done == nil || cmd.Done.Index != 3 {
		t.Fatalf("unexpected done command: %+v", cmd)
	}

	cmd, err = Decode([]byte(`{"action":"editItem","index":0,"value":""}`))
	if err != nil {
		t.Fatalf("decode edit: %v", err)
	}
	if cmd.Edit == nil || cmd.Edit.Index != 0 || cmd.Edit.Text != "" {
		t.Fatalf("unexpected edit command: %+v", cmd)
	}

	cmd, err = Decode([]byte(`{"action":"initAndGo","items":[{"text":"A"},{"text":"B","done":true}]}`))
	if err != nil {
		t.Fatalf("decode init: %v", err)
	}
	if cmd.Init == nil || len(cmd.Init.Items) != 2 || !cmd.Init.Items[1].Done {
		t.Fatalf("unexpected init command: %+v", cmd.Init)
	}

	for _, body := range []string{`{"action":"removeDoneItems"}`, `{"action":"toggleEditMode"}`} {
		if _, err := Decode([]byte(body)); err != nil {
			t.Fatalf("decode %s: %v", body, err)
		}
	}
}

func TestDecodeRejectsInvalidEnvelopes(t *testing.T) {
	cases := []struct {
		body string
		code ErrorCode
	}{
		{``, ErrCodeEmptyInput},
		{`{`, ErrCodeInvalidEnvelope},
		{`{}`, ErrCodeInvalidEnvelope},
		{`{"action":"explode"}`, ErrCodeInvalidEnvelope},
		{`{"action":"addItem"}`, ErrCodeInvalidEnvelope},
		{`{"action":"doneItem"}`, ErrCodeInvalidEnvelope},
		{`{"action":"doneItem","index":-1}`, ErrCodeInvalidEnvelope},
		{`{"action":"doneItem","index":1.5}`, ErrCodeInvalidEnvelope},
		{`{"action":"editItem","index":0}`, ErrCodeInvalidEnvelope},
		{`{"action":"toggleEditMode","extra":true}`, ErrCodeInvalidEnvelope},
	}
	for _, tc := range cases {
		_, err := Decode([]byte(tc.body))
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != tc.code {
			t.Fatalf("decode %q: expected %s, got %v", tc.body, tc.code, err)
		}
	}
}
