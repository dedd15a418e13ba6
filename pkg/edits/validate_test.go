package edits_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/inkwell/pkg/edits"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		es      []edits.TextEdit
		textLen int
		wantErr bool
	}{
		{
			name:    "valid edits",
			es:      []edits.TextEdit{{Start: 0, End: 3}, {Start: 3, End: 5}},
			textLen: 5,
		},
		{
			name:    "negative start",
			es:      []edits.TextEdit{{Start: -1, End: 3}},
			textLen: 5,
			wantErr: true,
		},
		{
			name:    "end before start",
			es:      []edits.TextEdit{{Start: 4, End: 2}},
			textLen: 5,
			wantErr: true,
		},
		{
			name:    "end past text",
			es:      []edits.TextEdit{{Start: 0, End: 6}},
			textLen: 5,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := edits.Validate(tt.es, tt.textLen)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPrepare(t *testing.T) {
	t.Parallel()

	t.Run("sorts edits", func(t *testing.T) {
		t.Parallel()
		es := []edits.TextEdit{
			{Start: 4, End: 5, Text: "b"},
			{Start: 0, End: 1, Text: "a"},
		}
		got, err := edits.Prepare(es, 10)
		if err != nil {
			t.Fatalf("Prepare() error = %v", err)
		}
		if got[0].Start != 0 || got[1].Start != 4 {
			t.Errorf("Prepare() order = %v", got)
		}
	})

	t.Run("detects conflicts", func(t *testing.T) {
		t.Parallel()
		es := []edits.TextEdit{
			{Start: 0, End: 4},
			{Start: 2, End: 6},
		}
		_, err := edits.Prepare(es, 10)
		var conflict *edits.ConflictError
		if !errors.As(err, &conflict) {
			t.Errorf("Prepare() error = %v, want ConflictError", err)
		}
	})

	t.Run("drops empty inserts", func(t *testing.T) {
		t.Parallel()
		es := []edits.TextEdit{
			{Start: 2, End: 2, Text: ""},
			{Start: 0, End: 0, Text: "x"},
		}
		got, err := edits.Prepare(es, 10)
		if err != nil {
			t.Fatalf("Prepare() error = %v", err)
		}
		if len(got) != 1 || got[0].Text != "x" {
			t.Errorf("Prepare() = %v, want only the real insert", got)
		}
	})

	t.Run("only empty inserts", func(t *testing.T) {
		t.Parallel()
		es := []edits.TextEdit{{Start: 1, End: 1, Text: ""}}
		got, err := edits.Prepare(es, 10)
		if err != nil || got != nil {
			t.Errorf("Prepare() = %v, %v, want nil, nil", got, err)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		got, err := edits.Prepare(nil, 0)
		if err != nil || got != nil {
			t.Errorf("Prepare(nil) = %v, %v", got, err)
		}
	})
}
