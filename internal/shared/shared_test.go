package shared

import (
	"path/filepath"
	"testing"
)

func TestFormatRuntime(t *testing.T) {
	tc := []struct {
		name    string
		minutes int
		want    string
	}{
		{
			name:    "hours and minutes",
			minutes: 135,
			want:    "2h 15m",
		},
		{
			name:    "under an hour",
			minutes: 45,
			want:    "45m",
		},
		{
			name:    "exact hour",
			minutes: 120,
			want:    "2h 0m",
		},
		{
			name:    "zero is unknown",
			minutes: 0,
			want:    "?",
		},
		{
			name:    "negative is unknown",
			minutes: -10,
			want:    "?",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRuntime(tt.minutes)
			if got != tt.want {
				t.Errorf("FormatRuntime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVisibilityString(t *testing.T) {
	if got := VisibilityString(true); got != "Public" {
		t.Errorf("expected 'Public', got %s", got)
	}
	if got := VisibilityString(false); got != "Private" {
		t.Errorf("expected 'Private', got %s", got)
	}
}

func TestMarshalJSON(t *testing.T) {
	payload := map[string]string{"key": "value"}

	t.Run("Compact", func(t *testing.T) {
		data, err := MarshalJSON(payload, false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(data) != `{"key":"value"}` {
			t.Errorf("unexpected compact output: %s", string(data))
		}
	})

	t.Run("Indented", func(t *testing.T) {
		data, err := MarshalJSON(payload, true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := "{\n  \"key\": \"value\"\n}"
		if string(data) != want {
			t.Errorf("unexpected indented output: %s", string(data))
		}
	})
}

func TestGenerateID(t *testing.T) {
	first := GenerateID()
	second := GenerateID()

	if first == "" {
		t.Error("expected non-empty id")
	}
	if first == second {
		t.Error("expected distinct ids")
	}
}

func TestNewFileLogger(t *testing.T) {
	t.Run("Creates Parent Directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "app.log")

		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if logger == nil {
			t.Fatal("expected a logger")
		}

		logger.Info("hello")
	})
}
