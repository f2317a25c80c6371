package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2099-01-01T00:00:00Z", want: time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2099-01-01T03:00:00+03:00", want: time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2099-01-01T00:00:00", want: time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2099-01-01T00:00:00.25", want: time.Date(2099, 1, 1, 0, 0, 0, 250_000_000, time.UTC)},
		{in: "2099-01-01T08:15", want: time.Date(2099, 1, 1, 8, 15, 0, 0, time.UTC)},
		{in: "2099-01-01", want: time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)},
		{in: "tomorrow", wantErr: true},
		{in: "2099-13-01", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTimestamp(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseTimestamp(%q) err=nil, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseTimestamp(%q) err=%v, want nil", tt.in, err)
		}
		if !got.Equal(tt.want) || got.Location() != time.UTC {
			t.Fatalf("ParseTimestamp(%q)=%v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTodoRequest_MissingMembersAreZero(t *testing.T) {
	var req TodoRequest
	if err := json.Unmarshal([]byte(`{"id":4}`), &req); err != nil {
		t.Fatalf("unmarshal err=%v", err)
	}

	todo := req.ToDomain()
	if todo.ID != 4 || todo.Name != "" || !todo.DueDate.IsZero() || todo.IsCompleted {
		t.Fatalf("todo=%+v, want zero values except id", todo)
	}
}
