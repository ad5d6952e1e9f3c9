package domain

import (
	"errors"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Buy milk", "Buy milk", true},
		{"  padded \t", "padded", true},
		{"", "", false},
		{"   ", "", false},
		{"\n\t", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeText(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NormalizeText(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEncodeTasks_WireFormat(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want string
	}{
		{
			name: "plain",
			task: Task{ID: "abc", Text: "Buy milk", Completed: true, Timestamp: "2024-01-02T03:04:05Z"},
			want: `[{"id":"abc","text":"Buy milk","completed":true,"timestamp":"2024-01-02T03:04:05Z"}]`,
		},
		{
			name: "html characters unescaped",
			task: Task{ID: "a", Text: "fish & <chips>", Timestamp: "t"},
			want: `[{"id":"a","text":"fish & <chips>","completed":false,"timestamp":"t"}]`,
		},
		{
			name: "quotes and unicode",
			task: Task{ID: "b", Text: `say "hi" café`, Timestamp: "t"},
			want: `[{"id":"b","text":"say \"hi\" café","completed":false,"timestamp":"t"}]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeTasks([]Task{tt.task})
			if err != nil {
				t.Fatalf("EncodeTasks() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("EncodeTasks() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeTasks_NilIsEmptyArray(t *testing.T) {
	got, err := EncodeTasks(nil)
	if err != nil {
		t.Fatalf("EncodeTasks() error: %v", err)
	}
	if got != "[]" {
		t.Errorf("EncodeTasks(nil) = %s, want []", got)
	}
}

func TestDecodeTasks(t *testing.T) {
	// Value as written by the browser component.
	raw := `[{"id":"k3j9x0a1b","text":"Walk dog","completed":false,"timestamp":"1/2/2024, 3:04:05 PM"}]`
	tasks, err := DecodeTasks(raw)
	if err != nil {
		t.Fatalf("DecodeTasks() error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("len = %d, want 1", len(tasks))
	}
	if tasks[0].ID != "k3j9x0a1b" || tasks[0].Text != "Walk dog" || tasks[0].Completed {
		t.Errorf("decoded = %+v", tasks[0])
	}
	if tasks[0].Timestamp != "1/2/2024, 3:04:05 PM" {
		t.Errorf("Timestamp = %q", tasks[0].Timestamp)
	}
}

func TestDecodeTasks_Null(t *testing.T) {
	tasks, err := DecodeTasks("null")
	if err != nil {
		t.Fatalf("DecodeTasks(null) error: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("DecodeTasks(null) = %#v, want empty non-nil", tasks)
	}
}

func TestDecodeTasks_Malformed(t *testing.T) {
	for _, raw := range []string{"not json", "{", `{"id":"x"}`, `[{"completed":"yes"}]`} {
		if _, err := DecodeTasks(raw); !errors.Is(err, ErrMalformedData) {
			t.Errorf("DecodeTasks(%q) error = %v, want ErrMalformedData", raw, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	in := []Task{
		{ID: "1", Text: "a", Completed: false, Timestamp: "t1"},
		{ID: "2", Text: "b \"quoted\"", Completed: true, Timestamp: "t2"},
		{ID: "3", Text: "ünïcode", Completed: false, Timestamp: "t3"},
	}
	raw, err := EncodeTasks(in)
	if err != nil {
		t.Fatalf("EncodeTasks() error: %v", err)
	}
	out, err := DecodeTasks(raw)
	if err != nil {
		t.Fatalf("DecodeTasks() error: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("task %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{"all", FilterAll, false},
		{"Active", FilterActive, false},
		{" COMPLETED ", FilterCompleted, false},
		{"done", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilter(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFilter) {
					t.Errorf("ParseFilter(%q) error = %v, want ErrInvalidFilter", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseFilter(%q) = (%q, %v), want %q", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestFilter_Match(t *testing.T) {
	open := Task{ID: "1"}
	done := Task{ID: "2", Completed: true}

	tests := []struct {
		f        Filter
		openWant bool
		doneWant bool
	}{
		{FilterAll, true, true},
		{FilterActive, true, false},
		{FilterCompleted, false, true},
	}
	for _, tt := range tests {
		if got := tt.f.Match(open); got != tt.openWant {
			t.Errorf("%s.Match(open) = %v", tt.f, got)
		}
		if got := tt.f.Match(done); got != tt.doneWant {
			t.Errorf("%s.Match(done) = %v", tt.f, got)
		}
	}
}

func TestFilter_Title(t *testing.T) {
	if got := FilterCompleted.Title(); got != "Completed" {
		t.Errorf("Title() = %q, want %q", got, "Completed")
	}
}
