package command

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

// recorder is a fake injector that logs calls and can be told to fail.
type recorder struct {
	calls []string
	fail  error
}

func (r *recorder) TypeText(text string) error {
	r.calls = append(r.calls, "type:"+text)
	return r.fail
}

func (r *recorder) PressKey(name string) error {
	r.calls = append(r.calls, "key:"+name)
	return r.fail
}

func (r *recorder) PressChord(names []string) error {
	r.calls = append(r.calls, "chord:"+strings.Join(names, "+"))
	return r.fail
}

func TestFitToWidth(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		hasWidth bool
		wantText string
		wantTab  bool
	}{
		{"hello", 0, false, "hello", false},
		{"hello", 10, true, "hello", true},
		{"hello", 5, true, "hello", false},
		{"hello", 3, true, "hel", false},
		{"", 4, true, "", true},
		{"héllo", 4, true, "héll", false},
	}

	for _, tt := range tests {
		gotText, gotTab := fitToWidth(tt.text, tt.width, tt.hasWidth)
		if gotText != tt.wantText || gotTab != tt.wantTab {
			t.Errorf("fitToWidth(%q, %d, %v) = %q, %v, want %q, %v",
				tt.text, tt.width, tt.hasWidth, gotText, gotTab, tt.wantText, tt.wantTab)
		}
	}
}

func TestTypeCommandExecute(t *testing.T) {
	tests := []struct {
		name string
		cmd  typeCommand
		want []string
	}{
		{"plain", typeCommand{text: "hi"}, []string{"type:hi"}},
		{"with tab", typeCommand{text: "hi", tab: true}, []string{"type:hi", "key:tab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			if err := tt.cmd.Execute(rec); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if fmt.Sprint(rec.calls) != fmt.Sprint(tt.want) {
				t.Errorf("calls = %v, want %v", rec.calls, tt.want)
			}
		})
	}
}

func TestTypeCommandPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	rec := &recorder{fail: boom}
	cmd := typeCommand{text: "hi", tab: true}
	if err := cmd.Execute(rec); !errors.Is(err, boom) {
		t.Errorf("Execute() error = %v, want boom", err)
	}
	// Failure on the type call stops before the tab.
	if len(rec.calls) != 1 {
		t.Errorf("calls = %v, want 1 call", rec.calls)
	}
}

func TestPressCommandSingle(t *testing.T) {
	rec := &recorder{}
	cmd := pressCommand{keys: []string{"enter"}, repeat: 3}
	if err := cmd.Execute(rec); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := []string{"key:enter", "key:enter", "key:enter"}
	if fmt.Sprint(rec.calls) != fmt.Sprint(want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestPressCommandChord(t *testing.T) {
	rec := &recorder{}
	cmd := pressCommand{keys: []string{"ctrl", "shift", "esc"}, repeat: 2}
	if err := cmd.Execute(rec); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := []string{"chord:ctrl+shift+esc", "chord:ctrl+shift+esc"}
	if fmt.Sprint(rec.calls) != fmt.Sprint(want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestPressCommandChordAllFourKeys(t *testing.T) {
	rec := &recorder{}
	cmd := pressCommand{keys: []string{"ctrl", "alt", "shift", "f4"}, repeat: 1}
	if err := cmd.Execute(rec); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := []string{"chord:ctrl+alt+shift+f4"}
	if fmt.Sprint(rec.calls) != fmt.Sprint(want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestPressCommandOversizeChord(t *testing.T) {
	rec := &recorder{}
	cmd := pressCommand{keys: []string{"a", "b", "c", "d", "e", "f"}, repeat: 2}
	if err := cmd.Execute(rec); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("calls = %v, want none for oversize chord", rec.calls)
	}
}

func TestPauseCommand(t *testing.T) {
	var slept []time.Duration
	cmd := pauseCommand{
		seconds: 3,
		sleep:   func(d time.Duration) { slept = append(slept, d) },
	}
	if err := cmd.Execute(nil); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(slept) != 3 {
		t.Fatalf("slept %d times, want 3", len(slept))
	}
	for _, d := range slept {
		if d != time.Second {
			t.Errorf("slept %v, want 1s increments", d)
		}
	}
}

func TestNoopCommand(t *testing.T) {
	rec := &recorder{}
	if err := (noopCommand{}).Execute(rec); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("calls = %v, want none", rec.calls)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{&typeCommand{text: "hi"}, `type "hi"`},
		{&typeCommand{text: "hi", tab: true}, `type "hi" + tab`},
		{&pressCommand{keys: []string{"enter"}, repeat: 1}, "press enter"},
		{&pressCommand{keys: []string{"ctrl", "c"}, repeat: 2}, "press ctrl+c x2"},
		{&pauseCommand{seconds: 2}, "pause 2s"},
		{noopCommand{}, "noop"},
	}

	for _, tt := range tests {
		if got := tt.cmd.Describe(); got != tt.want {
			t.Errorf("Describe() = %q, want %q", got, tt.want)
		}
	}
}
