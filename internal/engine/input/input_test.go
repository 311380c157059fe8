package input

import "testing"

type fakeSource struct {
	frames [][]Event
}

func (f *fakeSource) Poll(dst []Event) []Event {
	if len(f.frames) == 0 {
		return dst
	}
	dst = append(dst, f.frames[0]...)
	f.frames = f.frames[1:]
	return dst
}

func TestUpdateBuffersOneFrame(t *testing.T) {
	src := &fakeSource{frames: [][]Event{
		{{Type: EventKeyDown, Key: KeyForward}, {Type: EventPointerMove, X: 10, Y: 20}},
		{{Type: EventKeyUp, Key: KeyForward}},
	}}
	in := New(src)

	if in.Update() {
		t.Fatal("unexpected quit on first frame")
	}
	if len(in.Events()) != 2 {
		t.Fatalf("expected 2 events, got %d", len(in.Events()))
	}
	if !in.IsKeyPressed(KeyForward) {
		t.Error("expected forward key pressed")
	}

	in.Update()
	if len(in.Events()) != 1 {
		t.Fatalf("expected previous frame cleared, got %d events", len(in.Events()))
	}
	if in.IsKeyPressed(KeyForward) {
		t.Error("key-up must not count as pressed")
	}

	in.Update()
	if len(in.Events()) != 0 {
		t.Errorf("expected no events, got %d", len(in.Events()))
	}
}

func TestUpdateReportsQuit(t *testing.T) {
	src := &fakeSource{frames: [][]Event{
		{{Type: EventPointerMove}, {Type: EventQuit}},
	}}
	in := New(src)

	if !in.Update() {
		t.Error("expected Update to report quit")
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{KeyForward.String(), "forward"},
		{KeyExit.String(), "exit"},
		{Key(99).String(), "unknown"},
		{EventPointerMove.String(), "pointer-move"},
		{EventType(99).String(), "none"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
