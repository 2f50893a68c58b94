package polymap

import (
	"strings"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{"steps": [
		{"action": "click", "x": 110, "y": 60},
		{"action": "click", "x": 0, "y": 0, "mods": ["shift"]},
		{"action": "hover", "x": 5, "y": 6},
		{"action": "scroll", "dx": 0, "dy": 40},
		{"action": "wait", "frames": 5},
		{"action": "screenshot", "label": "done"}
	]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(runner.steps) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].mods != 0 {
		t.Errorf("step 0 mods = %v, want none", runner.steps[0].mods)
	}
	if runner.steps[1].mods != ModShift {
		t.Errorf("step 1 mods = %v, want shift", runner.steps[1].mods)
	}
	if runner.steps[3].DY != 40 {
		t.Errorf("step 3 dy = %v, want 40", runner.steps[3].DY)
	}
}

func TestLoadScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid json", `{bad json`, "parse script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "drag"}]}`, `unknown action "drag"`},
		{"unknown modifier", `{"steps": [{"action": "click", "mods": ["hyper"]}]}`, `unknown modifier key "hyper"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestRunnerStep_Click(t *testing.T) {
	s, _ := newTestSurface(t, DefaultOptions())

	data := []byte(`{"steps": [{"action": "click", "x": 110, "y": 60}]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	s.SetScriptRunner(runner)

	// First step call: click queues press+release.
	runner.step(s)
	if len(s.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(s.injectQueue))
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	s.processInjectedInput()
	s.processInjectedInput()

	got := s.Controllers()[0].Vertices()
	if len(got) != 1 || got[0] != (Point{100, 50}) {
		t.Errorf("vertices = %v, want [{100 50}]", got)
	}

	runner.step(s)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStep_ModifiedClick(t *testing.T) {
	s, _ := newTestSurface(t, DefaultOptions())

	data := []byte(`{"steps": [
		{"action": "click", "x": 20, "y": 20},
		{"action": "click", "x": 40, "y": 20},
		{"action": "click", "x": 40, "y": 40, "mods": ["cmd"]},
		{"action": "click", "x": 40, "y": 40, "mods": ["shift"]}
	]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	s.SetScriptRunner(runner)

	store := &recordingStore{}
	s.SetEventStore(store)

	for i := 0; i < 20 && !runner.Done(); i++ {
		runner.step(s)
		s.processInjectedInput()
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}

	var types []string
	for _, e := range store.events {
		types = append(types, e.Type.String())
	}
	want := "vertex-added,vertex-added,vertex-undone,region-finalized"
	if got := strings.Join(types, ","); got != want {
		t.Errorf("events = %s, want %s", got, want)
	}
	last := store.events[len(store.events)-1]
	if len(last.Vertices) != 1 || last.Vertices[0] != (Point{10, 10}) {
		t.Errorf("finalized = %v, want [{10 10}]", last.Vertices)
	}
}

func TestRunnerStep_Scroll(t *testing.T) {
	s := NewSurface(400, 300)
	runner, err := LoadScript([]byte(`{"steps": [{"action": "scroll", "dx": 5, "dy": 120}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(s)
	if s.Viewport().ScrollX != 5 || s.Viewport().ScrollY != 120 {
		t.Errorf("scroll = (%v,%v), want (5,120)", s.Viewport().ScrollX, s.Viewport().ScrollY)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStep_Hover(t *testing.T) {
	s := NewSurface(400, 300)
	runner, err := LoadScript([]byte(`{"steps": [{"action": "hover", "x": 5, "y": 6}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(s)
	if len(s.injectQueue) != 1 || s.injectQueue[0].pressed {
		t.Fatalf("expected one unpressed event, got %+v", s.injectQueue)
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	s := NewSurface(400, 300)

	data := []byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1: execute wait (waitCount becomes 2).
	runner.step(s)
	// Frames 2 and 3 count down.
	runner.step(s)
	runner.step(s)
	if runner.Done() {
		t.Error("should not be done, screenshot step not yet executed")
	}

	// Frame 4: execute screenshot step, runner finishes.
	runner.step(s)
	if !runner.Done() {
		t.Error("runner should be done after screenshot step")
	}
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", s.screenshotQueue)
	}
}

func TestRunnerWaitsForInjectQueue(t *testing.T) {
	s := NewSurface(400, 300)

	data := []byte(`{"steps": [
		{"action": "click", "x": 50, "y": 50},
		{"action": "screenshot", "label": "after"}
	]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}

	runner.step(s)
	runner.step(s)
	if runner.cursor != 1 {
		t.Errorf("cursor should still be 1, got %d", runner.cursor)
	}

	s.injectQueue = s.injectQueue[:0]

	runner.step(s)
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "after" {
		t.Errorf("expected screenshot 'after', got %v", s.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}
