package polymap

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a drawing script.
type scriptStep struct {
	Action string   `json:"action"`
	Label  string   `json:"label,omitempty"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	DX     float64  `json:"dx,omitempty"`
	DY     float64  `json:"dy,omitempty"`
	Frames int      `json:"frames,omitempty"`
	Mods   []string `json:"mods,omitempty"`

	mods KeyModifiers
}

// script is the top-level JSON structure for a drawing script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays clicks, hovers, scrolls and screenshots across
// frames. Attach it to a Surface with SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON drawing script. Modifier names are resolved
// with ParseModifiers; unknown actions or modifier names are rejected.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("polymap: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("polymap: parse script: no steps")
	}
	for i := range sc.Steps {
		st := &sc.Steps[i]
		switch st.Action {
		case "click", "hover", "wait", "scroll", "screenshot":
		default:
			return nil, fmt.Errorf("polymap: parse script: step %d: unknown action %q", i, st.Action)
		}
		mods, err := ParseModifiers(st.Mods)
		if err != nil {
			return nil, fmt.Errorf("polymap: parse script: step %d: %w", i, err)
		}
		st.mods = mods
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScriptRunner attaches a runner to the surface. Its step method runs
// from Surface.Update before input is processed.
func (s *Surface) SetScriptRunner(runner *ScriptRunner) {
	s.runner = runner
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(s *Surface) {
	if r.done {
		return
	}
	// Let pending injections drain first.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y, st.mods)
	case "hover":
		s.InjectHover(st.X, st.Y)
	case "scroll":
		s.viewport.ScrollBy(st.DX, st.DY)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
