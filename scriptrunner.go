package raycaster

import (
	"encoding/json"
	"fmt"

	"github.com/tanema/gween/ease"
)

// scriptStep represents a single action in a walkthrough script.
type scriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	X        float64 `json:"x,omitempty"`
	Z        float64 `json:"z,omitempty"`
	Duration float32 `json:"duration,omitempty"`
}

// walkScript is the top-level JSON structure for a walkthrough script.
type walkScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences movement commands, camera glides, and screenshots
// across frames for automated walkthroughs. Attach one to the game loop via
// RunConfig.Script.
//
// Supported actions: "forward", "backward", "left", "right" (one movement
// step each), "glide" (x, z, duration), "screenshot" (label), and "wait"
// (frames). Unknown actions are skipped.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON walkthrough script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script walkScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse walk script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse walk script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step executes at most one script step per frame and reports whether the
// scene changed and needs a re-render. Called from the game loop's Update.
func (r *ScriptRunner) step(s *Scene, canvas *Canvas) bool {
	if r.done {
		return false
	}
	// Let an active glide finish before advancing.
	if s.Camera().Gliding() {
		return false
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return false
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return false
	}

	st := r.steps[r.cursor]
	r.cursor++

	changed := false
	switch st.Action {
	case "forward":
		changed = s.Apply(CommandForward)
	case "backward":
		changed = s.Apply(CommandBackward)
	case "left":
		changed = s.Apply(CommandLeft)
	case "right":
		changed = s.Apply(CommandRight)
	case "glide":
		s.Camera().GlideTo(st.X, st.Z, st.Duration, ease.InOutQuad)
	case "screenshot":
		if canvas != nil {
			canvas.Screenshot(st.Label)
			// The re-render's Present captures the queued shot.
			changed = true
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
	return changed
}
