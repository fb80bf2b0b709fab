package park

import (
	"encoding/json"
	"fmt"
	"os"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string   `json:"action"`
	Label  string   `json:"label,omitempty"`
	Keys   []string `json:"keys,omitempty"`
	DX     float32  `json:"dx,omitempty"`
	DY     float32  `json:"dy,omitempty"`
	Scroll float32  `json:"scroll,omitempty"`
	Frames int      `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner plays a scripted sequence of inputs and screenshots across
// frames, for automated visual checks. Attach to a Viewer via SetTestRunner.
//
// Step actions:
//
//	press      hold the actions named in keys for frames frames
//	look       move the mouse by (dx, dy) over frames frames
//	scroll     turn the wheel by scroll
//	wait       do nothing for frames frames
//	screenshot capture the frame as label
//	quit       stop the viewer
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press":
			if len(st.Keys) == 0 {
				return nil, fmt.Errorf("parse test script: step %d: press without keys", i)
			}
			for _, k := range st.Keys {
				if _, err := ParseAction(k); err != nil {
					return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
				}
			}
		case "look", "scroll", "wait", "screenshot", "quit":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// LoadTestScriptFile reads and parses a test script from path.
func LoadTestScriptFile(path string) (*TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test script: %w", err)
	}
	return LoadTestScript(data)
}

// SetTestRunner attaches a TestRunner. Its step method runs at the start of
// every Viewer.Update.
func (v *Viewer) SetTestRunner(runner *TestRunner) {
	v.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(v *Viewer) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(v.injectQueue) > 0 {
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
	case "press":
		var set ActionSet
		for _, k := range st.Keys {
			a, _ := ParseAction(k)
			set = set.With(a)
		}
		for i := 0; i < max(st.Frames, 1); i++ {
			v.InjectInput(FrameInput{Actions: set})
		}
	case "look":
		v.InjectLook(st.DX, st.DY, st.Frames)
	case "scroll":
		v.InjectScroll(st.Scroll)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		v.Screenshot(st.Label)
	case "quit":
		v.quit = true
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(v.injectQueue) == 0 {
		r.done = true
	}
}
