package sprout

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	State  int    `json:"state,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences state switches, screenshots and waits across frames for
// automated smoke runs. Attach it with RunConfig.Script or Game.SetScript.
//
//	{"steps": [
//	  {"action": "screenshot", "label": "title"},
//	  {"action": "switch", "state": 1},
//	  {"action": "wait", "frames": 30},
//	  {"action": "screenshot", "label": "table"},
//	  {"action": "quit"}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("sprout: parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("sprout: parse script: no steps")
	}
	for i, st := range file.Steps {
		switch st.Action {
		case "screenshot", "switch", "wait", "quit":
		default:
			return nil, fmt.Errorf("sprout: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// SetScript attaches a script. It runs one step per frame before the
// machine steps.
func (g *Game) SetScript(s *Script) {
	g.script = s
}

// Done reports whether all steps have been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame. Called from Game.Update.
func (s *Script) step(g *Game) {
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++
	g.ctx.Log.Debug("script step", zap.Int("step", s.cursor-1), zap.String("action", st.Action))

	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "switch":
		if st.State < 0 || st.State >= g.machine.Len() {
			g.ctx.Log.Error("script switch to unknown state, stopping",
				zap.Int("step", s.cursor-1),
				zap.Int("state", st.State),
				zap.Int("states", g.machine.Len()))
			s.done = true
			g.machine.Quit()
			return
		}
		g.machine.SwitchTo(st.State)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		g.machine.Quit()
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}
