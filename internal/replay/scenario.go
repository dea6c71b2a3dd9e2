package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/flip/internal/flipper"
)

// ErrUnknownAction is returned for a step whose action is not recognized.
var ErrUnknownAction = errors.New("unknown action")

const defaultSettle = time.Second

// Action is what a step reports to the state machine.
type Action string

const (
	ActionContent Action = "content"
	ActionEmpty   Action = "empty"
	ActionItems   Action = "items"
	ActionLoading Action = "loading"
	ActionDestroy Action = "destroy"
)

// Scenario is a scripted sequence of state reports.
type Scenario struct {
	Delay  time.Duration
	Fade   time.Duration
	Settle time.Duration // how long to keep running after the last step
	Steps  []Step
}

// Step is one report at a point on the virtual timeline.
type Step struct {
	At       time.Duration
	Action   Action
	Animate  bool
	Delay    bool
	HadItems bool
	Count    int
	Show     bool
}

// String returns a short human-readable form of the step.
func (s Step) String() string {
	switch s.Action {
	case ActionContent:
		return fmt.Sprintf("content animate=%t", s.Animate)
	case ActionEmpty:
		return fmt.Sprintf("empty had_items=%t", s.HadItems)
	case ActionItems:
		return fmt.Sprintf("items count=%d", s.Count)
	case ActionLoading:
		return fmt.Sprintf("loading show=%t animate=%t delay=%t", s.Show, s.Animate, s.Delay)
	default:
		return string(s.Action)
	}
}

// Load reads a scenario file.
func Load(path string) (Scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("open scenario: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse decodes a TOML scenario. Steps are ordered by time; steps sharing
// a time keep their file order.
func Parse(r io.Reader) (Scenario, error) {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}

	var raw struct {
		DelayMS  *int64 `toml:"delay_ms"`
		FadeMS   *int64 `toml:"fade_ms"`
		SettleMS *int64 `toml:"settle_ms"`
		Steps    []struct {
			AtMS     int64  `toml:"at_ms"`
			Action   string `toml:"action"`
			Animate  *bool  `toml:"animate"`
			Delay    bool   `toml:"delay"`
			HadItems bool   `toml:"had_items"`
			Count    int    `toml:"count"`
			Show     *bool  `toml:"show"`
		} `toml:"step"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}

	s := Scenario{
		Delay:  flipper.DefaultDelay,
		Fade:   flipper.DefaultFadeDuration,
		Settle: defaultSettle,
	}
	if raw.DelayMS != nil {
		s.Delay = millis(*raw.DelayMS)
	}
	if raw.FadeMS != nil {
		s.Fade = millis(*raw.FadeMS)
	}
	if raw.SettleMS != nil {
		s.Settle = millis(*raw.SettleMS)
	}
	if s.Delay < 0 || s.Fade < 0 || s.Settle < 0 {
		return Scenario{}, errors.New("delay_ms, fade_ms and settle_ms must not be negative")
	}

	for i, rs := range raw.Steps {
		action := Action(strings.ToLower(strings.TrimSpace(rs.Action)))
		switch action {
		case ActionContent, ActionEmpty, ActionItems, ActionLoading, ActionDestroy:
		default:
			return Scenario{}, fmt.Errorf("step %d: %w %q", i+1, ErrUnknownAction, rs.Action)
		}
		if rs.AtMS < 0 {
			return Scenario{}, fmt.Errorf("step %d: at_ms must not be negative", i+1)
		}
		step := Step{
			At:       millis(rs.AtMS),
			Action:   action,
			Animate:  rs.Animate == nil || *rs.Animate,
			Delay:    rs.Delay,
			HadItems: rs.HadItems,
			Count:    rs.Count,
			Show:     rs.Show == nil || *rs.Show,
		}
		s.Steps = append(s.Steps, step)
	}
	sort.SliceStable(s.Steps, func(i, j int) bool { return s.Steps[i].At < s.Steps[j].At })
	return s, nil
}

func millis(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
