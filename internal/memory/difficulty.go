package memory

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidConfiguration is returned for unrecognized difficulties and
// impossible game settings. It is always fatal to the configuration step.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Difficulty selects the playback timing of a session.
type Difficulty string

const (
	Normal Difficulty = "normal"
	Fast   Difficulty = "fast"
)

// Difficulties lists the recognized difficulties in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{Normal, Fast}
}

// Title returns the display label.
func (d Difficulty) Title() string {
	switch d {
	case Normal:
		return "Normal"
	case Fast:
		return "Fast"
	default:
		return string(d)
	}
}

// ParseDifficulty accepts a difficulty name in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Normal, Fast:
		return d, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfiguration, s)
}

// Profile is the immutable timing selected once per session.
type Profile struct {
	DisplayDelay time.Duration // How long each element stays lit
	MinimalDelay time.Duration // Dark gap between consecutive elements
}

// Policy maps difficulties to timing profiles.
type Policy struct {
	profiles map[Difficulty]Profile
}

// DefaultPolicy returns Normal (500ms, 100ms) and Fast (100ms, 50ms).
func DefaultPolicy() Policy {
	return Policy{profiles: map[Difficulty]Profile{
		Normal: {DisplayDelay: 500 * time.Millisecond, MinimalDelay: 100 * time.Millisecond},
		Fast:   {DisplayDelay: 100 * time.Millisecond, MinimalDelay: 50 * time.Millisecond},
	}}
}

// NewPolicy builds a policy with re-tuned profiles. Every key must be a
// recognized difficulty and every recognized difficulty must be present.
func NewPolicy(profiles map[Difficulty]Profile) (Policy, error) {
	out := make(map[Difficulty]Profile, len(profiles))
	for d, p := range profiles {
		if _, err := ParseDifficulty(string(d)); err != nil {
			return Policy{}, err
		}
		if p.DisplayDelay < 0 || p.MinimalDelay < 0 {
			return Policy{}, fmt.Errorf("%w: negative delay for %s", ErrInvalidConfiguration, d)
		}
		out[d] = p
	}
	for _, d := range Difficulties() {
		if _, ok := out[d]; !ok {
			return Policy{}, fmt.Errorf("%w: missing profile for %s", ErrInvalidConfiguration, d)
		}
	}
	return Policy{profiles: out}, nil
}

// Resolve returns the profile for d.
func (p Policy) Resolve(d Difficulty) (Profile, error) {
	prof, ok := p.profiles[d]
	if !ok {
		return Profile{}, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfiguration, string(d))
	}
	return prof, nil
}

// Resolve returns the default profile for d.
func Resolve(d Difficulty) (Profile, error) {
	return DefaultPolicy().Resolve(d)
}
