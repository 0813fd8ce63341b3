package session

import (
	"time"

	"torus-life/internal/life"
)

// State identifies where the interaction loop is in its lifecycle.
type State uint8

const (
	// StateAwaitingSeed is the initial state, before the first pattern
	// has been chosen.
	StateAwaitingSeed State = iota
	// StateRunning means the board is seeded and commands are accepted.
	StateRunning
	// StateTerminated is final and absorbing.
	StateTerminated
)

// Effect tells the caller what a handled key requires of the display.
type Effect uint8

const (
	// EffectNone means the board did not change.
	EffectNone Effect = iota
	// EffectRedraw means the board mutated and must be redrawn.
	EffectRedraw
	// EffectSaved means the board was persisted; its cells did not change.
	EffectSaved
	// EffectQuit means the session ended.
	EffectQuit
)

// KeyAdvance is the key HandleKey understands as the advance command.
const KeyAdvance = '\n'

// Store is the slice of the pattern store the controller needs.
type Store interface {
	Pattern(name string) (life.Pattern, error)
	SaveBoard(cells [][]uint8) error
}

// Controller drives the user-paced interaction loop. It processes one
// discrete key event at a time, dispatching to the engine (seed, step) or
// the store (save). It never touches board cells itself.
type Controller struct {
	engine  *life.Engine
	store   Store
	state   State
	entropy func() int64
}

// New returns a controller in the awaiting-seed state. entropy seeds
// random board fills; nil means wall-clock time.
func New(engine *life.Engine, store Store, entropy func() int64) *Controller {
	if entropy == nil {
		entropy = func() int64 { return time.Now().UnixNano() }
	}
	return &Controller{engine: engine, store: store, entropy: entropy}
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Engine exposes the board for rendering and persistence. Callers must
// treat it as read-only.
func (c *Controller) Engine() *life.Engine { return c.engine }

// HandleKey processes exactly one key event. Unrecognized keys are silent
// no-ops in every state. A returned error means the triggering seed or
// save was aborted, with the board and lifecycle state unchanged.
func (c *Controller) HandleKey(key rune) (Effect, error) {
	switch c.state {
	case StateTerminated:
		return EffectNone, nil

	case StateAwaitingSeed:
		if key == 'q' || key == 'Q' {
			c.state = StateTerminated
			return EffectQuit, nil
		}
		ch, ok := choiceForKey(key)
		if !ok {
			return EffectNone, nil
		}
		if err := c.seed(ch); err != nil {
			return EffectNone, err
		}
		c.state = StateRunning
		return EffectRedraw, nil
	}

	// StateRunning
	switch key {
	case KeyAdvance, '\r':
		c.engine.Step()
		return EffectRedraw, nil
	case 's', 'S':
		if err := c.store.SaveBoard(c.engine.Grid()); err != nil {
			return EffectNone, err
		}
		return EffectSaved, nil
	case 'q', 'Q':
		c.state = StateTerminated
		return EffectQuit, nil
	}
	if ch, ok := choiceForKey(key); ok {
		if err := c.seed(ch); err != nil {
			return EffectNone, err
		}
		return EffectRedraw, nil
	}
	return EffectNone, nil
}

func (c *Controller) seed(ch Choice) error {
	if ch == ChoiceRandom {
		c.engine.Randomize(c.entropy())
		return nil
	}
	p, err := c.store.Pattern(ch.Name())
	if err != nil {
		return err
	}
	c.engine.Seed(p)
	return nil
}
