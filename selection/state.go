// Package selection drives the element picker: the state of what is being
// bound and the message loop that turns clicks into ranked selectors.
package selection

import (
	"slices"
	"sync"

	"github.com/fwojciec/rulepick"
)

// Listener receives the new snapshot after every change.
type Listener func(rulepick.Selection)

// State is the picker state machine. It moves from default to a selecting
// mode on Start and back on Clear. Setting an identical snapshot is a no-op.
// State is safe for concurrent use.
type State struct {
	mu        sync.Mutex
	current   rulepick.Selection
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// NewState creates a State in default mode.
func NewState() *State {
	return &State{current: rulepick.Selection{Mode: rulepick.ModeDefault}}
}

// Current returns a copy of the current snapshot.
func (s *State) Current() rulepick.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.current)
}

// Subscribe registers fn and returns a function that removes it.
func (s *State) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

// Start enters single or multiple selection for a field, replacing any
// active selection. It reports whether the snapshot changed.
func (s *State) Start(req rulepick.SelectElementRequest) bool {
	mode := rulepick.ModeSelectingSingle
	if req.Multiple {
		mode = rulepick.ModeSelectingMultiple
	}
	return s.set(rulepick.Selection{
		Mode:                 mode,
		FieldName:            req.FieldName,
		ContextSelector:      req.Selector,
		PassThroughSelectors: slices.Clone(req.PassThroughSelectors),
	}, nil)
}

// Clear returns to default mode. It reports whether the snapshot changed.
func (s *State) Clear() bool {
	return s.set(rulepick.Selection{Mode: rulepick.ModeDefault}, nil)
}

// ClearIf returns to default mode only while the current snapshot equals
// expected, so a click handled for a superseded selection changes nothing.
func (s *State) ClearIf(expected rulepick.Selection) bool {
	return s.set(rulepick.Selection{Mode: rulepick.ModeDefault}, &expected)
}

func (s *State) set(next rulepick.Selection, expected *rulepick.Selection) bool {
	s.mu.Lock()
	if expected != nil && !s.current.Equal(*expected) {
		s.mu.Unlock()
		return false
	}
	if s.current.Equal(next) {
		s.mu.Unlock()
		return false
	}
	s.current = next
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(clone(next))
	}
	return true
}

func clone(s rulepick.Selection) rulepick.Selection {
	s.PassThroughSelectors = slices.Clone(s.PassThroughSelectors)
	return s
}
