package machine

import "errors"

type State interface {
	~string
}

// Allowable maps where a from state is allowed to transition to
type Allowable[S State] struct {
	from S
	to   []S
}

// StateMachine manages the state of a context
type StateMachine[S State] struct {
	current     S
	transitions []Allowable[S]
}

var (
	ErrInvalidTransition = errors.New("invalid state transition")
)

// TransitionBuilder helps in creating a from-to relationship for state transitions
type TransitionBuilder[S State] struct {
	transition Allowable[S]
}

func New[S State](currentState S, transitions ...Allowable[S]) *StateMachine[S] {
	return &StateMachine[S]{current: currentState, transitions: transitions}
}

// From initializes a transition from a specific state
func From[S State](from S) *TransitionBuilder[S] {
	return &TransitionBuilder[S]{transition: Allowable[S]{from: from}}
}

// To sets the possible destination states and returns the configured transition
func (tb *TransitionBuilder[S]) To(to ...S) Allowable[S] {
	tb.transition.to = to
	return tb.transition
}

// Current returns the state the machine is in.
func (m *StateMachine[S]) Current() S {
	return m.current
}

// CanTransition determines if the machine may move to the given state.
func (m *StateMachine[S]) CanTransition(s S) error {
	for _, transition := range m.transitions {
		// can't transition from one state to another state if we're not in the same from state
		if transition.from != m.current {
			continue
		}

		for _, to := range transition.to {
			if to == s {
				return nil
			}
		}
	}

	return ErrInvalidTransition
}

// Transition validates the move and advances the machine.
func (m *StateMachine[S]) Transition(s S) error {
	if err := m.CanTransition(s); err != nil {
		return err
	}

	m.current = s
	return nil
}
