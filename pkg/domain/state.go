package domain

// State represents the current snapshot of a calculator session.
type State struct {
	// Expression is the token buffer built from input events.
	Expression string `json:"expression" yaml:"expression" mapstructure:"expression"`

	// LastInput mirrors the class of the last character of Expression.
	LastInput InputKind `json:"last_input" yaml:"last_input" mapstructure:"last_input"`

	// Failed is set when the last equals confirmation could not be evaluated.
	// It keeps the "Error" display until the next accepted edit.
	Failed bool `json:"failed,omitempty" yaml:"failed,omitempty" mapstructure:"failed"`
}

// NewState creates an empty session state.
func NewState() *State {
	return &State{LastInput: InputNone}
}

// Snapshot returns a copy of the state.
func (s *State) Snapshot() *State {
	if s == nil {
		return NewState()
	}
	c := *s
	return &c
}
