package domain

// StateDiff represents the changes between two views of a session.
// It is designed to be serialized to JSON for partial updates on the client.
type StateDiff struct {
	// SessionID is always present to identify the target.
	SessionID string `json:"session_id"`

	Expression *string `json:"expression,omitempty"`
	Result     *string `json:"result,omitempty"`
}

// Diff calculates the difference between two display states.
// If before is nil, the diff carries the entire after view (initial load).
// It returns nil when nothing changed.
func Diff(sessionID string, before *DisplayState, after DisplayState) *StateDiff {
	diff := &StateDiff{SessionID: sessionID}
	changed := false

	if before == nil || before.Expression != after.Expression {
		diff.Expression = &after.Expression
		changed = true
	}
	if before == nil || before.Result != after.Result {
		diff.Result = &after.Result
		changed = true
	}

	if !changed {
		return nil
	}
	return diff
}
