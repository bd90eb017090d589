// Package score tracks the evaluation trajectory of the current game: the
// latest evaluation score and the one before it. The pair drives the
// commentary engine's delta-based category escalation.
package score

// Tracker holds the current and previous evaluation scores. The zero value
// is a fresh session: no scores recorded yet.
type Tracker struct {
	current  int
	previous int
	haveCur  bool
	havePrev bool
}

// Record advances the trajectory: the current score becomes the previous
// one and the new score becomes current.
func (t *Tracker) Record(score int) {
	if t.haveCur {
		t.previous = t.current
		t.havePrev = true
	}
	t.current = score
	t.haveCur = true
}

// Current returns the most recently recorded score, zero when nothing has
// been recorded yet.
func (t *Tracker) Current() int {
	return t.current
}

// Previous returns the score before the current one. ok is false until two
// scores have been recorded, i.e. on the first event of a session.
func (t *Tracker) Previous() (int, bool) {
	return t.previous, t.havePrev
}

// Reset clears the trajectory, starting a new session.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
