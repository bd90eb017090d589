// Package taunt implements the commentary engine: it loads a tagged flat-file
// corpus of taunt lines, classifies game-state events into commentary
// categories using recent evaluation deltas, filters candidate lines by the
// configured rudeness posture, and probabilistically decides whether to speak
// at all before emitting a single line.
//
// The engine is deliberately stateless between emissions: each call to
// Speaker.Announce is independent, with no repeat-avoidance memory. The only
// long-lived state is the corpus cache, which is rebuilt when the configured
// corpus path changes (or when Invalidate is called, e.g. by the file
// watcher).
//
// Randomness is injected through the Rand interface so selection and gating
// are deterministic under test.
package taunt
