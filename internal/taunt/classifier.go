package taunt

// Resolve maps a raw event plus the recent score trajectory to the category
// to actually speak from. Momentum (the change in evaluation) outranks the
// steady-state band, so delta escalation is checked before the direct
// event-to-category mapping.
//
// Rules, in priority order:
//  1. No previous score yet: GENERAL, whatever the event was.
//  2. delta > UserBlunderDelta: USER_BLUNDER. delta < -EngineBlunderDelta:
//     ENGINE_BLUNDER.
//  3. delta strictly inside the small-gain window escalates BALANCE to
//     ESCAPE and ADVANTAGE to GAINING.
//  4. Otherwise the event's own category.
func Resolve(event Category, current, previous int, hasPrevious bool, set Settings) Category {
	if !hasPrevious {
		return CategoryGeneral
	}

	delta := current - previous

	if delta > set.UserBlunderDelta {
		return CategoryUserBlunder
	}
	if delta < -set.EngineBlunderDelta {
		return CategoryEngineBlunder
	}

	// Exclusive bounds: a delta exactly on the window edge does not count
	// as a small gain.
	smallGain := delta > set.SmallGainMin && delta < set.SmallGainMax

	if smallGain && event == CategoryBalance {
		return CategoryEscape
	}
	if smallGain && event == CategoryAdvantage {
		return CategoryGaining
	}

	switch event {
	case CategoryCapture, CategoryWinning, CategoryAdvantage, CategoryBalance,
		CategoryDisadvantage, CategoryLosing, CategoryCrushing:
		return event
	}
	return CategoryGeneral
}
