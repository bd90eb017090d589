package taunt

// Rudeness bands: at or below lowRudeness openly blunt lines are dropped,
// at or above highRudeness pointedly courteous lines are dropped. The
// mid-range admits both polarities.
const (
	lowRudeness  = 33
	highRudeness = 67
)

// passesRudeness reports whether an entry is compatible with the rudeness
// level. Entries with no rudeness-polarity tag always pass.
func passesRudeness(e Entry, rudeness int) bool {
	if e.Tags&(TagBlunt|TagCourteous) == 0 {
		return true
	}
	if rudeness <= lowRudeness && e.Tags.Has(TagBlunt) {
		return false
	}
	if rudeness >= highRudeness && e.Tags.Has(TagCourteous) {
		return false
	}
	return true
}

// FilterByRudeness narrows entries to those compatible with the rudeness
// level. If filtering would empty a non-empty input, the full input is
// returned instead: silence is the speak gate's decision alone, never a
// side effect of over-filtering.
func FilterByRudeness(entries []Entry, rudeness int) []Entry {
	if len(entries) == 0 {
		return entries
	}

	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if passesRudeness(e, rudeness) {
			filtered = append(filtered, e)
		}
	}

	if len(filtered) == 0 {
		return entries
	}
	return filtered
}
