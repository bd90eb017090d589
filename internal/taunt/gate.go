package taunt

// ShouldSpeak is the probabilistic go/no-go decision preceding any emission.
// It is a two-stage Bernoulli gate: losing-type events first pass the
// speak-while-losing dampener, then everything passes the intensity gate.
// Note the dampener applies even at intensity 100.
func ShouldSpeak(event Category, set Settings, rng Rand) bool {
	if !set.Enabled {
		return false
	}
	if set.Intensity <= 0 {
		return false
	}

	if IsLosingEvent(event) && set.SpeakWhileLosing < 100 {
		if rng.Intn(100) >= set.SpeakWhileLosing {
			return false
		}
	}

	if set.Intensity >= 100 {
		return true
	}
	return rng.Intn(100) < set.Intensity
}
