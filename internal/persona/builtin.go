package persona

// Builtin profiles shipped with the engine. IDs are stable; the demo and
// the `profile` commands refer to them by ID.
var builtins = []Profile{
	{
		ID:          "default",
		Description: "Stock disposition: talkative, middle-of-the-road manners",
		Taunts: Disposition{
			Enabled:            true,
			File:               "taunts.txt",
			Intensity:          100,
			Rudeness:           50,
			SpeakWhileLosing:   50,
			UserBlunderDelta:   200,
			EngineBlunderDelta: 200,
			SmallGainMin:       30,
			SmallGainMax:       60,
		},
	},
	{
		ID:          "gentleman",
		Description: "Sparse, unfailingly polite, silent when behind",
		Taunts: Disposition{
			Enabled:            true,
			File:               "taunts.txt",
			Intensity:          40,
			Rudeness:           10,
			SpeakWhileLosing:   0,
			UserBlunderDelta:   200,
			EngineBlunderDelta: 200,
			SmallGainMin:       30,
			SmallGainMax:       60,
		},
	},
	{
		ID:          "hustler",
		Description: "Relentless trash talk, keeps chirping even when losing",
		Taunts: Disposition{
			Enabled:            true,
			File:               "taunts.txt",
			Intensity:          100,
			Rudeness:           95,
			SpeakWhileLosing:   80,
			UserBlunderDelta:   150,
			EngineBlunderDelta: 250,
			SmallGainMin:       20,
			SmallGainMax:       70,
		},
	},
	{
		ID:          "mute",
		Description: "Commentary disabled entirely",
		Taunts: Disposition{
			Enabled: false,
			File:    "taunts.txt",
		},
	},
}

// Builtins returns the shipped profiles.
func Builtins() []Profile {
	out := make([]Profile, len(builtins))
	copy(out, builtins)
	return out
}

// Builtin looks up a shipped profile by ID.
func Builtin(id string) (*Profile, bool) {
	for i := range builtins {
		if builtins[i].ID == id {
			p := builtins[i]
			return &p, true
		}
	}
	return nil, false
}
