package taunt

// Settings is the speaker's disposition as provided by the configuration
// collaborator. Percentages arrive already clamped to 0-100; the engine
// applies comparisons without further bounds checks.
type Settings struct {
	Enabled          bool
	Intensity        int // 0-100; 0 = mute, 100 = always speak
	Rudeness         int // 0-100 dial for the entry filter
	SpeakWhileLosing int // 0-100 chance to speak on losing-type events

	UserBlunderDelta   int // delta above this is an opponent blunder
	EngineBlunderDelta int // delta below the negation is our own blunder
	SmallGainMin       int // open interval bounds for the small-gain window
	SmallGainMax       int

	CorpusFile string
}

// DefaultSettings mirrors the engine's stock disposition.
func DefaultSettings() Settings {
	return Settings{
		Enabled:            true,
		Intensity:          100,
		Rudeness:           50,
		SpeakWhileLosing:   50,
		UserBlunderDelta:   200,
		EngineBlunderDelta: 200,
		SmallGainMin:       30,
		SmallGainMax:       60,
		CorpusFile:         DefaultCorpusFile,
	}
}

// SettingsSource is the read-only view of the configuration collaborator.
type SettingsSource interface {
	TauntSettings() Settings
}

// ScoreSource is the read-only view of the game-state tracker. Previous
// reports ok=false until a second evaluation exists (first event of the
// session).
type ScoreSource interface {
	Current() int
	Previous() (int, bool)
}
