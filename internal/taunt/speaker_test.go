package taunt

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSettings is a SettingsSource returning a constant disposition.
type fixedSettings struct{ set Settings }

func (f fixedSettings) TauntSettings() Settings { return f.set }

// fixedScores is a ScoreSource with explicit current/previous values.
type fixedScores struct {
	current  int
	previous int
	hasPrev  bool
}

func (f fixedScores) Current() int         { return f.current }
func (f fixedScores) Previous() (int, bool) { return f.previous, f.hasPrev }

func newTestSpeaker(t *testing.T, corpus string, set Settings, scores ScoreSource, rng Rand) (*Speaker, *bytes.Buffer) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "taunts.txt")
	require.NoError(t, os.WriteFile(path, []byte(corpus), 0644))
	set.CorpusFile = path

	var out bytes.Buffer
	speaker := NewSpeaker(NewCache(nil), fixedSettings{set}, scores,
		WithSink(&out), WithRand(rng))
	return speaker, &out
}

func TestSpeakerAnnounce(t *testing.T) {
	always := &scriptedRand{draws: []int{0}}

	t.Run("emits one prefixed line", func(t *testing.T) {
		set := DefaultSettings()
		speaker, out := newTestSpeaker(t, "[WINNING]\nToo easy.\n", set,
			fixedScores{current: 10, previous: 0, hasPrev: true}, always)

		speaker.Announce(CategoryWinning)

		assert.Equal(t, EmitPrefix+"Too easy.\n", out.String())
	})

	t.Run("empty category is a silent no-op", func(t *testing.T) {
		set := DefaultSettings()
		speaker, out := newTestSpeaker(t, "[WINNING]\nToo easy.\n", set,
			fixedScores{current: 10, previous: 0, hasPrev: true}, always)

		speaker.Announce(CategoryCapture)

		assert.Empty(t, out.String())
	})

	t.Run("empty corpus never writes", func(t *testing.T) {
		set := DefaultSettings()
		speaker, out := newTestSpeaker(t, "# no lines at all\n", set,
			fixedScores{current: 10, previous: 0, hasPrev: true}, always)

		for _, event := range []Category{CategoryGeneral, CategoryWinning, CategoryCrushing} {
			speaker.Announce(event)
		}
		assert.Empty(t, out.String())
	})

	t.Run("gate suppression produces no output", func(t *testing.T) {
		set := DefaultSettings()
		set.Enabled = false
		speaker, out := newTestSpeaker(t, "[WINNING]\nToo easy.\n", set,
			fixedScores{current: 10, previous: 0, hasPrev: true}, always)

		speaker.Announce(CategoryWinning)
		assert.Empty(t, out.String())
	})

	t.Run("first event speaks from GENERAL", func(t *testing.T) {
		corpus := "[GENERAL]\nHello there.\n[CRUSHING]\nIt is over.\n"
		set := DefaultSettings()
		speaker, out := newTestSpeaker(t, corpus, set,
			fixedScores{current: 700, hasPrev: false}, always)

		speaker.Announce(CategoryCrushing)
		assert.Equal(t, EmitPrefix+"Hello there.\n", out.String())
	})

	t.Run("delta escalation picks the blunder category", func(t *testing.T) {
		corpus := "[BALANCE]\nDead even.\n[USER_BLUNDER]\nThank you for that.\n"
		set := DefaultSettings()
		speaker, out := newTestSpeaker(t, corpus, set,
			fixedScores{current: 250, previous: 0, hasPrev: true}, always)

		speaker.Announce(CategoryBalance)
		assert.Equal(t, EmitPrefix+"Thank you for that.\n", out.String())
	})

	t.Run("rudeness filter shapes the candidate set", func(t *testing.T) {
		corpus := "[WINNING;BLUNT]\nYou stink.\n[WINNING;COURTEOUS]\nWell contested.\n"
		set := DefaultSettings()
		set.Rudeness = 10

		// Draw 1 would pick the second candidate if both were present;
		// with the blunt line filtered there is only one.
		rng := &scriptedRand{draws: []int{1}}
		speaker, out := newTestSpeaker(t, corpus, set,
			fixedScores{current: 10, previous: 0, hasPrev: true}, rng)

		speaker.Announce(CategoryWinning)
		assert.Equal(t, EmitPrefix+"Well contested.\n", out.String())
	})

	t.Run("selection draws uniformly over candidates", func(t *testing.T) {
		corpus := "[WINNING]\nAlpha.\nBravo.\nCharlie.\n"
		set := DefaultSettings()
		rng := &scriptedRand{draws: []int{2}}
		speaker, out := newTestSpeaker(t, corpus, set,
			fixedScores{current: 10, previous: 0, hasPrev: true}, rng)

		speaker.Announce(CategoryWinning)
		assert.Equal(t, EmitPrefix+"Charlie.\n", out.String())
	})

	t.Run("emit hook observes category and text", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "taunts.txt")
		require.NoError(t, os.WriteFile(path, []byte("[WINNING]\nGot you.\n"), 0644))

		set := DefaultSettings()
		set.CorpusFile = path

		var gotCat Category
		var gotText string
		var out bytes.Buffer
		speaker := NewSpeaker(NewCache(nil), fixedSettings{set},
			fixedScores{current: 10, previous: 0, hasPrev: true},
			WithSink(&out), WithRand(always),
			WithEmitHook(func(cat Category, text string) {
				gotCat = cat
				gotText = text
			}))

		speaker.Announce(CategoryWinning)
		assert.Equal(t, CategoryWinning, gotCat)
		assert.Equal(t, "Got you.", gotText)
	})

	t.Run("consecutive calls are independent", func(t *testing.T) {
		corpus := "[WINNING]\nOnly line.\n"
		set := DefaultSettings()
		speaker, out := newTestSpeaker(t, corpus, set,
			fixedScores{current: 10, previous: 0, hasPrev: true}, always)

		speaker.Announce(CategoryWinning)
		speaker.Announce(CategoryWinning)

		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		assert.Len(t, lines, 2, "no de-duplication across calls")
	})
}
