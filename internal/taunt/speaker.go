package taunt

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// EmitPrefix marks emitted lines as commentary rather than protocol-bearing
// output, matching the UCI "info string" convention.
const EmitPrefix = "info string "

// Speaker ties the pipeline together: corpus cache, speak gate, category
// classifier, rudeness filter and selector. One Announce call produces at
// most one line on the sink.
type Speaker struct {
	cache    *Cache
	settings SettingsSource
	scores   ScoreSource

	rng    Rand
	sink   io.Writer
	logger *zap.Logger
	onEmit func(Category, string)
}

// Option configures a Speaker.
type Option func(*Speaker)

// WithRand replaces the time-seeded randomness source.
func WithRand(r Rand) Option {
	return func(s *Speaker) { s.rng = r }
}

// WithSink redirects emitted lines away from stdout.
func WithSink(w io.Writer) Option {
	return func(s *Speaker) { s.sink = w }
}

// WithLogger attaches a logger for load and emission diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Speaker) { s.logger = l }
}

// WithEmitHook registers a callback invoked after every emission, e.g. to
// record lines in the commentary ledger. The hook never influences
// selection.
func WithEmitHook(fn func(cat Category, text string)) Option {
	return func(s *Speaker) { s.onEmit = fn }
}

// NewSpeaker builds a Speaker over the given cache, configuration and score
// tracker.
func NewSpeaker(cache *Cache, settings SettingsSource, scores ScoreSource, opts ...Option) *Speaker {
	s := &Speaker{
		cache:    cache,
		settings: settings,
		scores:   scores,
		rng:      NewRand(),
		sink:     os.Stdout,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Announce runs the full pipeline for one game-state event: gate, classify,
// filter, select, emit. It never fails; when the gate says no or the
// resolved category is empty, nothing is written.
func (s *Speaker) Announce(event Category) {
	set := s.settings.TauntSettings()
	corpus := s.cache.EnsureLoaded(set.CorpusFile)

	if !ShouldSpeak(event, set, s.rng) {
		return
	}

	current := s.scores.Current()
	previous, hasPrevious := s.scores.Previous()
	resolved := Resolve(event, current, previous, hasPrevious, set)

	s.Emit(corpus, resolved, set.Rudeness)
}

// Emit picks one line from the category, uniformly at random among entries
// compatible with the rudeness level, and writes it to the sink. An empty
// category is a silent no-op; sparse corpora are expected.
func (s *Speaker) Emit(corpus *Corpus, cat Category, rudeness int) {
	entries := corpus.Entries(cat)
	if len(entries) == 0 {
		return
	}

	candidates := FilterByRudeness(entries, rudeness)
	chosen := candidates[s.rng.Intn(len(candidates))]

	fmt.Fprintf(s.sink, "%s%s\n", EmitPrefix, chosen.Text)

	s.logger.Debug("taunt emitted",
		zap.String("category", cat.String()),
		zap.Int("candidates", len(candidates)))

	if s.onEmit != nil {
		s.onEmit(cat, chosen.Text)
	}
}

// Cache exposes the speaker's corpus cache, for the file watcher.
func (s *Speaker) Cache() *Cache {
	return s.cache
}
