package taunt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one taunt line plus the tag set inherited from its section header.
type Entry struct {
	Text string
	Tags Tag
}

// Corpus is the loaded taunt index: one entry list per category. It is
// immutable once built; reloading builds a fresh Corpus rather than mutating
// an existing one.
type Corpus struct {
	entries [categoryCount][]Entry
}

// ParseStats records what the parser saw, for diagnostics and the corpus
// linter. Unknown sections and tags are non-fatal at parse time; they are
// surfaced here so `banter check` can flag them.
type ParseStats struct {
	Lines           int
	Entries         int
	UnknownSections []string
	UnknownTags     []string
}

// Entries returns the loaded entries for a category. The returned slice is
// shared; callers must not modify it.
func (c *Corpus) Entries(cat Category) []Entry {
	if cat < 0 || cat >= categoryCount {
		return nil
	}
	return c.entries[cat]
}

// Len returns the total number of entries across all categories.
func (c *Corpus) Len() int {
	total := 0
	for i := range c.entries {
		total += len(c.entries[i])
	}
	return total
}

// Parse reads the flat-file corpus format:
//
//	# comment            ; comment
//	[CATEGORY]           section header, empty tag set
//	[CATEGORY;TAG;TAG]   section header with tags
//	any other line       entry in the active section
//
// Blank lines are skipped. Before the first header the active section is
// GENERAL with no tags. Unknown category names fold into GENERAL; unknown
// tags are dropped. A corpus with no entries at all parses successfully.
func Parse(r io.Reader) (*Corpus, *ParseStats, error) {
	corpus := &Corpus{}
	stats := &ParseStats{}

	current := CategoryGeneral
	currentTags := Tag(0)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '#' || line[0] == ';' {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section := strings.TrimSpace(line[1 : len(line)-1])
			if section == "" {
				continue
			}
			current, currentTags = parseHeader(section, current, stats)
			continue
		}

		corpus.entries[current] = append(corpus.entries[current], Entry{
			Text: line,
			Tags: currentTags,
		})
		stats.Entries++
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading corpus: %w", err)
	}

	return corpus, stats, nil
}

// parseHeader splits "CATEGORY;TAG1;TAG2" into a category and tag set. An
// empty category part keeps the current section; the tag set is always
// replaced.
func parseHeader(section string, current Category, stats *ParseStats) (Category, Tag) {
	parts := strings.Split(section, ";")

	name := strings.TrimSpace(parts[0])
	cat := current
	if name != "" {
		var known bool
		cat, known = CategoryFromName(name)
		if !known {
			stats.UnknownSections = append(stats.UnknownSections, name)
		}
	}

	tags := Tag(0)
	for _, raw := range parts[1:] {
		tagName := strings.TrimSpace(raw)
		if tagName == "" {
			continue
		}
		tag, known := TagFromName(tagName)
		if !known {
			stats.UnknownTags = append(stats.UnknownTags, tagName)
			continue
		}
		tags |= tag
	}

	return cat, tags
}

// LoadFile parses the corpus at path. A missing or unreadable file is the
// only error condition; the caller decides whether to fall back to the
// default corpus name.
func LoadFile(path string) (*Corpus, *ParseStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
