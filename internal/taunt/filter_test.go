package taunt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByRudeness(t *testing.T) {
	blunt := Entry{Text: "blunt", Tags: TagBlunt}
	courteous := Entry{Text: "courteous", Tags: TagCourteous}
	neutral := Entry{Text: "neutral"}
	selfDep := Entry{Text: "selfdep", Tags: TagSelfDeprecating}
	mixed := []Entry{blunt, courteous, neutral, selfDep}

	texts := func(entries []Entry) []string {
		out := make([]string, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.Text)
		}
		return out
	}

	t.Run("low rudeness drops blunt lines", func(t *testing.T) {
		got := FilterByRudeness(mixed, 10)
		assert.NotContains(t, texts(got), "blunt")
		assert.Contains(t, texts(got), "courteous")
		assert.Contains(t, texts(got), "neutral")
	})

	t.Run("high rudeness drops courteous lines", func(t *testing.T) {
		got := FilterByRudeness(mixed, 90)
		assert.NotContains(t, texts(got), "courteous")
		assert.Contains(t, texts(got), "blunt")
	})

	t.Run("mid-range admits both polarities", func(t *testing.T) {
		got := FilterByRudeness(mixed, 50)
		assert.ElementsMatch(t, []string{"blunt", "courteous", "neutral", "selfdep"}, texts(got))
	})

	t.Run("band boundaries", func(t *testing.T) {
		// 33 is still low; 34 is mid-range.
		assert.NotContains(t, texts(FilterByRudeness(mixed, 33)), "blunt")
		assert.Contains(t, texts(FilterByRudeness(mixed, 34)), "blunt")

		// 67 is already high; 66 is mid-range.
		assert.NotContains(t, texts(FilterByRudeness(mixed, 67)), "courteous")
		assert.Contains(t, texts(FilterByRudeness(mixed, 66)), "courteous")
	})

	t.Run("untagged entries always pass", func(t *testing.T) {
		for _, rudeness := range []int{0, 33, 50, 67, 100} {
			got := FilterByRudeness(mixed, rudeness)
			assert.Contains(t, texts(got), "neutral", "rudeness %d", rudeness)
			assert.Contains(t, texts(got), "selfdep", "rudeness %d", rudeness)
		}
	})

	t.Run("never empties a non-empty input", func(t *testing.T) {
		onlyBlunt := []Entry{blunt, {Text: "ruder", Tags: TagBlunt | TagInformal}}
		got := FilterByRudeness(onlyBlunt, 0)
		require.Len(t, got, 2, "filter must fall back to the full set")
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Empty(t, FilterByRudeness(nil, 50))
	})
}
