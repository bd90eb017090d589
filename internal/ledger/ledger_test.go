package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "banter.db"))
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLedger(t *testing.T) {
	t.Run("record and read back a session", func(t *testing.T) {
		l := openTestLedger(t)
		session := NewSessionID()

		emissions := []Emission{
			{SessionID: session, At: time.Now(), Category: "WINNING", Text: "Too easy."},
			{SessionID: session, At: time.Now(), Category: "CRUSHING", Text: "It is over."},
		}
		for _, e := range emissions {
			require.NoError(t, l.Record(e))
		}

		got, err := l.Session(session)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Too easy.", got[0].Text)
		assert.Equal(t, "CRUSHING", got[1].Category)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		l := openTestLedger(t)
		a := NewSessionID()
		b := NewSessionID()

		require.NoError(t, l.Record(Emission{SessionID: a, At: time.Now(), Category: "GENERAL", Text: "Hi."}))
		require.NoError(t, l.Record(Emission{SessionID: b, At: time.Now(), Category: "GENERAL", Text: "Yo."}))

		got, err := l.Session(a)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Hi.", got[0].Text)
	})

	t.Run("unknown session is empty, not an error", func(t *testing.T) {
		l := openTestLedger(t)
		got, err := l.Session("no-such-session")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("count spans sessions", func(t *testing.T) {
		l := openTestLedger(t)
		for i := 0; i < 3; i++ {
			require.NoError(t, l.Record(Emission{
				SessionID: NewSessionID(), At: time.Now(), Category: "GENERAL", Text: "x",
			}))
		}
		n, err := l.Count()
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("reopening keeps the data", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "banter.db")
		l, err := Open(path)
		require.NoError(t, err)
		session := NewSessionID()
		require.NoError(t, l.Record(Emission{SessionID: session, At: time.Now(), Category: "GENERAL", Text: "kept"}))
		require.NoError(t, l.Close())

		l2, err := Open(path)
		require.NoError(t, err)
		defer l2.Close()

		got, err := l2.Session(session)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "kept", got[0].Text)
	})

	t.Run("session ids are unique", func(t *testing.T) {
		assert.NotEqual(t, NewSessionID(), NewSessionID())
	})
}
