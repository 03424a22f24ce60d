package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddAll loads a small mixed-case source and checks the members.
func TestAddAll(t *testing.T) {
	lex := New()
	source := "Apple\nBANANA\ncherry\n"

	require.NoError(t, lex.AddAll(strings.NewReader(source), false))
	assert.Equal(t, 3, lex.WordCount())
	assert.True(t, lex.Contains("apple"))
	assert.True(t, lex.Contains("banana"))
	assert.True(t, lex.Contains("CHERRY"))
}

// TestAddAllTrimsLineEndings makes sure CRLF sources and surrounding
// whitespace do not leak into the stored words.
func TestAddAllTrimsLineEndings(t *testing.T) {
	lex := New()
	source := "apple\r\n  pear  \r\n"

	require.NoError(t, lex.AddAll(strings.NewReader(source), true))
	assert.True(t, lex.Contains("apple"))
	assert.True(t, lex.Contains("pear"))
	assert.Equal(t, 2, lex.WordCount())
}

// TestAddAllAssumeLowercase verifies the fast path trusts but still
// verifies: uppercase input breaks the caller's guarantee and fails.
func TestAddAllAssumeLowercase(t *testing.T) {
	lex := New()
	require.NoError(t, lex.AddAll(strings.NewReader("apple\npear\n"), true))
	assert.Equal(t, 2, lex.WordCount())

	err := lex.AddAll(strings.NewReader("fig\nBanana\n"), true)
	assert.ErrorIs(t, err, ErrInvalidWord, "Uppercase input violates the assume-lowercase guarantee")
	assert.ErrorContains(t, err, "line 2")
}

// TestAddAllBadLineAbortsWithoutRollback checks the first malformed
// line stops the load while earlier words stay committed.
func TestAddAllBadLineAbortsWithoutRollback(t *testing.T) {
	lex := New()
	source := "apple\npear\n1nvalid\nfig\n"

	err := lex.AddAll(strings.NewReader(source), false)
	assert.ErrorIs(t, err, ErrInvalidWord)
	assert.ErrorContains(t, err, "line 3")

	assert.True(t, lex.Contains("apple"), "Words before the bad line stay in the set")
	assert.True(t, lex.Contains("pear"))
	assert.False(t, lex.Contains("fig"), "Words after the bad line were never reached")
	assert.Equal(t, 2, lex.WordCount())
}

// TestAddAllRejectsOverlongToken enforces the 45-character loader cap.
func TestAddAllRejectsOverlongToken(t *testing.T) {
	lex := New()
	ok := strings.Repeat("a", MaxWordLen)
	tooLong := strings.Repeat("b", MaxWordLen+1)

	require.NoError(t, lex.AddAll(strings.NewReader(ok+"\n"), false))
	err := lex.AddAll(strings.NewReader(tooLong+"\n"), false)
	assert.ErrorIs(t, err, ErrInvalidWord)
	assert.Equal(t, 1, lex.WordCount())

	// The cap is loader policy only, Add itself takes longer paths.
	require.NoError(t, lex.Add(tooLong))
	assert.True(t, lex.Contains(tooLong))
}

// TestAddAllEmptyLineFails mirrors the one-word-per-line contract: a
// blank line is not a parsable token.
func TestAddAllEmptyLineFails(t *testing.T) {
	lex := New()
	err := lex.AddAll(strings.NewReader("apple\n\npear\n"), false)
	assert.ErrorIs(t, err, ErrInvalidWord)
	assert.ErrorContains(t, err, "line 2")
	assert.Equal(t, 1, lex.WordCount())
}

// TestAddFile loads a real file and fails cleanly on a missing one.
func TestAddFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\ngamma\n"), 0o644))

	lex := New()
	require.NoError(t, lex.AddFile(path, true))
	assert.Equal(t, 3, lex.WordCount())

	err := lex.AddFile(filepath.Join(dir, "missing.txt"), true)
	assert.Error(t, err, "An unopenable source reports failure to the caller")
	assert.Equal(t, 3, lex.WordCount(), "A failed open must not disturb the set")
}
