package lexicon

import (
	"errors"
	"fmt"
)

// ErrInvalidWord reports input outside the lexicon's alphabet: an empty
// string, or any character other than an English letter.
var ErrInvalidWord = errors.New("word must be one or more English letters")

// Lexicon is a case-insensitive set of words stored as a 26-ary
// character tree, which makes prefix lookups as cheap as membership
// lookups. The zero value is not usable, use New.
//
// A Lexicon is not safe for concurrent use. A caller sharing one across
// goroutines must serialize every operation through a single lock;
// per-node locking cannot keep the tree and its word count consistent
// across multi-node edits.
type Lexicon struct {
	root *node
	size int
}

// New returns an empty Lexicon.
func New() *Lexicon {
	return &Lexicon{root: &node{}}
}

// normalize lower-cases word and verifies it uses English letters only.
func normalize(word string) (string, error) {
	if word == "" {
		return "", fmt.Errorf("%w, got an empty string", ErrInvalidWord)
	}
	lowered := []byte(word)
	for i := 0; i < len(lowered); i++ {
		switch c := lowered[i]; {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
			lowered[i] = c + ('a' - 'A')
		default:
			return "", fmt.Errorf("%w, got %q", ErrInvalidWord, word)
		}
	}
	return string(lowered), nil
}

// walk follows word letter by letter from the root and returns the node
// it lands on, or nil as soon as a required child slot is absent. word
// must already be lowercase.
func (l *Lexicon) walk(word string) *node {
	curr := l.root
	for i := 0; i < len(word); i++ {
		curr = curr.child(word[i])
		if curr == nil {
			return nil
		}
	}
	return curr
}

// walkPath is walk retaining every visited node, root first, so the
// caller can edit the tree along the path. It returns nil if the path
// does not fully resolve.
func (l *Lexicon) walkPath(word string) []*node {
	path := make([]*node, 0, len(word)+1)
	curr := l.root
	path = append(path, curr)
	for i := 0; i < len(word); i++ {
		curr = curr.child(word[i])
		if curr == nil {
			return nil
		}
		path = append(path, curr)
	}
	return path
}

// prunePath unlinks dead nodes along a walked path, child-most first.
// path[i] is the node reached after word[:i]; the root at path[0] is
// never unlinked. Pruning stops at the first node that is still
// terminal or still has a live child, since everything above it is
// reachable from a member word.
func prunePath(path []*node, word string) {
	for i := len(path) - 1; i > 0; i-- {
		curr := path[i]
		if curr.terminal || !curr.isLeaf() {
			return
		}
		path[i-1].children[slot(word[i-1])] = nil
	}
}

// Add puts word into the set. Case is insignificant and the stored path
// is always lowercase. Adding a word that is already a member leaves
// the set and its count unchanged.
func (l *Lexicon) Add(word string) error {
	lowered, err := normalize(word)
	if err != nil {
		return err
	}
	l.addLowered(lowered)
	return nil
}

// addLowered is the assume-lowercase fast path behind Add and the bulk
// loader. word must already be non-empty lowercase letters.
func (l *Lexicon) addLowered(word string) {
	curr := l.root
	for i := 0; i < len(word); i++ {
		next := curr.child(word[i])
		if next == nil {
			next = &node{}
			curr.children[slot(word[i])] = next
		}
		curr = next
	}
	if !curr.terminal {
		curr.terminal = true
		l.size++
	}
}

// Contains reports whether word is a member of the set. Absence is a
// normal false result, never an error, so words outside the alphabet
// simply report false.
func (l *Lexicon) Contains(word string) bool {
	lowered, err := normalize(word)
	if err != nil {
		return false
	}
	landed := l.walk(lowered)
	return landed != nil && landed.terminal
}

// ContainsPrefix reports whether any member word starts with prefix.
// Reaching the prefix node at all is proof enough: the tree never keeps
// a branch with no member word beneath it. The empty prefix is a prefix
// of every word, so it reports true whenever the set is non-empty.
func (l *Lexicon) ContainsPrefix(prefix string) bool {
	if prefix == "" {
		return l.size > 0
	}
	lowered, err := normalize(prefix)
	if err != nil {
		return false
	}
	return l.walk(lowered) != nil
}

// Remove deletes word from the set and reports whether it was a member.
// Branches left without a member word below them are pruned on the way
// out, cascading upward until a terminal or still-branching ancestor is
// reached, so ContainsPrefix never reports a prefix with no live word
// beneath it.
func (l *Lexicon) Remove(word string) bool {
	lowered, err := normalize(word)
	if err != nil {
		return false
	}
	path := l.walkPath(lowered)
	if path == nil {
		return false
	}
	target := path[len(path)-1]
	if !target.terminal {
		return false
	}
	target.terminal = false
	l.size--
	prunePath(path, lowered)
	return true
}

// RemovePrefix deletes every member word starting with prefix,
// discarding the whole subtree below it, and reports whether the prefix
// was present at all. The empty prefix discards the entire tree.
func (l *Lexicon) RemovePrefix(prefix string) bool {
	if prefix == "" {
		l.Clear()
		return true
	}
	lowered, err := normalize(prefix)
	if err != nil {
		return false
	}
	path := l.walkPath(lowered)
	if path == nil {
		return false
	}
	doomed := path[len(path)-1]
	l.size -= doomed.countTerminals()
	path[len(path)-2].children[slot(lowered[len(lowered)-1])] = nil

	// Detaching the subtree may have left the prefix's own ancestors
	// dead, e.g. when the prefix node was its parent's only child.
	prunePath(path[:len(path)-1], lowered)
	return true
}

// Clear removes every word. The handle stays usable: a fresh empty root
// replaces the old tree, which the garbage collector reclaims as one
// unit.
func (l *Lexicon) Clear() {
	l.root = &node{}
	l.size = 0
}

// WordCount returns the number of words in the set. It reads maintained
// state and never walks the tree.
func (l *Lexicon) WordCount() int {
	return l.size
}

// IsEmpty reports whether the set has no words.
func (l *Lexicon) IsEmpty() bool {
	return l.size == 0
}

// Words returns every member word in alphabetical order.
func (l *Lexicon) Words() []string {
	return l.root.appendWords(make([]byte, 0, 16), make([]string, 0, l.size))
}
