package lexicon

// alphabetSize is the number of child slots per node, one per letter a..z.
const alphabetSize = 26

// node is one character position on some word's path from the root. A
// node that is neither terminal nor has a live child is dead weight and
// must not survive a completed mutation.
type node struct {
	terminal bool
	children [alphabetSize]*node
}

// slot maps a lowercase letter to its child index.
func slot(c byte) int {
	return int(c - 'a')
}

// child returns the child reached by a lowercase letter, or nil.
func (n *node) child(c byte) *node {
	return n.children[slot(c)]
}

// isLeaf checks if the node has no children in any slot.
func (n *node) isLeaf() bool {
	for _, child := range n.children {
		if child != nil {
			return false
		}
	}
	return true
}

// countTerminals counts the member words in the subtree rooted at n, n
// itself included. It walks with an explicit stack so that very deep
// paths cannot exhaust the call stack.
func (n *node) countTerminals() int {
	count := 0
	stack := []*node{n}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if curr.terminal {
			count++
		}
		for _, child := range curr.children {
			if child != nil {
				stack = append(stack, child)
			}
		}
	}
	return count
}

// appendWords collects every member word under n into out, visiting the
// child slots in letter order so the result comes back sorted. prefix
// holds the letters walked from the root to n.
func (n *node) appendWords(prefix []byte, out []string) []string {
	if n.terminal {
		out = append(out, string(prefix))
	}
	for i, child := range n.children {
		if child != nil {
			out = child.appendWords(append(prefix, byte('a'+i)), out)
		}
	}
	return out
}
