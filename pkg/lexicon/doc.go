// ## Overview
// Package lexicon implements a case-insensitive string set optimized
// for prefix queries. Words are stored in a 26-ary character tree with
// one child slot per English letter, so asking "is this word a member"
// and "does any member start with this prefix" both cost one tree walk
// proportional to the input length. Removing a word prunes every branch
// it leaves without members, which keeps prefix answers accurate after
// deletions.
//
// ## Example usage:
//
//	lex := lexicon.New()
//	lex.Add("hello")
//	lex.Add("help")
//
//	lex.Contains("HELLO")      // true, case is insignificant
//	lex.Contains("hel")        // false, not a member word
//	lex.ContainsPrefix("hel")  // true, "hello" and "help" extend it
//
//	lex.Remove("hello")
//	lex.RemovePrefix("he")     // drops everything under "he"
//	lex.WordCount()            // 0
//
// Whole dictionaries load from line-oriented sources (one word per
// line) via AddAll or AddFile.
package lexicon
