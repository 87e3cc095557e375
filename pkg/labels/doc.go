/*
Package labels assigns typeable labels to an ordered list of candidates.

Labels are grown like a trie over the keyset. When there are more candidates than
symbols, every symbol but the last becomes a single-symbol label, and the remaining
candidates are labelled recursively under the last symbol:

	Allocate(9, "abcd") = a b c da db dc dda ddb ddc

The result is prefix-free, so typing a label always ends exactly on one candidate,
and the cheapest symbols (lowest rank) are used most often.
*/
package labels
