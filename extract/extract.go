// Package extract tokenizes post bodies for the hashtag and mention
// indexes. It runs synchronously on the write path; the store applies the
// resulting index updates.
package extract

import "strings"

// Hashtags returns the hashtag tokens of body, in order of first
// occurrence. A token is any whitespace-delimited word starting with '#'
// followed by at least one more character. Duplicate tokens within one
// body are counted once. Titles keep their exact case: #Gaza and #gaza
// are distinct tags.
func Hashtags(body string) []string {
	return tokens(body, '#')
}

// Mentions returns the usernames mentioned in body ('@' stripped), in
// order of first occurrence, one entry per distinct token. Whether a
// username resolves to a real user is the caller's concern; unresolved
// mentions are skipped silently there.
func Mentions(body string) []string {
	raw := tokens(body, '@')
	names := make([]string, 0, len(raw))
	for _, tok := range raw {
		names = append(names, tok[1:])
	}
	return names
}

func tokens(body string, lead byte) []string {
	if body == "" {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, word := range strings.Fields(body) {
		if len(word) < 2 || word[0] != lead {
			continue
		}
		if seen[word] {
			continue
		}
		seen[word] = true
		out = append(out, word)
	}
	return out
}
