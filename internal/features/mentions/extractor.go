package mentions

import (
	"strings"
	"unicode"
)

// trailingWords are filler words that end a multi-word mention. A mention
// "@jane tomorrow" resolves to "jane". Names that really contain one of these
// words as a later part are cut short; this is a known limitation.
var trailingWords = map[string]struct{}{
	"and": {}, "or": {}, "the": {}, "a": {}, "an": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "with": {}, "by": {}, "from": {}, "about": {}, "into": {},
	"through": {}, "during": {}, "before": {}, "after": {}, "above": {}, "below": {},
	"up": {}, "down": {}, "out": {}, "off": {}, "over": {}, "under": {}, "again": {},
	"further": {}, "then": {}, "once": {}, "said": {}, "replied": {}, "agreed": {},
	"please": {}, "review": {}, "this": {}, "tomorrow": {}, "are": {}, "here": {},
	"is": {}, "great": {},
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isNameRune(r rune) bool {
	return isWordRune(r) || r == '.' || r == '-'
}

// ExtractMentions returns every @mention in text in order of appearance,
// duplicates included. An @ directly after a word character (as in an email
// address) does not start a mention.
func ExtractMentions(text string) []string {
	mentions := make([]string, 0)
	if text == "" {
		return mentions
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '@' {
			continue
		}
		if i > 0 && isWordRune(runes[i-1]) {
			continue
		}

		end := scanName(runes, i+1)
		if end == i+1 {
			continue
		}

		if name := trimTrailingWords(runes[i+1 : end]); name != "" {
			mentions = append(mentions, name)
		}
		i = end - 1
	}

	return mentions
}

// GetUniqueMentions extracts mentions from text and drops repeats.
func GetUniqueMentions(text string) []string {
	return UniqueMentions(ExtractMentions(text))
}

// UniqueMentions removes exact (case-sensitive) duplicates, keeping the
// first occurrence order.
func UniqueMentions(candidates []string) []string {
	seen := make(map[string]bool, len(candidates))
	unique := make([]string, 0, len(candidates))

	for _, c := range candidates {
		if !seen[c] {
			seen[c] = true
			unique = append(unique, c)
		}
	}

	return unique
}

// IsValidMention reports whether s is a single well-formed mention such as
// "@john" or "@John Smith".
func IsValidMention(s string) bool {
	runes := []rune(s)
	if len(runes) < 2 || runes[0] != '@' {
		return false
	}
	return scanName(runes, 1) == len(runes)
}

// scanName consumes a run of name characters starting at start, followed by
// any further runs separated by spaces or tabs. A line break ends the name. It returns the end offset, which
// equals start when no name begins there.
func scanName(runes []rune, start int) int {
	end := consumeName(runes, start)
	if end == start {
		return start
	}

	for {
		next := end
		for next < len(runes) && isInlineSpace(runes[next]) {
			next++
		}
		if next == end {
			return end
		}

		wordEnd := consumeName(runes, next)
		if wordEnd == next {
			return end
		}
		end = wordEnd
	}
}

func isInlineSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\u00a0'
}

func consumeName(runes []rune, pos int) int {
	for pos < len(runes) && isNameRune(runes[pos]) {
		pos++
	}
	return pos
}

// trimTrailingWords cuts span at the first whitespace-preceded trailing word
// and trims what is left.
func trimTrailingWords(span []rune) string {
	for i := 1; i < len(span); i++ {
		if unicode.IsSpace(span[i]) || !unicode.IsSpace(span[i-1]) {
			continue
		}
		if startsWithTrailingWord(span[i:]) {
			return strings.TrimSpace(string(span[:i]))
		}
	}
	return strings.TrimSpace(string(span))
}

func startsWithTrailingWord(token []rune) bool {
	n := 0
	for n < len(token) && unicode.IsLetter(token[n]) {
		n++
	}
	if n == 0 {
		return false
	}
	// whole word only: "andrew" is not "and"
	if n < len(token) && isWordRune(token[n]) {
		return false
	}

	_, ok := trailingWords[strings.ToLower(string(token[:n]))]
	return ok
}
