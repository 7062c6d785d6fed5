package utils

import (
	"strings"
	"unicode"
)

// minContainmentLen guards containment matching: a normalized string of 3
// runes or fewer only matches by exact equality, so "me" never matches
// "Take On Me".
const minContainmentLen = 3

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "can": {}, "must": {}, "shall": {},
}

// NormalizeAnswer lower-cases, strips everything that is not a letter,
// digit or space, and collapses whitespace runs to single spaces.
func NormalizeAnswer(answer string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(answer) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeStopWords(s string) string {
	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if _, ok := stopWords[f]; !ok {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

func matches(guess, answer string) bool {
	if guess == answer {
		return guess != ""
	}

	shorter := guess
	if len([]rune(answer)) < len([]rune(shorter)) {
		shorter = answer
	}
	if len([]rune(shorter)) <= minContainmentLen {
		return false
	}

	return strings.Contains(guess, answer) || strings.Contains(answer, guess)
}

// IsAnswerCorrect decides whether a free-text guess matches the canonical
// song title. Both sides are normalized, compared directly, then compared
// again with English function words removed. Deterministic and safe on any
// input; an empty guess simply fails to match.
func IsAnswerCorrect(userGuess, correctAnswer string) bool {
	guess := NormalizeAnswer(userGuess)
	answer := NormalizeAnswer(correctAnswer)

	if matches(guess, answer) {
		return true
	}

	return matches(removeStopWords(guess), removeStopWords(answer))
}

// FormatAddress renders a wallet address in the truncated display form
// used when no Farcaster identity resolves.
func FormatAddress(address string) string {
	if len(address) < 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
