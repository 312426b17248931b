package analyzer

import (
	"regexp"
	"strings"
	"unicode"
)

var sentenceEndRE = regexp.MustCompile(`[.!?]+`)

// GradeLevel computes the Flesch-Kincaid grade level score for a text:
//
//	0.39 * (words/sentences) + 11.8 * (syllables/words) - 15.59
//
// An empty text scores 0.
func GradeLevel(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	sentences := len(sentenceEndRE.FindAllString(text, -1))
	if sentences == 0 {
		sentences = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordCount := float64(len(words))
	return 0.39*(wordCount/float64(sentences)) +
		11.8*(float64(syllables)/wordCount) -
		15.59
}

// countSyllables estimates the syllables in a word by counting vowel
// groups, discounting a trailing silent 'e'. Every word counts as at least
// one syllable.
func countSyllables(word string) int {
	var letters []rune
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range letters {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if count > 1 && letters[len(letters)-1] == 'e' && !isVowel(letters[len(letters)-2]) {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
