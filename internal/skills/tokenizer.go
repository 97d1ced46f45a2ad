package skills

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Token is one unit of tokenised text. SpaceBefore records whether any whitespace
// separated it from the previous token.
type Token struct {
	Text        string
	SpaceBefore bool
}

// Tokenize splits text into case-folded word and punctuation tokens. NFKC is applied
// first, which folds ligatures and width variants common in PDF output.
//
// Runs of letters and digits form one token. '&', '.' and apostrophes stay inside a
// token when they sit between two word runes ("node.js", "r&d", "don't"), except for
// a lowercase-to-uppercase period ("Python.Deployed") and a possessive "'s". Any other
// non-space rune is a token of its own, so "c++" becomes "c", "+", "+".
func Tokenize(text string) []Token {
	runes := []rune(norm.NFKC.String(text))
	tokens := make([]Token, 0, len(runes)/4)
	fold := cases.Fold()

	space := false
	for i := 0; i < len(runes); {
		r := runes[i]
		if unicode.IsSpace(r) {
			space = true
			i++
			continue
		}

		j := i + 1
		if isWordRune(r) {
			for j < len(runes) {
				if isWordRune(runes[j]) {
					j++
					continue
				}
				if joinsAt(runes, j) {
					j += 2
					continue
				}
				break
			}
		}

		tokens = append(tokens, Token{Text: fold.String(string(runes[i:j])), SpaceBefore: space})
		space = false
		i = j
	}

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// joinsAt reports whether runes[j] glues the word before it to the word after it.
// Case decisions are made on the unfolded text.
func joinsAt(runes []rune, j int) bool {
	if j+1 >= len(runes) || !isWordRune(runes[j+1]) {
		return false
	}

	switch runes[j] {
	case '&':
		return true
	case '.':
		return !(unicode.IsLower(runes[j-1]) && unicode.IsUpper(runes[j+1]))
	case '\'', '’':
		return !isPossessive(runes, j)
	default:
		return false
	}
}

func isPossessive(runes []rune, j int) bool {
	if s := runes[j+1]; s != 's' && s != 'S' {
		return false
	}
	return j+2 == len(runes) || !isWordRune(runes[j+2])
}
