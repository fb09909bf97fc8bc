package mark

import (
	"strings"
	"unicode"
)

// PhoneticCodes carries the primary and alternate phonetic encodings of a
// wordmark.  The alternate code is empty when no ambiguous phoneme produced a
// divergent reading.
type PhoneticCodes struct {
	Primary   string
	Alternate string
}

// HasAlternate reports whether a distinct alternate reading exists.
func (c PhoneticCodes) HasAlternate() bool {
	return c.Alternate != "" && c.Alternate != c.Primary
}

// EncodePhonetic derives a double phonetic encoding of a wordmark for aural
// comparison.  The scheme follows the double-metaphone tradition: consonants
// are reduced to a compact sound alphabet, vowels are dropped except
// word-initially, and ambiguous phonemes (soft/hard C and G, CH, TH) emit a
// second, alternate code so that either pronunciation can match.
//
// The encoding is deterministic and locale-invariant.  Inputs are treated as
// generic Latin-script text: digits and runes outside A–Z pass through
// literally (so numeric-only marks always yield a non-empty code), and
// whitespace is dropped.
//
// Sound alphabet: A (initial vowel), P B, K hard-C/G/Q, S soft-C/Z/X-initial,
// X sh/ch, J soft-G/dge, F f/v/ph, 0 th, T, N, M, L, R, W, H.
func EncodePhonetic(s string) PhoneticCodes {
	w := []rune(strings.ToUpper(Normalize(s)))

	var primary, alternate strings.Builder
	diverged := false

	emit := func(p, a string) {
		primary.WriteString(p)
		alternate.WriteString(a)
		if p != a {
			diverged = true
		}
	}

	at := func(i int) rune {
		if i < 0 || i >= len(w) {
			return 0
		}
		return w[i]
	}

	for i := 0; i < len(w); {
		r := w[i]

		switch {
		case unicode.IsSpace(r):
			i++
			continue
		case unicode.IsDigit(r):
			emit(string(r), string(r))
			i++
			continue
		case r < 'A' || r > 'Z':
			// Generic Latin fallback: symbols and accented letters pass
			// through literally.
			emit(string(r), string(r))
			i++
			continue
		}

		// Collapse doubled letters.
		if i > 0 && w[i-1] == r {
			i++
			continue
		}

		next := at(i + 1)

		switch r {
		case 'A', 'E', 'I', 'O', 'U', 'Y':
			if i == 0 {
				emit("A", "A")
			}
			i++
		case 'B':
			emit("P", "P")
			i++
		case 'C':
			switch {
			case next == 'H':
				emit("X", "K")
				i += 2
			case next == 'E' || next == 'I' || next == 'Y':
				emit("S", "K")
				i++
			case next == 'K':
				emit("K", "K")
				i += 2
			default:
				emit("K", "K")
				i++
			}
		case 'D':
			if next == 'G' && isSoftener(at(i+2)) {
				emit("J", "J")
				i += 2
			} else {
				emit("T", "T")
				i++
			}
		case 'F':
			emit("F", "F")
			i++
		case 'G':
			switch {
			case next == 'H':
				if i == 0 {
					emit("K", "K")
				}
				i += 2
			case next == 'N' && i == 0:
				emit("N", "N")
				i += 2
			case isSoftener(next):
				emit("J", "K")
				i++
			default:
				emit("K", "K")
				i++
			}
		case 'H':
			if i == 0 && isVowel(next) {
				emit("H", "H")
			}
			i++
		case 'J':
			emit("J", "J")
			i++
		case 'K':
			emit("K", "K")
			i++
		case 'L':
			emit("L", "L")
			i++
		case 'M':
			emit("M", "M")
			i++
		case 'N':
			emit("N", "N")
			i++
		case 'P':
			if next == 'H' {
				emit("F", "F")
				i += 2
			} else {
				emit("P", "P")
				i++
			}
		case 'Q':
			emit("K", "K")
			i++
		case 'R':
			emit("R", "R")
			i++
		case 'S':
			switch {
			case next == 'H':
				emit("X", "X")
				i += 2
			case next == 'C' && isSoftener(at(i+2)):
				emit("S", "S")
				i += 2
			default:
				emit("S", "S")
				i++
			}
		case 'T':
			if next == 'H' {
				emit("0", "T")
				i += 2
			} else {
				emit("T", "T")
				i++
			}
		case 'V':
			emit("F", "F")
			i++
		case 'W':
			switch {
			case i == 0 && next == 'H':
				emit("W", "W")
				i += 2
			case isVowel(next):
				emit("W", "W")
				i++
			default:
				i++
			}
		case 'X':
			if i == 0 {
				emit("S", "S")
			} else {
				emit("KS", "KS")
			}
			i++
		case 'Z':
			emit("S", "S")
			i++
		default:
			i++
		}
	}

	codes := PhoneticCodes{Primary: primary.String()}
	if diverged {
		codes.Alternate = alternate.String()
	}
	if codes.Primary == "" {
		// Marks built entirely from letters the rules silence (H before a
		// consonant, W without a following vowel) must still encode: fall
		// back to the literal letters, the same pass-through digits get.
		var literal strings.Builder
		for _, r := range w {
			if !unicode.IsSpace(r) {
				literal.WriteRune(r)
			}
		}
		codes.Primary = literal.String()
	}
	return codes
}

// isSoftener reports whether r softens a preceding C or G.
func isSoftener(r rune) bool {
	return r == 'E' || r == 'I' || r == 'Y'
}

func isVowel(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	default:
		return false
	}
}

// AuralSimilarity computes the phonetic similarity between two wordmarks.
// Both marks are double-encoded; the normalized edit similarity is taken over
// every pairwise combination of primary and alternate codes and the maximum
// wins.  A confusable pronunciation in either reading matters legally, so any
// phonetic interpretation yielding high similarity is rewarded.
func AuralSimilarity(a, b string) float64 {
	ca := EncodePhonetic(a)
	cb := EncodePhonetic(b)

	candidatesA := []string{ca.Primary}
	if ca.HasAlternate() {
		candidatesA = append(candidatesA, ca.Alternate)
	}
	candidatesB := []string{cb.Primary}
	if cb.HasAlternate() {
		candidatesB = append(candidatesB, cb.Alternate)
	}

	best := 0.0
	for _, x := range candidatesA {
		for _, y := range candidatesB {
			if s := LexicalSimilarity(x, y); s > best {
				best = s
			}
		}
	}
	return best
}
