// Individual taken-likelihood signals. Each returns a score in [0,100]
// where higher means "more likely already registered". All operate on the
// lowercased handle; non-ASCII input is treated as opaque characters.

package heuristic

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// scoreLength: short handles are gold and nearly always gone. The score
// decreases monotonically with length.
func scoreLength(h string) float64 {
	n := utf8.RuneCountInString(h)
	switch {
	case n <= 2:
		return 100
	case n == 3:
		return 98
	case n == 4:
		return 95
	case n == 5:
		return 90
	case n == 6:
		return 82
	case n == 7:
		return 74
	case n == 8:
		return 65
	case n == 9:
		return 55
	case n == 10:
		return 45
	case n == 11:
		return 38
	case n == 12:
		return 32
	default:
		s := 32 - float64(n-12)*2
		if s < 5 {
			return 5
		}
		return s
	}
}

func scoreDictionary(h string) float64 {
	if commonWords[h] {
		return 95
	}
	for w := range commonWords {
		if len(w) >= 4 && strings.Contains(h, w) {
			return 70
		}
	}
	return 0
}

func scorePersonalName(h string) float64 {
	// Concatenated first+last ("johnsmith") is the classic taken pattern.
	for fn := range firstNames {
		if rest, ok := strings.CutPrefix(h, fn); ok && lastNames[rest] {
			return 90
		}
	}
	if firstNames[h] {
		return 85
	}
	if lastNames[h] {
		return 80
	}
	for fn := range firstNames {
		if len(fn) >= 4 && strings.Contains(h, fn) {
			return 55
		}
	}
	return 0
}

func scoreBrand(h string) float64 {
	for _, b := range brandNames {
		if h == b {
			return 98
		}
	}
	for _, b := range brandNames {
		if len(b) >= 4 && strings.Contains(h, b) {
			return 85
		}
	}
	// Near-miss typosquats: edit distance <= 2 against longer brand names.
	for _, b := range brandNames {
		if len(b) >= 5 && fuzzy.LevenshteinDistance(h, b) <= 2 {
			return 92
		}
	}
	return 0
}

func scoreReserved(h string) float64 {
	if reservedWords[h] {
		return 95
	}
	return 0
}

func scoreSequential(h string) float64 {
	for _, seq := range sequences {
		for i := 0; i+3 <= len(seq); i++ {
			if strings.Contains(h, seq[i:i+3]) {
				return 80
			}
		}
	}
	return 0
}

// scoreEntropy is inverted: low Shannon entropy means a simple, memorable
// string, which is more likely taken.
func scoreEntropy(h string) float64 {
	if h == "" {
		return 100
	}
	freq := make(map[rune]int)
	var total int
	for _, r := range h {
		freq[r]++
		total++
	}
	var entropy float64
	for _, c := range freq {
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}
	// ~4 bits/char is the practical ceiling for handle-length strings.
	s := (1 - entropy/4.0) * 100
	if s < 0 {
		return 0
	}
	return s
}

func scoreAffix(h string) float64 {
	var best float64
	for _, p := range affixPrefixes {
		if strings.HasPrefix(h, p) && len(h) > len(p) {
			best = math.Max(best, 70)
		}
	}
	for _, s := range affixSuffixes {
		if strings.HasSuffix(h, s) && len(h) > len(s) {
			best = math.Max(best, 70)
		}
	}
	if yearSuffix(h) {
		best = math.Max(best, 60)
	} else if trailingDigits(h) > 0 {
		best = math.Max(best, 50)
	}
	return best
}

func yearSuffix(h string) bool {
	if len(h) < 5 || trailingDigits(h) < 4 {
		return false
	}
	y := h[len(h)-4:]
	return strings.HasPrefix(y, "19") || strings.HasPrefix(y, "20")
}

func trailingDigits(h string) int {
	var n int
	for i := len(h) - 1; i >= 0; i-- {
		if h[i] < '0' || h[i] > '9' {
			break
		}
		n++
	}
	return n
}

// scoreSpecialChars is inverted: digits and underscores make a handle less
// attractive, so a clean alphabetic handle scores higher.
func scoreSpecialChars(h string) float64 {
	var special int
	for _, r := range h {
		if r == '_' || unicode.IsDigit(r) {
			special++
		}
	}
	switch special {
	case 0:
		return 80
	case 1:
		return 50
	case 2:
		return 30
	default:
		return 10
	}
}

// scoreLeet detects digit-for-letter substitutions hiding a desirable word.
func scoreLeet(h string) float64 {
	var substituted bool
	out := make([]rune, 0, len(h))
	for _, r := range h {
		if sub, ok := leetMap[r]; ok {
			substituted = true
			out = append(out, sub)
			continue
		}
		out = append(out, r)
	}
	if !substituted {
		return 0
	}
	plain := string(out)
	if commonWords[plain] || firstNames[plain] || reservedWords[plain] {
		return 75
	}
	for _, b := range brandNames {
		if plain == b {
			return 75
		}
	}
	return 30
}

func scoreGeographic(h string) float64 {
	for _, g := range geoTerms {
		if h == g {
			return 80
		}
	}
	for _, g := range geoTerms {
		if len(g) >= 4 && strings.Contains(h, g) {
			return 60
		}
	}
	return 0
}

func scoreProfessional(h string) float64 {
	for _, t := range professionalTerms {
		if h == t {
			return 75
		}
	}
	for _, t := range professionalTerms {
		if len(t) >= 4 && strings.Contains(h, t) {
			return 60
		}
	}
	return 0
}

// scorePronounceability: handles with an English-like vowel/consonant mix
// are easier to say and more likely claimed.
func scorePronounceability(h string) float64 {
	var vowels, letters int
	for _, r := range h {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			vowels++
		}
	}
	if letters == 0 {
		return 20
	}
	ratio := float64(vowels) / float64(letters)
	switch {
	case ratio >= 0.3 && ratio <= 0.5:
		return 75
	case ratio >= 0.2 && ratio <= 0.6:
		return 50
	default:
		return 20
	}
}

func scoreRepeating(h string) float64 {
	runes := []rune(h)
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= 3 {
				return 65
			}
			continue
		}
		run = 1
	}
	// Alternating two-character cycle covering the whole handle ("abab…").
	if len(runes) >= 4 && len(runes)%2 == 0 {
		alternating := runes[0] != runes[1]
		for i := 2; i < len(runes) && alternating; i++ {
			if runes[i] != runes[i-2] {
				alternating = false
			}
		}
		if alternating {
			return 70
		}
	}
	return 0
}
