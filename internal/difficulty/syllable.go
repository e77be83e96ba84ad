package difficulty

import "strings"

// CountSyllables estimates the syllables of a single English word by
// counting vowel groups and discounting common silent endings.
func CountSyllables(word string) int {
	w := lettersOnly(strings.ToLower(word))
	if w == "" {
		return 0
	}
	if len(w) <= 3 {
		return 1
	}

	w = trimSilentEnding(w)

	count := 0
	prevVowel := false
	for i := 0; i < len(w); i++ {
		v := isVowelByte(w[i]) && !(i == 0 && w[i] == 'y')
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if count == 0 {
		return 1
	}
	return count
}

// trimSilentEnding drops a final e that does not form its own syllable
// ("make", "jumped", "likes") while keeping "table", "wanted", "boxes".
func trimSilentEnding(w string) string {
	n := len(w)
	switch {
	case strings.HasSuffix(w, "ee"), strings.HasSuffix(w, "ye"):
		return w
	case strings.HasSuffix(w, "le"):
		if n >= 3 && !isVowelByte(w[n-3]) {
			return w
		}
		return w[:n-1]
	case strings.HasSuffix(w, "e"):
		return w[:n-1]
	case strings.HasSuffix(w, "ed"):
		if n >= 3 && (w[n-3] == 't' || w[n-3] == 'd') {
			return w
		}
		return w[:n-2] + "d"
	case strings.HasSuffix(w, "es"):
		if n >= 3 && strings.ContainsRune("sxzcg", rune(w[n-3])) {
			return w
		}
		if strings.HasSuffix(w, "shes") || strings.HasSuffix(w, "ches") {
			return w
		}
		return w[:n-2] + "s"
	}
	return w
}

func isVowelByte(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func lettersOnly(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
