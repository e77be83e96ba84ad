package difficulty

import "strings"

// DoubleMetaphone returns the primary and alternate Double Metaphone codes
// for text. Codes are not truncated, so their length grows with the number
// of distinct sounds. Non-letters are ignored.
func DoubleMetaphone(text string) (primary, alternate string) {
	m := newMetaphone(text)
	if m.n == 0 {
		return "", ""
	}
	m.encode()
	return m.primary.String(), m.alternate.String()
}

type metaphone struct {
	s                  string
	n                  int
	slavoGermanic      bool
	primary, alternate strings.Builder
}

func newMetaphone(text string) *metaphone {
	var b strings.Builder
	for _, r := range strings.ToUpper(text) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	slavo := strings.ContainsAny(s, "WK") || strings.Contains(s, "CZ")
	return &metaphone{s: s, n: len(s), slavoGermanic: slavo}
}

func (m *metaphone) add(p string)        { m.primary.WriteString(p); m.alternate.WriteString(p) }
func (m *metaphone) addBoth(p, a string) { m.primary.WriteString(p); m.alternate.WriteString(a) }

func (m *metaphone) at(i int) byte {
	if i < 0 || i >= m.n {
		return 0
	}
	return m.s[i]
}

// has reports whether the substring of the given length at start equals
// any of the candidates.
func (m *metaphone) has(start, length int, candidates ...string) bool {
	if start < 0 || start+length > m.n {
		return false
	}
	sub := m.s[start : start+length]
	for _, c := range candidates {
		if sub == c {
			return true
		}
	}
	return false
}

func (m *metaphone) vowel(i int) bool {
	switch m.at(i) {
	case 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	}
	return false
}

func (m *metaphone) germanic() bool {
	return m.has(0, 3, "SCH")
}

func (m *metaphone) encode() {
	i := 0
	if m.has(0, 2, "GN", "KN", "PN", "WR", "PS") {
		i = 1
	}

	for i < m.n {
		switch m.s[i] {
		case 'A', 'E', 'I', 'O', 'U', 'Y':
			if i == 0 {
				m.add("A")
			}
			i++
		case 'B':
			m.add("P")
			i = m.skipDouble(i, 'B')
		case 'C':
			i = m.c(i)
		case 'D':
			i = m.d(i)
		case 'F':
			m.add("F")
			i = m.skipDouble(i, 'F')
		case 'G':
			i = m.g(i)
		case 'H':
			if (i == 0 || m.vowel(i-1)) && m.vowel(i+1) {
				m.add("H")
				i += 2
			} else {
				i++
			}
		case 'J':
			i = m.j(i)
		case 'K':
			m.add("K")
			i = m.skipDouble(i, 'K')
		case 'L':
			i = m.l(i)
		case 'M':
			m.add("M")
			if m.at(i+1) == 'M' || (m.has(i-1, 3, "UMB") && (i+1 == m.n-1 || m.has(i+2, 2, "ER"))) {
				i += 2
			} else {
				i++
			}
		case 'N':
			m.add("N")
			i = m.skipDouble(i, 'N')
		case 'P':
			if m.at(i+1) == 'H' {
				m.add("F")
				i += 2
			} else {
				m.add("P")
				if m.has(i+1, 1, "P", "B") {
					i += 2
				} else {
					i++
				}
			}
		case 'Q':
			m.add("K")
			i = m.skipDouble(i, 'Q')
		case 'R':
			if i == m.n-1 && !m.slavoGermanic && m.has(i-2, 2, "IE") && !m.has(i-4, 2, "ME", "MA") {
				m.alternate.WriteString("R")
			} else {
				m.add("R")
			}
			i = m.skipDouble(i, 'R')
		case 'S':
			i = m.sound(i)
		case 'T':
			i = m.t(i)
		case 'V':
			m.add("F")
			i = m.skipDouble(i, 'V')
		case 'W':
			i = m.w(i)
		case 'X':
			i = m.x(i)
		case 'Z':
			i = m.z(i)
		default:
			i++
		}
	}
}

func (m *metaphone) skipDouble(i int, c byte) int {
	if m.at(i+1) == c {
		return i + 2
	}
	return i + 1
}

func (m *metaphone) c(i int) int {
	switch {
	case m.chiaLike(i):
		m.add("K")
		return i + 2
	case i == 0 && m.has(i, 6, "CAESAR"):
		m.add("S")
		return i + 2
	case m.has(i, 2, "CH"):
		return m.ch(i)
	case m.has(i, 2, "CZ") && !m.has(i-2, 4, "WICZ"):
		m.addBoth("S", "X")
		return i + 2
	case m.has(i+1, 3, "CIA"):
		m.add("X")
		return i + 3
	case m.has(i, 2, "CC") && !(i == 1 && m.at(0) == 'M'):
		if m.has(i+2, 1, "I", "E", "H") && !m.has(i+2, 2, "HU") {
			if (i == 1 && m.at(0) == 'A') || m.has(i-1, 5, "UCCEE", "UCCES") {
				m.add("KS")
			} else {
				m.add("X")
			}
			return i + 3
		}
		m.add("K")
		return i + 2
	case m.has(i, 2, "CK", "CG", "CQ"):
		m.add("K")
		return i + 2
	case m.has(i, 2, "CI", "CE", "CY"):
		if m.has(i, 3, "CIO", "CIE", "CIA") {
			m.addBoth("S", "X")
		} else {
			m.add("S")
		}
		return i + 2
	}

	m.add("K")
	if m.has(i+1, 1, "C", "K", "Q") && !m.has(i+1, 2, "CE", "CI") {
		return i + 2
	}
	return i + 1
}

// chiaLike matches "chianti" and the germanic -ACH- of "bacher" and "macher".
func (m *metaphone) chiaLike(i int) bool {
	if m.has(i, 4, "CHIA") {
		return true
	}
	if i <= 1 || m.vowel(i-2) || !m.has(i-1, 3, "ACH") {
		return false
	}
	next := m.at(i + 2)
	return (next != 'I' && next != 'E') || m.has(i-2, 6, "BACHER", "MACHER")
}

func (m *metaphone) ch(i int) int {
	switch {
	case i > 0 && m.has(i, 4, "CHAE"):
		m.addBoth("K", "X")
	case i == 0 && (m.has(i+1, 5, "HARAC", "HARIS") || m.has(i+1, 3, "HOR", "HYM", "HIA", "HEM")) && !m.has(0, 5, "CHORE"):
		m.add("K")
	case m.germanic() ||
		m.has(i-2, 6, "ORCHES", "ARCHIT", "ORCHID") ||
		m.has(i+2, 1, "T", "S") ||
		((m.has(i-1, 1, "A", "O", "U", "E") || i == 0) &&
			(m.has(i+2, 1, "L", "R", "N", "M", "B", "H", "F", "V", "W") || i+1 == m.n-1)):
		m.add("K")
	case i > 0:
		if m.has(0, 2, "MC") {
			m.add("K")
		} else {
			m.addBoth("X", "K")
		}
	default:
		m.add("X")
	}
	return i + 2
}

func (m *metaphone) d(i int) int {
	switch {
	case m.has(i, 2, "DG"):
		if m.has(i+2, 1, "I", "E", "Y") {
			m.add("J")
			return i + 3
		}
		m.add("TK")
		return i + 2
	case m.has(i, 2, "DT", "DD"):
		m.add("T")
		return i + 2
	}
	m.add("T")
	return i + 1
}

func (m *metaphone) g(i int) int {
	switch next := m.at(i + 1); {
	case next == 'H':
		return m.gh(i)
	case next == 'N':
		switch {
		case i == 1 && m.vowel(0) && !m.slavoGermanic:
			m.addBoth("KN", "N")
		case !m.has(i+2, 2, "EY") && !m.slavoGermanic:
			m.addBoth("N", "KN")
		default:
			m.add("KN")
		}
		return i + 2
	case m.has(i+1, 2, "LI") && !m.slavoGermanic:
		m.addBoth("KL", "L")
		return i + 2
	case i == 0 && (next == 'Y' || m.has(i+1, 2, "ES", "EP", "EB", "EL", "EY", "IB", "IL", "IN", "IE", "EI", "ER")):
		m.addBoth("K", "J")
		return i + 2
	case (m.has(i+1, 2, "ER") || next == 'Y') &&
		!m.has(0, 6, "DANGER", "RANGER", "MANGER") &&
		!m.has(i-1, 1, "E", "I") &&
		!m.has(i-1, 3, "RGY", "OGY"):
		m.addBoth("K", "J")
		return i + 2
	case m.has(i+1, 1, "E", "I", "Y") || m.has(i-1, 4, "AGGI", "OGGI"):
		switch {
		case m.germanic() || m.has(i+1, 2, "ET"):
			m.add("K")
		case m.has(i+1, 3, "IER"):
			m.add("J")
		default:
			m.addBoth("J", "K")
		}
		return i + 2
	case next == 'G':
		m.add("K")
		return i + 2
	}
	m.add("K")
	return i + 1
}

func (m *metaphone) gh(i int) int {
	switch {
	case i > 0 && !m.vowel(i-1):
		m.add("K")
	case i == 0:
		if m.at(i+2) == 'I' {
			m.add("J")
		} else {
			m.add("K")
		}
	case (i > 1 && m.has(i-2, 1, "B", "H", "D")) ||
		(i > 2 && m.has(i-3, 1, "B", "H", "D")) ||
		(i > 3 && m.has(i-4, 1, "B", "H")):
		// silent, as in "hugh" and "bought"
	case i > 2 && m.at(i-1) == 'U' && m.has(i-3, 1, "C", "G", "L", "R", "T"):
		m.add("F")
	case m.at(i-1) != 'I':
		m.add("K")
	}
	return i + 2
}

func (m *metaphone) j(i int) int {
	if m.has(i, 4, "JOSE") {
		if i == 0 && m.n == 4 {
			m.add("H")
		} else {
			m.addBoth("J", "H")
		}
		return i + 1
	}

	switch {
	case i == 0:
		m.addBoth("J", "A")
	case m.vowel(i-1) && !m.slavoGermanic && (m.at(i+1) == 'A' || m.at(i+1) == 'O'):
		m.addBoth("J", "H")
	case i == m.n-1:
		m.primary.WriteString("J")
	case !m.has(i+1, 1, "L", "T", "K", "S", "N", "M", "B", "Z") && !m.has(i-1, 1, "S", "K", "L"):
		m.add("J")
	}
	return m.skipDouble(i, 'J')
}

func (m *metaphone) l(i int) int {
	if m.at(i+1) != 'L' {
		m.add("L")
		return i + 1
	}
	spanish := (i == m.n-3 && m.has(i-1, 4, "ILLO", "ILLA", "ALLE")) ||
		((m.has(m.n-2, 2, "AS", "OS") || m.has(m.n-1, 1, "A", "O")) && m.has(i-1, 4, "ALLE"))
	if spanish {
		m.primary.WriteString("L")
	} else {
		m.add("L")
	}
	return i + 2
}

func (m *metaphone) sound(i int) int {
	switch {
	case m.has(i-1, 3, "ISL", "YSL"):
		return i + 1
	case i == 0 && m.has(i, 5, "SUGAR"):
		m.addBoth("X", "S")
		return i + 1
	case m.has(i, 2, "SH"):
		if m.has(i+1, 4, "HEIM", "HOEK", "HOLM", "HOLZ") {
			m.add("S")
		} else {
			m.add("X")
		}
		return i + 2
	case m.has(i, 3, "SIO", "SIA"):
		if m.slavoGermanic {
			m.add("S")
		} else {
			m.addBoth("S", "X")
		}
		return i + 3
	case (i == 0 && m.has(i+1, 1, "M", "N", "L", "W")) || m.has(i+1, 1, "Z"):
		m.addBoth("S", "X")
		if m.has(i+1, 1, "Z") {
			return i + 2
		}
		return i + 1
	case m.has(i, 2, "SC"):
		return m.sc(i)
	}

	if i == m.n-1 && m.has(i-2, 2, "AI", "OI") {
		m.alternate.WriteString("S")
	} else {
		m.add("S")
	}
	if m.has(i+1, 1, "S", "Z") {
		return i + 2
	}
	return i + 1
}

func (m *metaphone) sc(i int) int {
	switch {
	case m.at(i+2) == 'H':
		switch {
		case m.has(i+3, 2, "ER", "EN"):
			m.addBoth("X", "SK")
		case m.has(i+3, 2, "OO", "UY", "ED", "EM"):
			m.add("SK")
		case i == 0 && !m.vowel(3) && m.at(3) != 'W':
			m.addBoth("X", "S")
		default:
			m.add("X")
		}
	case m.has(i+2, 1, "I", "E", "Y"):
		m.add("S")
	default:
		m.add("SK")
	}
	return i + 3
}

func (m *metaphone) t(i int) int {
	switch {
	case m.has(i, 4, "TION"):
		m.add("X")
		return i + 3
	case m.has(i, 3, "TIA", "TCH"):
		m.add("X")
		return i + 3
	case m.has(i, 2, "TH") || m.has(i, 3, "TTH"):
		if m.has(i+2, 2, "OM", "AM") || m.germanic() {
			m.add("T")
		} else {
			m.addBoth("0", "T")
		}
		return i + 2
	}
	m.add("T")
	if m.has(i+1, 1, "T", "D") {
		return i + 2
	}
	return i + 1
}

func (m *metaphone) w(i int) int {
	if m.has(i, 2, "WR") {
		m.add("R")
		return i + 2
	}
	switch {
	case i == 0 && m.vowel(i+1):
		m.addBoth("A", "F")
	case i == 0 && m.at(i+1) == 'H':
		m.add("A")
	case (i == m.n-1 && m.vowel(i-1)) ||
		m.has(i-1, 5, "EWSKI", "EWSKY", "OWSKI", "OWSKY") ||
		m.has(0, 3, "SCH"):
		m.alternate.WriteString("F")
	case m.has(i, 4, "WICZ", "WITZ"):
		m.addBoth("TS", "FX")
		return i + 4
	}
	return i + 1
}

func (m *metaphone) x(i int) int {
	if i == 0 {
		m.add("S")
		return i + 1
	}
	french := i == m.n-1 && (m.has(i-3, 3, "IAU", "EAU") || m.has(i-2, 2, "AU", "OU"))
	if !french {
		m.add("KS")
	}
	if m.has(i+1, 1, "C", "X") {
		return i + 2
	}
	return i + 1
}

func (m *metaphone) z(i int) int {
	if m.at(i+1) == 'H' {
		m.add("J")
		return i + 2
	}
	if m.has(i+1, 2, "ZO", "ZI", "ZA") || (m.slavoGermanic && i > 0 && m.at(i-1) != 'T') {
		m.addBoth("S", "TS")
	} else {
		m.add("S")
	}
	return m.skipDouble(i, 'Z')
}
