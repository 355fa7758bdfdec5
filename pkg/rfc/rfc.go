// Package rfc derives the first ten characters of a Mexican RFC
// (Registro Federal de Contribuyentes) from a person's name and birth
// date, following the SAT rules for individuals. The two-character
// homoclave is not generated.
package rfc

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/drvaldez/consultorio_backend/pkg/constants"
)

// Surname particles skipped when locating the significant part of a name.
var particles = map[string]bool{
	"DE": true, "LA": true, "LAS": true, "LOS": true, "DEL": true,
	"Y": true, "A": true, "E": true, "EN": true, "EL": true,
	"VON": true, "VAN": true, "DI": true, "DA": true, "DAS": true,
	"DELLO": true, "DELLA": true, "DEI": true, "DEGLI": true,
}

// Prefixes fused with the rest of the surname (McFly -> MCFLY).
var fusedPrefixes = map[string]bool{
	"MC": true, "MAC": true,
}

// First names skipped when a second, non-particle name token exists.
var skipNames = map[string]bool{
	"JOSE": true, "J": true, "MARIA": true, "MA": true,
}

// Four-letter roots the SAT considers offensive. The fourth character
// is replaced with X when the derived root matches one of these.
var denylist = map[string]bool{
	"BUEI": true, "BUEY": true, "CACA": true, "CACO": true, "CAGA": true,
	"CAGO": true, "CAKA": true, "COGE": true, "COJA": true, "COJO": true,
	"CULO": true, "FETO": true, "JOTO": true, "KACA": true, "KACO": true,
	"KAGA": true, "KAGO": true, "KOGE": true, "KOJO": true, "KULO": true,
	"MAMO": true, "MEAR": true, "MEAS": true, "MEON": true, "MION": true,
	"MULA": true, "PEDO": true, "PEDA": true, "PENE": true, "PUTA": true,
	"PUTO": true, "QULO": true, "RATA": true, "RUIN": true,
}

var (
	nonLetter  = regexp.MustCompile(`[^A-Z ]`)
	multiSpace = regexp.MustCompile(`\s+`)
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Generate returns the 10-character RFC for the given identity, or the
// empty string when givenName, paternal, or birthDate is missing. If
// birthDate does not parse as YYYY-MM-DD the 4-letter root is returned
// without the date portion.
func Generate(givenName, paternal, maternal, birthDate string) string {
	if givenName == "" || paternal == "" || birthDate == "" {
		return ""
	}

	root := rootLetters(givenName, paternal, maternal)

	if denylist[root] {
		root = root[:3] + "X"
	}

	date, err := time.Parse(constants.DateLayout, birthDate)
	if err != nil {
		return root
	}

	return fmt.Sprintf("%s%02d%02d%02d", root, date.Year()%100, int(date.Month()), date.Day())
}

// rootLetters builds the 4-letter base: two from the paternal surname,
// the maternal initial, and the given-name initial.
func rootLetters(givenName, paternal, maternal string) string {
	pSig := significantPart(normalize(paternal))
	pFirst := strings.SplitN(pSig, " ", 2)[0]

	mSig := significantPart(normalize(maternal))
	mInitial := byte('X')
	if mSig != "" {
		mInitial = mSig[0]
	}

	nInitial := byte('X')
	if name := significantName(normalize(givenName)); name != "" {
		nInitial = name[0]
	}

	var p1, p2 byte
	if len(pFirst) <= 2 {
		// Short surnames (O, MA) take both characters, padded with X.
		p1, p2 = 'X', 'X'
		if len(pFirst) > 0 {
			p1 = pFirst[0]
		}
		if len(pFirst) > 1 {
			p2 = pFirst[1]
		}
	} else {
		p1 = pFirst[0]
		p2 = firstInnerVowel(pFirst)
	}

	return string([]byte{p1, p2, mInitial, nInitial})
}

// normalize uppercases, maps Ñ to X, strips diacritics, removes
// non-letter characters, and collapses whitespace.
func normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "Ñ", "X")
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	s = nonLetter.ReplaceAllString(s, "")
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}

// significantPart locates the portion of a surname the RFC is built
// from: the remainder starting at the first non-particle token, the
// fused remainder for MC/MAC surnames, or the last token when every
// token is a particle ("De la O" -> "O").
func significantPart(fullName string) string {
	parts := strings.Split(fullName, " ")
	if len(parts) == 1 {
		return parts[0]
	}
	for i, part := range parts {
		if fusedPrefixes[part] {
			return strings.Join(parts[i:], "")
		}
		if !particles[part] {
			return strings.Join(parts[i:], " ")
		}
	}
	return parts[len(parts)-1]
}

// significantName applies the JOSE/MARIA rule: when the first name is a
// skip name and further tokens exist, the first non-particle token that
// follows is used instead. If only particles follow, the original first
// token stands.
func significantName(normalized string) string {
	parts := strings.Split(normalized, " ")
	first := parts[0]
	if !skipNames[first] || len(parts) < 2 {
		return first
	}
	for _, part := range parts[1:] {
		if !particles[part] {
			return part
		}
	}
	return first
}

// firstInnerVowel returns the first vowel after the first character,
// or X when there is none.
func firstInnerVowel(s string) byte {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case 'A', 'E', 'I', 'O', 'U':
			return s[i]
		}
	}
	return 'X'
}

// Age returns the whole years elapsed since birthDate (YYYY-MM-DD) as
// of today, or -1 when the date is missing, invalid, or in the future.
func Age(birthDate string) int {
	return AgeAt(birthDate, time.Now())
}

// AgeAt computes the age as of a reference date.
func AgeAt(birthDate string, at time.Time) int {
	if birthDate == "" {
		return -1
	}
	born, err := time.Parse(constants.DateLayout, birthDate)
	if err != nil {
		return -1
	}

	age := at.Year() - born.Year()
	if at.Month() < born.Month() || (at.Month() == born.Month() && at.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return -1
	}
	return age
}
