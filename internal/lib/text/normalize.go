package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// translitTable maps Cyrillic letters to their Latin spelling. Anything
// outside the table passes through unchanged, so Latin input is untouched.
var translitTable = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "e", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "sch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",
}

var punctuationReplacer = strings.NewReplacer(
	".", " ",
	",", " ",
	"'", " ",
	`"`, " ",
	"-", " ",
	"_", " ",
	"/", " ",
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize maps a string to the canonical form used for brand comparison:
// lowercase, transliterated, accent-stripped, punctuation folded to spaces,
// whitespace collapsed. It never fails and is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if latin, ok := translitTable[r]; ok {
			sb.WriteString(latin)
		} else {
			sb.WriteRune(r)
		}
	}

	out, _, err := transform.String(stripMarks, sb.String())
	if err != nil {
		out = sb.String()
	}

	out = punctuationReplacer.Replace(out)

	return strings.Join(strings.Fields(out), " ")
}

// HasMeaningfulContent reports whether a string contains at least one letter
// or digit. Strings made purely of emoji or decorative symbols do not count.
func HasMeaningfulContent(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
