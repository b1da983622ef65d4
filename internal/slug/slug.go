// Package slug turns free-form titles into URL-safe identifiers.
package slug

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Separator joins the tokens of a slug.
const Separator = "-"

// MaxLength caps a slug in bytes so a suffixed slug still fits the
// blog_posts.slug column. Expansions such as "&" -> "and" can make a slug
// longer than its title.
const MaxLength = 200

// replacements covers letters that do not decompose into an ASCII base plus marks.
var replacements = strings.NewReplacer(
	"&", " and ",
	"ß", "ss",
	"æ", "ae", "Æ", "ae",
	"œ", "oe", "Œ", "oe",
	"ø", "o", "Ø", "o",
	"đ", "d", "Đ", "d",
	"ł", "l", "Ł", "l",
	"þ", "th", "Þ", "th",
)

// Make lowercases title, folds accents to ASCII, and joins every run of
// letters and digits with Separator. Anything that is not [a-z0-9] after
// folding acts as a break. The result never starts or ends with Separator
// and is empty when title has no usable characters. Slugs longer than
// MaxLength are cut back to the last separator that fits.
func Make(title string) string {
	folded := fold(replacements.Replace(title))

	var b strings.Builder
	b.Grow(len(folded))
	pendingSep := false
	for _, r := range folded {
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteString(Separator)
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return truncate(b.String())
}

// truncate keeps s within MaxLength. s is ASCII, so byte cuts are safe.
func truncate(s string) string {
	if len(s) <= MaxLength {
		return s
	}
	cut := s[:MaxLength]
	if i := strings.LastIndex(cut, Separator); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, Separator)
}

// WithSuffix returns the n-th candidate for base when earlier ones are taken.
// The first candidate is base itself.
func WithSuffix(base string, n int) string {
	if n < 2 {
		return base
	}
	return base + Separator + strconv.Itoa(n)
}

func fold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
