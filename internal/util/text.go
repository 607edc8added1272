package util

import (
	"strings"
	"unicode/utf8"
)

// productNameFixups is applied in order; later entries see the output of
// earlier ones. The list mirrors the vendor feed's known artifacts.
var productNameFixups = [][2]string{
	{"Stck", "Stack"},
	{"Kse", "Cheese"},
	{"HOT HOT HOT", "Hot"},
	{" Hot Hot Hot", "Hot"},
	{"Mayonnaise, 17ml", "Mayonnaise 17ml"},
	{"Mayo, 50ml", "Mayo 50ml"},
	{"Sauce, 50ml", "Sauce 50ml"},
	{"Cola 0,5l", "Cola 0.5l"},
	{"Salsa, 30ml", "Salsa 30ml"},
	{"Italien,", "Italien"},
}

// CleanProductName repairs mojibake in a raw product name and expands the
// vendor's abbreviations and inconsistent multi-unit descriptors.
func CleanProductName(input string) string {
	s := RepairMojibake(input)
	for _, pair := range productNameFixups {
		s = strings.ReplaceAll(s, pair[0], pair[1])
	}
	return s
}

// RepairMojibake reconstructs UTF-8 text that was mis-decoded as Latin-1
// upstream: each rune in the Latin-1 range is narrowed back to its original
// byte and the byte stream is re-read as UTF-8. Runes outside Latin-1 and
// byte sequences that still fail to decode are dropped. Best-effort, never
// fails.
func RepairMojibake(input string) string {
	raw := make([]byte, 0, len(input))
	for _, r := range input {
		if r <= 0xFF {
			raw = append(raw, byte(r))
		}
	}

	out := strings.Builder{}
	out.Grow(len(raw))
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		if r == utf8.RuneError && size == 1 {
			raw = raw[1:]
			continue
		}
		out.WriteRune(r)
		raw = raw[size:]
	}
	return out.String()
}

// FoldUmlauts rewrites the two umlauts the canonical-name table is keyed
// without. Other diacritics are left untouched.
func FoldUmlauts(input string) string {
	repl := strings.NewReplacer("ö", "o", "ü", "u")
	return repl.Replace(input)
}

// TitleCase upper-cases the first letter of every word and lower-cases the
// rest, treating any non-letter as a word boundary.
func TitleCase(input string) string {
	out := strings.Builder{}
	out.Grow(len(input))
	startOfWord := true
	for _, r := range input {
		switch {
		case !isLetter(r):
			startOfWord = true
			out.WriteRune(r)
		case startOfWord:
			out.WriteRune(toUpper(r))
			startOfWord = false
		default:
			out.WriteRune(toLower(r))
		}
	}
	return out.String()
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
