package notification

import "strings"

// NormalizePhone turns a number as typed by a customer into a "+<digits>"
// address for the provider.
//
// This is a best-effort heuristic that assumes customers are mostly in the
// region of defaultCC:
//   - a leading "+" means the number is already fully qualified;
//   - digits that already start with defaultCC only get a "+";
//   - anything else is treated as a national number and gets "+<defaultCC>".
//
// A national number that happens to begin with the same digits as
// defaultCC is read as already qualified. Spaces, dashes, dots and
// parentheses are dropped; nothing else is validated.
func NormalizePhone(raw, defaultCC string) string {
	phone := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')', '\t':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
	defaultCC = strings.TrimPrefix(defaultCC, "+")

	switch {
	case phone == "":
		return ""
	case strings.HasPrefix(phone, "+"):
		return phone
	case defaultCC != "" && strings.HasPrefix(phone, defaultCC):
		return "+" + phone
	default:
		return "+" + defaultCC + phone
	}
}

// waDigits keeps only the digits wa.me accepts in its path.
func waDigits(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}
