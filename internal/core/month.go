package core

import "time"

// DeriveMonth turns a stored date value into its "YYYY-MM" key.
//
// Values of at least seven characters are first parsed as YYYY-MM-DD using
// their first ten characters; month and day need not be zero padded. When that fails the first seven characters are
// returned verbatim, so an already bucketed "2024-03" stays "2024-03" and
// garbage stays garbage. Shorter input yields "".
func DeriveMonth(raw string) string {
	runes := []rune(raw)
	if len(runes) < 7 {
		return ""
	}
	head := runes
	if len(head) > 10 {
		head = head[:10]
	}
	if t, err := time.Parse(parseLayout, string(head)); err == nil {
		return t.Format("2006-01")
	}
	return string(runes[:7])
}
