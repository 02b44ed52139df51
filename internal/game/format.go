package game

import "github.com/dustin/go-humanize"

// money formats v with thousands separators.
func money(v int64) string {
	return humanize.Comma(v)
}

// signed formats v with an explicit sign, e.g. "+1,000" or "-500".
func signed(v int64) string {
	if v >= 0 {
		return "+" + humanize.Comma(v)
	}
	return humanize.Comma(v)
}
