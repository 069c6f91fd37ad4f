package models

import "strings"

// Round codes are the human-facing labels (rr1, de3, f2). They are translated
// to canonical round integers at the boundary and never stored.
var roundCodes = map[string]int{
	"rr1": 1, "rr2": 2, "rr3": 3, "rr4": 4, "rr5": 5,
	"de1": 6, "de2": 7, "de3": 8, "de4": 9, "de5": 10, "de6": 11, "de7": 12,
	"f1": 13, "f2": 14,
}

// AllRoundCodes in canonical round order.
var AllRoundCodes = []string{
	"rr1", "rr2", "rr3", "rr4", "rr5",
	"de1", "de2", "de3", "de4", "de5", "de6", "de7",
	"f1", "f2",
}

// RoundFromCode resolves a round code case-insensitively.
func RoundFromCode(code string) (int, bool) {
	round, ok := roundCodes[strings.ToLower(strings.TrimSpace(code))]
	return round, ok
}
