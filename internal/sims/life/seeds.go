package life

import (
	"sort"
	"strings"
)

// DefaultSize is the side length of the board in cells.
const DefaultSize = 21

// letters spells LIFE across nine rows of a 21-wide board.
const letters = "" +
	"000000000000000000000" +
	"010000010011110011110" +
	"010000010010000010000" +
	"010000010010000010000" +
	"010000010011100011100" +
	"010000010010000010000" +
	"010000010010000010000" +
	"011110010010000011110" +
	"000000000000000000000"

// acorn is a methuselah that runs for thousands of generations on an
// unbounded plane.
const acorn = "" +
	"000000000000000000000" +
	"000000000000000000000" +
	"000000000000000000000" +
	"000000000000000000000" +
	"000000001000000000000" +
	"000000000010000000000" +
	"000000011001110000000" +
	"000000000000000000000" +
	"000000000000000000000"

var seeds = map[string]string{
	"letters": strings.Repeat(letters, 3),
	"acorn":   acorn,
	"empty":   "",
}

// Seed returns the pattern registered under name.
func Seed(name string) (string, bool) {
	s, ok := seeds[name]
	return s, ok
}

// SeedNames lists the registered patterns in lexical order.
func SeedNames() []string {
	names := make([]string, 0, len(seeds))
	for name := range seeds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveSeed returns a named pattern, or value itself when it is not a
// registered name and therefore assumed to be a raw '0'/'1' seed.
func ResolveSeed(value string) string {
	if s, ok := seeds[value]; ok {
		return s
	}
	return value
}
