package copedent

import "strings"

// NumStrings is the string count of the modeled instrument (E9 pedal
// steel).
const NumStrings = 10

// Position is a pedal or knee lever on the instrument, plus the neutral
// Open state. It is a closed set: every value is handled explicitly and
// there is no lookup-by-name path at runtime.
type Position int

const (
	Open Position = iota
	A
	B
	C
	D
	LKL
	LKV
	LKR
	RKL
	RKR
)

// AllPositions lists every position in chart order.
var AllPositions = []Position{Open, A, B, C, D, LKL, LKV, LKR, RKL, RKR}

func (p Position) String() string {
	switch p {
	case Open:
		return "Open"
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case LKL:
		return "LKL"
	case LKV:
		return "LKV"
	case LKR:
		return "LKR"
	case RKL:
		return "RKL"
	case RKR:
		return "RKR"
	}
	return "?"
}

// Change raises or lowers one string by a number of semitones. String
// numbers are 1-indexed, as printed on copedent charts.
type Change struct {
	String    int
	Semitones int
}

// Changes returns the copedent chart entries for a position. Standard
// Emmons setup.
func Changes(p Position) []Change {
	switch p {
	case Open:
		return nil
	case A:
		return []Change{{String: 10, Semitones: 2}, {String: 5, Semitones: 2}}
	case B:
		return []Change{{String: 6, Semitones: 1}, {String: 3, Semitones: 1}}
	case C:
		return []Change{{String: 5, Semitones: 2}, {String: 4, Semitones: 2}}
	case D:
		return []Change{{String: 1, Semitones: 2}}
	case LKL:
		return []Change{{String: 8, Semitones: 1}, {String: 4, Semitones: 1}}
	case LKV:
		return []Change{{String: 5, Semitones: -1}}
	case LKR:
		return []Change{{String: 8, Semitones: -1}, {String: 4, Semitones: -1}}
	case RKL:
		return []Change{{String: 1, Semitones: -1}, {String: 6, Semitones: -2}}
	case RKR:
		return []Change{{String: 9, Semitones: -1}, {String: 2, Semitones: -1}}
	}
	return nil
}

// Compose merges the changes of every engaged position into one per-string
// semitone offset vector. Each individual change is reduced into [0,12)
// before summing; the per-string sums are deliberately not re-reduced, so
// co-engaged positions accumulate additively (A and B both raising a
// string gives the full combined raise). Wraparound happens later, in the
// pitch lookup. Commutative in its input order.
func Compose(positions []Position) []int {
	offsets := make([]int, NumStrings)
	for _, p := range positions {
		for _, ch := range Changes(p) {
			offsets[ch.String-1] += ((ch.Semitones % 12) + 12) % 12
		}
	}
	return offsets
}

// Name renders a set of engaged positions as "A & B & LKR".
func Name(positions []Position) string {
	parts := make([]string, 0, len(positions))
	for _, p := range positions {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, " & ")
}

// PossiblePositions is the curated catalog of position combinations worth
// searching: the open neck, each control alone, and the pairs players
// actually engage together. The list is chart data, not derived — keep it
// exactly as documented.
func PossiblePositions() [][]Position {
	return [][]Position{
		{Open},
		{A},
		{B},
		{C},
		{LKL},
		{LKV},
		{LKR},
		{RKL},
		{RKR},
		{A, B},
		{B, C},
		{A, LKL},
		{B, LKR},
		{LKV},
		{RKL},
		{RKR},
	}
}
