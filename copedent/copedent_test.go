package copedent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangesForPedalA(t *testing.T) {
	changes := Changes(A)

	assert := assert.New(t)
	assert.Len(changes, 2)
	assert.Equal(Change{String: 10, Semitones: 2}, changes[0])
	assert.Equal(Change{String: 5, Semitones: 2}, changes[1])
}

func TestComposeOpenIsAllZeros(t *testing.T) {
	assert.Equal(t, make([]int, NumStrings), Compose([]Position{Open}))
}

func TestComposePedalA(t *testing.T) {
	offsets := Compose([]Position{A})
	assert.Equal(t, []int{0, 0, 0, 0, 2, 0, 0, 0, 0, 2}, offsets)
}

func TestComposePedalsAAndB(t *testing.T) {
	offsets := Compose([]Position{A, B})
	assert.Equal(t, []int{0, 0, 1, 0, 2, 1, 0, 0, 0, 2}, offsets)
}

func TestComposeLowersWrapIntoRange(t *testing.T) {
	// LKV lowers string 5 by one semitone, stored as +11 pre-summation.
	offsets := Compose([]Position{LKV})
	assert.Equal(t, 11, offsets[4])
}

func TestComposeSumsAreNotReReduced(t *testing.T) {
	// A and C both raise string 5 by 2; the combined raise stays 4.
	offsets := Compose([]Position{A, C})
	assert.Equal(t, 4, offsets[4])
}

func TestComposeIsCommutative(t *testing.T) {
	assert := assert.New(t)
	for _, a := range AllPositions {
		for _, b := range AllPositions {
			assert.Equal(Compose([]Position{a, b}), Compose([]Position{b, a}))
		}
	}
}

func TestPositionName(t *testing.T) {
	assert.Equal(t, "A & B & LKR", Name([]Position{A, B, LKR}))
}

func TestPossiblePositionsCatalog(t *testing.T) {
	combos := PossiblePositions()

	assert := assert.New(t)
	assert.Len(combos, 16)
	assert.Equal([]Position{Open}, combos[0])
	assert.Contains(combos, []Position{A, B})
	assert.Contains(combos, []Position{B, C})
	assert.Contains(combos, []Position{A, LKL})
	assert.Contains(combos, []Position{B, LKR})
}
