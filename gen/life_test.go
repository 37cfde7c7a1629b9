package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lifeGrid(gw, gh int, alive ...[2]int) []uint8 {
	g := make([]uint8, gw*gh)
	for _, c := range alive {
		g[c[1]*gw+c[0]] = 1
	}
	return g
}

func TestStepLifeBlinker(t *testing.T) {
	// horizontal blinker flips to vertical and back
	const gw, gh = 8, 8
	horiz := lifeGrid(gw, gh, [2]int{2, 3}, [2]int{3, 3}, [2]int{4, 3})
	vert := lifeGrid(gw, gh, [2]int{3, 2}, [2]int{3, 3}, [2]int{3, 4})

	assert.Equal(t, vert, stepLife(horiz, gw, gh))
	assert.Equal(t, horiz, stepLife(vert, gw, gh))
}

func TestStepLifeBlock(t *testing.T) {
	// 2x2 block is a still life
	const gw, gh = 6, 6
	block := lifeGrid(gw, gh, [2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3})
	assert.Equal(t, block, stepLife(block, gw, gh))
}

func TestStepLifeWraps(t *testing.T) {
	// a blinker across the seam relies on toroidal neighbors
	const gw, gh = 5, 5
	horiz := lifeGrid(gw, gh, [2]int{4, 2}, [2]int{0, 2}, [2]int{1, 2})
	next := stepLife(horiz, gw, gh)
	assert.Equal(t, uint8(1), next[1*gw+0])
	assert.Equal(t, uint8(1), next[2*gw+0])
	assert.Equal(t, uint8(1), next[3*gw+0])
	assert.Equal(t, uint8(0), next[2*gw+4])
}
