package gen

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/kioskworks/artprint/imgutil"
)

// genLife seeds a reduced-resolution boolean grid, runs Conway's Game of Life
// for a random number of generations on a toroidal wrap, then renders local
// cell density as grayscale and upscales with nearest-neighbor so the cell
// structure survives.
func genLife(seed int64, w, h int) *image.Gray {
	rng := newRand(seed)

	gw := maxInt(64, w/8)
	gh := maxInt(64, h/8)

	grid := make([]uint8, gw*gh)
	threshold := uniform(rng, 0.6, 0.7)
	for i := range grid {
		if rng.Float64() > threshold {
			grid[i] = 1
		}
	}

	steps := randBetween(rng, 30, 89)
	for s := 0; s < steps; s++ {
		grid = stepLife(grid, gw, gh)
	}

	// 5-cell density average (self + cardinal neighbors) turns the sparse
	// alive/dead pattern into printable midtones.
	small := image.NewGray(image.Rect(0, 0, gw, gh))
	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			sum := int(grid[y*gw+x]) +
				int(grid[wrap(y-1, gh)*gw+x]) +
				int(grid[wrap(y+1, gh)*gw+x]) +
				int(grid[y*gw+wrap(x-1, gw)]) +
				int(grid[y*gw+wrap(x+1, gw)])
			small.Pix[y*gw+x] = imgutil.Clamp8(float64(sum) / 5.0 * 255.0)
		}
	}

	up := imaging.Resize(small, w, h, imaging.NearestNeighbor)
	return blur(up, uniform(rng, 0.3, 0.7))
}

// stepLife applies one generation of the Moore-neighborhood rule:
// birth on 3 neighbors, survival on 2 or 3.
func stepLife(grid []uint8, gw, gh int) []uint8 {
	next := make([]uint8, len(grid))
	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					n += int(grid[wrap(y+dy, gh)*gw+wrap(x+dx, gw)])
				}
			}
			alive := grid[y*gw+x] == 1
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				next[y*gw+x] = 1
			}
		}
	}
	return next
}

func wrap(i, n int) int {
	if i < 0 {
		return i + n
	}
	if i >= n {
		return i - n
	}
	return i
}
