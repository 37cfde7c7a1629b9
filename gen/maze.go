package gen

import (
	"image"
	"math/rand"

	"github.com/disintegration/imaging"
)

// genMaze carves a randomized depth-first-search maze on a coarse odd-sized
// grid, renders the carved cells as light blocks on black, and scales up.
func genMaze(seed int64, w, h int) *image.Gray {
	rng := newRand(seed)

	cols := maxInt(17, w/randBetween(rng, 18, 27))
	rows := maxInt(17, h/randBetween(rng, 18, 27))
	if cols%2 == 0 {
		cols--
	}
	if rows%2 == 0 {
		rows--
	}

	grid := carveMaze(rng, rows, cols)

	cell := randBetween(rng, 4, 6)
	img := image.NewGray(image.Rect(0, 0, cols*cell, rows*cell))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if !grid[y*cols+x] {
				continue
			}
			for yy := y * cell; yy < (y+1)*cell; yy++ {
				row := img.Pix[yy*img.Stride:]
				for xx := x * cell; xx < (x+1)*cell; xx++ {
					row[xx] = 220
				}
			}
		}
	}

	up := imaging.Resize(img, w, h, imaging.NearestNeighbor)
	return blur(up, uniform(rng, 0.4, 0.9))
}

// carveMaze runs iterative DFS carving over a rows×cols grid with odd
// dimensions. Cells sit on odd coordinates, connectors on the even cells
// between them; carving a neighbor marks both. The walk starts on an interior
// odd cell (clamped if the random pick lands outside) and backtracks through
// the stack until every reachable cell has been visited, so the carved region
// is always fully connected.
func carveMaze(rng *rand.Rand, rows, cols int) []bool {
	grid := make([]bool, rows*cols)
	visited := make([]bool, rows*cols)

	r0 := 2*rng.Intn(rows/2) + 1
	c0 := 2*rng.Intn(cols/2) + 1
	r0 = clampInt(r0, 1, rows-2)
	c0 = clampInt(c0, 1, cols-2)

	type cell struct{ r, c int }
	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	stack := []cell{{r0, c0}}
	visited[r0*cols+c0] = true
	grid[r0*cols+c0] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var cand [][3]int // nr, nc, dir index
		for i, d := range dirs {
			nr, nc := cur.r+2*d[0], cur.c+2*d[1]
			if nr >= 0 && nr < rows && nc >= 0 && nc < cols && !visited[nr*cols+nc] {
				cand = append(cand, [3]int{nr, nc, i})
			}
		}
		if len(cand) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		rng.Shuffle(len(cand), func(i, j int) { cand[i], cand[j] = cand[j], cand[i] })

		nr, nc, di := cand[0][0], cand[0][1], cand[0][2]
		grid[(cur.r+dirs[di][0])*cols+(cur.c+dirs[di][1])] = true // connector
		grid[nr*cols+nc] = true
		visited[nr*cols+nc] = true
		stack = append(stack, cell{nr, nc})
	}
	return grid
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
