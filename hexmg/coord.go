package hexmg

import (
	"errors"
	"strconv"
)

// The board lives in axial hex coordinates: a cell is an (x, y) pair with
// both components in [0, MaxCoord] and |x-y| <= Width. That envelope carves a
// regular hexagon of 91 cells out of the 11x11 grid. The six hex neighbors of
// a cell are the rook directions below; there is no perpendicular basis, so
// "diagonal" Cartesian steps like (1,1) are straight lines here.
const (
	// MaxCoord is the largest value either coordinate can take.
	MaxCoord = 10
	// Width is the largest allowed |x - y|.
	Width = 5
	// MaxRank is the largest rank (x + y) on the board.
	MaxRank = 20
	// NumberOfTiles is the number of valid cells inside the envelope.
	NumberOfTiles = 91
	// NumberOfFiles is the number of distinct files (5 + y - x).
	NumberOfFiles = 11
)

// Pos is a cell in axial coordinates.
type Pos struct {
	X, Y int8
}

// Square is the flat tile index of a valid cell, rank-major in [0, 91).
type Square int

const NoSquare Square = -1

// Delta is a coordinate offset.
type Delta struct {
	DX, DY int8
}

var (
	// ErrOutOfRange reports a coordinate outside the valid envelope. Callers
	// hitting this on internal paths have a bug, not a recoverable condition.
	ErrOutOfRange = errors.New("hexmg: position outside the board")

	// ErrIllegalMove reports a user-supplied move that no legal move matches.
	ErrIllegalMove = errors.New("hexmg: illegal move")
)

// RookDirections are the six hex-adjacent unit strides. They double as the
// board's neighbor offsets.
var RookDirections = [6]Delta{
	{0, 1}, {1, 1}, {1, 0}, {0, -1}, {-1, -1}, {-1, 0},
}

// BishopDirections are the six "through the edges of two neighbors" strides.
// A bishop stays on cells of equal (x+y) mod 3.
var BishopDirections = [6]Delta{
	{1, -1}, {2, 1}, {1, 2}, {-1, 1}, {-2, -1}, {-1, -2},
}

// KnightDeltas are the twelve leaps of hex distance three that are neither
// rook-like nor bishop-like.
var KnightDeltas = [12]Delta{
	{3, 1}, {1, 3}, {3, 2}, {2, 3}, {2, -1}, {1, -2},
	{-3, -1}, {-1, -3}, {-3, -2}, {-2, -3}, {-2, 1}, {-1, 2},
}

// KingDeltas are the single-stride king moves: rook-like plus bishop-like.
var KingDeltas = [12]Delta{
	{0, 1}, {1, 1}, {1, 0}, {0, -1}, {-1, -1}, {-1, 0},
	{1, -1}, {2, 1}, {1, 2}, {-1, 1}, {-2, -1}, {-1, -2},
}

// Valid reports whether p is inside the board envelope.
func (p Pos) Valid() bool {
	if p.X < 0 || p.X > MaxCoord || p.Y < 0 || p.Y > MaxCoord {
		return false
	}
	d := p.X - p.Y
	if d < 0 {
		d = -d
	}
	return d <= Width
}

// Rank is the hex analogue of a row: x + y, in [0, MaxRank].
func (p Pos) Rank() int { return int(p.X) + int(p.Y) }

// File is the hex analogue of a column: 5 + y - x, in [0, NumberOfFiles).
func (p Pos) File() int { return 5 + int(p.Y) - int(p.X) }

// Flipped is the corresponding cell from the other side of the board.
func (p Pos) Flipped() Pos { return Pos{MaxCoord - p.X, MaxCoord - p.Y} }

// Add offsets p by d. The result may be outside the board.
func (p Pos) Add(d Delta) Pos { return Pos{p.X + d.DX, p.Y + d.DY} }

func (p Pos) String() string {
	return "(" + strconv.Itoa(int(p.X)) + "," + strconv.Itoa(int(p.Y)) + ")"
}

// Distance is the hex distance between two cells: the number of neighbor
// steps needed to get from a to b.
func Distance(a, b Pos) int {
	dx := int(a.X) - int(b.X)
	dy := int(a.Y) - int(b.Y)
	dd := dx - dy
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dd < 0 {
		dd = -dd
	}
	// One of the three always equals the sum of the other two.
	return (dx + dy + dd) / 2
}

// RankWidth is the number of valid cells on a rank: 6 up to 11 toward the
// middle ranks, shrinking symmetrically (1,2,3,4,5,6,5,6,... at the edges).
func RankWidth(rank int) int {
	m := rank
	if MaxRank-rank < m {
		m = MaxRank - rank
	}
	w := m / 2
	if w > 2 {
		w = 2
	}
	return w*2 + 1 + rank%2
}

// minRankY is the lowest y any cell on the given rank can have. Derived from
// y >= rank - MaxCoord and 2y >= rank - Width.
func minRankY(rank int) int {
	h := rank - MaxCoord
	w := (rank - Width + 1) / 2
	if w > h {
		h = w
	}
	if h < 0 {
		h = 0
	}
	return h
}

// Lookup tables between positions and flat indices, filled by init.
var (
	posToSquare [MaxCoord + 1][MaxCoord + 1]Square
	squareToPos [NumberOfTiles]Pos
	tilesBefore [MaxRank + 1]int
)

// IndexOf maps a valid cell to its flat tile index. The mapping is a
// bijection with [0, 91); PosOf inverts it.
func IndexOf(p Pos) (Square, error) {
	if !p.Valid() {
		return NoSquare, ErrOutOfRange
	}
	return posToSquare[p.X][p.Y], nil
}

// PosOf inverts IndexOf.
func PosOf(sq Square) (Pos, error) {
	if sq < 0 || sq >= NumberOfTiles {
		return Pos{}, ErrOutOfRange
	}
	return squareToPos[sq], nil
}

// squareOf is IndexOf for positions already known to be valid.
func squareOf(p Pos) Square {
	return posToSquare[p.X][p.Y]
}

// posOf is PosOf for indices already known to be in range.
func posOf(sq Square) Pos {
	return squareToPos[sq]
}

// Neighbors returns the valid hex-adjacent cells of p (six in the interior,
// fewer at the boundary).
func Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, 6)
	for _, d := range RookDirections {
		if q := p.Add(d); q.Valid() {
			out = append(out, q)
		}
	}
	return out
}

// Ray returns the cells reachable from p by repeating the stride d, in step
// order, terminating at the board edge. Sliding pieces walk these.
func Ray(p Pos, d Delta) []Pos {
	var out []Pos
	for q := p.Add(d); q.Valid(); q = q.Add(d) {
		out = append(out, q)
	}
	return out
}

// AllPositions enumerates every valid cell in flat-index order.
func AllPositions() []Pos {
	out := make([]Pos, NumberOfTiles)
	copy(out[:], squareToPos[:])
	return out
}

// Precomputed movement tables, one slice of target squares per origin. All
// generation and attack queries go through these instead of re-deriving the
// stride formulas.
var (
	knightTargets [NumberOfTiles][]Square
	kingTargets   [NumberOfTiles][]Square
	rookRays      [NumberOfTiles][6][]Square
	bishopRays    [NumberOfTiles][6][]Square
)

func init() {
	for x := 0; x <= MaxCoord; x++ {
		for y := 0; y <= MaxCoord; y++ {
			posToSquare[x][y] = NoSquare
		}
	}

	for r := 1; r <= MaxRank; r++ {
		tilesBefore[r] = tilesBefore[r-1] + RankWidth(r-1)
	}

	count := 0
	for x := int8(0); x <= MaxCoord; x++ {
		for y := int8(0); y <= MaxCoord; y++ {
			p := Pos{x, y}
			if !p.Valid() {
				continue
			}
			sq := Square(tilesBefore[p.Rank()] + int(p.Y) - minRankY(p.Rank()))
			posToSquare[x][y] = sq
			squareToPos[sq] = p
			count++
		}
	}
	if count != NumberOfTiles {
		panic("hexmg: tile count does not match envelope")
	}

	for sq := Square(0); sq < NumberOfTiles; sq++ {
		p := posOf(sq)
		for _, d := range KnightDeltas {
			if q := p.Add(d); q.Valid() {
				knightTargets[sq] = append(knightTargets[sq], squareOf(q))
			}
		}
		for _, d := range KingDeltas {
			if q := p.Add(d); q.Valid() {
				kingTargets[sq] = append(kingTargets[sq], squareOf(q))
			}
		}
		for i, d := range RookDirections {
			for _, q := range Ray(p, d) {
				rookRays[sq][i] = append(rookRays[sq][i], squareOf(q))
			}
		}
		for i, d := range BishopDirections {
			for _, q := range Ray(p, d) {
				bishopRays[sq][i] = append(bishopRays[sq][i], squareOf(q))
			}
		}
	}
}
