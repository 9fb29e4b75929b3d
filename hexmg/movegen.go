package hexmg

// promotionPieces in the order they are generated; queen first so that
// callers taking the first matching move get the usual default.
var promotionPieces = [4]PieceType{
	PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight,
}

// isPromotionPos reports whether a pawn of the given color promotes on p.
// The far edge for White is x == 10 or y == 10; mirrored for Black.
func isPromotionPos(c Color, p Pos) bool {
	if c == White {
		return p.X == MaxCoord || p.Y == MaxCoord
	}
	return p.X == 0 || p.Y == 0
}

// isDoubleAdvancePos reports whether a pawn of the given color may still
// make its two-stride advance from p. The initial pawn cells for White are
// x == 4 && y <= 4 or y == 4 && x <= 4; mirrored for Black.
func isDoubleAdvancePos(c Color, p Pos) bool {
	if c == White {
		return (p.X == 4 && p.Y <= 4) || (p.Y == 4 && p.X <= 4)
	}
	return (p.X == 6 && p.Y >= 6) || (p.Y == 6 && p.X >= 6)
}

// GeneratePseudoMoves generates every move for the side to move that obeys
// piece movement rules, ignoring whether it leaves the own king in check.
func (b *Board) GeneratePseudoMoves() []Move {
	moves := make([]Move, 0, 64)
	b.generatePseudoInto(&moves, false)
	return moves
}

// GenerateCaptures generates pseudo-legal captures and promotions only, for
// quiescence search.
func (b *Board) GenerateCaptures() []Move {
	moves := make([]Move, 0, 16)
	b.generatePseudoInto(&moves, true)
	return moves
}

// GenerateMoves generates the fully legal moves for the side to move: the
// pseudo-legal set filtered by making each move and rejecting those that
// leave the mover's king attacked.
func (b *Board) GenerateMoves() []Move {
	pseudo := b.GeneratePseudoMoves()
	legal := pseudo[:0]
	for _, m := range pseudo {
		if ok, st := b.MakeMove(m); ok {
			b.UnmakeMove(m, st)
			legal = append(legal, m)
		}
	}
	return legal
}

func (b *Board) generatePseudoInto(moves *[]Move, capturesOnly bool) {
	us := b.sideToMove
	for sq := Square(0); sq < NumberOfTiles; sq++ {
		p := b.pieces[sq]
		if p == NoPiece || p.Color() != us {
			continue
		}
		switch p.Type() {
		case PieceTypePawn:
			b.generatePawnMoves(moves, sq, us, capturesOnly)
		case PieceTypeKnight:
			b.generateLeaperMoves(moves, sq, us, knightTargets[sq], capturesOnly)
		case PieceTypeKing:
			b.generateLeaperMoves(moves, sq, us, kingTargets[sq], capturesOnly)
		case PieceTypeBishop:
			b.generateSliderMoves(moves, sq, us, &bishopRays[sq], capturesOnly)
		case PieceTypeRook:
			b.generateSliderMoves(moves, sq, us, &rookRays[sq], capturesOnly)
		case PieceTypeQueen:
			b.generateSliderMoves(moves, sq, us, &rookRays[sq], capturesOnly)
			b.generateSliderMoves(moves, sq, us, &bishopRays[sq], capturesOnly)
		}
	}
}

func (b *Board) generateLeaperMoves(moves *[]Move, from Square, us Color, targets []Square, capturesOnly bool) {
	for _, to := range targets {
		t := b.pieces[to]
		if t == NoPiece {
			if !capturesOnly {
				*moves = append(*moves, NewMove(from, to, PieceTypeNone, FlagNone))
			}
		} else if t.Color() != us {
			*moves = append(*moves, NewMove(from, to, PieceTypeNone, FlagNone))
		}
	}
}

func (b *Board) generateSliderMoves(moves *[]Move, from Square, us Color, rays *[6][]Square, capturesOnly bool) {
	for i := 0; i < 6; i++ {
		for _, to := range rays[i] {
			t := b.pieces[to]
			if t == NoPiece {
				if !capturesOnly {
					*moves = append(*moves, NewMove(from, to, PieceTypeNone, FlagNone))
				}
				continue
			}
			if t.Color() != us {
				*moves = append(*moves, NewMove(from, to, PieceTypeNone, FlagNone))
			}
			break
		}
	}
}

func (b *Board) generatePawnMoves(moves *[]Move, from Square, us Color, capturesOnly bool) {
	p := posOf(from)
	dir := us.direction()
	forward := Delta{dir, dir}

	// Advances. A promotion counts as a tactical move even without a capture.
	one := p.Add(forward)
	if one.Valid() && b.pieces[squareOf(one)] == NoPiece {
		if isPromotionPos(us, one) {
			appendPawnMoves(moves, from, squareOf(one), us, one, FlagNone)
		} else if !capturesOnly {
			*moves = append(*moves, NewMove(from, squareOf(one), PieceTypeNone, FlagNone))
			if isDoubleAdvancePos(us, p) {
				two := one.Add(forward)
				if two.Valid() && b.pieces[squareOf(two)] == NoPiece {
					*moves = append(*moves, NewMove(from, squareOf(two), PieceTypeNone, FlagDoubleAdvance))
				}
			}
		}
	}

	// Captures along the two strides adjacent to forward.
	for _, d := range [2]Delta{{0, dir}, {dir, 0}} {
		to := p.Add(d)
		if !to.Valid() {
			continue
		}
		toSq := squareOf(to)
		t := b.pieces[toSq]
		if t != NoPiece && t.Color() != us {
			appendPawnMoves(moves, from, toSq, us, to, FlagNone)
		} else if t == NoPiece && toSq == b.enPassantSquare {
			*moves = append(*moves, NewMove(from, toSq, PieceTypeNone, FlagEnPassant))
		}
	}
}

// appendPawnMoves appends a pawn move to toSq, expanding into the four
// promotion choices when toPos is on the mover's far edge.
func appendPawnMoves(moves *[]Move, from, toSq Square, us Color, toPos Pos, flag uint32) {
	if isPromotionPos(us, toPos) {
		for _, pt := range promotionPieces {
			*moves = append(*moves, NewMove(from, toSq, pt, flag))
		}
		return
	}
	*moves = append(*moves, NewMove(from, toSq, PieceTypeNone, flag))
}

// isSquareAttacked reports whether any piece of color `by` attacks sq.
// Pawns are probed from the cells they would capture from, leapers through
// the precomputed target tables (leaper attacks are symmetric), and sliders
// by walking each ray to its first occupied cell.
func (b *Board) isSquareAttacked(sq Square, by Color) bool {
	p := posOf(sq)

	dir := by.direction()
	for _, d := range [2]Delta{{0, -dir}, {-dir, 0}} {
		if q := p.Add(d); q.Valid() {
			if b.pieces[squareOf(q)] == PieceFromType(by, PieceTypePawn) {
				return true
			}
		}
	}

	knight := PieceFromType(by, PieceTypeKnight)
	for _, t := range knightTargets[sq] {
		if b.pieces[t] == knight {
			return true
		}
	}

	king := PieceFromType(by, PieceTypeKing)
	for _, t := range kingTargets[sq] {
		if b.pieces[t] == king {
			return true
		}
	}

	rook := PieceFromType(by, PieceTypeRook)
	queen := PieceFromType(by, PieceTypeQueen)
	for i := 0; i < 6; i++ {
		for _, t := range rookRays[sq][i] {
			occ := b.pieces[t]
			if occ == NoPiece {
				continue
			}
			if occ == rook || occ == queen {
				return true
			}
			break
		}
	}

	bishop := PieceFromType(by, PieceTypeBishop)
	for i := 0; i < 6; i++ {
		for _, t := range bishopRays[sq][i] {
			occ := b.pieces[t]
			if occ == NoPiece {
				continue
			}
			if occ == bishop || occ == queen {
				return true
			}
			break
		}
	}

	return false
}
