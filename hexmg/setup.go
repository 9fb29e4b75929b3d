package hexmg

// whiteStart lists White's initial placement; Black mirrors it through
// (10-x, 10-y).
var whiteStart = []struct {
	pos Pos
	pt  PieceType
}{
	{Pos{4, 0}, PieceTypePawn},
	{Pos{4, 1}, PieceTypePawn},
	{Pos{4, 2}, PieceTypePawn},
	{Pos{4, 3}, PieceTypePawn},
	{Pos{4, 4}, PieceTypePawn},
	{Pos{3, 4}, PieceTypePawn},
	{Pos{2, 4}, PieceTypePawn},
	{Pos{1, 4}, PieceTypePawn},
	{Pos{0, 4}, PieceTypePawn},
	{Pos{0, 0}, PieceTypeBishop},
	{Pos{1, 1}, PieceTypeBishop},
	{Pos{2, 2}, PieceTypeBishop},
	{Pos{0, 2}, PieceTypeKnight},
	{Pos{2, 0}, PieceTypeKnight},
	{Pos{0, 3}, PieceTypeRook},
	{Pos{3, 0}, PieceTypeRook},
	{Pos{1, 0}, PieceTypeQueen},
	{Pos{0, 1}, PieceTypeKing},
}

// NewBoard returns the initial position with White to move.
func NewBoard() *Board {
	b := NewBareBoard()
	for _, e := range whiteStart {
		b.SetPiece(squareOf(e.pos), PieceFromType(White, e.pt))
		b.SetPiece(squareOf(e.pos.Flipped()), PieceFromType(Black, e.pt))
	}
	return b
}
