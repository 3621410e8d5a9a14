package board

// GameState composes the bitboard, capture counts, move history and cached
// hash into the single mutable object search operates on. Every mutation
// goes through Apply/Undo; no other entity may touch its fields.
type GameState struct {
	board Bitboard

	toMove Color
	N      int
	K      int

	capturePairsToWin int
	captures          [2]int

	history []MoveRecord

	hash     uint64
	winner   Color
	hasWin   bool
	terminal bool

	zobrist *Zobrist
	rules   Rules
	gen     MoveGenerator
}

// NewGameState builds an empty board of side N, win length K and the given
// number of captured pairs needed to win. zobrist may be shared across
// clones and sibling states of the same (N, K); it is never mutated after
// construction.
func NewGameState(n, k, capturePairsToWin int, zobrist *Zobrist) *GameState {
	rules := NewRules(k)
	return &GameState{
		board:             NewBitboard(n),
		toMove:            Max,
		N:                 n,
		K:                 k,
		capturePairsToWin: capturePairsToWin,
		zobrist:           zobrist,
		rules:             rules,
		gen:               NewMoveGenerator(rules),
	}
}

// Board returns the underlying bitboard for read-only inspection.
func (s *GameState) Board() *Bitboard { return &s.board }

// ToMove returns the side whose turn it is.
func (s *GameState) ToMove() Color { return s.toMove }

// Hash returns the current Zobrist hash.
func (s *GameState) Hash() uint64 { return s.hash }

// Captures returns the number of captured pairs for the given color.
func (s *GameState) Captures(c Color) int { return s.captures[c] }

// IsTerminal reports whether the game has ended (a win, or no legal move).
func (s *GameState) IsTerminal() bool { return s.terminal }

// Winner returns the winning color and true, or (zero, false) if the game
// has no winner (including if it isn't over, or ended in a draw by board
// fill).
func (s *GameState) Winner() (Color, bool) { return s.winner, s.hasWin }

// Ply returns the number of moves applied so far.
func (s *GameState) Ply() int { return len(s.history) }

// LegalMoves returns the legal candidate moves for the side to move.
func (s *GameState) LegalMoves() []Move {
	return s.gen.Generate(&s.board, s.toMove)
}

// Apply plays a move for the side to move. It validates legality, applies
// captures, updates the hash incrementally, checks for a win, and flips
// the side to move. On success it returns nil and the move can later be
// reversed with Undo; on failure the state is left unchanged.
func (s *GameState) Apply(m Move) error {
	if !m.IsValid(s.N) {
		return &IllegalMove{Kind: OutOfBounds, Move: m}
	}
	if !s.board.IsEmpty(m.Row, m.Col) {
		return &IllegalMove{Kind: Occupied, Move: m}
	}
	if s.board.CountOccupied() == 0 {
		center := s.N / 2
		if m.Row != center || m.Col != center {
			return &IllegalMove{Kind: MustStartAtCenter, Move: m}
		}
	} else if s.rules.CreatesDoubleThree(&s.board, m.Row, m.Col, s.toMove) {
		return &IllegalMove{Kind: DoubleThree, Move: m}
	}

	hashBefore := s.hash
	color := s.toMove

	s.board.Place(m.Row, m.Col, color)
	s.hash = s.zobrist.UpdatePlace(s.hash, m.Row, m.Col, color)

	captures := s.rules.DetectCaptures(&s.board, m.Row, m.Col, color)
	gainedPair := len(captures) > 0
	if gainedPair {
		opp := color.Opponent()
		for _, cap := range captures {
			s.board.Remove(cap.Row, cap.Col)
		}
		s.hash = s.zobrist.UpdateCaptures(s.hash, captures, opp)
		s.captures[color] += len(captures) / 2
	}

	madeWin := s.rules.CheckWinAround(&s.board, m.Row, m.Col)
	if !madeWin {
		if _, ok := CheckCaptureWin(s.captures[Max], s.captures[Min], s.capturePairsToWin); ok {
			madeWin = true
		}
	}

	record := MoveRecord{
		Pos:        m,
		Color:      color,
		Captures:   captures,
		HashBefore: hashBefore,
		MadeWin:    madeWin,
		GainedPair: gainedPair,
	}
	s.history = append(s.history, record)

	if madeWin {
		s.winner = color
		s.hasWin = true
		s.terminal = true
	}

	s.toMove = s.toMove.Opponent()
	s.hash = s.zobrist.UpdateSide(s.hash)

	if !s.terminal && !s.gen.HasLegalMoves(&s.board, s.toMove) {
		s.terminal = true
	}

	return nil
}

// Undo reverses the most recently applied move, restoring the state to
// exactly what it was beforehand: captured stones, capture counts, hash,
// winner/terminal status and side to move.
func (s *GameState) Undo() error {
	if len(s.history) == 0 {
		return ErrNothingToUndo{}
	}
	last := len(s.history) - 1
	record := s.history[last]
	s.history = s.history[:last]

	s.toMove = s.toMove.Opponent()
	s.board.Remove(record.Pos.Row, record.Pos.Col)

	if record.GainedPair {
		opp := record.Color.Opponent()
		for _, cap := range record.Captures {
			s.board.Place(cap.Row, cap.Col, opp)
		}
		s.captures[record.Color] -= len(record.Captures) / 2
	}

	s.hash = record.HashBefore
	s.winner = 0
	s.hasWin = false
	s.terminal = false

	return nil
}

// Clone returns an independent deep copy. The Zobrist key table is shared
// (it is immutable), but the board, history and counters are copied.
func (s *GameState) Clone() *GameState {
	c := *s
	c.board = s.board.Clone()
	c.history = make([]MoveRecord, len(s.history))
	copy(c.history, s.history)
	return &c
}
