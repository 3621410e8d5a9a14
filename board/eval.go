package board

// MateBase is the magic score assigned to an immediate win, from which
// search subtracts the ply at which the win was found so that shorter
// mates always outscore longer ones.
const MateBase = 1_000_000

// MaxPly bounds how deep a mate score can be nested before it is treated
// as an ordinary (non-mate) score; see package engine for its use when
// deciding whether a transposition table bound can be trusted verbatim.
const MaxPly = 512

const (
	// wCapture weights the capture differential term of Evaluate.
	wCapture = 1000
	// wPos weights the small center-distance bonus.
	wPos = 1
)

var evalDirections = [4][2]int{
	{1, 0}, {0, 1}, {1, 1}, {1, -1},
}

// Evaluator binds a win length so repeated calls don't need to thread it
// through every call site (search calls Evaluate millions of times).
type Evaluator struct {
	winLength int
}

// NewEvaluator returns an evaluator for the given win length.
func NewEvaluator(winLength int) Evaluator {
	return Evaluator{winLength: winLength}
}

// Evaluate scores the position from Max's perspective: capture
// differential, line-pattern scan ignoring runs of length >= winLength,
// and a small positional bias.
func (e Evaluator) Evaluate(b *Bitboard, maxCaptures, minCaptures int, winner Color, hasWinner bool) int {
	if hasWinner {
		if winner == Max {
			return MateBase
		}
		return -MateBase
	}
	total := (maxCaptures - minCaptures) * wCapture
	total += scoreLinePatterns(b, e.winLength)
	total += scorePositional(b, b.Size())
	return total
}

// scoreLinePatterns walks every stone once per axis, scoring only the
// start of each maximal run (a cell whose predecessor along the axis is
// not the same color) so that each run is counted exactly once.
func scoreLinePatterns(b *Bitboard, winLength int) int {
	size := b.Size()
	total := 0

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			player, ok := b.Get(r, c)
			if !ok {
				continue
			}
			for _, d := range evalDirections {
				pr, pc := r-d[0], c-d[1]
				if b.InBounds(pr, pc) {
					if pv, pok := b.Get(pr, pc); pok && pv == player {
						continue // not a run start along this axis
					}
				}

				count := 1
				cr, cc := r+d[0], c+d[1]
				for b.InBounds(cr, cc) {
					v, occ := b.Get(cr, cc)
					if !occ || v != player {
						break
					}
					count++
					cr += d[0]
					cc += d[1]
				}

				if count < 2 || count >= winLength {
					continue
				}

				startOpen := b.InBounds(pr, pc) && b.IsEmpty(pr, pc)
				endOpen := b.InBounds(cr, cc) && b.IsEmpty(cr, cc)

				var score int
				switch {
				case startOpen && endOpen:
					score = 2 * pow10(count-1)
				case startOpen || endOpen:
					score = pow10(count - 1)
				default:
					score = 0
				}

				if player == Max {
					total += score
				} else {
					total -= score
				}
			}
		}
	}
	return total
}

// scorePositional adds a small bonus to stones nearer the board's center,
// positive for Max, negative for Min.
func scorePositional(b *Bitboard, size int) int {
	center := size / 2
	total := 0
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			player, ok := b.Get(r, c)
			if !ok {
				continue
			}
			dist := maxInt(absInt(r-center), absInt(c-center))
			bonus := (size/2 - dist) * wPos
			if player == Max {
				total += bonus
			} else {
				total -= bonus
			}
		}
	}
	return total
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
