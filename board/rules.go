package board

// freeThreeTemplates enumerates the canonical free-three windows: three
// same-color stones, contiguous or broken by a single internal gap, each
// flanked by at least one genuinely empty cell so the pattern could grow
// into an open four. 'X' marks a stone of the mover's color, '.' an
// empty cell. The broken templates' own mirror images are covered by
// trying every 'X' in the template as the anchor that lines up with the
// hypothetical placement (see isFreeThreeInDirection), so there is no
// need to list the reflections separately.
var freeThreeTemplates = []string{
	".XXX.",
	".XX.X.",
	".X.XX.",
}

// maxSearchDistance is the farthest a template cell can land from the
// hypothetical placement (a 6-cell template anchored at either end of
// its run reaches 4 cells away); kept as a named constant purely for
// documentation, since it falls out of freeThreeTemplates' own shape.
const maxSearchDistance = 4

// axisDirections are the four line axes a win or a free three can run
// along. Each axis is scanned in both signs by the callers below.
var axisDirections = [4][2]int{
	{1, 0}, {0, 1}, {1, 1}, {1, -1},
}

// Rules implements the win, capture and double-three checks that govern
// whether a move is legal and whether it ends the game.
type Rules struct {
	winLength int
}

// NewRules returns a rule set for the given win length (K in a row).
func NewRules(winLength int) Rules {
	return Rules{winLength: winLength}
}

// CheckWinAround reports whether the stone just placed at (r, c) completes
// a line of at least winLength stones of its own color along any axis.
func (ru Rules) CheckWinAround(b *Bitboard, r, c int) bool {
	if !b.InBounds(r, c) {
		return false
	}
	color, ok := b.Get(r, c)
	if !ok {
		return false
	}
	for _, d := range axisDirections {
		count := 1
		count += countConsecutive(b, r, c, d[0], d[1], color)
		count += countConsecutive(b, r, c, -d[0], -d[1], color)
		if count >= ru.winLength {
			return true
		}
	}
	return false
}

// WouldWin reports whether a hypothetical stone of the given color at
// (r, c) — whether or not one is actually there yet — would complete a
// line of at least winLength. Move ordering uses this to rank moves that
// win outright, without needing to mutate the board first.
func (ru Rules) WouldWin(b *Bitboard, r, c int, color Color) bool {
	if !b.InBounds(r, c) {
		return false
	}
	for _, d := range axisDirections {
		count := 1
		count += countConsecutive(b, r, c, d[0], d[1], color)
		count += countConsecutive(b, r, c, -d[0], -d[1], color)
		if count >= ru.winLength {
			return true
		}
	}
	return false
}

func countConsecutive(b *Bitboard, r, c, dr, dc int, color Color) int {
	count := 0
	nr, nc := r+dr, c+dc
	for b.InBounds(nr, nc) {
		cur, ok := b.Get(nr, nc)
		if !ok || cur != color {
			break
		}
		count++
		nr += dr
		nc += dc
	}
	return count
}

// CheckCaptureWin reports whether either side has reached the winning
// number of captured pairs.
func CheckCaptureWin(maxPairs, minPairs, pairsToWin int) (Color, bool) {
	switch {
	case maxPairs >= pairsToWin:
		return Max, true
	case minPairs >= pairsToWin:
		return Min, true
	default:
		return 0, false
	}
}

// DetectCaptures returns the cells of opponent stones that the move just
// played at (r, c) sandwiches: two opponent stones immediately followed by
// a stone of the mover's color, along any of the eight rays from (r, c).
func (ru Rules) DetectCaptures(b *Bitboard, r, c int, color Color) []Move {
	var captures []Move
	opp := color.Opponent()

	for _, d := range axisDirections {
		for _, mult := range [2]int{1, -1} {
			dr, dc := d[0]*mult, d[1]*mult

			p1r, p1c := r+dr, c+dc
			if !b.InBounds(p1r, p1c) {
				continue
			}
			if v, ok := b.Get(p1r, p1c); !ok || v != opp {
				continue
			}

			p2r, p2c := p1r+dr, p1c+dc
			if !b.InBounds(p2r, p2c) {
				continue
			}
			if v, ok := b.Get(p2r, p2c); !ok || v != opp {
				continue
			}

			p3r, p3c := p2r+dr, p2c+dc
			if !b.InBounds(p3r, p3c) {
				continue
			}
			if v, ok := b.Get(p3r, p3c); ok && v == color {
				captures = append(captures, Move{Row: p1r, Col: p1c}, Move{Row: p2r, Col: p2c})
			}
		}
	}
	return captures
}

// CreatesDoubleThree reports whether placing a stone of the given color at
// (r, c) forms a free three along two or more distinct axes at once — the
// move the double-free-three rule forbids, since it would create an
// unstoppable double open-four threat.
func (ru Rules) CreatesDoubleThree(b *Bitboard, r, c int, color Color) bool {
	return ru.FreeThreeCount(b, r, c, color) >= 2
}

// FreeThreeCount returns how many of the four axes would become a free
// three if a stone of the given color were placed at (r, c). Move
// ordering uses this as a bonus for moves that build threats even when
// they fall short of the two-axis double-three ban.
func (ru Rules) FreeThreeCount(b *Bitboard, r, c int, color Color) int {
	count := 0
	for _, d := range axisDirections {
		if ru.isFreeThreeInDirection(b, r, c, color, d[0], d[1]) {
			count++
		}
	}
	return count
}

// openTwoTemplate is the canonical open-two window: two contiguous
// same-color stones with both flanks genuinely empty, so the pair could
// still grow into an open three.
const openTwoTemplate = ".XX."

// OpenTwoCount returns how many of the four axes would become an open two
// if a stone of the given color were placed at (r, c). Move ordering
// grades this as a smaller bonus than FreeThreeCount's open-three bonus,
// since an open two is a weaker, earlier-stage threat.
func (ru Rules) OpenTwoCount(b *Bitboard, r, c int, color Color) int {
	count := 0
	for _, d := range axisDirections {
		if ru.matchesTemplate(b, r, c, color, d[0], d[1], openTwoTemplate, 1) ||
			ru.matchesTemplate(b, r, c, color, d[0], d[1], openTwoTemplate, 2) {
			count++
		}
	}
	return count
}

// isFreeThreeInDirection reports whether a hypothetical stone of the
// given color at (r, c) completes one of freeThreeTemplates' windows
// along axis (dr, dc), in either orientation along that axis.
func (ru Rules) isFreeThreeInDirection(b *Bitboard, r, c int, color Color, dr, dc int) bool {
	for _, tmpl := range freeThreeTemplates {
		for anchor := 0; anchor < len(tmpl); anchor++ {
			if tmpl[anchor] != 'X' {
				continue
			}
			if ru.matchesTemplate(b, r, c, color, dr, dc, tmpl, anchor) {
				return true
			}
		}
	}
	return false
}

// matchesTemplate checks one alignment of tmpl against the board: anchor
// is the template index lined up with the hypothetical placement at
// (r, c) itself (always 'X' by construction, so it needs no board read).
// Every other template cell maps to board offset (i - anchor) steps
// along (dr, dc) from (r, c) and must match: 'X' a same-color stone,
// '.' a genuinely empty, in-bounds cell — an edge never satisfies '.',
// so a window running off the board cannot match.
func (ru Rules) matchesTemplate(b *Bitboard, r, c int, color Color, dr, dc int, tmpl string, anchor int) bool {
	for i := 0; i < len(tmpl); i++ {
		offset := i - anchor
		if offset == 0 {
			continue
		}
		nr, nc := r+dr*offset, c+dc*offset
		if tmpl[i] == 'X' {
			if !b.InBounds(nr, nc) {
				return false
			}
			v, ok := b.Get(nr, nc)
			if !ok || v != color {
				return false
			}
			continue
		}
		if !b.InBounds(nr, nc) || !b.IsEmpty(nr, nc) {
			return false
		}
	}
	return true
}
