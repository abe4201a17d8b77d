package hospitalrank

import (
	"fmt"
	"strconv"
	"strings"
)

type rankKind int

const (
	rankBest rankKind = iota
	rankWorst
	rankPosition
)

// Rank is a requested ordinal position within a sorted view: the
// sentinel best (position 1), the sentinel worst (position = view
// length), or an explicit 1-based position.
type Rank struct {
	kind rankKind
	pos  int
}

// Best and Worst are the two sentinel ranks.
var (
	Best  = Rank{kind: rankBest}
	Worst = Rank{kind: rankWorst}
)

// RankAt returns the rank for an explicit 1-based position. Positions
// below 1 fail with ErrInvalidRank.
func RankAt(n int) (Rank, error) {
	if n < 1 {
		return Rank{}, fmt.Errorf("%w: position %d", ErrInvalidRank, n)
	}
	return Rank{kind: rankPosition, pos: n}, nil
}

// ParseRank resolves a rank request string: "best", "worst", or a
// base-10 integer ≥ 1. Anything else fails with ErrInvalidRank.
func ParseRank(s string) (Rank, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "best":
		return Best, nil
	case "worst":
		return Worst, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Rank{}, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}
	return RankAt(n)
}

func (r Rank) String() string {
	switch r.kind {
	case rankBest:
		return "best"
	case rankWorst:
		return "worst"
	default:
		return strconv.Itoa(r.pos)
	}
}

// position resolves the rank against a view of n entries, 1-based.
func (r Rank) position(n int) int {
	switch r.kind {
	case rankBest:
		return 1
	case rankWorst:
		return n
	default:
		return r.pos
	}
}

// SelectRank returns the hospital at the requested rank, or nil when
// the resolved position exceeds the view (an empty view included).
// Out-of-range is a normal empty result, not an error.
func SelectRank(view []RatedHospital, rank Rank) *string {
	pos := rank.position(len(view))
	if pos < 1 || pos > len(view) {
		return nil
	}
	return &view[pos-1].Hospital
}
