package seq

// JoinKind selects which keys a Join keeps.
type JoinKind int

const (
	// InnerJoin keeps keys present in both Dicts.
	InnerJoin JoinKind = iota
	// LeftJoin keeps every key of the left Dict.
	LeftJoin
	// RightJoin keeps every key of the right Dict.
	RightJoin
	// OuterJoin keeps keys present in either Dict.
	OuterJoin
)

func (k JoinKind) String() string {
	switch k {
	case InnerJoin:
		return "inner"
	case LeftJoin:
		return "left"
	case RightJoin:
		return "right"
	case OuterJoin:
		return "outer"
	default:
		return "unknown"
	}
}

// Joined is one row of a Join result. HasLeft and HasRight report
// which sides contributed; a missing side's field holds its zero
// value.
type Joined[K comparable, L, R any] struct {
	Key      K
	Left     L
	Right    R
	HasLeft  bool
	HasRight bool
}

// Join matches two Dicts by key. Row order is deterministic: keys of
// the left Dict first, in the left Dict's order, followed by
// right-only keys in the right Dict's order when the kind includes
// them.
func Join[K comparable, L, R any](left *Dict[K, L], right *Dict[K, R], kind JoinKind) *List[Joined[K, L, R]] {
	var rows []Joined[K, L, R]
	for _, k := range left.keys {
		rv, inRight := right.values[k]
		if !inRight {
			if kind == InnerJoin || kind == RightJoin {
				continue
			}
			rows = append(rows, Joined[K, L, R]{Key: k, Left: left.values[k], HasLeft: true})
			continue
		}
		rows = append(rows, Joined[K, L, R]{
			Key:      k,
			Left:     left.values[k],
			Right:    rv,
			HasLeft:  true,
			HasRight: true,
		})
	}
	if kind == RightJoin || kind == OuterJoin {
		for _, k := range right.keys {
			if _, inLeft := left.values[k]; inLeft {
				continue
			}
			rows = append(rows, Joined[K, L, R]{Key: k, Right: right.values[k], HasRight: true})
		}
	}
	return &List[Joined[K, L, R]]{items: rows}
}
