package world

// Match is a request value tested against a tile's kind or feature. A tile matches when
// either its kind or its feature is in the request. Kinds and features that share a name
// (mountain, mountain_peak) are matched together, so asking for mountains finds both
// mountain tiles and tiles carrying the mountain overlay.
type Match struct {
	kinds    uint16
	features uint16
}

// MatchKind requests tiles of kind k, or carrying the feature of the same name.
func MatchKind(k Kind) Match {
	m := Match{kinds: 1 << k}
	for _, f := range Features() {
		if f.String() == k.String() {
			m.features |= 1 << f
		}
	}
	return m
}

// MatchFeature requests tiles carrying feature f, or of the kind of the same name.
func MatchFeature(f Feature) Match {
	m := Match{features: 1 << f}
	for _, k := range Kinds() {
		if k.String() == f.String() {
			m.kinds |= 1 << k
		}
	}
	return m
}

// MatchAny combines requests; the result matches a tile matching any of them.
func MatchAny(ms ...Match) Match {
	var out Match
	for _, m := range ms {
		out.kinds |= m.kinds
		out.features |= m.features
	}
	return out
}

// Tile reports whether t satisfies the request.
func (m Match) Tile(t *Tile) bool {
	return m.kinds&(1<<t.Kind) != 0 || m.features&(1<<t.Feature) != 0
}

// Empty reports whether the request can match nothing.
func (m Match) Empty() bool {
	return m.kinds == 0 && m.features == 0
}
