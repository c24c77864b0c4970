package life

import "strings"

// Rule is a birth/survival predicate over live-neighbour counts, stored as
// two bitmasks with bit i set when count i triggers. Rule is a comparable
// value: two rules built from equal count sets compare equal with == and
// behave identically as map keys, which is what makes them usable as cache
// identities.
type Rule struct {
	birth   uint16
	survive uint16
}

// Conway is the classic B3/S23 rule.
var Conway = Rule{birth: 1 << 3, survive: 1<<2 | 1<<3}

// NewRule builds a Rule from explicit birth and survival neighbour counts.
// Counts outside 0..8 are rejected here, at construction, never at
// evaluation time.
func NewRule(birth, survive []int) (Rule, error) {
	b, err := countMask(birth)
	if err != nil {
		return Rule{}, err
	}
	s, err := countMask(survive)
	if err != nil {
		return Rule{}, err
	}
	return Rule{birth: b, survive: s}, nil
}

func countMask(counts []int) (uint16, error) {
	var m uint16
	for _, n := range counts {
		if n < 0 || n > MaxNeighbors {
			return 0, ErrBadNeighborCount
		}
		m |= 1 << uint(n)
	}
	return m, nil
}

// ParseRule parses the conventional "B3/S23" notation. Case is ignored and
// either half may list no digits ("B/S" is the empty rule), but both the B
// and S sections must be present.
func ParseRule(s string) (Rule, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return Rule{}, ErrBadRuleString
	}
	b, err := digitMask(parts[0], 'B', 'b')
	if err != nil {
		return Rule{}, err
	}
	sv, err := digitMask(parts[1], 'S', 's')
	if err != nil {
		return Rule{}, err
	}
	return Rule{birth: b, survive: sv}, nil
}

func digitMask(part string, upper, lower byte) (uint16, error) {
	if len(part) == 0 || (part[0] != upper && part[0] != lower) {
		return 0, ErrBadRuleString
	}
	var m uint16
	for i := 1; i < len(part); i++ {
		c := part[i]
		if c < '0' || c > '8' {
			return 0, ErrBadRuleString
		}
		m |= 1 << uint(c-'0')
	}
	return m, nil
}

// Alive reports whether a cell in the given state, with the given count of
// live neighbours, is alive in the next generation.
func (r Rule) Alive(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > MaxNeighbors {
		return false
	}
	if alive {
		return r.survive&(1<<uint(neighbors)) != 0
	}
	return r.birth&(1<<uint(neighbors)) != 0
}

// Birth reports whether a dead cell with n live neighbours is born.
func (r Rule) Birth(n int) bool { return n >= 0 && n <= MaxNeighbors && r.birth&(1<<uint(n)) != 0 }

// Survive reports whether a live cell with n live neighbours survives.
func (r Rule) Survive(n int) bool {
	return n >= 0 && n <= MaxNeighbors && r.survive&(1<<uint(n)) != 0
}

// String renders the canonical "B…/S…" form with digits ascending.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeDigits(&b, r.birth)
	b.WriteString("/S")
	writeDigits(&b, r.survive)
	return b.String()
}

func writeDigits(b *strings.Builder, mask uint16) {
	for n := 0; n <= MaxNeighbors; n++ {
		if mask&(1<<uint(n)) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
}
