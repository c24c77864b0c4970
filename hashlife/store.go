package hashlife

import "sync"

// node is an arena record. Nodes are immutable once interned; population
// is computed at construction and never by traversal.
type node struct {
	level          uint32
	nw, ne, sw, se Ref
	population     uint64
}

// nodeKey is the structural identity a node is deduplicated on. Because
// children are themselves canonical refs, shallow key equality is deep
// structural equality.
type nodeKey struct {
	level          uint32
	nw, ne, sw, se Ref
}

// Store is the interning arena that owns every node. Structurally
// identical regions share a single entry, so Ref equality is region
// identity; that invariant is what makes the engine's result cache
// meaningful, and it holds because Leaf, Intern and Empty are the only
// ways to obtain a Ref.
//
// All methods are safe for concurrent use. Lookup-or-insert is a single
// critical section, so two callers racing to intern the same region
// converge on one canonical entry.
type Store struct {
	mu    sync.RWMutex
	nodes []node
	index map[nodeKey]Ref
	empty []Ref // canonical all-dead node per level
}

// NewStore returns an arena holding just the two level-0 leaves.
func NewStore() *Store {
	s := &Store{index: make(map[nodeKey]Ref)}
	s.nodes = append(s.nodes,
		node{level: 0, nw: NoRef, ne: NoRef, sw: NoRef, se: NoRef, population: 0},
		node{level: 0, nw: NoRef, ne: NoRef, sw: NoRef, se: NoRef, population: 1},
	)
	s.empty = append(s.empty, deadLeaf)
	return s
}

// Leaf returns the canonical level-0 node for the given cell state.
func (s *Store) Leaf(alive bool) Ref {
	if alive {
		return liveLeaf
	}
	return deadLeaf
}

// Intern returns the canonical node for the (level, nw, ne, sw, se)
// configuration, constructing and inserting it if absent. The children
// must already be resident in this store at level-1; anything else is a
// structural violation and all cached state derived from it would be
// suspect, so it is rejected outright.
func (s *Store) Intern(level uint32, nw, ne, sw, se Ref) (Ref, error) {
	if level == 0 {
		return NoRef, ErrLevelMismatch
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intern(level, nw, ne, sw, se)
}

// intern is Intern without the lock, for callers already holding mu.
func (s *Store) intern(level uint32, nw, ne, sw, se Ref) (Ref, error) {
	for _, c := range [4]Ref{nw, ne, sw, se} {
		if int64(c) >= int64(len(s.nodes)) {
			return NoRef, ErrForeignRef
		}
		if s.nodes[c].level != level-1 {
			return NoRef, ErrLevelMismatch
		}
	}
	key := nodeKey{level: level, nw: nw, ne: ne, sw: sw, se: se}
	if ref, ok := s.index[key]; ok {
		return ref, nil
	}
	ref := Ref(len(s.nodes))
	s.nodes = append(s.nodes, node{
		level: level, nw: nw, ne: ne, sw: sw, se: se,
		population: s.nodes[nw].population + s.nodes[ne].population +
			s.nodes[sw].population + s.nodes[se].population,
	})
	s.index[key] = ref
	return ref, nil
}

// Empty returns the canonical all-dead node at the given level. It is
// requested constantly during padding, so the per-level result is
// memoized.
func (s *Store) Empty(level uint32) Ref {
	s.mu.Lock()
	defer s.mu.Unlock()
	for uint32(len(s.empty)) <= level {
		child := s.empty[len(s.empty)-1]
		// intern cannot fail here: the child is resident at the right level.
		ref, err := s.intern(uint32(len(s.empty)), child, child, child, child)
		if err != nil {
			panic("hashlife: empty node interning broke a store invariant: " + err.Error())
		}
		s.empty = append(s.empty, ref)
	}
	return s.empty[level]
}

// Level returns the level of a resident node.
func (s *Store) Level(n Ref) (uint32, error) {
	nd, err := s.resident(n)
	if err != nil {
		return 0, err
	}
	return nd.level, nil
}

// Population returns the cached live-cell count of a resident node. It is
// O(1) at any level.
func (s *Store) Population(n Ref) (uint64, error) {
	nd, err := s.resident(n)
	if err != nil {
		return 0, err
	}
	return nd.population, nil
}

// Children returns the four quadrant refs of a resident node in NW, NE,
// SW, SE order. Level-0 nodes have no children and report NoRef for all
// four.
func (s *Store) Children(n Ref) (nw, ne, sw, se Ref, err error) {
	nd, err := s.resident(n)
	if err != nil {
		return NoRef, NoRef, NoRef, NoRef, err
	}
	return nd.nw, nd.ne, nd.sw, nd.se, nil
}

// Len returns the number of interned nodes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// resident fetches a node record, rejecting refs this store never issued.
func (s *Store) resident(n Ref) (node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if int64(n) >= int64(len(s.nodes)) {
		return node{}, ErrForeignRef
	}
	return s.nodes[n], nil
}

// at fetches a node record known to be resident. Internal callers only
// ever hold refs issued by this store.
func (s *Store) at(n Ref) node {
	s.mu.RLock()
	nd := s.nodes[n]
	s.mu.RUnlock()
	return nd
}
