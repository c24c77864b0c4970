package hashlife

import (
	"sync"

	"github.com/lifelab/go-hashlife/life"
)

// Stats counts the work an engine has done. It is the instrumentation used
// to verify cache transparency: a warm second evolution of the same region
// must increment CacheHits and nothing else.
type Stats struct {
	// BaseCalls counts level-2 base case evaluations, the only place raw
	// simulation happens.
	BaseCalls uint64
	// CacheHits and CacheMisses count result-cache probes across both the
	// canonical-step and partial-step caches.
	CacheHits   uint64
	CacheMisses uint64
	// Nodes is the current arena size.
	Nodes int
}

// stepKey keys the partial-step cache: the centered future of a node after
// 2^exp generations, for exp below the node's maximal implied step.
type stepKey struct {
	node Ref
	exp  uint32
}

// Engine owns a node arena and the result caches for a single rule. It is
// an explicit context object: independent simulations with different rules
// each get their own Engine and cannot cross-contaminate caches.
//
// Evolve, Advance, Step, FromGrid and ToGrid are safe for concurrent use.
// SetRule and Reset must not race with in-flight evolution; the burden of
// sequencing rule changes is on the caller.
type Engine struct {
	store *Store
	rule  life.Rule

	mu      sync.Mutex
	results map[Ref]Ref     // canonical step: ref -> centered future after 2^(level-2)
	partial map[stepKey]Ref // sub-maximal steps
	stats   Stats
}

// New returns an engine for the given rule, with a fresh arena and cold
// caches.
func New(r life.Rule) *Engine {
	return &Engine{
		store:   NewStore(),
		rule:    r,
		results: make(map[Ref]Ref),
		partial: make(map[stepKey]Ref),
	}
}

// Store exposes the engine's arena, for callers that build or inspect
// trees directly.
func (e *Engine) Store() *Store { return e.store }

// Rule returns the rule the caches are currently valid for.
func (e *Engine) Rule() life.Rule { return e.rule }

// SetRule swaps the engine's rule. Cached results are valid for exactly
// one rule, so a genuine change clears both result caches; setting the
// same rule again is a no-op.
func (e *Engine) SetRule(r life.Rule) {
	if r == e.rule {
		return
	}
	e.rule = r
	e.Reset()
}

// Reset clears both result caches. This is always safe: it affects the
// cost, never the correctness, of subsequent calls. It is the only memory
// bound the engine offers; eviction policy is deliberately left to the
// caller.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.results = make(map[Ref]Ref)
	e.partial = make(map[stepKey]Ref)
	e.mu.Unlock()
}

// Stats returns a snapshot of the engine's work counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	st := e.stats
	e.mu.Unlock()
	st.Nodes = e.store.Len()
	return st
}

func (e *Engine) cacheGet(n Ref) (Ref, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := e.results[n]
	if ok {
		e.stats.CacheHits++
	} else {
		e.stats.CacheMisses++
	}
	return r, ok
}

// cachePut records a canonical-step result. Two racing computations of the
// same node produce the same canonical ref, so last-write-wins is
// convergent, not lossy.
func (e *Engine) cachePut(n, result Ref) {
	e.mu.Lock()
	e.results[n] = result
	e.mu.Unlock()
}

func (e *Engine) partialGet(n Ref, exp uint32) (Ref, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := e.partial[stepKey{node: n, exp: exp}]
	if ok {
		e.stats.CacheHits++
	} else {
		e.stats.CacheMisses++
	}
	return r, ok
}

func (e *Engine) partialPut(n Ref, exp uint32, result Ref) {
	e.mu.Lock()
	e.partial[stepKey{node: n, exp: exp}] = result
	e.mu.Unlock()
}

func (e *Engine) countBase() {
	e.mu.Lock()
	e.stats.BaseCalls++
	e.mu.Unlock()
}
