package hashlife

import (
	"testing"

	"github.com/lifelab/go-hashlife/life"
	"github.com/lifelab/go-hashlife/lifetesting"
)

// The benchmarks pit the memoized engine against the direct stepper on the
// workloads the speedup claims are usually made on: a gun that grows
// without bound and a methuselah with a long chaotic phase.

func benchGrid(name string) life.Grid {
	switch name {
	case "gun":
		return lifetesting.Grid(36, 9, lifetesting.GosperGliderGun())
	default:
		return lifetesting.Grid(8, 8, lifetesting.RPentomino())
	}
}

func BenchmarkHashlifeGun1024(b *testing.B) {
	g := benchGrid("gun")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e := New(life.Conway)
		p, err := e.FromGrid(g)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := e.Step(p, 1024); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDirectGun1024(b *testing.B) {
	g := benchGrid("gun")
	for i := 0; i < b.N; i++ {
		life.StepN(g, life.Conway, 1024)
	}
}

func BenchmarkHashlifeRPentomino(b *testing.B) {
	g := benchGrid("rpentomino")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e := New(life.Conway)
		p, err := e.FromGrid(g)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := e.Step(p, 1103); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDirectRPentomino(b *testing.B) {
	g := benchGrid("rpentomino")
	for i := 0; i < b.N; i++ {
		life.StepN(g, life.Conway, 1103)
	}
}

// BenchmarkHashlifeWarmCache measures the steady state the memoization
// exists for: the same region evolved again costs one cache probe.
func BenchmarkHashlifeWarmCache(b *testing.B) {
	e := New(life.Conway)
	p, err := e.FromGrid(benchGrid("gun"))
	if err != nil {
		b.Fatal(err)
	}
	if _, err := e.Step(p, 1024); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Step(p, 1024); err != nil {
			b.Fatal(err)
		}
	}
}
