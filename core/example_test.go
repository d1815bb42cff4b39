package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlbayes/core"
)

// ExamplePotential_Extract demonstrates slicing a CPT P(B|A) on the
// observation A=0. The remaining table is B's column for that parent value.
func ExamplePotential_Extract() {
	b, _ := core.NewVariable("B", 2)
	a, _ := core.NewVariable("A", 2)

	// P(B|A): axis 0 is the child B, entries in canonical order
	// (B=0,A=0),(B=1,A=0),(B=0,A=1),(B=1,A=1).
	cpt, _ := core.NewPotential(b, a)
	_ = cpt.SetValues([]float64{0.9, 0.1, 0.4, 0.6})

	col, _ := cpt.Extract(map[string]int{"A": 0})
	fmt.Println(col.Names())
	fmt.Println(col.Values())
	// Output:
	// [B]
	// [0.9 0.1]
}

// ExampleInstantiation walks a potential's domain in canonical order.
func ExampleInstantiation() {
	x, _ := core.NewVariable("X", 3)
	p, _ := core.NewPotential(x)
	_ = p.SetValues([]float64{0.2, 0.3, 0.5})

	for it := core.NewInstantiation(p); !it.End(); it.Inc() {
		fmt.Println(it.Val(0), it.Value())
	}
	// Output:
	// 0 0.2
	// 1 0.3
	// 2 0.5
}
