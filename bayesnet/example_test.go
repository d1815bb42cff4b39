package bayesnet_test

import (
	"fmt"

	"github.com/katalvlaran/lvlbayes/bayesnet"
	"github.com/katalvlaran/lvlbayes/core"
)

// ExampleBayesNet builds the two-node network A→B and installs P(B|A).
func ExampleBayesNet() {
	bn := bayesnet.NewBayesNet()

	av, _ := core.NewVariable("A", 2)
	bv, _ := core.NewVariable("B", 2)
	a, _ := bn.Add(av)
	b, _ := bn.Add(bv)
	_ = bn.AddArc(a, b)

	// P(B|A): canonical order (B=0,A=0),(B=1,A=0),(B=0,A=1),(B=1,A=1).
	cpt, _ := core.NewPotential(bv, av)
	_ = cpt.SetValues([]float64{0.9, 0.1, 0.4, 0.6})
	_ = bn.SetCPT(b, cpt)

	fmt.Println(bn.Size(), bn.HasArc(a, b))
	fmt.Println(bn.TopologicalOrder())
	// Output:
	// 2 true
	// [0 1]
}
