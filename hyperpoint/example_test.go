package hyperpoint_test

import (
	"fmt"

	"github.com/katalvlaran/hyperlayout/hyperpoint"
)

// ExamplePoint_AngularComponent shows the dual Cartesian/angular view of a point.
func ExamplePoint_AngularComponent() {
	p, _ := hyperpoint.New(1, 1, 1)
	a1, _ := p.AngularComponent(1)
	a2, _ := p.AngularComponent(2)
	fmt.Printf("|p|=%.4f angle1=%.4f angle2=%.4f\n", p.Magnitude(), a1, a2)

	// Output:
	// |p|=1.7321 angle1=0.9553 angle2=0.7854
}

// ExamplePoint_WithMagnitude rescales a displacement while keeping its direction.
func ExamplePoint_WithMagnitude() {
	from, _ := hyperpoint.New(1, 1)
	to, _ := hyperpoint.New(4, 5)
	step, _ := to.RelativeTo(from) // (3, 4), length 5

	fmt.Println(step.WithMagnitude(1))
	fmt.Println(step.WithMagnitude(-10))

	// Output:
	// (0.6, 0.8)
	// (-6, -8)
}
