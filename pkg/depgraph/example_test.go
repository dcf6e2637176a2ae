package depgraph_test

import (
	"fmt"

	"github.com/matzehuels/pagen/pkg/depgraph"
	"github.com/matzehuels/pagen/pkg/property"
)

func ExampleGraph_TransitiveClosure() {
	// Box 1 sits right of box 0; box 2 sits right of box 1.
	g := depgraph.New().
		Add(property.Of(1, property.X), property.Of(0, property.X)).
		Add(property.Of(1, property.X), property.Of(0, property.W)).
		Add(property.Of(2, property.X), property.Of(1, property.X))

	closure := g.TransitiveClosure(property.Of(2, property.X))
	fmt.Println(closure[property.Of(2, property.X)].Sorted())
	// Output:
	// [dx(0) dw(0) dx(1) dx(2)]
}
