package bezier_test

import (
	"fmt"

	"honnef.co/go/curve"

	bezier "github.com/vanaf1979/bezier-drawing"
)

func Example() {
	c := bezier.New()
	c.AddAnchor(curve.Pt(100, 100))
	a2 := c.AddAnchor(curve.Pt(300, 100))
	c.AddAnchor(curve.Pt(500, 100))

	st := c.RenderState()
	fmt.Println("segments:", len(st.Segments))
	for _, a := range st.Anchors {
		fmt.Printf("%v %v\n", a.Pos, a.Role)
	}

	// Double-clicking the middle anchor removes it and joins its neighbors
	// with a fresh segment.
	if err := c.RemoveAnchor(a2); err != nil {
		fmt.Println(err)
	}
	st = c.RenderState()
	fmt.Println("segments:", len(st.Segments))
	for _, a := range st.Anchors {
		fmt.Printf("%v %v\n", a.Pos, a.Role)
	}

	// Output:
	// segments: 2
	// (100, 100) first
	// (300, 100) center
	// (500, 100) last
	// segments: 1
	// (100, 100) first
	// (500, 100) last
}
