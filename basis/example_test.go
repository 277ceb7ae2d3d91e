package basis_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qmc/basis"
)

// ExampleGaussian evaluates a Gaussian correlation term for a small batch of
// separation vectors.
func ExampleGaussian() {
	g := basis.Gaussian{Alpha: 0.5}
	sep := []r3.Vec{{X: 1}, {Y: 2}}
	vals := g.Value(nil, sep, basis.Norms(nil, sep))
	fmt.Printf("%.6f %.6f\n", vals[0], vals[1])
	// Output: 0.606531 0.135335
}

// ExamplePolyPade shows the hard cutoff: separations beyond RCut contribute
// exactly zero.
func ExamplePolyPade() {
	f := basis.PolyPade{Beta: 0.2, RCut: 2}
	sep := []r3.Vec{{X: 1}, {X: 3}}
	vals := f.Value(nil, sep, basis.Norms(nil, sep))
	fmt.Printf("inside=%.6f outside=%v\n", vals[0], vals[1])
	// Output: inside=0.274725 outside=0
}

// ExampleFunc iterates an ordered basis the way the correlation engine does,
// reusing one destination slice across functions.
func ExampleFunc() {
	funcs := []basis.Func{
		basis.CutoffCusp{Gamma: 24, RCut: 7.5},
		basis.PolyPade{Beta: 0.5, RCut: 7.5},
	}
	sep := []r3.Vec{{X: 1.5}}
	r := basis.Norms(nil, sep)

	var dst []float64
	for _, f := range funcs {
		dst = f.Value(dst, sep, r)
		fmt.Printf("%.4f\n", dst[0])
	}
	// Output:
	// 0.0290
	// 0.7513
}
