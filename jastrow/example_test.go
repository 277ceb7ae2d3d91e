// SPDX-License-Identifier: MIT

package jastrow_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qmc/basis"
	"github.com/katalvlaran/qmc/ensemble"
	"github.com/katalvlaran/qmc/jastrow"
)

// ExampleFactor builds a minimal two-body factor, binds a two-walker
// ensemble, and walks through the propose/accept cycle: log values, a masked
// move ratio, and the log values after committing the move.
func ExampleFactor() {
	bCoeff := mat.NewDense(1, 3, []float64{0, -0.5, 0})
	f, err := jastrow.New(nil, 1, 1,
		nil,
		[]basis.Func{basis.Gaussian{Alpha: 0.25}},
		jastrow.WithBCoeff(bCoeff),
	)
	if err != nil {
		panic(err)
	}

	ens, err := ensemble.FromPositions([][]r3.Vec{
		{{X: 0}, {X: 2}},
		{{X: 0}, {Y: 1}},
	}, 1)
	if err != nil {
		panic(err)
	}

	_, logU, err := f.Recompute(ens)
	if err != nil {
		panic(err)
	}
	fmt.Printf("logU: %.6f %.6f\n", logU[0], logU[1])

	// Propose moving the spin-down particle, but only in walker 0.
	pos := []r3.Vec{{X: 1}, {Y: 1}}
	mask := []bool{true, false}
	ratio, err := f.Ratio(1, pos, mask)
	if err != nil {
		panic(err)
	}
	fmt.Printf("ratio: %.6f %.6f\n", ratio[0], ratio[1])

	if err = f.Update(1, pos, mask); err != nil {
		panic(err)
	}
	_, logU, err = f.Value()
	if err != nil {
		panic(err)
	}
	fmt.Printf("after: %.6f %.6f\n", logU[0], logU[1])

	// Output:
	// logU: -0.183940 -0.389400
	// ratio: 0.814272 1.000000
	// after: -0.389400 -0.389400
}

// ExampleDefault evaluates the stock cusp-enforcing factor for a hydrogen
// molecule geometry with one electron sitting on each proton.
func ExampleDefault() {
	ions := []r3.Vec{{Z: 0.7}, {Z: -0.7}}
	f, err := jastrow.Default(ions, 1, 1)
	if err != nil {
		panic(err)
	}

	ens, err := ensemble.FromPositions([][]r3.Vec{
		{{Z: 0.7}, {Z: -0.7}},
	}, 1)
	if err != nil {
		panic(err)
	}

	_, logU, err := f.Recompute(ens)
	if err != nil {
		panic(err)
	}
	fmt.Printf("logU: %.4f\n", logU[0])

	// Output:
	// logU: -0.0159
}
