package wavefunction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qmc/basis"
	"github.com/katalvlaran/qmc/ensemble"
	"github.com/katalvlaran/qmc/jastrow"
	"github.com/katalvlaran/qmc/wavefunction"
)

var (
	_ wavefunction.Component = (*jastrow.Factor)(nil)
	_ wavefunction.Component = (*wavefunction.Product)(nil)
)

// productFactor builds a three-electron factor over fixed bases with the
// given flattened coefficient data: four one-body values (two ions, one
// function, two spin channels) and six two-body values (two functions, three
// pair channels).
func productFactor(t *testing.T, aData, bData []float64) *jastrow.Factor {
	t.Helper()
	ions := []r3.Vec{{Z: 0.9}, {Z: -0.9}}
	aCoeff := [2]*mat.Dense{
		mat.NewDense(2, 1, aData[:2]),
		mat.NewDense(2, 1, aData[2:4]),
	}
	f, err := jastrow.New(ions, 2, 1,
		[]basis.Func{basis.Gaussian{Alpha: 0.8}},
		[]basis.Func{basis.Gaussian{Alpha: 0.5}, basis.PolyPade{Beta: 0.3, RCut: 7.5}},
		jastrow.WithACoeff(aCoeff),
		jastrow.WithBCoeff(mat.NewDense(2, 3, bData)),
	)
	require.NoError(t, err)

	return f
}

// summed returns the elementwise sum of two coefficient slices.
func summed(a, b []float64) []float64 {
	out := append([]float64(nil), a...)
	floats.Add(out, b)

	return out
}

// productEnsemble pins three walkers of a two-up one-down configuration to
// known coordinates so trial moves can be stated explicitly.
func productEnsemble(t *testing.T) *ensemble.Ensemble {
	t.Helper()
	rows := [][]r3.Vec{
		{{X: 0.1, Z: 0.8}, {X: -0.4, Z: 0.9}, {Y: 0.3, Z: -0.7}},
		{{Y: -0.2, Z: 0.6}, {X: 0.5, Z: 1.1}, {X: 0.2, Z: -0.8}},
		{{X: 0.3, Y: 0.3, Z: 0.7}, {X: -0.2, Y: 0.1, Z: 1.0}, {Y: -0.4, Z: -0.6}},
	}
	ens, err := ensemble.FromPositions(rows, 2)
	require.NoError(t, err)

	return ens
}

// TestProduct_MatchesSummedCoefficients exploits linearity of the log
// factor: a product of two factors over the same bases must agree with a
// single factor whose coefficients are the sums, for values, ratios,
// derivatives, and committed updates.
func TestProduct_MatchesSummedCoefficients(t *testing.T) {
	aA := []float64{-0.05, -0.03, -0.04, -0.02}
	bA := []float64{-0.25, -0.50, -0.25, -0.04, -0.07, -0.05}
	aB := []float64{-0.02, -0.06, -0.01, -0.03}
	bB := []float64{-0.10, -0.20, -0.10, -0.02, -0.01, -0.03}

	prod, err := wavefunction.NewProduct(
		productFactor(t, aA, bA),
		productFactor(t, aB, bB),
	)
	require.NoError(t, err)
	fSum := productFactor(t, summed(aA, aB), summed(bA, bB))

	ens := productEnsemble(t)
	signP, logP, err := prod.Recompute(ens)
	require.NoError(t, err)
	signS, logS, err := fSum.Recompute(ens)
	require.NoError(t, err)

	assert.Equal(t, signS, signP, "sign")
	for w := range logS {
		assert.InDelta(t, logS[w], logP[w], 1e-12, "walker %d log value", w)
	}

	// Price the same masked single-particle move through both.
	pos := []r3.Vec{
		{X: -0.1, Y: -0.1, Z: 1.1},
		{X: 0.8, Y: 0.2, Z: 0.9},
		{X: 0.1, Y: 0.1, Z: 1.3},
	}
	mask := []bool{true, false, true}
	ratioP, err := prod.Ratio(1, pos, mask)
	require.NoError(t, err)
	ratioS, err := fSum.Ratio(1, pos, mask)
	require.NoError(t, err)
	assert.Equal(t, 1.0, ratioP[1], "unmasked walker stays exactly 1")
	for w := range ratioS {
		assert.InDelta(t, ratioS[w], ratioP[w], 1e-12, "walker %d ratio", w)
	}

	gradP, lapP, err := prod.GradientLaplacian(1, pos)
	require.NoError(t, err)
	gradS, lapS, err := fSum.GradientLaplacian(1, pos)
	require.NoError(t, err)
	for w := range gradS {
		assert.InDelta(t, gradS[w].X, gradP[w].X, 1e-10, "walker %d grad x", w)
		assert.InDelta(t, gradS[w].Y, gradP[w].Y, 1e-10, "walker %d grad y", w)
		assert.InDelta(t, gradS[w].Z, gradP[w].Z, 1e-10, "walker %d grad z", w)
		assert.InDelta(t, lapS[w], lapP[w], 1e-10, "walker %d laplacian", w)
	}

	require.NoError(t, prod.Update(1, pos, mask))
	require.NoError(t, fSum.Update(1, pos, mask))
	_, logP, err = prod.Value()
	require.NoError(t, err)
	_, logS, err = fSum.Value()
	require.NoError(t, err)
	for w := range logS {
		assert.InDelta(t, logS[w], logP[w], 1e-12, "walker %d log value after update", w)
	}
}

// TestProduct_ParamGradientKeys checks the 1-based wf-prefix merge and that
// each merged tensor is the untouched component gradient.
func TestProduct_ParamGradientKeys(t *testing.T) {
	aA := []float64{-0.05, -0.03, -0.04, -0.02}
	bA := []float64{-0.25, -0.50, -0.25, -0.04, -0.07, -0.05}
	fA := productFactor(t, aA, bA)
	fB := productFactor(t, bA[:4], bA)

	prod, err := wavefunction.NewProduct(fA, fB)
	require.NoError(t, err)
	_, _, err = prod.Recompute(productEnsemble(t))
	require.NoError(t, err)

	grads, err := prod.ParamGradient()
	require.NoError(t, err)
	keys := make([]string, 0, len(grads))
	for k := range grads {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"wf1acoeff", "wf1bcoeff", "wf2acoeff", "wf2bcoeff"}, keys)

	own, err := fA.ParamGradient()
	require.NoError(t, err)
	assert.Equal(t, own["bcoeff"], grads["wf1bcoeff"])
	assert.Equal(t, own["acoeff"], grads["wf1acoeff"])
}

// TestNewProduct_Validation exercises the constructor sentinels.
func TestNewProduct_Validation(t *testing.T) {
	_, err := wavefunction.NewProduct()
	assert.ErrorIs(t, err, wavefunction.ErrNoComponents)

	_, err = wavefunction.NewProduct(nil)
	assert.ErrorIs(t, err, wavefunction.ErrNilComponent)

	f := productFactor(t,
		[]float64{-0.05, -0.03, -0.04, -0.02},
		[]float64{-0.25, -0.50, -0.25, -0.04, -0.07, -0.05},
	)
	_, err = wavefunction.NewProduct(f, nil)
	assert.ErrorIs(t, err, wavefunction.ErrNilComponent)
}

// TestProduct_ComponentMismatch binds two components to different walker
// populations and expects the combination to refuse.
func TestProduct_ComponentMismatch(t *testing.T) {
	aData := []float64{-0.05, -0.03, -0.04, -0.02}
	bData := []float64{-0.25, -0.50, -0.25, -0.04, -0.07, -0.05}
	fA := productFactor(t, aData, bData)
	fB := productFactor(t, aData, bData)

	_, _, err := fA.Recompute(productEnsemble(t))
	require.NoError(t, err)
	small, err := ensemble.FromPositions([][]r3.Vec{
		{{X: 0.1, Z: 0.8}, {X: -0.4, Z: 0.9}, {Y: 0.3, Z: -0.7}},
	}, 2)
	require.NoError(t, err)
	_, _, err = fB.Recompute(small)
	require.NoError(t, err)

	prod, err := wavefunction.NewProduct(fA, fB)
	require.NoError(t, err)
	_, _, err = prod.Value()
	assert.ErrorIs(t, err, wavefunction.ErrComponentMismatch)
}
