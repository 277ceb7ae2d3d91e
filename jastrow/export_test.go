// SPDX-License-Identifier: MIT
// White-box bridge: compiled into package jastrow for tests only, exposing
// deep copies of private cache state so jastrow_test can assert bitwise
// properties without widening the production API.

package jastrow

// CachesSnapshot returns deep copies of the four cache arenas, or nils
// before the first Recompute.
func (f *Factor) CachesSnapshot() (aValues, bValues, aPartial, bPartial []float64) {
	if f.state == nil {
		return nil, nil, nil, nil
	}

	return append([]float64(nil), f.state.aValues...),
		append([]float64(nil), f.state.bValues...),
		append([]float64(nil), f.state.aPartial...),
		append([]float64(nil), f.state.bPartial...)
}

// BoundPosition returns the position of particle e in walker w of the bound
// snapshot.
func (f *Factor) BoundPosition(w, e int) [3]float64 {
	p := f.state.ens.Position(w, e)

	return [3]float64{p.X, p.Y, p.Z}
}
