package spincorr

// Observable names, in the order downstream consumers iterate them.
// b1*/b2* are the single-spin analyzers, c_** the spin-correlation
// products, ll_cHel the dilepton opening-angle cosine, and c_han/c_hel
// the two linear combinations of the diagonal correlations.
var Names = []string{
	"b1k", "b1r", "b1n",
	"b2k", "b2r", "b2n",
	"c_kk", "c_rr", "c_nn",
	"c_rk", "c_kn", "c_nr",
	"c_kr", "c_rn", "c_nk",
	"ll_cHel",
	"c_han", "c_hel",
}

// ObservableSet maps each observable name to one value per event. It is
// filled once by Compute and treated as immutable afterwards.
type ObservableSet map[string][]float64

// Len returns the number of events in the set.
func (s ObservableSet) Len() int {
	for _, arr := range s {
		return len(arr)
	}
	return 0
}
