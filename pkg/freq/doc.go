// Package freq provides the colour frequency table and the ranker.
//
// A [Table] is an ordered mapping from colour keys (hex codes without a
// leading '#') to non-negative frequencies. Iteration order is insertion
// order, and that order is part of the contract: JSON decoding keeps the
// order of the source document and encoding writes entries in table order.
//
// [Rank] derives a new table holding the highest entries in descending
// order of frequency:
//
//	t, err := freq.Read(f)
//	if err != nil {
//	    return err
//	}
//	ranked := freq.Rank(t, freq.DefaultLimit)
//	for key, value := range ranked.All() {
//	    fmt.Println(key, value)
//	}
//
// Ties are broken by insertion order in the input table, so ranking is
// deterministic for a given input document.
package freq
