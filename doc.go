// Package bloomdict implements a Bloom filter for word dictionaries: a
// fixed bit array addressed by k hash-derived positions per element.
//
// A filter answers membership queries with "might be in the set" or
// "definitely not in the set". False positives happen at a tunable rate,
// false negatives never do, and the elements themselves are not stored.
// With m bits, k hashes and n inserted elements the false positive rate
// is
//
//	p = (1 - e^(-k*n/m))^k
//
// and New picks the optimal parameters for an expected element count and
// target rate:
//
//	m = -n*ln(p) / (ln 2)^2
//	k = (m/n) * ln 2
//
// The k positions for an element come from double hashing: two base
// hashes h1 and h2 address position i as (h1 + i*h2) mod m.
//
// The intended lifecycle is phase separated. A builder inserts the
// dictionary, the filter is serialized, and readers query the restored
// copy; queries are safe from any number of goroutines. InsertAtomic
// additionally allows concurrent inserts during the build phase.
package bloomdict
