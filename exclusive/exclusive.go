// Package exclusive converts inclusive per-node metric values into exclusive
// ones by subtracting child contributions from their parents.
//
// Metrics live in a flat buffer addressed by one-based node identifiers: the
// value of node n is metrics[n-1]. When the same node is repeated for several
// profiling contexts the repetitions are stride apart, so instance i of node n
// sits at metrics[n+i*stride-1].
package exclusive

// Pair is a (node, parent) identifier pair, both one-based.
type Pair struct {
	Node   int
	Parent int
}

// Subtract performs count iterations of
//
//	metrics[parent+i*stride-1] -= metrics[node+i*stride-1]
//
// for i in [0, count), in order, in place. Every touched position must be a
// valid index into metrics; an invalid one panics.
func Subtract(node, parent, count, stride int, metrics []float64) {
	n, p := node-1, parent-1
	for range count {
		metrics[p] -= metrics[n]
		n += stride
		p += stride
	}
}

// SubtractPairs calls Subtract for every pair in order.
func SubtractPairs(pairs []Pair, count, stride int, metrics []float64) {
	for _, pr := range pairs {
		Subtract(pr.Node, pr.Parent, count, stride, metrics)
	}
}
