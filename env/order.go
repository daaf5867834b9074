package env

import "slices"

// graph holds the dependency edges between the keys of a flattened
// specification. Nodes are identified by their index in specification order.
type graph struct {
	keys   []string
	degree []int   // number of unresolved producers per node
	edges  [][]int // consumers per producer, in discovery order
}

// newGraph derives the dependency graph of flat.
//
// Key K depends on key P when P is named by a token in K's value or in K
// itself (a dynamic key). Tokens that name K itself or no key at all do not
// create edges.
func newGraph(flat Env) *graph {
	n := flat.Len()
	g := &graph{
		keys:   slices.Clone(flat.keys),
		degree: make([]int, n),
		edges:  make([][]int, n),
	}

	index := make(map[string]int, n)
	for i, key := range g.keys {
		index[key] = i
	}

	for ci, key := range g.keys {
		refs := append(Tokens(flat.vals[key]), Tokens(key)...)
		seen := make(map[int]struct{}, len(refs))

		for _, ref := range refs {
			pi, ok := index[ref]
			if !ok || pi == ci {
				continue
			}

			if _, dup := seen[pi]; dup {
				continue
			}

			seen[pi] = struct{}{}
			g.edges[pi] = append(g.edges[pi], ci)
			g.degree[ci]++
		}
	}

	return g
}

// sort returns the keys in dependency order using in-degree counting.
//
// Keys without dependencies seed the order in specification order; each key
// placed releases its consumers in discovery order. Keys whose dependencies
// can never be satisfied are returned separately in specification order.
func (g *graph) sort() (order, cyclic []string) {
	degree := slices.Clone(g.degree)
	queue := make([]int, 0, len(g.keys))

	for i, d := range degree {
		if d == 0 {
			queue = append(queue, i)
		}
	}

	// Each node enters the queue at most once, so this loop is bounded by
	// the number of keys.
	for head := 0; head < len(queue); head++ {
		for _, c := range g.edges[queue[head]] {
			degree[c]--
			if degree[c] == 0 {
				queue = append(queue, c)
			}
		}
	}

	order = make([]string, len(queue))
	for i, n := range queue {
		order[i] = g.keys[n]
	}

	for i, d := range degree {
		if d > 0 {
			cyclic = append(cyclic, g.keys[i])
		}
	}

	return order, cyclic
}

// Order returns the keys of flat in an order where every key follows all
// keys it depends on.
//
// Keys that take part in, or depend on, a reference cycle cannot be ordered
// and are returned in cyclic instead, in specification order. Every key of
// flat appears exactly once in either order or cyclic.
func Order(flat Env) (order, cyclic []string) {
	return newGraph(flat).sort()
}
