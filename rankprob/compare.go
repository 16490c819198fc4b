// File: compare.go
// Role: Pairwise ordering probability of two divergence events.
package rankprob

import (
	"fmt"

	"github.com/treeline-bio/phylo/core"
	"github.com/treeline-bio/phylo/stats"
)

// Subtrees splits the bifurcating node conn into its two child subtrees,
// returning the child leading toward u and the child leading toward v.
// conn must have exactly two children and must separate u from v, else a
// wrapped core.ErrBadArgs is returned.
func Subtrees(conn, u, v *core.Node) (su, sv *core.Node, err error) {
	if conn == nil || u == nil || v == nil {
		return nil, nil, fmt.Errorf("rankprob: subtrees: %w", core.ErrBadArgs)
	}
	kids := conn.Children()
	if len(kids) != 2 {
		return nil, nil, fmt.Errorf("rankprob: subtrees: node %d is not bifurcating: %w", conn.ID(), core.ErrBadArgs)
	}
	for _, c := range kids {
		if c == u || c.IsAncestorOf(u) {
			su = c
		}
		if c == v || c.IsAncestorOf(v) {
			sv = c
		}
	}
	if su == nil || sv == nil || su == sv {
		return nil, nil, fmt.Errorf("rankprob: subtrees: node %d does not separate nodes %d and %d: %w",
			conn.ID(), u.ID(), v.ID(), core.ErrBadArgs)
	}

	return su, sv, nil
}

// Compare returns the probability that u diverged before v under a
// uniform distribution over the temporally consistent event orderings of
// their minimal connecting subtree. An ancestor is certainly earlier than
// its descendant (1 or 0); identical nodes compare as 0, since neither
// strictly precedes the other.
func Compare(u, v *core.Node) (float64, error) {
	if u == nil || v == nil {
		return 0, fmt.Errorf("rankprob: compare: %w", core.ErrBadArgs)
	}
	if u == v {
		return 0, nil
	}

	// 1. The minimal connecting subtree is rooted at the MRCA; when a
	//    query node is that root itself the ordering is forced.
	conn, err := stats.MRCA(u, v)
	if err != nil {
		return 0, fmt.Errorf("rankprob: compare: %w", err)
	}
	if conn == u {
		return 1, nil
	}
	if conn == v {
		return 0, nil
	}

	// 2. Local rank distributions on each side of the split.
	su, sv, err := Subtrees(conn, u, v)
	if err != nil {
		return 0, err
	}
	rpu, err := RankProb(su, u)
	if err != nil {
		return 0, err
	}
	rpv, err := RankProb(sv, v)
	if err != nil {
		return 0, err
	}
	usize := su.TipCount() - 1
	vsize := sv.TipCount() - 1

	// 3. Convolve: for u at local rank i and v at local rank j, count the
	//    interleavings of the two event sequences that place u's i-th
	//    slot before v's j-th, then normalize by all interleavings.
	var p float64
	for i := 1; i < len(rpu); i++ {
		if rpu[i] == 0 {
			continue
		}
		for j := 1; j < len(rpv); j++ {
			if rpv[j] == 0 {
				continue
			}
			var before float64
			for z := 0; z < j; z++ {
				before += nchoose(i-1+z, z) * nchoose(usize-i+vsize-z, vsize-z)
			}
			p += rpu[i] * rpv[j] * before
		}
	}

	return p / nchoose(usize+vsize, vsize), nil
}
