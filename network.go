package goflo

import (
	"fmt"
	"sort"

	"github.com/maseology/mmaths/topology"
)

// Farfield marks a link receiver outside the modelled network; discharge
// through such a link is free (tailwater at the link invert).
const Farfield = -1

// Node is a point in the network where storage, an external inflow
// hydrograph and outgoing control structures can be assigned. Nodes are
// addressed by their index in the Network arena.
type Node struct {
	Name   string
	Res    *Reservoir   // nil for a zero-storage junction
	Inflow [][2]float64 // external (hr, cfs) hydrograph, nil for none
	out    []int        // outgoing link indices
}

// Network is an arena of nodes with links referencing node indices,
// read-only during an Analysis run.
type Network struct {
	Nodes []Node
	Links []Link
}

// AddNode appends a node and returns its index.
func (nw *Network) AddNode(name string) int {
	nw.Nodes = append(nw.Nodes, Node{Name: name})
	return len(nw.Nodes) - 1
}

// AddLink appends a link, registering it with its upstream node, and
// returns its index.
func (nw *Network) AddLink(l Link) (int, error) {
	up, dn := l.Ends()
	if up < 0 || up >= len(nw.Nodes) {
		return -1, fmt.Errorf("%w: link upstream node %d undefined", ErrConfiguration, up)
	}
	if dn != Farfield && (dn < 0 || dn >= len(nw.Nodes)) {
		return -1, fmt.Errorf("%w: link downstream node %d undefined", ErrConfiguration, dn)
	}
	if dn == up {
		return -1, fmt.Errorf("%w: link from node %d to itself", ErrConfiguration, up)
	}
	nw.Links = append(nw.Links, l)
	li := len(nw.Links) - 1
	nw.Nodes[up].out = append(nw.Nodes[up].out, li)
	return li, nil
}

// Outgoing returns the outgoing link indices of a node.
func (nw *Network) Outgoing(n int) []int { return nw.Nodes[n].out }

// receiver returns the single modelled node a node drains to, or Farfield
// when it drains only to the outlet/farfield boundary. outlet receivers
// count as boundary.
func (nw *Network) receiver(n, outlet int) (int, error) {
	rcv := Farfield
	for _, li := range nw.Nodes[n].out {
		_, dn := nw.Links[li].Ends()
		if dn == Farfield || dn == outlet {
			continue
		}
		if rcv != Farfield && rcv != dn {
			return 0, fmt.Errorf("%w: node %q drains to multiple receiving nodes (%d and %d)", ErrConfiguration, nw.Nodes[n].Name, rcv, dn)
		}
		rcv = dn
	}
	return rcv, nil
}

// downstream builds the node→receiver map used for topological ordering;
// boundary receivers map to Farfield.
func (nw *Network) downstream(outlet int) (map[int]int, error) {
	dsn := make(map[int]int, len(nw.Nodes))
	for n := range nw.Nodes {
		if n == outlet {
			continue
		}
		rcv, err := nw.receiver(n, outlet)
		if err != nil {
			return nil, err
		}
		dsn[n] = rcv
	}
	return dsn, nil
}

// Validate checks the network against the outlet boundary node before a
// run: link indices, self-drainage, multiple receivers, dead-end
// junctions and drainage cycles all surface as configuration errors.
func (nw *Network) Validate(outlet int) error {
	if outlet < 0 || outlet >= len(nw.Nodes) {
		return fmt.Errorf("%w: outlet node %d undefined", ErrConfiguration, outlet)
	}
	for li, l := range nw.Links {
		up, dn := l.Ends()
		if up < 0 || up >= len(nw.Nodes) || (dn != Farfield && (dn < 0 || dn >= len(nw.Nodes))) {
			return fmt.Errorf("%w: link %d references undefined node", ErrConfiguration, li)
		}
		if up == dn {
			return fmt.Errorf("%w: link %d drains node %d to itself", ErrConfiguration, li, up)
		}
		if o, ok := l.(*Opening); ok {
			if o.Sect == nil {
				return fmt.Errorf("%w: opening %d has no section", ErrConfiguration, li)
			}
			if o.Kind == Combined && o.Transition <= 0. {
				return fmt.Errorf("%w: combined opening %d needs a positive transition depth", ErrConfiguration, li)
			}
			if o.Korif < 0. || o.Kweir < 0. {
				return fmt.Errorf("%w: opening %d has negative coefficients", ErrConfiguration, li)
			}
		}
	}
	dsn, err := nw.downstream(outlet)
	if err != nil {
		return err
	}
	for n := range nw.Nodes {
		if n == outlet {
			continue
		}
		if len(nw.Nodes[n].out) == 0 && nw.Nodes[n].Res == nil {
			return fmt.Errorf("%w: junction node %q has no outlet structure", ErrConfiguration, nw.Nodes[n].Name)
		}
	}
	// a drainage cycle can never reach the outlet, storage or not
	for n := range dsn {
		slow, fast := n, n
		for {
			fast = dsn[fast]
			if fast == Farfield {
				break
			}
			fast = dsn[fast]
			slow = dsn[slow]
			if fast == Farfield {
				break
			}
			if slow == fast {
				return fmt.Errorf("%w: drainage cycle through node %q", ErrConfiguration, nw.Nodes[n].Name)
			}
		}
	}
	return nil
}

// Order returns a topologically safe node order, upstream first, outlet
// excluded.
func (nw *Network) Order(outlet int) ([]int, error) {
	dsn, err := nw.downstream(outlet)
	if err != nil {
		return nil, err
	}
	ord := topology.OrderFromToTree(dsn, Farfield)
	// ensure upslope-first
	pos := make(map[int]int, len(ord))
	for i, n := range ord {
		pos[n] = i
	}
	for i, n := range ord {
		if d := dsn[n]; d != Farfield && pos[d] < i {
			for l, r := 0, len(ord)-1; l < r; l, r = l+1, r-1 {
				ord[l], ord[r] = ord[r], ord[l]
			}
			break
		}
	}
	return ord, nil
}

// Rounds groups nodes by drainage depth for within-step parallelism, most
// upstream group first; nodes within a round share no drainage path. The
// concatenation of rounds is itself a safe serial order.
func (nw *Network) Rounds(outlet int) ([][]int, error) {
	dsn, err := nw.downstream(outlet)
	if err != nil {
		return nil, err
	}
	depth := make(map[int]int, len(dsn))
	var dep func(int) int
	dep = func(n int) int {
		if d, ok := depth[n]; ok {
			return d
		}
		r := dsn[n]
		d := 0
		if r != Farfield {
			d = dep(r) + 1
		}
		depth[n] = d
		return d
	}
	dmax := 0
	for n := range dsn {
		if d := dep(n); d > dmax {
			dmax = d
		}
	}
	rounds := make([][]int, dmax+1)
	for n, d := range depth {
		rounds[dmax-d] = append(rounds[dmax-d], n)
	}
	for _, r := range rounds {
		sort.Ints(r)
	}
	return rounds, nil
}
