package polynomial

import "github.com/vybium/primefield/pkg/primefield/field"

// recursionCutoffThreshold mirrors the teacher's
// zerofier.RecursionCutoffThreshold (pkg/vybium-crypto/zerofier/zerofier_tree.go):
// point sets at or below this size use the incremental Zerofier directly;
// larger sets build a balanced product tree instead. Polynomial.Mul is
// schoolbook convolution, so both constructions cost O(n^2) field
// multiplications.
const recursionCutoffThreshold = 16

// nodeType distinguishes a zerofier tree's leaf, internal, and padding
// nodes, adapted from the teacher's zerofier.NodeType.
type nodeType int

const (
	nodeLeaf nodeType = iota
	nodeBranch
	nodePadding
)

// zerofierTree is a balanced binary tree of vanishing polynomials: each
// leaf holds the zerofier of a small chunk of points (at most
// recursionCutoffThreshold of them), and each internal node holds the
// product of its children's zerofiers. Adapted from the teacher's
// pkg/vybium-crypto/zerofier/zerofier_tree.go, generalized from its
// Goldilocks-only field.Element to this package's *field.Field-parameterized
// Element/Polynomial types.
type zerofierTree struct {
	kind     nodeType
	points   []field.Element
	zerofier *Polynomial
	left     *zerofierTree
	right    *zerofierTree
}

// newZerofierTree builds a balanced binary product tree over domain,
// chunking it into leaves of at most recursionCutoffThreshold points each,
// padding the node list to a power of two, then pairing nodes bottom-up.
func newZerofierTree(f *field.Field, domain []field.Element) *zerofierTree {
	if len(domain) == 0 {
		return &zerofierTree{kind: nodeLeaf, zerofier: One(f)}
	}

	var leaves []*zerofierTree
	for i := 0; i < len(domain); i += recursionCutoffThreshold {
		end := i + recursionCutoffThreshold
		if end > len(domain) {
			end = len(domain)
		}
		chunk := domain[i:end]
		leaves = append(leaves, &zerofierTree{
			kind:     nodeLeaf,
			points:   chunk,
			zerofier: Zerofier(f, chunk),
		})
	}

	size := 1
	for size < len(leaves) {
		size *= 2
	}
	for len(leaves) < size {
		leaves = append(leaves, &zerofierTree{kind: nodePadding, zerofier: One(f)})
	}

	level := leaves
	for len(level) > 1 {
		var next []*zerofierTree
		for i := 0; i < len(level); i += 2 {
			l, r := level[i], level[i+1]
			next = append(next, &zerofierTree{
				kind:     nodeBranch,
				zerofier: l.zerofier.Mul(r.zerofier),
				left:     l,
				right:    r,
			})
		}
		level = next
	}
	return level[0]
}

// GetZerofier returns the tree's root vanishing polynomial, the product of
// every leaf's chunk zerofier.
func (t *zerofierTree) GetZerofier() *Polynomial {
	return t.zerofier
}

// zerofierViaBestStrategy picks between the direct incremental Zerofier
// construction and the product-tree construction depending on point-set
// size, matching the teacher's own cutoff-gated strategy: the plain
// incremental update avoids the tree's bookkeeping overhead for small
// domains. With schoolbook Polynomial.Mul the tree has no asymptotic
// advantage for large ones.
func zerofierViaBestStrategy(f *field.Field, points []field.Element) *Polynomial {
	if len(points) <= recursionCutoffThreshold {
		return Zerofier(f, points)
	}
	return newZerofierTree(f, points).GetZerofier()
}
