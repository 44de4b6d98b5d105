package comment

// Assemble links a flat set of comments into a forest.
//
// Comments without a parent become roots. A comment whose parent is not in the
// input (deleted, or never loaded) is promoted to a root as well, so every
// input comment appears exactly once in the output. Duplicate ids keep their
// first occurrence.
//
// The walk is iterative; thread depth is bounded only by memory.
func Assemble(comments []*Comment) []*Node {
	nodes := make(map[string]*Node, len(comments))
	ordered := make([]*Node, 0, len(comments))

	for _, comment := range comments {
		if comment == nil {
			continue
		}
		if _, duplicate := nodes[comment.ID]; duplicate {
			continue
		}
		node := &Node{Comment: comment, Children: []*Node{}}
		nodes[comment.ID] = node
		ordered = append(ordered, node)
	}

	roots := make([]*Node, 0)
	for _, node := range ordered {
		if node.ParentID != nil {
			if parent, ok := nodes[*node.ParentID]; ok && parent != node {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	// Corrupt parent links can form a loop that no root reaches. Nodes hanging
	// off a loop keep their parents; each loop is cut at its member that comes
	// first in input order.
	reached := make(map[*Node]bool, len(ordered))
	markReached(reached, roots...)

	if len(reached) == len(ordered) {
		return roots
	}

	position := make(map[*Node]int, len(ordered))
	for i, node := range ordered {
		position[node] = i
	}

	for _, node := range ordered {
		if reached[node] {
			continue
		}
		cut := loopHead(nodes, position, node)
		parent := nodes[*cut.ParentID]
		parent.Children = detach(parent.Children, cut)
		roots = append(roots, cut)
		markReached(reached, cut)
	}

	return roots
}

// Walk visits every node of the forest depth-first, parents before children.
func Walk(roots []*Node, visit func(node *Node)) {
	stack := make([]*Node, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, roots[i])
	}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(node)

		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}
}

func markReached(reached map[*Node]bool, from ...*Node) {
	Walk(from, func(node *Node) {
		reached[node] = true
	})
}

// loopHead follows parent links from an unreached node until they repeat and
// returns the earliest loop member in input order. Every unreached node has a
// parent in nodes, otherwise it would have been a root.
func loopHead(nodes map[string]*Node, position map[*Node]int, from *Node) *Node {
	seen := make(map[*Node]bool)
	current := from
	for !seen[current] {
		seen[current] = true
		current = nodes[*current.ParentID]
	}

	head := current
	for member := nodes[*current.ParentID]; member != current; member = nodes[*member.ParentID] {
		if position[member] < position[head] {
			head = member
		}
	}
	return head
}

func detach(children []*Node, target *Node) []*Node {
	for i, child := range children {
		if child == target {
			return append(children[:i:i], children[i+1:]...)
		}
	}
	return children
}
