package internal

// WalkParents follows parent links from current and returns the nodes in
// walk order, current first. It stops after reaching stop, when a node has
// no parent, or after limit nodes so a cyclic chain cannot loop forever.
func WalkParents[NodeType comparable](
	current NodeType,
	stop NodeType,
	parent func(NodeType) (NodeType, bool),
	limit int,
) []NodeType {
	chain := []NodeType{current}
	for current != stop && len(chain) < limit {
		previousNode, exists := parent(current)
		if !exists {
			break
		}
		chain = append(chain, previousNode)
		current = previousNode
	}
	return chain
}

// Reverse reverses a path in place.
func Reverse[NodeType any](path []NodeType) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
