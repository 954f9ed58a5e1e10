package service

import (
	"github.com/google/uuid"
)

// wouldCreateCycle reports whether adding the edge pred -> succ to the given
// edge set closes a cycle. Edges are checked incrementally on insertion, so
// the existing set is assumed acyclic; a cycle exists iff pred is already
// reachable from succ.
func wouldCreateCycle(edges map[uuid.UUID][]uuid.UUID, pred, succ uuid.UUID) bool {
	if pred == succ {
		return true
	}
	visited := map[uuid.UUID]bool{}
	stack := []uuid.UUID{succ}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == pred {
			return true
		}
		if visited[node] {
			continue
		}
		visited[node] = true
		stack = append(stack, edges[node]...)
	}
	return false
}

// edgeSet builds an adjacency map from (predecessor, successor) pairs.
func edgeSet(pairs [][2]uuid.UUID) map[uuid.UUID][]uuid.UUID {
	edges := make(map[uuid.UUID][]uuid.UUID, len(pairs))
	for _, pair := range pairs {
		edges[pair[0]] = append(edges[pair[0]], pair[1])
	}
	return edges
}
