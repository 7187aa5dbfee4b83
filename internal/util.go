package internal

// TracePath follows parent links from current back to the root (a node whose
// parent is negative) and returns the chain root-first. At most limit+1
// nodes are visited, so a corrupted chain cannot loop forever.
func TracePath(parents func(int32) int32, current int32, limit int) []int32 {
	path := make([]int32, 0, 16)
	for hops := 0; current >= 0 && hops <= limit; hops++ {
		path = append(path, current)
		current = parents(current)
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
