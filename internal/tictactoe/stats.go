package tictactoe

// TreeStats counts the nodes of a tree; MaxDepth is the deepest Level.
type TreeStats struct {
	Nodes    int `json:"nodes"`
	Leaves   int `json:"leaves"`
	MaxDepth int `json:"max_depth"`
}

// Stats - walks the whole tree under root.
func Stats(root *Node) TreeStats {
	var stats TreeStats
	collectStats(root, &stats)

	return stats
}

func collectStats(node *Node, stats *TreeStats) {
	stats.Nodes++
	stats.MaxDepth = max(stats.MaxDepth, node.Level)

	if len(node.Children) == 0 {
		stats.Leaves++
		return
	}

	for _, child := range node.Children {
		collectStats(child, stats)
	}
}
