package builder

// Canonical constructor names, used to prefix errors.
const (
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
)

// Minimum sizes per topology.
const (
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinCycleNodes: fewer than 3 nodes cannot form a simple ring.
	MinCycleNodes = 3
	// MinStarNodes: one hub plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a 3-cycle rim plus the hub.
	MinWheelNodes = 4
	// MinCompleteNodes: K_1 is a single isolated vertex.
	MinCompleteNodes = 1
	// MinPartition: each side of K_{a,b} is non-empty.
	MinPartition = 1
	// MinGridDim: a 1×1 grid has no edges but is valid.
	MinGridDim = 1
	// MinRandomSparseNodes: at least one vertex to sample over.
	MinRandomSparseNodes = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
