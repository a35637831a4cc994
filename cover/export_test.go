package cover

// Test bridge: exposes the classifier so the unreachable
// AnomalousBetterThanOptimum branch can be exercised directly.
var Classify = classify
