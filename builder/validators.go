// Validation helpers shared by constructors. Each returns a sentinel wrapped
// with the constructor name and the offending values.

package builder

import "fmt"

// validateMin ensures got ≥ min.
// Complexity: O(1).
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
