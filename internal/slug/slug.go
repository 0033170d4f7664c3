// Package slug generates short random suffixes for resource names, so bulk
// created containers keep readable names without colliding.
package slug

import (
	"math/rand/v2"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns n characters drawn uniformly from the alphanumeric
// alphabet. The randomness is for collision avoidance only, not security.
// Callers guard on n > 0.
func Generate(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return sb.String()
}
