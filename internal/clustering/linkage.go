// Package clustering groups semantically similar keywords under canonical representatives.
package clustering

import (
	"math"

	"github.com/jonathan/keyword-ranker/internal/embedding"
)

// agglomerate runs average-linkage hierarchical clustering under cosine
// distance. Clusters merge while the closest pair sits strictly below the
// threshold. Returns one cluster label per input vector.
func agglomerate(vectors [][]float32, threshold float64) []int {
	n := len(vectors)

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := 1 - embedding.Cosine(vectors[i], vectors[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	clusters := make([][]int, n)
	for i := range clusters {
		clusters[i] = []int{i}
	}

	for len(clusters) > 1 {
		bestA, bestB := -1, -1
		best := math.MaxFloat64
		for a := 0; a < len(clusters); a++ {
			for b := a + 1; b < len(clusters); b++ {
				if d := averageLinkage(dist, clusters[a], clusters[b]); d < best {
					best = d
					bestA, bestB = a, b
				}
			}
		}
		if best >= threshold {
			break
		}
		clusters[bestA] = append(clusters[bestA], clusters[bestB]...)
		clusters = append(clusters[:bestB], clusters[bestB+1:]...)
	}

	labels := make([]int, n)
	for label, members := range clusters {
		for _, i := range members {
			labels[i] = label
		}
	}
	return labels
}

// averageLinkage is the mean pairwise distance between two clusters.
func averageLinkage(dist [][]float64, a, b []int) float64 {
	var sum float64
	for _, i := range a {
		for _, j := range b {
			sum += dist[i][j]
		}
	}
	return sum / float64(len(a)*len(b))
}
