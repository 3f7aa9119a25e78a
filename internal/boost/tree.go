package boost

import "sort"

// node is a single decision-tree node. Leaves have no children and carry
// the additive raw-score contribution in Value.
type node struct {
	Feature   int     `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      *node   `json:"left,omitempty"`
	Right     *node   `json:"right,omitempty"`
	Value     float64 `json:"value,omitempty"`
}

func (n *node) leaf() bool { return n.Left == nil }

// eval walks the tree for one sample.
func (n *node) eval(x []float64) float64 {
	for !n.leaf() {
		if x[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Value
}

const hessEps = 1e-12

// maxLeafValue bounds the Newton step so near-pure leaves cannot produce
// runaway raw scores.
const maxLeafValue = 10.0

// treeBuilder grows one regression tree on the current gradient/hessian
// statistics. Split search is exhaustive over sorted feature values, so
// building is fully deterministic.
type treeBuilder struct {
	x        [][]float64
	grad     []float64
	hess     []float64
	maxDepth int
	lr       float64
	gains    []float64 // accumulated split gain per feature
}

func (tb *treeBuilder) build(idx []int, depth int) *node {
	if depth >= tb.maxDepth || len(idx) < 2 {
		return tb.leafNode(idx)
	}

	feature, threshold, gain, left, right := tb.bestSplit(idx)
	if gain <= 0 {
		return tb.leafNode(idx)
	}

	tb.gains[feature] += gain
	return &node{
		Feature:   feature,
		Threshold: threshold,
		Left:      tb.build(left, depth+1),
		Right:     tb.build(right, depth+1),
	}
}

func (tb *treeBuilder) leafNode(idx []int) *node {
	var g, h float64
	for _, i := range idx {
		g += tb.grad[i]
		h += tb.hess[i]
	}
	v := g / (h + hessEps)
	if v > maxLeafValue {
		v = maxLeafValue
	} else if v < -maxLeafValue {
		v = -maxLeafValue
	}
	return &node{Value: tb.lr * v}
}

type splitSample struct {
	value float64
	grad  float64
	hess  float64
}

// bestSplit scans every feature for the threshold maximizing the gain
// G_L^2/H_L + G_R^2/H_R - G^2/H. Ties keep the first candidate found, so
// repeated fits on identical data choose identical splits.
func (tb *treeBuilder) bestSplit(idx []int) (feature int, threshold, gain float64, left, right []int) {
	var gTot, hTot float64
	for _, i := range idx {
		gTot += tb.grad[i]
		hTot += tb.hess[i]
	}
	parentScore := gTot * gTot / (hTot + hessEps)

	feature = -1
	samples := make([]splitSample, len(idx))

	for j := range tb.x[0] {
		for k, i := range idx {
			samples[k] = splitSample{value: tb.x[i][j], grad: tb.grad[i], hess: tb.hess[i]}
		}
		sort.Slice(samples, func(a, b int) bool { return samples[a].value < samples[b].value })

		var gL, hL float64
		for k := 0; k < len(samples)-1; k++ {
			gL += samples[k].grad
			hL += samples[k].hess
			if samples[k].value == samples[k+1].value {
				continue
			}
			gR := gTot - gL
			hR := hTot - hL
			score := gL*gL/(hL+hessEps) + gR*gR/(hR+hessEps) - parentScore
			if score > gain {
				gain = score
				feature = j
				threshold = (samples[k].value + samples[k+1].value) / 2
			}
		}
	}

	if feature < 0 {
		return -1, 0, 0, nil, nil
	}

	for _, i := range idx {
		if tb.x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	return feature, threshold, gain, left, right
}
