package encode

import "fmt"

// VectorBuilder turns a raw feature-value mapping into an ordered numeric
// vector. The column order is fixed at construction and corresponds
// one-to-one with vector positions; training and inference must construct
// their builders from the same stored order or vectors silently misalign.
type VectorBuilder struct {
	columns  []string
	encoders map[string]*Encoder
}

// NewVectorBuilder creates a builder for the given column order. A column
// without an encoder is a programming error, not a runtime condition.
func NewVectorBuilder(columns []string, encoders map[string]*Encoder) (*VectorBuilder, error) {
	for _, col := range columns {
		if encoders[col] == nil {
			return nil, fmt.Errorf("no encoder for feature column %q", col)
		}
	}
	return &VectorBuilder{columns: columns, encoders: encoders}, nil
}

// Columns returns the fixed column order.
func (b *VectorBuilder) Columns() []string { return b.columns }

// Build encodes features into a vector of length len(Columns()). Columns
// absent from the mapping default to Unknown.
func (b *VectorBuilder) Build(features map[string]string) []float64 {
	return b.BuildWithMetrics(features, nil)
}

// BuildWithMetrics is Build with encoder fallback observability.
func (b *VectorBuilder) BuildWithMetrics(features map[string]string, m MetricsTracker) []float64 {
	vec := make([]float64, len(b.columns))
	for i, col := range b.columns {
		value, ok := features[col]
		if !ok {
			value = Unknown
		}
		vec[i] = float64(b.encoders[col].EncodeWithMetrics(value, m))
	}
	return vec
}
