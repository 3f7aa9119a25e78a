package metrics

// Wrapper exposes the metrics through the small method interfaces the
// encode, train and infer packages consume, avoiding package cycles.
type Wrapper struct {
	m *Metrics
}

// NewWrapper creates a wrapper around the given metrics.
func NewWrapper(m *Metrics) *Wrapper {
	return &Wrapper{m: m}
}

func (w *Wrapper) PredictionsInc() { w.m.Predictions.Inc() }

func (w *Wrapper) PredictionLatencyObserve(v float64) { w.m.PredictionLatency.Observe(v) }

func (w *Wrapper) PredictionScoresObserve(v float64) { w.m.PredictionScores.Observe(v) }

func (w *Wrapper) EncodeFallbacksInc() { w.m.EncodeFallbacks.Inc() }

func (w *Wrapper) EncodeDefaultsInc() { w.m.EncodeDefaults.Inc() }

func (w *Wrapper) TrainingRunsInc() { w.m.TrainingRuns.Inc() }

func (w *Wrapper) TrainingFailuresInc() { w.m.TrainingFailures.Inc() }

func (w *Wrapper) TrainingDurationObserve(v float64) { w.m.TrainingDuration.Observe(v) }

func (w *Wrapper) ModelAUCSet(v float64) { w.m.ModelAUC.Set(v) }

func (w *Wrapper) ModelAgeSet(v float64) { w.m.ModelAge.Set(v) }

func (w *Wrapper) RecordsIngestedAdd(n int) { w.m.RecordsIngested.Add(float64(n)) }
