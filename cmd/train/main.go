package main

import (
	"flag"
	"sort"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wildfire-risk/internal/artifact"
	"wildfire-risk/internal/cfg"
	"wildfire-risk/internal/dataset"
	"wildfire-risk/internal/metrics"
	"wildfire-risk/internal/train"
)

func main() {
	datasetPath := flag.String("dataset", "", "damage-inspection export to train on (overrides config)")
	flag.Parse()

	_ = godotenv.Load()
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	c, err := cfg.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	if *datasetPath != "" {
		c.DatasetPath = *datasetPath
	}

	m := metrics.New()
	mw := metrics.NewWrapper(m)

	records, err := dataset.NewLoader(c.DatasetPath).Load()
	if err != nil {
		log.Fatal().Err(err).Msg("dataset load failed")
	}
	mw.RecordsIngestedAdd(len(records))

	pipeline := train.New(train.Config{
		Estimators:    c.Estimators,
		MaxDepth:      c.MaxDepth,
		LearningRate:  c.LearningRate,
		TestFraction:  c.TestFraction,
		Seed:          c.Seed,
		MinGroupCount: c.MinGroupCount,
	}, mw)

	art, err := pipeline.Run(records)
	if err != nil {
		log.Fatal().Err(err).Msg("training failed")
	}

	store, err := artifact.Open(c.DataPath)
	if err != nil {
		log.Fatal().Err(err).Msg("artifact store open failed")
	}
	defer store.Close()

	if err := store.Save(art); err != nil {
		log.Fatal().Err(err).Msg("artifact save failed")
	}

	logImportances(art)
	log.Info().
		Str("version", art.Version).
		Float64("auc", art.AUC).
		Msg("model saved")
}

// logImportances logs the feature importances in descending order so the
// run output doubles as a quick model summary.
func logImportances(art *artifact.Artifact) {
	type pair struct {
		column string
		value  float64
	}
	pairs := make([]pair, 0, len(art.Importances))
	for col, v := range art.Importances {
		pairs = append(pairs, pair{col, v})
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		if pairs[a].value != pairs[b].value {
			return pairs[a].value > pairs[b].value
		}
		return pairs[a].column < pairs[b].column
	})
	for _, p := range pairs {
		log.Info().Str("feature", p.column).Float64("importance", p.value).Msg("feature importance")
	}
}
