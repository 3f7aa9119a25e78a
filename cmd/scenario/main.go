package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wildfire-risk/internal/dataset"
	"wildfire-risk/internal/server"
)

// scenario is a small CLI client that scores one what-if scenario against a
// running prediction server.
func main() {
	var (
		baseURL  = flag.String("server", "http://localhost:8090", "prediction server base URL")
		s        dataset.Scenario
		listOpts = flag.Bool("options", false, "print the known values per feature and exit")
	)
	flag.StringVar(&s.StructureType, "structure-type", "", "structure type")
	flag.StringVar(&s.StructureCategory, "structure-category", "", "structure category")
	flag.StringVar(&s.RoofConstruction, "roof", "", "roof construction")
	flag.StringVar(&s.Eaves, "eaves", "", "eaves")
	flag.StringVar(&s.VentScreen, "vent-screen", "", "vent screen")
	flag.StringVar(&s.ExteriorSiding, "siding", "", "exterior siding")
	flag.StringVar(&s.WindowPane, "window-pane", "", "window pane")
	flag.StringVar(&s.DeckOnGrade, "deck-on-grade", "", "deck/porch on grade")
	flag.StringVar(&s.DeckElevated, "deck-elevated", "", "deck/porch elevated")
	flag.StringVar(&s.PatioCover, "patio-cover", "", "patio cover/carport attached")
	flag.StringVar(&s.FenceAttached, "fence", "", "fence attached to structure")
	flag.StringVar(&s.County, "county", "", "county")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if *listOpts {
		printOptions()
		return
	}

	client := resty.New().
		SetBaseURL(*baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	var result server.PredictionResponse
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(server.PredictionRequest{Scenario: s}).
		SetResult(&result).
		Post("/predict")
	if err != nil {
		log.Fatal().Err(err).Msg("prediction request failed")
	}
	if resp.StatusCode() != 200 {
		log.Fatal().
			Int("status", resp.StatusCode()).
			Str("body", string(resp.Body())).
			Msg("prediction request rejected")
	}

	fmt.Printf("Destruction probability: %.1f%%\n", result.Probability*100)
	fmt.Printf("Risk tier:               %s\n", result.Risk)
	fmt.Printf("Model version:           %s (AUC %.3f)\n", result.ModelVersion, result.AUC)
}

func printOptions() {
	for _, col := range dataset.FeatureColumns {
		fmt.Fprintf(os.Stdout, "%s (%s):\n", dataset.FeatureLabels[col], col)
		for _, v := range dataset.FeatureOptions[col] {
			fmt.Fprintf(os.Stdout, "  %s\n", v)
		}
	}
}
