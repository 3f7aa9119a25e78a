package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// sourceColumns maps the raw damage-inspection export headers to the
// logical column names used by the rest of the system.
var sourceColumns = map[string]string{
	"* Damage":            "damage",
	"* Structure Type":    "structure_type",
	"Structure Category":  "structure_category",
	"* Roof Construction": "roof_construction",
	"* Eaves":             "eaves",
	"* Vent Screen":       "vent_screen",
	"* Exterior Siding":   "exterior_siding",
	"* Window Pane":       "window_pane",
	"* Deck/Porch On Grade": "deck_on_grade",
	"* Deck/Porch Elevated": "deck_elevated",
	"* Patio Cover/Carport Attached to Structure": "patio_cover",
	"* Fence Attached to Structure":               "fence_attached",
	"County":              "county",
	"* Incident Name":     "incident_name",
	"Incident Start Date": "incident_date",
	"Latitude":            "latitude",
	"Longitude":           "longitude",
}

// Loader reads wildfire damage-inspection exports. Both CSV and Excel
// (Sheet1) sources are supported, keyed by file extension.
type Loader struct {
	path     string
	fileType string // "csv" or "xlsx"
}

// NewLoader creates a loader for the given file path.
func NewLoader(path string) *Loader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		fileType = "csv"
	}
	return &Loader{path: path, fileType: fileType}
}

// Load reads the source file and returns all parsed records, including
// inaccessible ones. Consumers filter per their own invariants.
func (l *Loader) Load() ([]Record, error) {
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("dataset file not found: %s", l.path)
	}

	var rows [][]string
	var err error
	switch l.fileType {
	case "csv":
		rows, err = l.readCSV()
	case "xlsx":
		rows, err = l.readExcel()
	default:
		return nil, fmt.Errorf("unsupported dataset file type: %s", l.fileType)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("dataset must have a header row and at least one data row")
	}

	records := parseRows(rows)
	log.Info().
		Str("path", l.path).
		Str("type", l.fileType).
		Int("records", len(records)).
		Msg("dataset loaded")
	return records, nil
}

func (l *Loader) readCSV() ([][]string, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func (l *Loader) readExcel() ([][]string, error) {
	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	return rows, nil
}

// parseRows maps raw rows onto Records using the header row. Columns with
// unrecognized headers are ignored; rows shorter than the header are
// padded with empty values.
func parseRows(rows [][]string) []Record {
	header := rows[0]
	logical := make([]string, len(header))
	for i, h := range header {
		logical[i] = sourceColumns[strings.TrimSpace(h)]
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		var rec Record
		for i, name := range logical {
			if name == "" || i >= len(row) {
				continue
			}
			setField(&rec, name, strings.TrimSpace(row[i]))
		}
		records = append(records, rec)
	}
	return records
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func setField(rec *Record, column, value string) {
	switch column {
	case "damage":
		rec.Damage = value
	case "structure_type":
		rec.StructureType = value
	case "structure_category":
		rec.StructureCategory = value
	case "roof_construction":
		rec.RoofConstruction = value
	case "eaves":
		rec.Eaves = value
	case "vent_screen":
		rec.VentScreen = value
	case "exterior_siding":
		rec.ExteriorSiding = value
	case "window_pane":
		rec.WindowPane = value
	case "deck_on_grade":
		rec.DeckOnGrade = value
	case "deck_elevated":
		rec.DeckElevated = value
	case "patio_cover":
		rec.PatioCover = value
	case "fence_attached":
		rec.FenceAttached = value
	case "county":
		rec.County = value
	case "incident_name":
		rec.IncidentName = value
	case "incident_date":
		rec.IncidentDate = value
	case "latitude":
		rec.Latitude, _ = strconv.ParseFloat(value, 64)
	case "longitude":
		rec.Longitude, _ = strconv.ParseFloat(value, 64)
	}
}
