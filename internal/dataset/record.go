// Package dataset defines the wildfire incident record model and loads
// historical structure-damage data from CSV or Excel sources.
//
// Records carry the categorical building attributes used for destruction
// prediction plus optional location/date fields consumed only by the
// reporting layer.
package dataset

// Damage categories used by the training pipeline.
const (
	DamageDestroyed    = "Destroyed (>50%)"
	DamageInaccessible = "Inaccessible"
)

// FeatureColumns is the fixed, ordered list of categorical feature columns.
// The order is established here once; training stores it inside the model
// artifact and inference reuses the stored copy verbatim.
var FeatureColumns = []string{
	"structure_type",
	"structure_category",
	"roof_construction",
	"eaves",
	"vent_screen",
	"exterior_siding",
	"window_pane",
	"deck_on_grade",
	"deck_elevated",
	"patio_cover",
	"fence_attached",
	"county",
}

// Record is a single historical structure-damage row.
// Latitude/Longitude/IncidentDate are only used by reporting and may be
// missing or malformed without affecting training.
type Record struct {
	Damage            string
	StructureType     string
	StructureCategory string
	RoofConstruction  string
	Eaves             string
	VentScreen        string
	ExteriorSiding    string
	WindowPane        string
	DeckOnGrade       string
	DeckElevated      string
	PatioCover        string
	FenceAttached     string
	County            string

	IncidentName string
	IncidentDate string
	Latitude     float64
	Longitude    float64
}

// Destroyed reports whether the record's structure was destroyed (>50% damage).
func (r *Record) Destroyed() bool {
	return r.Damage == DamageDestroyed
}

// Value returns the raw string value of the given feature column.
func (r *Record) Value(column string) string {
	switch column {
	case "structure_type":
		return r.StructureType
	case "structure_category":
		return r.StructureCategory
	case "roof_construction":
		return r.RoofConstruction
	case "eaves":
		return r.Eaves
	case "vent_screen":
		return r.VentScreen
	case "exterior_siding":
		return r.ExteriorSiding
	case "window_pane":
		return r.WindowPane
	case "deck_on_grade":
		return r.DeckOnGrade
	case "deck_elevated":
		return r.DeckElevated
	case "patio_cover":
		return r.PatioCover
	case "fence_attached":
		return r.FenceAttached
	case "county":
		return r.County
	}
	return ""
}

// FeatureMap returns the record's feature values keyed by column name.
func (r *Record) FeatureMap() map[string]string {
	m := make(map[string]string, len(FeatureColumns))
	for _, col := range FeatureColumns {
		m[col] = r.Value(col)
	}
	return m
}

// FilterAccessible drops records whose damage assessment is "Inaccessible".
// Training and statistics never see inaccessible records.
func FilterAccessible(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Damage != DamageInaccessible {
			out = append(out, r)
		}
	}
	return out
}

// Scenario is the inference-time input: one field per feature column.
// Empty fields are treated as "Unknown" at the encoding layer.
type Scenario struct {
	StructureType     string `json:"structure_type"`
	StructureCategory string `json:"structure_category"`
	RoofConstruction  string `json:"roof_construction"`
	Eaves             string `json:"eaves"`
	VentScreen        string `json:"vent_screen"`
	ExteriorSiding    string `json:"exterior_siding"`
	WindowPane        string `json:"window_pane"`
	DeckOnGrade       string `json:"deck_on_grade"`
	DeckElevated      string `json:"deck_elevated"`
	PatioCover        string `json:"patio_cover"`
	FenceAttached     string `json:"fence_attached"`
	County            string `json:"county"`
}

// FeatureMap returns the scenario's non-empty values keyed by column name.
// Absent columns are left out so the vector builder applies its
// "Unknown" default.
func (s *Scenario) FeatureMap() map[string]string {
	m := make(map[string]string, len(FeatureColumns))
	put := func(col, v string) {
		if v != "" {
			m[col] = v
		}
	}
	put("structure_type", s.StructureType)
	put("structure_category", s.StructureCategory)
	put("roof_construction", s.RoofConstruction)
	put("eaves", s.Eaves)
	put("vent_screen", s.VentScreen)
	put("exterior_siding", s.ExteriorSiding)
	put("window_pane", s.WindowPane)
	put("deck_on_grade", s.DeckOnGrade)
	put("deck_elevated", s.DeckElevated)
	put("patio_cover", s.PatioCover)
	put("fence_attached", s.FenceAttached)
	put("county", s.County)
	return m
}
