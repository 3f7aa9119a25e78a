package dataset

// FeatureOptions lists the enumerated vocabulary observed per feature
// column. Presentation collaborators use these to build pickers; the core
// does not validate scenario values against them — out-of-vocabulary
// values are handled by the encoder fallback.
var FeatureOptions = map[string][]string{
	"structure_type": {
		"Single Family Residence Single Story",
		"Single Family Residence Multi Story",
		"Mobile Home Single Wide",
		"Mobile Home Double Wide",
		"Mobile Home Triple Wide",
		"Multi Family Residence Single Story",
		"Multi Family Residence Multi Story",
		"Mixed Commercial/Residential",
		"Commercial Building Single Story",
		"Commercial Building Multi Story",
		"Motor Home",
		"Utility Misc Structure",
		"Agriculture",
		"Infrastructure",
		"Church",
		"School",
		"Hospital",
	},
	"structure_category": {
		"Single Residence",
		"Multiple Residence",
		"Mixed Commercial/Residential",
		"Nonresidential Commercial",
		"Other Minor Structure",
		"Infrastructure",
		"Agriculture",
	},
	"roof_construction": {
		"Asphalt",
		"Metal",
		"Tile",
		"Concrete",
		"Wood",
		"Other",
		"Unknown",
	},
	"eaves": {
		"Enclosed",
		"Unenclosed",
		"No Eaves",
		"Unknown",
	},
	"vent_screen": {
		`Mesh Screen <= 1/8"`,
		`Mesh Screen > 1/8"`,
		"Unscreened",
		"No Vents",
		"Unknown",
	},
	"exterior_siding": {
		"Stucco/Brick/Cement",
		"Ignition Resistant",
		"Wood",
		"Metal",
		"Vinyl",
		"Combustible",
		"Other",
		"Unknown",
	},
	"window_pane": {
		"Multi Pane",
		"Single Pane",
		"Radiant Heat",
		"No Windows",
		"Unknown",
	},
	"deck_on_grade": {
		"No Deck/Porch",
		"Wood",
		"Composite",
		"Masonry/Concrete",
		"Unknown",
	},
	"deck_elevated": {
		"No Deck/Porch",
		"Wood",
		"Composite",
		"Masonry/Concrete",
		"Unknown",
	},
	"patio_cover": {
		"No Patio Cover/Carport",
		"Non Combustible",
		"Combustible",
		"Unknown",
	},
	"fence_attached": {
		"No Fence",
		"Non Combustible",
		"Combustible",
		"Unknown",
	},
}

// FeatureLabels maps feature columns to human-readable display names.
var FeatureLabels = map[string]string{
	"structure_type":     "Structure Type",
	"structure_category": "Structure Category",
	"roof_construction":  "Roof Construction",
	"eaves":              "Eaves Type",
	"vent_screen":        "Vent Screen",
	"exterior_siding":    "Exterior Siding",
	"window_pane":        "Window Pane Type",
	"deck_on_grade":      "Deck/Porch On Grade",
	"deck_elevated":      "Deck/Porch Elevated",
	"patio_cover":        "Patio Cover/Carport",
	"fence_attached":     "Fence Attached",
}
