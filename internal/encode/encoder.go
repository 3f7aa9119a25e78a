// Package encode provides the categorical label encoding used for both
// training and inference. Encoders are fit once over the training-time
// value universe and are immutable afterwards, so a fitted encoder is safe
// for concurrent use.
package encode

import (
	"encoding/json"
	"sort"

	"github.com/rs/zerolog/log"
)

// Unknown is the substitute label for missing values and the first
// fallback target for values never seen at fit time.
const Unknown = "Unknown"

// MetricsTracker receives observability signals for encoder fallbacks.
// Implementations must be safe for concurrent use.
type MetricsTracker interface {
	// EncodeFallbacksInc counts unseen values resolved to the Unknown code.
	EncodeFallbacksInc()
	// EncodeDefaultsInc counts unseen values resolved to the default code 0
	// because Unknown itself was never fitted.
	EncodeDefaultsInc()
}

// Encoder maps string labels of a single feature column to dense integer
// codes. Codes are assigned by lexicographic class order, so for the
// fitted value set Encode is injective onto [0, Len()-1].
type Encoder struct {
	classes []string
	codes   map[string]int
}

// Fit builds an encoder from the training-time values of one column.
// Empty values are substituted with Unknown before the class set is built.
func Fit(values []string) *Encoder {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			v = Unknown
		}
		seen[v] = struct{}{}
	}

	classes := make([]string, 0, len(seen))
	for v := range seen {
		classes = append(classes, v)
	}
	sort.Strings(classes)

	codes := make(map[string]int, len(classes))
	for i, c := range classes {
		codes[c] = i
	}
	return &Encoder{classes: classes, codes: codes}
}

// Len returns the number of distinct fitted classes.
func (e *Encoder) Len() int { return len(e.classes) }

// Classes returns the fitted classes in code order. The returned slice
// must not be modified.
func (e *Encoder) Classes() []string { return e.classes }

// HasUnknown reports whether Unknown was present in the fitting set and
// therefore has a reserved fallback code.
func (e *Encoder) HasUnknown() bool {
	_, ok := e.codes[Unknown]
	return ok
}

// Encode returns the code for value, resolving unseen values through the
// fallback tiers: the Unknown code if fitted, otherwise the default code 0.
// Encode never fails; degraded accuracy is preferred over a hard error.
func (e *Encoder) Encode(value string) int {
	return e.EncodeWithMetrics(value, nil)
}

// EncodeWithMetrics is Encode with fallback observability. Falling back to
// the default code can bias predictions toward whichever class sorts
// first, so every fallback is logged.
func (e *Encoder) EncodeWithMetrics(value string, m MetricsTracker) int {
	if value == "" {
		value = Unknown
	}
	if code, ok := e.codes[value]; ok {
		return code
	}
	if code, ok := e.codes[Unknown]; ok {
		log.Warn().Str("value", value).Msg("unseen category, encoding as Unknown")
		if m != nil {
			m.EncodeFallbacksInc()
		}
		return code
	}
	log.Warn().Str("value", value).Msg("unseen category and no Unknown class, encoding as default code 0")
	if m != nil {
		m.EncodeDefaultsInc()
	}
	return 0
}

type encoderJSON struct {
	Classes []string `json:"classes"`
}

// MarshalJSON serializes the encoder as its ordered class list.
func (e *Encoder) MarshalJSON() ([]byte, error) {
	return json.Marshal(encoderJSON{Classes: e.classes})
}

// UnmarshalJSON restores the encoder from its class list, rebuilding the
// code table.
func (e *Encoder) UnmarshalJSON(data []byte) error {
	var ej encoderJSON
	if err := json.Unmarshal(data, &ej); err != nil {
		return err
	}
	e.classes = ej.Classes
	e.codes = make(map[string]int, len(ej.Classes))
	for i, c := range ej.Classes {
		e.codes[c] = i
	}
	return nil
}
