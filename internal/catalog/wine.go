// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"encoding/json"
	"strings"
)

// =============================================================================
// WINE TYPE
// =============================================================================

// Wine is one catalog entry as served by /api/wines. The wire keys are the
// Spanish metadata keys the indexer writes; they are decoded as-is and the
// struct is never mutated after decoding.
type Wine struct {
	Metadata             Metadata `json:"metadata"`
	EmbeddingTextPreview string   `json:"embedding_text_preview"`
}

// Metadata groups the label information extracted from each wine sheet.
type Metadata struct {
	Identificacion Identificacion `json:"identificacion"`
	Origen         Origen         `json:"origen"`
	Enologia       Enologia       `json:"enologia"`
}

// Identificacion identifies the label: name, winery, vintage.
type Identificacion struct {
	Nombre string     `json:"nombre"`
	Bodega string     `json:"bodega"`
	Anada  FlexString `json:"añada"`
}

// Origen carries the geographic origin.
type Origen struct {
	Region string `json:"region"`
}

// Enologia carries the winemaking data.
type Enologia struct {
	Varietales []Varietal `json:"varietales"`
}

// Varietal is a single grape entry.
type Varietal struct {
	Cepa string `json:"cepa"`
}

// FlexString decodes a JSON string or number into a string. The extractor
// writes vintages both ways depending on the source sheet.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the underlying string value.
func (f FlexString) String() string {
	return string(f)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Nombre returns the label name, or the empty string.
func (w Wine) Nombre() string {
	return w.Metadata.Identificacion.Nombre
}

// Bodega returns the winery name, or the empty string.
func (w Wine) Bodega() string {
	return w.Metadata.Identificacion.Bodega
}

// Region returns the region of origin, or the empty string.
func (w Wine) Region() string {
	return w.Metadata.Origen.Region
}

// Anada returns the vintage as a display string, or the empty string.
func (w Wine) Anada() string {
	return w.Metadata.Identificacion.Anada.String()
}

// Varietales returns the non-empty grape names in sheet order.
func (w Wine) Varietales() []string {
	cepas := make([]string, 0, len(w.Metadata.Enologia.Varietales))
	for _, v := range w.Metadata.Enologia.Varietales {
		if v.Cepa != "" {
			cepas = append(cepas, v.Cepa)
		}
	}
	return cepas
}

// VarietalesJoined returns the grape names comma-joined for display.
func (w Wine) VarietalesJoined() string {
	return strings.Join(w.Varietales(), ", ")
}
