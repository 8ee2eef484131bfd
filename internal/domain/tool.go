package domain

import "strings"

// ToolType classifies a tool for pricing purposes. Every tool in the
// catalog carries exactly one type, and pricing policies are keyed by it.
type ToolType string

const (
	ToolTypeChainsaw   ToolType = "CHAINSAW"
	ToolTypeLadder     ToolType = "LADDER"
	ToolTypeJackhammer ToolType = "JACKHAMMER"
	ToolTypeOther      ToolType = "OTHER"
)

var toolTypeLabels = map[ToolType]string{
	ToolTypeChainsaw:   "Chainsaw",
	ToolTypeLadder:     "Ladder",
	ToolTypeJackhammer: "Jackhammer",
	ToolTypeOther:      "Other",
}

// Label returns the canonical display label for the type, e.g. "Jackhammer".
func (t ToolType) Label() string {
	if label, ok := toolTypeLabels[t]; ok {
		return label
	}
	return toolTypeLabels[ToolTypeOther]
}

// ParseToolType maps a type string to its canonical variant,
// case-insensitively. Unrecognized strings map to ToolTypeOther, never
// an error.
func ParseToolType(s string) ToolType {
	for toolType, label := range toolTypeLabels {
		if strings.EqualFold(s, label) {
			return toolType
		}
	}
	return ToolTypeOther
}

// Tool is a single rentable tool record from the catalog. Code and
// Brand are non-empty; records are created only by catalog seeding and
// never mutated.
type Tool struct {
	Code  string   `json:"code"`
	Type  ToolType `json:"type"`
	Brand string   `json:"brand"`
}
