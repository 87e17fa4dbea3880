package features

import "strings"

// BrandExtractor emits one presence indicator per tracked brand plus a
// spoofed-spelling indicator ("arnazon", "g00gle" and friends).
type BrandExtractor struct{}

func NewBrandExtractor() *BrandExtractor {
	return &BrandExtractor{}
}

func (e *BrandExtractor) Name() string { return "brand" }

func (e *BrandExtractor) Extract(in Input) map[string]float64 {
	feats := make(map[string]float64, len(brands)+1)
	for _, b := range brands {
		feats["has_"+b] = indicator(strings.Contains(in.Lower, b))
	}
	feats["has_brand_spoofing"] = hasAny(in.Lower, brandSpoofTokens)
	return feats
}
