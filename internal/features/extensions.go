package features

import "regexp"

var (
	multipleExtPattern = regexp.MustCompile(`\.\w+\.\w+`)
	hiddenExtPattern   = regexp.MustCompile(`\.(jpg|jpeg|png|gif|pdf|txt|doc|xls)\.(exe|scr|bat|js)`)

	disguisedExtPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\.ex[e3]`),
		regexp.MustCompile(`\.sc[r7]`),
		regexp.MustCompile(`\.ba[t2]`),
		regexp.MustCompile(`\.js[a-z0-9]`),
	}
)

// ExtensionExtractor scans the text for suspicious file-extension tokens:
// per-category indicators, an overall count, and the double/hidden/disguised
// extension tricks used to smuggle executables past a casual reader.
type ExtensionExtractor struct{}

func NewExtensionExtractor() *ExtensionExtractor {
	return &ExtensionExtractor{}
}

func (e *ExtensionExtractor) Name() string { return "extension" }

func (e *ExtensionExtractor) Extract(in Input) map[string]float64 {
	lower := in.Lower
	feats := make(map[string]float64, 12)

	detected := 0
	for _, category := range extensionCategoryOrder {
		exts := extensionCategories[category]
		feats["has_"+category+"_extension"] = hasAny(lower, exts)
		detected += int(countPresent(lower, exts))
	}

	feats["has_suspicious_extension"] = indicator(detected > 0)
	feats["suspicious_extension_count"] = float64(detected)
	feats["has_high_risk_extension"] = hasAny(lower, highRiskExtensions)

	feats["has_multiple_extensions"] = indicator(multipleExtPattern.MatchString(lower))
	feats["has_hidden_extension"] = indicator(hiddenExtPattern.MatchString(lower))

	feats["has_disguised_extension"] = 0
	for _, p := range disguisedExtPatterns {
		if p.MatchString(lower) {
			feats["has_disguised_extension"] = 1
			break
		}
	}

	return feats
}
