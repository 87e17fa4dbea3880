package features

import (
	"regexp"
	"strings"
)

var (
	urlPattern    = regexp.MustCompile(`https?://\S+`)
	ipURLPattern  = regexp.MustCompile(`https?://\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)
	shortenerOnly = regexp.MustCompile(`\b(bit\.ly|t\.co|goo\.gl)\b`)
)

// URLExtractor analyses links: how many there are, whether they hide behind
// shorteners or raw IP addresses, and whether the text carries look-alike
// domains (typosquats, homograph characters).
type URLExtractor struct{}

func NewURLExtractor() *URLExtractor {
	return &URLExtractor{}
}

func (e *URLExtractor) Name() string { return "url" }

func (e *URLExtractor) Extract(in Input) map[string]float64 {
	lower := in.Lower
	feats := make(map[string]float64, 10)

	urls := urlPattern.FindAllString(in.Text, -1)
	feats["url_count"] = float64(len(urls))

	feats["has_legitimate_short_domain"] = hasAny(lower, legitimateShortDomains)
	feats["has_suspicious_short_domain"] = hasAny(lower, suspiciousShortDomains)
	feats["has_typosquatting"] = typosquatting(lower)
	feats["has_ip_url"] = indicator(ipURLPattern.MatchString(in.Text))

	feats["has_url_masking"] = 0
	feats["has_homograph"] = 0
	for _, u := range urls {
		if strings.Contains(u, "bit.ly") || strings.Contains(u, "tinyurl") {
			feats["has_url_masking"] = 1
		}
		if containsNonASCII(u) {
			feats["has_homograph"] = 1
		}
	}

	feats["multiple_redirects"] = indicator(len(urls) > 3)
	feats["shortened_url_only"] = indicator(
		shortenerOnly.MatchString(in.Text) && len(urls) == 1)
	feats["image_only_text"] = indicator(
		imageExtPattern.MatchString(lower) && len(strings.Fields(in.Text)) < 20)

	return feats
}

// typosquatting probes the text for character-substitution variants of each
// brand domain it mentions: digit-for-letter swaps, rn-for-m confusion and
// TLD changes.
func typosquatting(lower string) float64 {
	for _, domain := range typosquatTargets {
		if !strings.Contains(lower, domain) {
			continue
		}
		variants := []string{
			strings.ReplaceAll(domain, ".com", ".co"),
			strings.ReplaceAll(domain, ".com", ".org"),
			strings.ReplaceAll(domain, "a", "4"),
			strings.ReplaceAll(domain, "i", "1"),
			strings.ReplaceAll(domain, "o", "0"),
			strings.ReplaceAll(domain, "l", "1"),
			strings.ReplaceAll(domain, "m", "rn"),
			strings.ReplaceAll(domain, "n", "rn"),
		}
		for _, v := range variants {
			// A variant that is a substring of the genuine domain (e.g.
			// "paypal.co" inside "paypal.com") cannot be told apart from it.
			if v == domain || strings.Contains(domain, v) {
				continue
			}
			if strings.Contains(lower, v) {
				return 1
			}
		}
	}
	return 0
}

// containsNonASCII flags URLs carrying look-alike characters outside the
// ASCII range, the raw material of homograph attacks.
func containsNonASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return true
		}
	}
	return false
}
