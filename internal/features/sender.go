package features

import "strings"

// Domain-age simulation constants, in days. Real WHOIS lookups are out of
// scope; these stand-ins preserve the ordering the classifier was trained on.
const (
	domainAgeNew        = 30
	domainAgeLegitimate = 3650
	domainAgeDefault    = 365
	domainAgeUnknown    = -1
)

// SenderDomain extracts the lowercased domain part of an address, or
// "unknown" when the address has no @ separator.
func SenderDomain(sender string) string {
	if !strings.Contains(sender, "@") {
		return "unknown"
	}
	parts := strings.Split(sender, "@")
	return strings.TrimSpace(strings.ToLower(parts[len(parts)-1]))
}

// SenderExtractor scores the sender's domain reputation: free providers,
// known-legitimate domains, freshly-registered-looking domains and a
// simulated domain age.
type SenderExtractor struct{}

func NewSenderExtractor() *SenderExtractor {
	return &SenderExtractor{}
}

func (e *SenderExtractor) Name() string { return "sender" }

func (e *SenderExtractor) Extract(in Input) map[string]float64 {
	feats := make(map[string]float64, 4)

	if !strings.Contains(in.Sender, "@") {
		feats["is_free_email"] = 0
		feats["is_legitimate_domain"] = 0
		feats["is_new_domain"] = 0
		feats["domain_age_days"] = domainAgeUnknown
		return feats
	}

	domain := SenderDomain(in.Sender)

	feats["is_free_email"] = indicator(containsExact(freeEmailDomains, domain))
	feats["is_legitimate_domain"] = indicator(containsExact(legitimateDomains, domain))
	feats["is_new_domain"] = indicator(looksNewlyRegistered(domain))

	switch {
	case feats["is_new_domain"] == 1:
		feats["domain_age_days"] = domainAgeNew
	case feats["is_legitimate_domain"] == 1:
		feats["domain_age_days"] = domainAgeLegitimate
	default:
		feats["domain_age_days"] = domainAgeDefault
	}

	return feats
}

func looksNewlyRegistered(domain string) bool {
	for _, tld := range freeTLDs {
		if strings.Contains(domain, tld) {
			return true
		}
	}
	for _, ind := range newDomainIndicators {
		if strings.Contains(domain, ind) {
			return true
		}
	}
	return false
}

func containsExact(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// SenderContentExtractor cross-checks the sender's domain against the message
// body: mail from an official brand domain that talks about a competitor
// brand, and department-style self-description from a domain that is not on
// the legitimate list.
type SenderContentExtractor struct{}

func NewSenderContentExtractor() *SenderContentExtractor {
	return &SenderContentExtractor{}
}

func (e *SenderContentExtractor) Name() string { return "sender_content" }

func (e *SenderContentExtractor) Extract(in Input) map[string]float64 {
	feats := map[string]float64{
		"sender_content_mismatch": 0,
		"sender_impersonation":    0,
	}

	if !strings.Contains(in.Sender, "@") {
		return feats
	}
	domain := SenderDomain(in.Sender)

	if allowed, ok := brandSenderDomains[domain]; ok {
		for _, brand := range competitorBrands {
			if strings.Contains(in.Lower, brand) && !containsExact(allowed, brand) {
				feats["sender_content_mismatch"] = 1
				break
			}
		}
	}

	if !containsExact(legitimateDomains, domain) {
		for _, phrase := range impersonationPhrases {
			if strings.Contains(in.Lower, phrase) {
				feats["sender_impersonation"] = 1
				break
			}
		}
	}

	return feats
}
