package features

// SecurityClaimExtractor counts the phrases phishing mail leans on to appear
// trustworthy or frightening: overblown security claims, verification
// demands, requests for credentials and threats against the account.
type SecurityClaimExtractor struct{}

func NewSecurityClaimExtractor() *SecurityClaimExtractor {
	return &SecurityClaimExtractor{}
}

func (e *SecurityClaimExtractor) Name() string { return "security_claim" }

func (e *SecurityClaimExtractor) Extract(in Input) map[string]float64 {
	lower := in.Lower
	return map[string]float64{
		"excessive_security_claims":       countPresent(lower, excessiveSecurityClaims),
		"suspicious_verification_request": countPresent(lower, verificationRequests),
		"sensitive_info_request":          countPresent(lower, sensitiveInfoRequests),
		"account_threat_count":            countPresent(lower, accountThreats),
	}
}
