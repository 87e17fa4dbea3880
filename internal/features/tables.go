package features

// Shared rule tables. Several extractors consult the same lists; declaring
// them once keeps the rules consistent and testable in one place.

var phishingKeywords = []string{
	"urgent", "immediate", "action required", "verify your account",
	"suspended", "limited time", "click here", "update now",
	"confirm", "security alert", "unusual sign-in", "locked account",
	"billing issue", "payment failed", "account locked", "verify identity",
	"secure your account", "unauthorized access", "expiring today",
	"act now", "limited offer", "exclusive deal", "confirm immediately",
}

var urgencyWords = []string{
	"urgent", "immediately", "asap", "hurry", "fast", "quick", "now",
	"today", "soon",
}

var timeLimitPhrases = []string{
	"24 hours", "48 hours", "by tomorrow", "today only", "expires today",
}

var personalInfoKeywords = []string{
	"ssn", "social security", "credit card", "bank account",
	"password", "pin", "cvv", "account number", "card number",
	"expiration date", "security code", "routing number",
}

var threatWords = []string{
	"suspend", "terminate", "close", "deactivate", "block", "restrict",
	"penalty", "fee", "fine",
}

var genericGreetings = []string{
	"dear customer", "dear user", "dear sir/madam", "valued customer",
	"account holder",
}

var personalizationPlaceholders = []string{
	"[name]", "[email]", "[customer]", "[user]",
}

// brands drives both the per-brand indicators and the mention counting.
var brands = []string{
	"paypal", "amazon", "microsoft", "apple", "google", "facebook",
	"instagram",
}

// brandSuffixes are appended to a mentioned brand to probe for inconsistent
// mentions like "paypalsecurity".
var brandSuffixes = []string{
	"support", "security", "team", "update", "alert", "notice",
}

var brandSpoofTokens = []string{
	"paypaI", "arnazon", "microsft", "appIe", "goggle",
	"faceboook", "instagrarn",
}

var commonMisspellings = []string{
	"paypaI", "appIe", "microsft", "amaz0n", "g00gle", "faceb00k",
	"verifye", "securty", "acount",
}

var htmlTags = []string{
	"<html", "<div", "<table", "<form", "<script", "<iframe",
}

var trackingPhrases = []string{
	"tracking pixel", "open tracking", "read receipt",
}

var misleadingAnchors = []string{
	"click here", "verify now", "update account", "sign in",
}

var authorityTerms = []string{
	"fbi", "cia", "irs", "police", "government", "bank", "court",
}

var scarcityPhrases = []string{
	"only 2 left", "last chance", "almost gone", "running out",
}

var socialProofPhrases = []string{
	"trusted by millions", "used by fortune 500", "recommended by experts",
}

var fearWords = []string{
	"hack", "breach", "compromised", "stolen", "fraud", "suspended",
}

var greedWords = []string{
	"free", "win", "prize", "reward", "discount", "bonus",
}

var curiosityPhrases = []string{
	"see what happened", "you won't believe", "shocking discovery",
}

var actionKeywords = []string{
	"click", "verify", "update", "confirm", "sign in", "log in", "download",
}

var securityClaimWords = []string{
	"secure", "encrypted", "protected", "safe", "trusted",
}

var suspiciousAttachmentExts = []string{
	".exe", ".zip", ".scr", ".bat", ".js", ".docm",
}

var suspiciousContactPhrases = []string{
	"call now", "contact immediately", "urgent call", "phone verification",
	"verify by phone", "confirm by call",
}

var recentEventTerms = []string{
	"covid", "pandemic", "election", "holiday", "black friday",
}

var seasonalTerms = []string{
	"christmas", "thanksgiving", "new year", "summer", "winter",
}

var legitimateShortDomains = []string{
	"bit.ly", "t.co", "goo.gl", "ow.ly", "buff.ly", "mcaf.ee",
}

var suspiciousShortDomains = []string{
	"tinyurl.com", "short.url", "tiny.cc", "is.gd", "adf.ly",
	"vzturl.com", "cli.re", "q.gs", "u.to", "yourl.io", "po.st",
}

// typosquatTargets are the brand domains probed for character-substitution
// look-alikes in the message body.
var typosquatTargets = []string{
	"paypal.com", "amazon.com", "microsoft.com", "apple.com", "google.com",
}

// legitimateDomains are sender domains considered established. Shared by the
// sender reputation and impersonation rules.
var legitimateDomains = []string{
	"paypal.com", "amazon.com", "microsoft.com", "apple.com", "google.com",
	"facebook.com", "instagram.com", "twitter.com", "linkedin.com",
	"ebay.com", "netflix.com", "spotify.com", "adobe.com",
	"dropbox.com", "slack.com", "zoom.us", "salesforce.com",
}

var freeEmailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com",
	"aol.com", "icloud.com", "protonmail.com", "zoho.com",
}

var freeTLDs = []string{".tk", ".ml", ".ga", ".cf", ".gq"}

var newDomainIndicators = []string{
	".tk", ".ml", ".ga", ".cf", ".gq",
	"-shop", "-store", "-service", "-secure",
	"shop-", "store-", "service-", "secure-",
}

// brandSenderDomains maps an official sender domain to the brands it may
// legitimately talk about. A competitor brand in the body of mail from one of
// these domains is a mismatch signal.
var brandSenderDomains = map[string][]string{
	"paypal.com":    {"paypal", "ebay"},
	"amazon.com":    {"amazon", "aws"},
	"microsoft.com": {"microsoft", "windows", "office", "outlook"},
	"apple.com":     {"apple", "icloud", "itunes", "iphone"},
	"google.com":    {"google", "gmail", "youtube", "android"},
	"facebook.com":  {"facebook", "instagram", "whatsapp"},
	"twitter.com":   {"twitter", "tweet"},
	"linkedin.com":  {"linkedin"},
}

var competitorBrands = []string{
	"paypal", "amazon", "microsoft", "apple", "google",
	"facebook", "twitter", "linkedin",
}

var impersonationPhrases = []string{
	"security team", "support team", "customer service", "billing department",
	"account department", "verification team", "fraud department",
}

// extensionCategories groups suspicious file extensions by what they do when
// opened. Iterated in a fixed order so counting stays deterministic.
var extensionCategoryOrder = []string{
	"executable", "script", "macro", "archive", "system", "other",
}

var extensionCategories = map[string][]string{
	"executable": {".exe", ".scr", ".bat", ".com", ".pif", ".cmd", ".msi", ".jar"},
	"script":     {".js", ".vbs", ".ps1", ".py", ".pl", ".rb", ".php", ".asp", ".jsp"},
	"macro":      {".docm", ".xlsm", ".pptm", ".dotm", ".xltm", ".potm"},
	"archive":    {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2"},
	"system":     {".dll", ".sys", ".drv", ".ocx", ".cpl", ".deb", ".rpm"},
	"other":      {".reg", ".inf", ".iso", ".dmg", ".app", ".apk", ".deb"},
}

var highRiskExtensions = []string{
	".exe", ".scr", ".bat", ".js", ".docm", ".xlsm",
}

var excessiveSecurityClaims = []string{
	"100% secure", "completely safe", "guaranteed secure",
	"bank-level security", "military-grade encryption",
	"end-to-end encrypted", "ssl secured", "https secured",
}

var verificationRequests = []string{
	"verify your account", "verify your identity", "verify now",
	"confirm your account", "confirm your identity", "confirm now",
	"validate your account", "validate your identity",
}

var sensitiveInfoRequests = []string{
	"provide your password", "enter your pin", "input your cvv",
	"send your card number", "share your ssn", "disclose your account details",
}

var accountThreats = []string{
	"account will be suspended", "account will be closed",
	"account will be terminated", "account will be blocked",
	"your account is at risk", "your account has been compromised",
}

var acronymAllowlist = []string{"ID", "URL", "HTML", "PDF", "CEO", "CFO"}
