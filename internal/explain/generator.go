// Package explain renders a verdict and its triggering features into the
// ordered natural-language report shown to the end user. Generation is total
// and deterministic: the same inputs always produce byte-identical lines, so
// reports can be audited and replayed.
package explain

import (
	"fmt"

	"github.com/farhan/phish-triage/internal/decision"
)

// check pairs a feature predicate with the message it emits when satisfied.
// Each verdict branch walks its own fixed checklist in order.
type check struct {
	applies func(f map[string]float64) bool
	message func(f map[string]float64) string
}

func staticMsg(s string) func(map[string]float64) string {
	return func(map[string]float64) string { return s }
}

var phishingChecks = []check{
	{
		func(f map[string]float64) bool { return f["suspicious_keyword_count"] > 0 },
		func(f map[string]float64) string {
			return fmt.Sprintf("Contains %d suspicious keywords (such as 'urgent', 'verify account', 'suspended')", int(f["suspicious_keyword_count"]))
		},
	},
	{
		func(f map[string]float64) bool { return f["personal_info_request"] == 1 },
		staticMsg("Requests sensitive personal information (password, PIN, card number)"),
	},
	{
		func(f map[string]float64) bool { return f["has_threat"] == 1 },
		staticMsg("Uses threatening language (suspend, terminate, close account)"),
	},
	{
		func(f map[string]float64) bool { return f["has_suspicious_attachment"] == 1 },
		staticMsg("Mentions an attachment with a dangerous extension (.exe, .zip, .scr)"),
	},
	{
		func(f map[string]float64) bool {
			return f["has_suspicious_short_domain"] == 1 || f["has_typosquatting"] == 1
		},
		staticMsg("Links through a suspicious domain or one imitating an official domain"),
	},
	{
		func(f map[string]float64) bool { return f["urgency_word_count"] > 2 },
		func(f map[string]float64) string {
			return fmt.Sprintf("Creates excessive urgency (%d pressure words)", int(f["urgency_word_count"]))
		},
	},
	{
		func(f map[string]float64) bool { return f["excessive_exclamation"] == 1 },
		func(f map[string]float64) string {
			return fmt.Sprintf("Excessive use of exclamation marks (%d occurrences)", int(f["exclamation_count"]))
		},
	},
	{
		func(f map[string]float64) bool { return f["has_misleading_link"] == 1 },
		staticMsg("Contains a link whose anchor text is misleading"),
	},
	{
		func(f map[string]float64) bool { return f["sender_impersonation"] == 1 },
		staticMsg("Sender appears to impersonate an official entity"),
	},
	{
		func(f map[string]float64) bool { return f["has_ip_url"] == 1 },
		staticMsg("Uses a raw IP address as a URL instead of a domain name"),
	},
	{
		func(f map[string]float64) bool { return f["sensitive_info_request"] > 0 },
		staticMsg("Asks you to send sensitive data by email"),
	},
	{
		func(f map[string]float64) bool { return f["account_threat_count"] > 0 },
		staticMsg("Threatens to close or block your account"),
	},
}

var safeChecks = []check{
	{
		func(f map[string]float64) bool { return f["is_legitimate_domain"] == 1 },
		nil, // message needs the sender domain, filled in by Generate
	},
	{
		func(f map[string]float64) bool { return f["suspicious_keyword_count"] == 0 },
		staticMsg("No suspicious phishing keywords found"),
	},
	{
		func(f map[string]float64) bool { return f["personal_info_request"] == 0 },
		staticMsg("Does not request sensitive personal information"),
	},
	{
		func(f map[string]float64) bool { return f["has_threat"] == 0 },
		staticMsg("No threatening language"),
	},
	{
		func(f map[string]float64) bool { return f["has_suspicious_attachment"] == 0 },
		staticMsg("No suspicious attachments mentioned"),
	},
	{
		func(f map[string]float64) bool { return f["urgency_word_count"] == 0 },
		staticMsg("No artificial time pressure or urgency"),
	},
	{
		func(f map[string]float64) bool { return f["sender_impersonation"] == 0 },
		staticMsg("No signs of sender impersonation"),
	},
}

var suspiciousChecks = []check{
	{
		func(f map[string]float64) bool { return f["capital_word_ratio"] > 0.2 },
		func(f map[string]float64) string {
			return fmt.Sprintf("Unusual capitalisation (%.0f%% of words in CAPITALS)", f["capital_word_ratio"]*100)
		},
	},
	{
		func(f map[string]float64) bool { return f["exclamation_count"] > 3 },
		func(f map[string]float64) string {
			return fmt.Sprintf("Too many exclamation marks (%d occurrences)", int(f["exclamation_count"]))
		},
	},
	{
		func(f map[string]float64) bool { return f["urgency_word_count"] > 0 },
		func(f map[string]float64) string {
			return fmt.Sprintf("Contains urgent or pressuring wording (%d words)", int(f["urgency_word_count"]))
		},
	},
	{
		func(f map[string]float64) bool { return f["fear_intensity"] > 0 },
		func(f map[string]float64) string {
			return fmt.Sprintf("Uses fear-inducing words (%d words)", int(f["fear_intensity"]))
		},
	},
	{
		func(f map[string]float64) bool { return f["greed_trigger"] > 0 },
		func(f map[string]float64) string {
			return fmt.Sprintf("Uses greed triggers (%d words such as 'free', 'win', 'prize')", int(f["greed_trigger"]))
		},
	},
	{
		func(f map[string]float64) bool { return f["url_count"] > 2 },
		func(f map[string]float64) string {
			return fmt.Sprintf("Contains many links (%d) that should be verified", int(f["url_count"]))
		},
	},
	{
		func(f map[string]float64) bool { return f["has_generic_greeting"] == 1 },
		staticMsg("Uses a generic greeting ('Dear Customer') instead of a personal name"),
	},
	{
		func(f map[string]float64) bool { return f["suspicious_keyword_count"] > 0 },
		func(f map[string]float64) string {
			return fmt.Sprintf("Contains %d keywords that warrant caution", int(f["suspicious_keyword_count"]))
		},
	},
	{
		func(f map[string]float64) bool { return f["has_time_limit"] == 1 },
		staticMsg("Imposes a strict deadline to act"),
	},
	{
		func(f map[string]float64) bool { return f["action_request_count"] > 3 },
		func(f map[string]float64) string {
			return fmt.Sprintf("Too many action requests (%d)", int(f["action_request_count"]))
		},
	},
	{
		func(f map[string]float64) bool {
			return f["is_free_email"] == 1 && f["brand_mention_count"] > 0
		},
		staticMsg("Sender uses a free email provider while claiming to be a major company"),
	},
	{
		func(f map[string]float64) bool { return f["sender_content_mismatch"] == 1 },
		staticMsg("The sender does not match the brands mentioned in the content"),
	},
}

// Generate renders the explanation for one classification. senderDomain is
// the domain shown in the legitimate-sender safety line; it may be "unknown".
func Generate(feats map[string]float64, senderDomain string, verdict decision.Verdict, probPhishing, probSafe float64) []string {
	switch verdict {
	case decision.VerdictPhishing:
		return renderBranch(
			fmt.Sprintf("This email was classified as phishing with %.0f%% confidence.", probPhishing*100),
			"Danger indicators detected:",
			phishingChecks, feats, senderDomain,
			[]string{
				"The overall pattern of this email closely matches known phishing campaigns",
				"The combination of structure, wording and metadata is characteristic of phishing",
			},
			"Recommendation: do not click any links, do not share personal information, and delete this email.",
		)
	case decision.VerdictSafe:
		return renderBranch(
			fmt.Sprintf("This email was classified as safe with %.0f%% confidence.", probSafe*100),
			"Safety indicators:",
			safeChecks, feats, senderDomain,
			[]string{
				"The email does not show common phishing characteristics",
				"Structure and content look normal and legitimate",
			},
			"Recommendation: this email looks safe, but stay cautious with links you do not recognise.",
		)
	default:
		return renderBranch(
			fmt.Sprintf("This email was classified as suspicious with a %.0f%% phishing score.", probPhishing*100),
			"Factors that make this email suspicious:",
			suspiciousChecks, feats, senderDomain,
			[]string{
				"No single phishing element stands out, but the overall pattern of this email is unusual",
				"Several small factors combine into a suspicious profile",
				fmt.Sprintf("The content is %.0f%% similar to known phishing patterns, below the phishing threshold", probPhishing*100),
			},
			"Recommendation: be careful. Verify the sender before clicking links or sharing information; when in doubt, contact the company through its official channels.",
		)
	}
}

func renderBranch(headline, header string, checks []check, feats map[string]float64, senderDomain string, fallback []string, recommendation string) []string {
	lines := []string{headline, header}

	matched := 0
	for _, c := range checks {
		if !c.applies(feats) {
			continue
		}
		matched++
		if c.message != nil {
			lines = append(lines, "- "+c.message(feats))
			continue
		}
		// The legitimate-domain safety line is the only check that needs
		// context beyond the feature record.
		lines = append(lines, fmt.Sprintf("- Sender uses a trusted official domain (%s)", senderDomain))
	}

	if matched == 0 {
		for _, f := range fallback {
			lines = append(lines, "- "+f)
		}
	}

	return append(lines, recommendation)
}
