// Package intent classifies inbound chat messages.  Classification is a
// single pass over an ordered rule table so the documented priority
// (download > inventory > follow-up > general) is enforced structurally.
package intent

import (
	"regexp"
	"strings"

	"hathor-chatbot/pkg"
)

// Intent is the classified purpose of a chat message.
type Intent string

const (
	Download  Intent = "download"
	Inventory Intent = "inventory"
	FollowUp  Intent = "follow-up"
	General   Intent = "general"
)

// rule binds an intent to its pattern set.  requiresPrior limits a rule to
// messages that immediately follow a stored response of that type.
type rule struct {
	intent        Intent
	substrings    []string
	patterns      []*regexp.Regexp
	requiresPrior pkg.ResponseType
}

var rules = []rule{
	{
		intent: Download,
		substrings: []string{
			"download my prescription",
			"download the prescription",
			"download prescription",
			"get my prescription",
			"prescription pdf",
		},
	},
	{
		intent: Inventory,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)what\s+oils?\s+(?:do\s+)?(?:you|u)\s+have`),
			regexp.MustCompile(`(?i)oils?\s+(?:are\s+)?(?:available|in\s+stock)`),
			regexp.MustCompile(`(?i)your\s+inventory`),
			regexp.MustCompile(`(?i)complete\s+collection`),
			regexp.MustCompile(`(?i)all\s+oils`),
		},
	},
	{
		intent: FollowUp,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)are\s+these\s+all`),
			regexp.MustCompile(`(?i)is\s+that\s+all`),
			regexp.MustCompile(`(?i)do\s+you\s+have\s+more\s+oils`),
			regexp.MustCompile(`(?i)any\s+other\s+oils`),
			regexp.MustCompile(`(?i)more\s+oils`),
			regexp.MustCompile(`(?i)complete\s+list`),
		},
		requiresPrior: pkg.ResponseInventory,
	},
}

// Classify inspects a raw message and returns its intent.  prior is the
// stored response type for the session ("" when the session is cold); a
// follow-up shaped message only classifies as FollowUp when the prior
// response was the inventory listing, otherwise it falls through to
// General.
func Classify(message string, prior pkg.ResponseType) Intent {
	lower := strings.ToLower(message)
	for _, r := range rules {
		if r.requiresPrior != "" && prior != r.requiresPrior {
			continue
		}
		for _, sub := range r.substrings {
			if strings.Contains(lower, sub) {
				return r.intent
			}
		}
		for _, p := range r.patterns {
			if p.MatchString(message) {
				return r.intent
			}
		}
	}
	return General
}
