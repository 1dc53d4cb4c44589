package core

import (
	"regexp"
	"strings"
	"time"

	"hathor-chatbot/internal/catalog"
	"hathor-chatbot/pkg"
)

// Text mining of free-form model output is best-effort by design: it
// matches product names and benefit keywords as substrings and accepts the
// occasional over-match.  The deterministic paths never go through here.

var (
	linkTarget = regexp.MustCompile(`\((?:https?://)[^)]*\)`)
	emphasis   = strings.NewReplacer("**", "", "*", "", "_", "", "[", "", "]", "")
)

// baldingKeywords trigger the fixed hair-loss prescription regardless of
// what the reply text mentions.
var baldingKeywords = []string{
	"bald",
	"balding",
	"baldness",
	"hair loss",
	"losing my hair",
	"losing hair",
	"hair falling",
	"receding",
}

// baldingSet is the fixed 3-product hair-loss prescription.
var baldingSet = []string{"Garden Cress Oil", "Rosemary Oil", "Black Seed Oil"}

// Boilerplate usage block attached to every extracted prescription.  It is
// deliberately not derived per-product.
var standardInstructions = pkg.Instructions{
	Frequency:   "Daily, evening ritual only",
	Application: "Massage gently into the affected area after cleansing",
	Duration:    "4-6 weeks, then review your progress",
}

var standardPrecautions = []string{
	"Always dilute essential oils with a carrier oil before applying to skin.",
	"Perform a patch test on the inner forearm before full application.",
	"Use the oils in the evening only.",
	"Discontinue use if irritation occurs.",
}

// normalizeForMatching strips markdown emphasis, brackets, and
// parenthesized link targets so formatting never hides a product mention.
func normalizeForMatching(text string) string {
	text = linkTarget.ReplaceAllString(text, "")
	return strings.ToLower(emphasis.Replace(text))
}

// ContainsBaldingConcern reports whether the user message mentions hair
// loss.  The check runs on the message, not the generated reply.
func ContainsBaldingConcern(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range baldingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// BaldingPrescription returns the fixed hair-loss prescription.
func BaldingPrescription() *pkg.Prescription {
	return buildPrescription(baldingSet)
}

// ExtractPrescription scans a generated reply for catalog products,
// matching by name or by benefit keyword, case-insensitive, preserving
// catalog order.  It returns nil when nothing matches so the previous
// turn's prescription stays in context.
func ExtractPrescription(responseText string, products []catalog.Product) *pkg.Prescription {
	normalized := normalizeForMatching(responseText)
	var names []string
	for _, p := range products {
		if strings.Contains(normalized, strings.ToLower(p.Name)) {
			names = append(names, p.Name)
			continue
		}
		for _, benefit := range p.Benefits {
			if strings.Contains(normalized, strings.ToLower(benefit)) {
				names = append(names, p.Name)
				break
			}
		}
	}
	if len(names) == 0 {
		return nil
	}
	return buildPrescription(names)
}

func buildPrescription(names []string) *pkg.Prescription {
	rx := &pkg.Prescription{
		Instructions: standardInstructions,
		Precautions:  standardPrecautions,
		GeneratedAt:  time.Now(),
	}
	for _, name := range names {
		p, ok := catalog.Find(name)
		if !ok {
			continue
		}
		rx.Products = append(rx.Products, pkg.PrescribedProduct{Name: p.Name, Link: p.Link})
	}
	return rx
}
