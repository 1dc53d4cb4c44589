package core

import (
	"fmt"
	"strings"

	"hathor-chatbot/internal/catalog"
)

// RenderInventory deterministically lists every catalog product exactly
// once, grouped and numbered by category, with sold-out items flagged.
// No model call is involved.
func RenderInventory() string {
	var b strings.Builder
	b.WriteString("✨ Hathor's Beauty Advice ✨\n\n")
	b.WriteString("🌙 I Hear You, My Child\n")
	fmt.Fprintf(&b, "You wish to know about my sacred collection of oils! Let me share with you our complete inventory of %d divine oils, each blessed with ancient Egyptian wisdom.\n\n", catalog.TotalCount())
	b.WriteString("🌿 Our Complete Sacred Collection\n")

	n := 0
	for _, cat := range catalog.Categories {
		products := catalog.ByCategory(cat)
		fmt.Fprintf(&b, "\n**%s (%d oils):**\n", strings.ToUpper(string(cat)), len(products))
		for _, p := range products {
			n++
			soldOut := ""
			if p.SoldOut {
				soldOut = " **CURRENTLY SOLD OUT**"
			}
			fmt.Fprintf(&b, "%d. [%s](%s) - %s (%s)%s\n",
				n, p.Name, p.Link, strings.Join(p.Benefits, ", "), p.Prices, soldOut)
		}
	}

	b.WriteString("\n🌅 Ancient Wisdom from the Temple\n")
	fmt.Fprintf(&b, "These %d sacred oils represent the complete wisdom of ancient Egyptian beauty and healing arts, each blessed with divine powers to restore and transform your beauty journey.\n\n", catalog.TotalCount())
	b.WriteString(downloadHint)
	b.WriteString("\n\n")
	b.WriteString(Signature)
	return b.String()
}

// RenderFollowUp confirms the listing was complete with per-category counts
// instead of re-listing every item.
func RenderFollowUp() string {
	var b strings.Builder
	b.WriteString("✨ Hathor's Beauty Advice ✨\n\n")
	b.WriteString("🌙 I Hear You, My Child\n")
	fmt.Fprintf(&b, "Yes, beloved seeker! The sacred collection I just shared with you represents our complete inventory of all %d divine oils. This is our entire treasured collection:\n\n", catalog.TotalCount())
	b.WriteString("🌿 Complete Summary\n")
	for _, cat := range catalog.Categories {
		products := catalog.ByCategory(cat)
		soldOut := 0
		for _, p := range products {
			if p.SoldOut {
				soldOut++
			}
		}
		fmt.Fprintf(&b, "- **%d %s**", len(products), cat)
		if soldOut > 0 {
			fmt.Fprintf(&b, " (including %d currently sold out)", soldOut)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n**Total: %d sacred oils** - this is our complete offering, each one carefully crafted with ancient Egyptian wisdom and modern purity standards.\n\n", catalog.TotalCount())
	b.WriteString("🌅 Ancient Wisdom from the Temple\n")
	fmt.Fprintf(&b, "These %d oils represent the full breadth of our sacred collection. Each oil carries the blessings of ancient beauty secrets, ready to transform your beauty journey.\n\n", catalog.TotalCount())
	b.WriteString(Signature)
	return b.String()
}
