// Package document turns a stored chat reply into a downloadable PDF
// prescription scroll.
package document

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// SampleBody stands in for sessions with no stored turn, so the download
// endpoint never fails on a cold session.
const SampleBody = "✨ Hathor's Beauty Advice ✨\n\n" +
	"🌙 I Hear You, My Child\n" +
	"You have not yet asked me for advice, so let this scroll carry a small blessing instead.\n\n" +
	"🌿 A First Step\n" +
	"• Explore the sacred collection of oils and tell me what troubles you.\n" +
	"• When I prescribe your ritual, this scroll will hold your personal prescription.\n\n" +
	"With divine blessings,\nHathor"

var (
	anchorTag  = regexp.MustCompile(`<a\s+href="[^"]*"[^>]*>([^<]*)</a>`)
	mdLinkText = regexp.MustCompile(`\[([^\[\]]+)\]\((?:https?://)[^)\s]+\)`)
)

// headerGlyphs mark section headings in the persona's reply format.
var headerGlyphs = []string{"🌙", "🌿", "⚱️", "🌬️", "💫", "🔮", "🌅", "📜"}

// DownloadHintMarker mirrors the marker used by the reply renderer; the
// hint section is chat-only and is stripped from the document.
const DownloadHintMarker = "📜"

type lineKind int

const (
	kindBlank lineKind = iota
	kindTitle
	kindHeader
	kindBullet
	kindBody
)

// Assembler builds prescription documents.  The zero value is usable.
type Assembler struct{}

// New returns a document assembler.
func New() *Assembler { return &Assembler{} }

// Build renders the stored reply text into a PDF.  text may be empty, in
// which case the sample body is used.  generatedAt is stamped at the foot
// of the document.
func (a *Assembler) Build(text string, generatedAt time.Time) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		text = SampleBody
	}
	lines := prepare(text)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, line := range lines {
		switch classify(line) {
		case kindBlank:
			pdf.Ln(4)
		case kindTitle:
			pdf.SetFont("Helvetica", "B", 18)
			pdf.CellFormat(0, 10, tr(stripGlyphs(line)), "", 1, "C", false, 0, "")
			pdf.Ln(2)
		case kindHeader:
			pdf.SetFont("Helvetica", "B", 13)
			pdf.MultiCell(0, 7, tr(stripGlyphs(line)), "", "L", false)
			pdf.Ln(1)
		case kindBullet:
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetX(26)
			pdf.MultiCell(0, 6, tr(line), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 6, tr(line), "", "L", false)
		}
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.MultiCell(0, 6, tr("With divine blessings,\nHathor"), "", "L", false)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated on %s", generatedAt.Format("January 2, 2006 15:04 MST")), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("document: render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// prepare converts the stored reply back to plain visible text, drops the
// chat-only download hint section and the trailing signature (the document
// appends its own), and splits into lines.
func prepare(text string) []string {
	text = anchorTag.ReplaceAllString(text, "$1")
	text = mdLinkText.ReplaceAllString(text, "$1")

	raw := strings.Split(text, "\n")
	var lines []string
	skipping := false
	for _, line := range raw {
		trimmed := strings.TrimSpace(line)
		if skipping {
			if trimmed == "" {
				skipping = false
			}
			continue
		}
		if strings.HasPrefix(trimmed, DownloadHintMarker) {
			skipping = true
			continue
		}
		if trimmed == "With divine blessings," || trimmed == "Hathor" {
			continue
		}
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	// Trim trailing blanks left behind by the stripped sections.
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func classify(line string) lineKind {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return kindBlank
	}
	if strings.Contains(trimmed, "✨") {
		return kindTitle
	}
	for _, glyph := range headerGlyphs {
		if strings.HasPrefix(trimmed, glyph) {
			return kindHeader
		}
	}
	if strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**") {
		return kindHeader
	}
	if strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return kindBullet
	}
	return kindBody
}

// stripGlyphs drops the decorative emoji and markdown bold markers that
// the core fonts cannot render.
func stripGlyphs(line string) string {
	line = strings.TrimSpace(line)
	for _, glyph := range append([]string{"✨"}, headerGlyphs...) {
		line = strings.ReplaceAll(line, glyph, "")
	}
	line = strings.ReplaceAll(line, "**", "")
	return strings.TrimSpace(line)
}
