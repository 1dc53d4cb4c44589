package core

import "regexp"

// mdLink matches a markdown link whose target is an absolute URL.  The
// character classes exclude brackets and parens so already-converted
// anchor tags are never re-matched, which keeps NormalizeLinks idempotent.
var mdLink = regexp.MustCompile(`\[([^\[\]]+)\]\((https?://[^()\s]+)\)`)

// NormalizeLinks rewrites markdown link syntax into the hyperlink markup
// the chat client renders.  Applying it to already-normalized text is a
// no-op.
func NormalizeLinks(text string) string {
	return mdLink.ReplaceAllString(text, `<a href="$2" target="_blank">$1</a>`)
}
