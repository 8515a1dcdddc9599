package export

import (
	"regexp"
	"strings"
)

// PageFragment is one physical page's worth of chapter content, produced by
// segmentation and consumed immediately by the assembler's paged layout.
// IsPageBreakContent marks fragments that came from a wrapped pagination
// marker and therefore get the emphasized full-page treatment.
type PageFragment struct {
	Content            string
	IsPageBreakContent bool
}

// Pagination marker syntax. The wrapped form encloses content to be rendered
// as a standalone emphasized page; the self-closing form is a plain divider.
// Both are application-defined markup and are stripped before final render.
var (
	wrappedMarkerRegex     = regexp.MustCompile(`(?s)<pagebreak>(.*?)</pagebreak>`)
	selfClosingMarkerRegex = regexp.MustCompile(`<pagebreak\s*/>`)

	// Chapters authored in this app use h2 as their top heading level (h1
	// is the book title), so both h1 and h2 start a new page in the
	// heading fallback.
	topHeadingRegex = regexp.MustCompile(`(?i)<h[12][\s>]`)
)

// SegmentChapterContent splits a chapter's markup into an ordered sequence
// of page fragments. Modes are tried in priority order: wrapped markers,
// self-closing markers, top-level headings, verbatim. The result is never
// empty; empty or whitespace-only input yields a single empty, unflagged
// fragment so downstream layout always has at least one page per chapter.
func SegmentChapterContent(content string) []PageFragment {
	if strings.TrimSpace(content) == "" {
		return []PageFragment{{Content: "", IsPageBreakContent: false}}
	}

	if fragments := segmentByWrappedMarkers(content); len(fragments) > 0 {
		return fragments
	}
	if selfClosingMarkerRegex.MatchString(content) {
		// Even a single resulting segment must come back stripped of
		// the marker, so a matched marker never falls through.
		if fragments := segmentBySelfClosingMarkers(content); len(fragments) > 0 {
			return fragments
		}
		return []PageFragment{{Content: "", IsPageBreakContent: false}}
	}
	if fragments := segmentByHeadings(content); len(fragments) > 1 {
		return fragments
	}

	return []PageFragment{{Content: content, IsPageBreakContent: false}}
}

// segmentByWrappedMarkers emits, in document order, the markup before the
// first marker, each marker's enclosed content (flagged), the markup between
// consecutive markers, and the markup after the last marker. Whitespace-only
// segments are dropped. Returns nil when no wrapped marker is present.
func segmentByWrappedMarkers(content string) []PageFragment {
	matches := wrappedMarkerRegex.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}

	var fragments []PageFragment
	appendPlain := func(segment string) {
		segment = stripSelfClosingMarkers(segment)
		if strings.TrimSpace(segment) == "" {
			return
		}
		fragments = append(fragments, PageFragment{Content: segment})
	}

	cursor := 0
	for _, m := range matches {
		appendPlain(content[cursor:m[0]])
		enclosed := content[m[2]:m[3]]
		if strings.TrimSpace(enclosed) != "" {
			fragments = append(fragments, PageFragment{Content: enclosed, IsPageBreakContent: true})
		}
		cursor = m[1]
	}
	appendPlain(content[cursor:])

	return fragments
}

// segmentBySelfClosingMarkers splits content on standalone divider markers.
// Each non-empty segment is an unflagged fragment.
func segmentBySelfClosingMarkers(content string) []PageFragment {
	parts := selfClosingMarkerRegex.Split(content, -1)
	var fragments []PageFragment
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		fragments = append(fragments, PageFragment{Content: part})
	}
	return fragments
}

// segmentByHeadings splits immediately before every top-level heading so
// each fragment begins with a heading. Content preceding the first heading
// becomes an unheaded leading fragment.
func segmentByHeadings(content string) []PageFragment {
	locs := topHeadingRegex.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return nil
	}

	var fragments []PageFragment
	appendSegment := func(segment string) {
		if strings.TrimSpace(segment) == "" {
			return
		}
		fragments = append(fragments, PageFragment{Content: segment})
	}

	if locs[0][0] > 0 {
		appendSegment(content[:locs[0][0]])
	}
	for i, loc := range locs {
		end := len(content)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		appendSegment(content[loc[0]:end])
	}

	return fragments
}

func stripSelfClosingMarkers(s string) string {
	return selfClosingMarkerRegex.ReplaceAllString(s, "")
}
