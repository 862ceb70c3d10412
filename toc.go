package docsite

// TOCEntry is a link in the page-local table of contents.
type TOCEntry struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Level  int    `json:"level"`
	Nested bool   `json:"nested"`
}

// MaxTOCLevel is the deepest heading level listed in the table of contents.
const MaxTOCLevel = 3

// BuildTOC returns the table of contents for the headings of a render.
// Only levels 1 to 3 are listed; level-3 entries are nested.
func BuildTOC(headings []Heading) []TOCEntry {
	var entries []TOCEntry
	for _, h := range headings {
		if h.Level < 1 || h.Level > MaxTOCLevel {
			continue
		}
		entries = append(entries, TOCEntry{
			ID:     h.ID,
			Text:   h.Text,
			Level:  h.Level,
			Nested: h.Level == MaxTOCLevel,
		})
	}
	return entries
}

// HeadingOffset is the position of a heading element relative to the top
// of the viewport, as reported by the display.
type HeadingOffset struct {
	ID  string
	Top float64
}

// Bounds of the viewport band used to pick the active heading, as
// fractions of the viewport height.
const (
	ActiveBandTop    = 0.2
	ActiveBandBottom = 0.8
)

// ActiveHeading returns the id of the heading to mark active in the table
// of contents. Offsets are in document order. The first heading inside the
// 20%-80% band wins; otherwise the last heading above the band; otherwise
// none.
func ActiveHeading(offsets []HeadingOffset, viewportHeight float64) string {
	if viewportHeight <= 0 {
		return ""
	}
	top := viewportHeight * ActiveBandTop
	bottom := viewportHeight * ActiveBandBottom

	var above string
	for _, o := range offsets {
		switch {
		case o.Top < top:
			above = o.ID
		case o.Top <= bottom:
			return o.ID
		default:
			return above
		}
	}
	return above
}
