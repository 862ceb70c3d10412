package search

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinSectionLength is the shortest cleaned section body, in characters,
// that is indexed. Shorter sections are skipped silently.
const MinSectionLength = 11

// MaxLeadingContext bounds the context stored for a document's leading
// content.
const MaxLeadingContext = 300

var (
	sectionHeadingRe = regexp.MustCompile(`^#{2,3}[ \t]+\S`)
	titleLineRe      = regexp.MustCompile(`(?m)^#[ \t]+.*$`)
	fenceRe          = regexp.MustCompile("(?s)```.*?```")
	linkRe           = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	tagRe            = regexp.MustCompile(`<[^>]*>`)
	spaceRe          = regexp.MustCompile(`\s+`)
)

// Section is a span of a document headed by a level-2 or level-3 heading,
// or the document's leading content when Leading is set.
type Section struct {
	Title   string
	Body    string
	Leading bool
}

type segment struct {
	heading bool
	text    string
}

// splitSegments cuts markdown into heading lines and the text between
// them. Heading lines inside fenced code blocks are body text. Blank
// segments are dropped.
func splitSegments(markdown string) []segment {
	var (
		segs  []segment
		buf   strings.Builder
		fence bool
	)
	flush := func() {
		if strings.TrimSpace(buf.String()) != "" {
			segs = append(segs, segment{text: buf.String()})
		}
		buf.Reset()
	}

	for _, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			fence = !fence
		}
		if !fence && sectionHeadingRe.MatchString(line) {
			flush()
			segs = append(segs, segment{heading: true, text: line})
			continue
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	flush()
	return segs
}

// ParseSections splits markdown into its leading content and its level-2
// and level-3 sections, in document order. A heading owns the segment
// that follows it unless that segment is another heading, in which case
// the section has an empty body. The leading section excludes the
// level-1 title line.
func ParseSections(markdown string) []Section {
	segs := splitSegments(markdown)

	var sections []Section
	for i := 0; i < len(segs); i++ {
		seg := segs[i]
		if seg.heading {
			s := Section{Title: headingText(seg.text)}
			if i+1 < len(segs) && !segs[i+1].heading {
				s.Body = segs[i+1].text
				i++
			}
			sections = append(sections, s)
			continue
		}
		sections = append(sections, Section{
			Body:    titleLineRe.ReplaceAllString(seg.text, ""),
			Leading: true,
		})
	}
	return sections
}

func headingText(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
}

// Clean reduces a Markdown section body to plain searchable text: fenced
// code is removed, links collapse to their text, tags are stripped and
// whitespace is collapsed.
func Clean(body string) string {
	s := fenceRe.ReplaceAllString(body, "")
	s = linkRe.ReplaceAllString(s, "$1")
	s = tagRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// truncate cuts s to max characters, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}
