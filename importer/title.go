package importer

import "strings"

// titleSeparators join a page title and a site name in HTML titles.
var titleSeparators = []string{" | ", " - ", " – ", " — ", " · ", " :: "}

// PageTitle returns title without the site name that generators add to
// it, as in "Install | Acme Docs" or "Acme Docs - Install". Without a
// site name only whitespace is normalized, since a separator alone does
// not tell a site name from part of the title.
func PageTitle(title, siteName string) string {
	title = strings.Join(strings.Fields(title), " ")
	siteName = strings.TrimSpace(siteName)
	if siteName == "" {
		return title
	}

	for _, sep := range titleSeparators {
		if rest, ok := strings.CutSuffix(title, sep+siteName); ok && rest != "" {
			return rest
		}
		if rest, ok := strings.CutPrefix(title, siteName+sep); ok && rest != "" {
			return rest
		}
	}
	return title
}
