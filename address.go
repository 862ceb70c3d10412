package docsite

import (
	"fmt"
	"strings"
)

// Addressing identifies how the current document is encoded in a location.
type Addressing string

// Supported addressing schemes. The scheme is chosen per deployment.
const (
	AddressPath   Addressing = "path"
	AddressHash   Addressing = "hash"
	AddressMemory Addressing = "memory"
)

// ParseAddressing returns the addressing scheme named by s.
func ParseAddressing(s string) (Addressing, error) {
	switch a := Addressing(strings.ToLower(strings.TrimSpace(s))); a {
	case AddressPath, AddressHash, AddressMemory:
		return a, nil
	}
	return "", Errorf(EINVALID, "unknown addressing mode %q", s)
}

// Location is the part of a page address the router reads.
type Location struct {
	Path     string
	Fragment string
}

// Addresser builds and resolves document addresses for one scheme.
// Base is empty or a single leading path segment such as "/manual".
type Addresser struct {
	Mode Addressing
	Base string
}

// NewAddresser returns an Addresser with a normalized base.
func NewAddresser(mode Addressing, base string) Addresser {
	base = strings.Trim(base, "/")
	if base != "" {
		base = "/" + base
	}
	return Addresser{Mode: mode, Base: base}
}

// Root returns the address of the site entry point.
func (a Addresser) Root() string {
	return a.Base + "/"
}

// DocumentHref returns the address of a document.
func (a Addresser) DocumentHref(name string) string {
	switch a.Mode {
	case AddressHash:
		return a.Root() + "#/" + name
	case AddressMemory:
		return a.Root()
	default:
		return a.Base + "/" + name
	}
}

// HeadingHref returns the address of a heading inside a document.
func (a Addresser) HeadingHref(name, id string) string {
	switch a.Mode {
	case AddressHash:
		return fmt.Sprintf("%s#/%s/%s", a.Root(), name, id)
	default:
		return a.DocumentHref(name) + "#" + id
	}
}

// AnchorHref returns the href of the anchor control prepended to a heading
// of document name. Hash addressing uses a document-qualified reference;
// other schemes link within the page.
func (a Addresser) AnchorHref(name, id string) string {
	if a.Mode == AddressHash {
		return "#/" + name + "/" + id
	}
	return "#" + id
}

// ResourcePath returns the server path of a document's Markdown source.
func (a Addresser) ResourcePath(name string) string {
	return a.Base + "/" + DocumentPath(name)
}

// Resolve returns the document and optional heading encoded in a location.
// A location that names no document resolves to DefaultDocument.
func (a Addresser) Resolve(loc Location) (name, heading string) {
	switch a.Mode {
	case AddressHash:
		frag := strings.TrimPrefix(strings.TrimPrefix(loc.Fragment, "#"), "/")
		name, heading, _ = strings.Cut(frag, "/")
	case AddressPath:
		rest := strings.TrimPrefix(loc.Path, a.Base)
		name = strings.Trim(rest, "/")
		heading = strings.TrimPrefix(loc.Fragment, "#")
	}
	if name == "" {
		return DefaultDocument, heading
	}
	return name, heading
}
