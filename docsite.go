// Package docsite provides a documentation site that renders Markdown
// documents fetched on demand, builds in-page and cross-page navigation,
// and answers full-text queries from an in-memory section index.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, bluemonday/).
package docsite
