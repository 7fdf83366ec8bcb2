// Package pagelens turns a web page's raw markup into a compact,
// LLM-friendly markdown digest plus structured, confidence-scored business
// facts (contact info, reservation links, menu items, hours, addresses).
// Structured data is mined first; boilerplate-removing content extraction
// and fallback heuristic parsers cover pages without machine-readable data.
//
// This package contains domain types, interfaces, and the deterministic
// pure functions (markdown assembly, JSON-LD formatting, quality scoring,
// token estimation) following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, readability/, http/).
package pagelens
