// Package htmltree converts parsed HTML documents into a structured,
// hierarchical content tree (headings, paragraphs, lists, blockquotes,
// code blocks, tables) suitable for JSON serialization.
//
// The heart of the module is a readability-style extraction engine: it
// locates the regions of a page likely to hold the main content, scores
// and ranks them, pulls block-level nodes out of the winning regions
// while filtering navigation and boilerplate, deduplicates overlapping
// extractions, restores original document order, and assembles a nested
// section hierarchy driven by heading levels.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// readability/, trafilatura/) or their concern (extract/).
package htmltree
