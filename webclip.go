// Package webclip captures web pages as Markdown documents with YAML front
// matter. It extracts the main article from a page, renders it to Markdown,
// and hands the result to one or more destinations (local file, Obsidian,
// preview).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., readability/, sqlite/, colly/).
package webclip
