// Package scinews extracts news from science.org. It fetches listing and
// article pages through a FlareSolverr-compatible challenge solver (the
// site sits behind an anti-bot wall), pulls structured fields out of the
// returned HTML with strict exactly-one selector rules, and renders
// article bodies as Markdown.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency
// (e.g., flaresolverr/, goquery/, htmltomarkdown/).
package scinews
