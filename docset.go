// Package docset builds Dash-compatible docsets from generated OCaml
// API-reference HTML. It classifies pages, discovers documented symbols,
// injects anchor markers for documentation browsers and records every
// symbol in a deduplicated search index. A companion diff reports symbols
// that disappeared between two index snapshots.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, etree/).
package docset
