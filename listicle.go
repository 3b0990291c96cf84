// Package listicle turns e-commerce product pages into landing-page
// listicle copy. It extracts a normalized product brief from arbitrary
// page HTML using heuristic CSS-selector cascades, and feeds the brief
// to an LLM collaborator that writes the listicle.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// gemini/, sqlite/).
package listicle
