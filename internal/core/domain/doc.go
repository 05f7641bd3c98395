// Package domain defines the core entities for folio.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Section: A titled answer block parsed from the Q&A markdown
//   - Keywords: The ordered label to key mapping of askable topics
//   - EvidenceItem: A citation supporting an answer
//   - Snapshot: The immutable bundle loaded once at startup
//   - Turn: One asked topic in the conversation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
