// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - Fetcher: Reads a content resource (file, URL, GitHub path) as bytes
//   - SectionParser: Splits the Q&A markdown into sections
//   - Navigator: Reads and pushes the deep-link query state
//   - Scheduler: Schedules cancelable timer callbacks for reveals
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
