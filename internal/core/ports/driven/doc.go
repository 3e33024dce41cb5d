// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConfigStore: Application configuration
//   - ProfileStore: Birth profile persistence
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - EphemerisSource: Series and element tables. Without it every planet
//     uses the built-in simplified elements.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
