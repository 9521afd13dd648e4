// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the task
// store (defined in internal/store) to fulfill application features.
//
// The service package implements the application layer in the clean
// architecture: it sequences validation and persistence, enforces the
// "cannot mutate a missing-or-deleted task" rule for updates, and normalizes
// every outcome into a Result so callers branch on success instead of
// handling errors for expected outcomes.
//
// Key responsibilities:
//
// 1. Lifecycle Orchestration:
//   - Creation validates the candidate before the store is ever touched
//   - Updates check existence before validity, in that order
//   - Deletes and restores delegate to the store without a pre-check
//
// 2. Dependency Management:
//   - Services receive dependencies through constructor injection
//   - Constructors reject nil required dependencies with a TaskServiceError
//
// 3. Error Handling:
//   - Expected outcomes (validation failures, not-found, storage faults)
//     are carried as failure Results, never as Go errors
//   - TaskServiceError is reserved for wiring mistakes
//
// The service layer depends on domain entities and the store interface, but
// never on specific infrastructure implementations, maintaining the
// Dependency Inversion Principle of clean architecture.
package service
