// Package services provides domain services that orchestrate business operations
// across multiple domain entities of the route synchronization system. It
// implements business logic that doesn't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - ShiftPlanner: A domain service that derives shift timing from route metrics
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
