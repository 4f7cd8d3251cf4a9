// Package parcel provides domain entities and business logic for parcel
// lifecycle management in the tracking system. It implements the Parcel
// aggregate root with a checked state machine for status transitions.
//
// The package includes:
//   - Parcel: The aggregate root owning the parcel's identity, metadata and lifecycle
//   - Status: A state machine that enforces the forward delivery workflow
//
// Key business rules:
//   - Parcels must have a valid identifier, tracking number, sender/receiver
//     references and non-empty pickup and delivery addresses
//   - Status follows pending -> assigned -> in_transit -> out_for_delivery -> delivered,
//     with failed reachable from any non-terminal status
//   - delivered and failed are terminal; no further transitions are permitted
//   - A parcel holds a courier reference exactly while its status is
//     assigned, in_transit or out_for_delivery
//   - The actual delivery time is set exactly once, on the transition into delivered
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package parcel
