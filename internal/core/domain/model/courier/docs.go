// Package courier provides domain entities and business logic for courier
// availability management in the parcel tracking system. It implements the
// Courier aggregate root with exclusive-custody semantics.
//
// The package includes:
//   - Courier: The aggregate root owning courier identity and availability
//   - Status: The courier availability states (available, assigned, on_break)
//
// Key business rules:
//   - A courier can only take custody of a parcel while available
//   - The assigned status is derived from custody and never set directly;
//     self-service status changes may only choose available or on_break
//   - A courier on an active delivery cannot change their own status
//   - Releasing a courier is idempotent: releasing an already-available
//     courier is a no-op, not an error
//
// The registry-level guarantee that two parcels never claim the same courier
// is completed by the persistence layer, which re-checks availability under a
// row lock inside the assigning transaction.
package courier
