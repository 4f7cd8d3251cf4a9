package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetAvailableCouriersQueryIsNotConstructed = errors.New(
	"GetAvailableCouriersQuery must be created via NewGetAvailableCouriersQuery constructor",
)

// GetAvailableCouriersQuery retrieves the couriers currently free to take a
// parcel. Used by dispatchers picking a courier for a pending parcel.
//
// Example:
//
//	query := NewGetAvailableCouriersQuery()
//	handler := NewGetAvailableCouriersQueryHandler(db)
//
//	couriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve couriers: %w", err)
//	}
//
//	for _, c := range couriers {
//	    fmt.Printf("Courier %s (%s %s)\n", c.ID, c.VehicleType, c.LicensePlate)
//	}
type GetAvailableCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableCouriersQuery creates a query to retrieve all available couriers.
// This is a parameterless query that fetches the free courier pool.
func NewGetAvailableCouriersQuery() GetAvailableCouriersQuery {
	return GetAvailableCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableCouriersQueryIsNotConstructed if validation fails.
func (q GetAvailableCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableCouriersQueryIsNotConstructed)
}

// GetAvailableCouriersQueryResponse represents courier information in the read model.
type GetAvailableCouriersQueryResponse struct {
	ID           kernel.UUID `json:"id"`
	VehicleType  string      `json:"vehicleType"`
	LicensePlate string      `json:"licensePlate"`
}
