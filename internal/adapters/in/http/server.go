package http

import (
	"context"
	"net/http"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/generated/servers"

	"log/slog"

	"github.com/labstack/echo/v4"
	openapitypes "github.com/oapi-codegen/runtime/types"
)

// TrackParcelHandler serves the public tracking lookup. It is satisfied by
// queries.TrackParcelQueryHandler and by the cached decorator in
// adapters/out/redis, so the server does not care whether a cache is wired.
type TrackParcelHandler interface {
	Handle(ctx context.Context, query queries.TrackParcelQuery) (queries.TrackParcelQueryResponse, error)
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
// Authorization is a role check on the X-User-Role header; the role itself
// is resolved by the external auth layer in front of this service.
type Server struct {
	// Command handlers
	createParcelHandler       commands.CreateParcelCommandHandler
	assignCourierHandler      commands.AssignCourierCommandHandler
	updateParcelStatusHandler commands.UpdateParcelStatusCommandHandler
	createCourierHandler      commands.CreateCourierCommandHandler
	setCourierStatusHandler   commands.SetCourierStatusCommandHandler

	// Query handlers
	getParcelHandler            queries.GetParcelQueryHandler
	getCourierParcelsHandler    queries.GetCourierParcelsQueryHandler
	getCustomerParcelsHandler   queries.GetCustomerParcelsQueryHandler
	getAvailableCouriersHandler queries.GetAvailableCouriersQueryHandler
	trackParcelHandler          TrackParcelHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	updateParcelStatusHandler commands.UpdateParcelStatusCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	setCourierStatusHandler commands.SetCourierStatusCommandHandler,
	getParcelHandler queries.GetParcelQueryHandler,
	getCourierParcelsHandler queries.GetCourierParcelsQueryHandler,
	getCustomerParcelsHandler queries.GetCustomerParcelsQueryHandler,
	getAvailableCouriersHandler queries.GetAvailableCouriersQueryHandler,
	trackParcelHandler TrackParcelHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createParcelHandler:         createParcelHandler,
		assignCourierHandler:        assignCourierHandler,
		updateParcelStatusHandler:   updateParcelStatusHandler,
		createCourierHandler:        createCourierHandler,
		setCourierStatusHandler:     setCourierStatusHandler,
		getParcelHandler:            getParcelHandler,
		getCourierParcelsHandler:    getCourierParcelsHandler,
		getCustomerParcelsHandler:   getCustomerParcelsHandler,
		getAvailableCouriersHandler: getAvailableCouriersHandler,
		trackParcelHandler:          trackParcelHandler,
		logger:                      logger,
	}
}

// CreatePackage handles POST /api/v1/packages - registers a new package.
func (s *Server) CreatePackage(ctx echo.Context) error {
	if !roleAllowed(ctx, RoleCustomer, RoleAdmin) {
		return forbidden(ctx)
	}

	var newPackage servers.NewPackage
	if err := ctx.Bind(&newPackage); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if newPackage.EstimatedDeliveryDays < 1 {
		return badRequest(ctx, "estimatedDeliveryDays must be at least 1")
	}

	estimatedDelivery := time.Now().AddDate(0, 0, newPackage.EstimatedDeliveryDays)
	cmd, err := commands.NewCreateParcelCommand(
		newPackage.SenderRef,
		newPackage.ReceiverRef,
		derefOrEmpty(newPackage.Description),
		newPackage.Weight,
		derefOrEmpty(newPackage.Dimensions),
		newPackage.PickupAddress,
		newPackage.DeliveryAddress,
		estimatedDelivery,
	)
	if err != nil {
		return badRequest(ctx, "Invalid package data: "+err.Error())
	}

	created, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.PackageCreated{
		Id:             created.ID().Bytes(),
		TrackingNumber: created.TrackingNumber().String(),
		Status:         created.Status().String(),
	})
}

// GetPackageById handles GET /api/v1/packages/:packageId - full package record.
func (s *Server) GetPackageById(ctx echo.Context, packageId openapitypes.UUID) error {
	if !roleAllowed(ctx, RoleCustomer, RoleAdmin) {
		return forbidden(ctx)
	}

	parcelID, err := kernel.UUIDFromBytes(packageId[:])
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return badRequest(ctx, "Invalid package id: "+err.Error())
	}

	record, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	response := servers.Package{
		Id:                record.ID.Bytes(),
		TrackingNumber:    record.TrackingNumber,
		SenderRef:         record.SenderRef,
		ReceiverRef:       record.ReceiverRef,
		Status:            record.Status.String(),
		Weight:            record.Weight,
		Dimensions:        emptyToNil(record.Dimensions),
		Description:       emptyToNil(record.Description),
		PickupAddress:     record.PickupAddress,
		DeliveryAddress:   record.DeliveryAddress,
		CreatedAt:         record.CreatedAt,
		EstimatedDelivery: record.EstimatedDelivery,
		ActualDeliveryAt:  record.ActualDeliveryAt,
	}
	if record.CourierID != nil {
		courierID := record.CourierID.Bytes()
		response.CourierId = &courierID
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignCourier handles POST /api/v1/packages/:packageId/assign.
func (s *Server) AssignCourier(ctx echo.Context, packageId openapitypes.UUID) error {
	if !roleAllowed(ctx, RoleAdmin) {
		return forbidden(ctx)
	}

	var request servers.AssignCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parcelID, err := kernel.UUIDFromBytes(packageId[:])
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}
	courierID, err := kernel.UUIDFromBytes(request.CourierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	cmd, err := commands.NewAssignCourierCommand(parcelID, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdatePackageStatus handles POST /api/v1/packages/:packageId/status.
func (s *Server) UpdatePackageStatus(ctx echo.Context, packageId openapitypes.UUID) error {
	if !roleAllowed(ctx, RoleCourier, RoleAdmin) {
		return forbidden(ctx)
	}

	var request servers.UpdateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parcelID, err := kernel.UUIDFromBytes(packageId[:])
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	status, err := parcel.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(parcelID, status, request.Location, request.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if handleErr := s.updateParcelStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// TrackPackage handles GET /api/v1/tracking/:trackingNumber.
// This is the one public route; no role header is required.
func (s *Server) TrackPackage(ctx echo.Context, trackingNumber string) error {
	number, err := kernel.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid tracking number")
	}

	query, err := queries.NewTrackParcelQuery(number)
	if err != nil {
		return badRequest(ctx, "Invalid tracking number: "+err.Error())
	}

	view, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	history := make([]servers.TrackingEvent, len(view.History))
	for i, entry := range view.History {
		history[i] = servers.TrackingEvent{
			Status:    entry.Status.String(),
			Location:  entry.Location,
			Notes:     entry.Notes,
			Timestamp: entry.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, servers.TrackingInfo{
		TrackingNumber:    view.TrackingNumber,
		Status:            view.Status.String(),
		EstimatedDelivery: view.EstimatedDelivery,
		ActualDeliveryAt:  view.ActualDeliveryAt,
		History:           history,
	})
}

// CreateCourier handles POST /api/v1/couriers - registers a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	if !roleAllowed(ctx, RoleAdmin) {
		return forbidden(ctx)
	}

	var newCourier servers.NewCourier
	if err := ctx.Bind(&newCourier); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(courierID, newCourier.VehicleType, newCourier.LicensePlate)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	if handleErr := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.CourierCreated{Id: courierID.Bytes()})
}

// GetAvailableCouriers handles GET /api/v1/couriers/available.
func (s *Server) GetAvailableCouriers(ctx echo.Context) error {
	if !roleAllowed(ctx, RoleAdmin) {
		return forbidden(ctx)
	}

	couriers, err := s.getAvailableCouriersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableCouriersQuery())
	if err != nil {
		return s.domainError(ctx, err)
	}

	response := make([]servers.Courier, len(couriers))
	for i, c := range couriers {
		response[i] = servers.Courier{
			Id:           c.ID.Bytes(),
			VehicleType:  c.VehicleType,
			LicensePlate: c.LicensePlate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetCourierStatus handles POST /api/v1/couriers/:courierId/status.
func (s *Server) SetCourierStatus(ctx echo.Context, courierId openapitypes.UUID) error {
	if !roleAllowed(ctx, RoleCourier, RoleAdmin) {
		return forbidden(ctx)
	}

	var request servers.SetCourierStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromBytes(courierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	status, err := courier.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewSetCourierStatusCommand(courierID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if handleErr := s.setCourierStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetCourierPackages handles GET /api/v1/couriers/:courierId/packages.
// Returns the courier's current worklist, newest first.
func (s *Server) GetCourierPackages(ctx echo.Context, courierId openapitypes.UUID) error {
	if !roleAllowed(ctx, RoleCourier, RoleAdmin) {
		return forbidden(ctx)
	}

	courierID, err := kernel.UUIDFromBytes(courierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	query, err := queries.NewGetCourierParcelsQuery(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}

	worklist, err := s.getCourierParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	response := make([]servers.CourierPackage, len(worklist))
	for i, item := range worklist {
		response[i] = servers.CourierPackage{
			Id:                item.ID.Bytes(),
			TrackingNumber:    item.TrackingNumber,
			Status:            item.Status.String(),
			PickupAddress:     item.PickupAddress,
			DeliveryAddress:   item.DeliveryAddress,
			EstimatedDelivery: item.EstimatedDelivery,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomerPackages handles GET /api/v1/customers/:customerRef/packages.
// Returns the customer's shipping history, newest first; delivered and
// failed parcels are included.
func (s *Server) GetCustomerPackages(ctx echo.Context, customerRef string) error {
	if !roleAllowed(ctx, RoleCustomer, RoleAdmin) {
		return forbidden(ctx)
	}

	query, err := queries.NewGetCustomerParcelsQuery(customerRef)
	if err != nil {
		return badRequest(ctx, "Invalid customer reference: "+err.Error())
	}

	history, err := s.getCustomerParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	response := make([]servers.CustomerPackage, len(history))
	for i, item := range history {
		response[i] = servers.CustomerPackage{
			Id:                item.ID.Bytes(),
			TrackingNumber:    item.TrackingNumber,
			Status:            item.Status.String(),
			PickupAddress:     item.PickupAddress,
			DeliveryAddress:   item.DeliveryAddress,
			EstimatedDelivery: item.EstimatedDelivery,
			ActualDeliveryAt:  item.ActualDeliveryAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
