// Package http provides the inbound HTTP adapter, translating REST requests
// into commands and queries of the application layer.
package http

import (
	"errors"
	"io"
	"net/http"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/application/usecases/queries"
	"parcelmarket/internal/core/domain/model/delivery"
	"parcelmarket/internal/core/domain/model/invoice"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/domain/model/participant"
	"parcelmarket/internal/core/domain/model/trip"
	"parcelmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actorHeader identifies the participant performing a request. Invoice
// corrections are gated on the actor's role.
const actorHeader = "X-Actor-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerParticipantHandler  commands.RegisterParticipantCommandHandler
	createParcelHandler         commands.CreateParcelCommandHandler
	attachParcelImagesHandler   commands.AttachParcelImagesCommandHandler
	updateParcelStatusHandler   commands.UpdateParcelStatusCommandHandler
	createTripHandler           commands.CreateTripCommandHandler
	updateTripStatusHandler     commands.UpdateTripStatusCommandHandler
	createDeliveryHandler       commands.CreateDeliveryCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	updateInvoiceStatusHandler  commands.UpdateInvoiceStatusCommandHandler

	// Query handlers
	getDeliveryByTrackingHandler queries.GetDeliveryByTrackingQueryHandler
	getTripDeliveriesHandler     queries.GetTripDeliveriesQueryHandler
	getOrphanParcelsHandler      queries.GetOrphanParcelsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerParticipantHandler commands.RegisterParticipantCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	attachParcelImagesHandler commands.AttachParcelImagesCommandHandler,
	updateParcelStatusHandler commands.UpdateParcelStatusCommandHandler,
	createTripHandler commands.CreateTripCommandHandler,
	updateTripStatusHandler commands.UpdateTripStatusCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	updateInvoiceStatusHandler commands.UpdateInvoiceStatusCommandHandler,
	getDeliveryByTrackingHandler queries.GetDeliveryByTrackingQueryHandler,
	getTripDeliveriesHandler queries.GetTripDeliveriesQueryHandler,
	getOrphanParcelsHandler queries.GetOrphanParcelsQueryHandler,
) *Server {
	return &Server{
		registerParticipantHandler:   registerParticipantHandler,
		createParcelHandler:          createParcelHandler,
		attachParcelImagesHandler:    attachParcelImagesHandler,
		updateParcelStatusHandler:    updateParcelStatusHandler,
		createTripHandler:            createTripHandler,
		updateTripStatusHandler:      updateTripStatusHandler,
		createDeliveryHandler:        createDeliveryHandler,
		updateDeliveryStatusHandler:  updateDeliveryStatusHandler,
		updateInvoiceStatusHandler:   updateInvoiceStatusHandler,
		getDeliveryByTrackingHandler: getDeliveryByTrackingHandler,
		getTripDeliveriesHandler:     getTripDeliveriesHandler,
		getOrphanParcelsHandler:      getOrphanParcelsHandler,
	}
}

// RegisterRoutes mounts all marketplace endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/participants", s.RegisterParticipant)

	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels/orphans", s.GetOrphanParcels)
	api.POST("/parcels/:parcelID/images", s.AttachParcelImages)
	api.PATCH("/parcels/:parcelID/status", s.UpdateParcelStatus)

	api.POST("/trips", s.CreateTrip)
	api.PATCH("/trips/:tripID/status", s.UpdateTripStatus)
	api.GET("/trips/:tripID/deliveries", s.GetTripDeliveries)

	api.POST("/deliveries", s.CreateDelivery)
	api.PATCH("/deliveries/:deliveryID/status", s.UpdateDeliveryStatus)
	api.GET("/tracking/:trackingNumber", s.GetDeliveryByTracking)

	api.PATCH("/invoices/:invoiceID/status", s.UpdateInvoiceStatus)
}

// RegisterParticipant handles POST /api/v1/participants.
func (s *Server) RegisterParticipant(ctx echo.Context) error {
	var req RegisterParticipantRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := participant.RoleFromString(req.Role)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRegisterParticipantCommand(kernel.NewUUID(), req.Name, role)
	if err != nil {
		return fail(ctx, err)
	}

	registered, err := s.registerParticipantHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ParticipantResponse{
		ID:   registered.ID().Bytes(),
		Name: registered.Name(),
		Role: registered.Role().String(),
	})
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var req CreateParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	size, err := parcel.SizeCategoryFromString(req.Size)
	if err != nil {
		return fail(ctx, err)
	}

	category, err := parcel.CategoryFromString(req.Category)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		req.Description,
		req.WeightKg,
		size,
		category,
		req.Fragile,
		req.SpecialInstructions,
	)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateParcelResponse{
		ID:             result.ParcelID.Bytes(),
		SuggestedPrice: result.SuggestedPrice.Float64(),
	})
}

// AttachParcelImages handles POST /api/v1/parcels/{parcelID}/images.
// The request is multipart; each file in the "images" field is one upload and
// an optional parallel "titles" field carries display titles. Items fail
// individually, so the response is 200 with per-item outcomes even when some
// or all images were rejected.
func (s *Server) AttachParcelImages(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelID"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel ID")
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return badRequest(ctx, "Expected multipart form data")
	}

	files := form.File["images"]
	if len(files) == 0 {
		return badRequest(ctx, "No images submitted")
	}
	titles := form.Value["titles"]

	uploads := make([]commands.ImageUpload, 0, len(files))
	for i, fileHeader := range files {
		src, openErr := fileHeader.Open()
		if openErr != nil {
			return badRequest(ctx, "Unreadable file part: "+fileHeader.Filename)
		}

		content, readErr := io.ReadAll(src)
		_ = src.Close()
		if readErr != nil {
			return badRequest(ctx, "Unreadable file part: "+fileHeader.Filename)
		}

		title := ""
		if i < len(titles) {
			title = titles[i]
		}

		uploads = append(uploads, commands.ImageUpload{
			FileName: fileHeader.Filename,
			Title:    title,
			Content:  content,
		})
	}

	cmd, err := commands.NewAttachParcelImagesCommand(parcelID, uploads)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.attachParcelImagesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	outcomes := make([]ImageOutcomeResponse, 0, len(result.Outcomes))
	for _, outcome := range result.Outcomes {
		resp := ImageOutcomeResponse{FileName: outcome.FileName, URL: outcome.URL}
		if outcome.Err != nil {
			resp.Error = outcome.Err.Error()
		}
		outcomes = append(outcomes, resp)
	}

	return ctx.JSON(http.StatusOK, AttachImagesResponse{
		Stored:   result.StoredCount(),
		Outcomes: outcomes,
	})
}

// UpdateParcelStatus handles PATCH /api/v1/parcels/{parcelID}/status.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelID"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel ID")
	}

	var req ParcelStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := parcel.StatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(parcelID, target)
	if err != nil {
		return fail(ctx, err)
	}

	updated, err := s.updateParcelStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ParcelResponse{
		ID:             updated.ID().Bytes(),
		Status:         updated.Status().String(),
		EstimatedPrice: updated.EstimatedPrice().Float64(),
	})
}

// GetOrphanParcels handles GET /api/v1/parcels/orphans.
func (s *Server) GetOrphanParcels(ctx echo.Context) error {
	query := queries.NewGetOrphanParcelsQuery()

	orphans, err := s.getOrphanParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]OrphanParcelResponse, len(orphans))
	for i, entry := range orphans {
		response[i] = OrphanParcelResponse{
			ID:             entry.ID.Bytes(),
			Description:    entry.Description,
			Status:         entry.Status,
			EstimatedPrice: entry.EstimatedPrice,
			CreatedAt:      entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateTrip handles POST /api/v1/trips.
func (s *Server) CreateTrip(ctx echo.Context) error {
	var req CreateTripRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	travelerID, err := kernel.UUIDFromBytes(req.TravelerID[:])
	if err != nil {
		return badRequest(ctx, "Invalid traveler ID")
	}

	vehicle, err := trip.VehicleTypeFromString(req.Vehicle)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateTripCommand(
		kernel.NewUUID(),
		travelerID,
		req.StartCity, req.StartCountry,
		req.EndCity, req.EndCountry,
		req.StartTime, req.EndTime,
		vehicle,
		req.MaxParcels,
		req.AvailableVolumeM3,
		req.MaxWeightKg,
	)
	if err != nil {
		return fail(ctx, err)
	}

	created, err := s.createTripHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, TripResponse{
		ID:         created.ID().Bytes(),
		TravelerID: created.TravelerID().Bytes(),
		Status:     created.Status().String(),
	})
}

// UpdateTripStatus handles PATCH /api/v1/trips/{tripID}/status.
func (s *Server) UpdateTripStatus(ctx echo.Context) error {
	tripID, err := kernel.UUIDFromString(ctx.Param("tripID"))
	if err != nil {
		return badRequest(ctx, "Invalid trip ID")
	}

	var req TripStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := trip.StatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateTripStatusCommand(tripID, target)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.updateTripStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TripResponse{
		ID:                 result.Trip.ID().Bytes(),
		TravelerID:         result.Trip.TravelerID().Bytes(),
		Status:             result.Trip.Status().String(),
		AffectedDeliveries: result.AffectedDeliveries,
	})
}

// GetTripDeliveries handles GET /api/v1/trips/{tripID}/deliveries.
func (s *Server) GetTripDeliveries(ctx echo.Context) error {
	tripID, err := kernel.UUIDFromString(ctx.Param("tripID"))
	if err != nil {
		return badRequest(ctx, "Invalid trip ID")
	}

	query, err := queries.NewGetTripDeliveriesQuery(tripID)
	if err != nil {
		return fail(ctx, err)
	}

	manifest, err := s.getTripDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]TripDeliveryResponse, len(manifest))
	for i, entry := range manifest {
		response[i] = TripDeliveryResponse{
			ID:             entry.ID.Bytes(),
			TrackingNumber: entry.TrackingNumber,
			Status:         entry.Status,
			PickupCity:     entry.PickupCity,
			DeliveryCity:   entry.DeliveryCity,
			EstimatedPrice: entry.EstimatedPrice,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	senderID, err := kernel.UUIDFromBytes(req.SenderID[:])
	if err != nil {
		return badRequest(ctx, "Invalid sender ID")
	}

	receiverID, err := kernel.UUIDFromBytes(req.ReceiverID[:])
	if err != nil {
		return badRequest(ctx, "Invalid receiver ID")
	}

	var tripID *kernel.UUID
	if req.TripID != nil {
		id, tripErr := kernel.UUIDFromBytes((*req.TripID)[:])
		if tripErr != nil {
			return badRequest(ctx, "Invalid trip ID")
		}
		tripID = &id
	}

	parcelIDs := make([]kernel.UUID, 0, len(req.ParcelIDs))
	for _, raw := range req.ParcelIDs {
		id, parcelErr := kernel.UUIDFromBytes(raw[:])
		if parcelErr != nil {
			return badRequest(ctx, "Invalid parcel ID")
		}
		parcelIDs = append(parcelIDs, id)
	}

	pickupAddress, err := toAddress(req.PickupAddress)
	if err != nil {
		return fail(ctx, err)
	}

	deliveryAddress, err := toAddress(req.DeliveryAddress)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(),
		senderID,
		receiverID,
		tripID,
		parcelIDs,
		pickupAddress,
		deliveryAddress,
		req.PickupInstructions,
		req.DeliveryInstructions,
		req.AdjustmentPercent,
	)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	boundParcels := make([]uuid.UUID, len(result.ParcelIDs))
	for i, id := range result.ParcelIDs {
		boundParcels[i] = id.Bytes()
	}

	return ctx.JSON(http.StatusCreated, CreateDeliveryResponse{
		ID:             result.DeliveryID.Bytes(),
		InvoiceID:      result.InvoiceID.Bytes(),
		TrackingNumber: result.TrackingNumber.String(),
		FinalPrice:     result.FinalPrice.Float64(),
		ParcelIDs:      boundParcels,
	})
}

// UpdateDeliveryStatus handles PATCH /api/v1/deliveries/{deliveryID}/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryID"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	var req DeliveryStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, target)
	if err != nil {
		return fail(ctx, err)
	}

	updated, err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryResponse{
		ID:             updated.ID().Bytes(),
		TrackingNumber: updated.TrackingNumber().String(),
		Status:         updated.Status().String(),
	})
}

// GetDeliveryByTracking handles GET /api/v1/tracking/{trackingNumber}.
func (s *Server) GetDeliveryByTracking(ctx echo.Context) error {
	trackingNumber, err := kernel.TrackingNumberFromString(ctx.Param("trackingNumber"))
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetDeliveryByTrackingQuery(trackingNumber)
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.getDeliveryByTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		ID:             resp.ID.Bytes(),
		TrackingNumber: resp.TrackingNumber,
		Status:         resp.Status,
		EstimatedPrice: resp.EstimatedPrice,
		ParcelCount:    resp.ParcelCount,
	})
}

// UpdateInvoiceStatus handles PATCH /api/v1/invoices/{invoiceID}/status.
// The X-Actor-ID header identifies the requesting participant; cancellations
// and refunds require an administrator.
func (s *Server) UpdateInvoiceStatus(ctx echo.Context) error {
	invoiceID, err := kernel.UUIDFromString(ctx.Param("invoiceID"))
	if err != nil {
		return badRequest(ctx, "Invalid invoice ID")
	}

	actorID, err := kernel.UUIDFromString(ctx.Request().Header.Get(actorHeader))
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+actorHeader+" header")
	}

	var req InvoiceStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := invoice.StatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateInvoiceStatusCommand(actorID, invoiceID, target)
	if err != nil {
		return fail(ctx, err)
	}

	updated, err := s.updateInvoiceStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, InvoiceResponse{
		ID:          updated.ID().Bytes(),
		DeliveryID:  updated.DeliveryID().Bytes(),
		Status:      updated.Status().String(),
		TotalAmount: updated.TotalAmount().Float64(),
		PaymentDate: updated.PaymentDate(),
	})
}

func toAddress(payload AddressPayload) (kernel.Address, error) {
	return kernel.NewAddress(
		payload.Number,
		payload.Street,
		payload.City,
		payload.PostalCode,
		payload.Country,
		payload.Complement,
	)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail maps a domain or application error to its HTTP status: validation
// failures are 400, unknown objects 404, rejected transitions and full trips
// 409, everything else 500.
func fail(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrCapacityExceeded):
		code = http.StatusConflict
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
