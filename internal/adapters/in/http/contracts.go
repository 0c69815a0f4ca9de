package http

import (
	"time"

	"github.com/google/uuid"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterParticipantRequest is the body of POST /api/v1/participants.
type RegisterParticipantRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// ParticipantResponse describes a registered participant.
type ParticipantResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

// CreateParcelRequest is the body of POST /api/v1/parcels.
type CreateParcelRequest struct {
	Description         string  `json:"description"`
	WeightKg            float64 `json:"weightKg"`
	Size                string  `json:"size"`
	Category            string  `json:"category"`
	Fragile             bool    `json:"fragile"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
}

// CreateParcelResponse reports the registered parcel and its suggested price.
type CreateParcelResponse struct {
	ID             uuid.UUID `json:"id"`
	SuggestedPrice float64   `json:"suggestedPrice"`
}

// ParcelStatusRequest is the body of PATCH /api/v1/parcels/{parcelID}/status.
type ParcelStatusRequest struct {
	Status string `json:"status"`
}

// ParcelResponse describes a parcel after a status change.
type ParcelResponse struct {
	ID             uuid.UUID `json:"id"`
	Status         string    `json:"status"`
	EstimatedPrice float64   `json:"estimatedPrice"`
}

// OrphanParcelResponse is one parcel never bound to a delivery, as listed by
// GET /api/v1/parcels/orphans.
type OrphanParcelResponse struct {
	ID             uuid.UUID `json:"id"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	EstimatedPrice float64   `json:"estimatedPrice"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ImageOutcomeResponse reports the per-item result of an image upload.
type ImageOutcomeResponse struct {
	FileName string `json:"fileName"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// AttachImagesResponse is the body returned by the image upload endpoint.
// The batch succeeds as a whole even when individual items are rejected.
type AttachImagesResponse struct {
	Stored   int                    `json:"stored"`
	Outcomes []ImageOutcomeResponse `json:"outcomes"`
}

// AddressPayload is a postal address in requests.
type AddressPayload struct {
	Number     string `json:"number"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Complement string `json:"complement,omitempty"`
}

// CreateDeliveryRequest is the body of POST /api/v1/deliveries.
type CreateDeliveryRequest struct {
	SenderID             uuid.UUID      `json:"senderId"`
	ReceiverID           uuid.UUID      `json:"receiverId"`
	TripID               *uuid.UUID     `json:"tripId,omitempty"`
	ParcelIDs            []uuid.UUID    `json:"parcelIds"`
	PickupAddress        AddressPayload `json:"pickupAddress"`
	DeliveryAddress      AddressPayload `json:"deliveryAddress"`
	PickupInstructions   string         `json:"pickupInstructions,omitempty"`
	DeliveryInstructions string         `json:"deliveryInstructions,omitempty"`
	AdjustmentPercent    int            `json:"adjustmentPercent"`
}

// CreateDeliveryResponse reports the assembled delivery.
type CreateDeliveryResponse struct {
	ID             uuid.UUID   `json:"id"`
	InvoiceID      uuid.UUID   `json:"invoiceId"`
	TrackingNumber string      `json:"trackingNumber"`
	FinalPrice     float64     `json:"finalPrice"`
	ParcelIDs      []uuid.UUID `json:"parcelIds"`
}

// DeliveryStatusRequest is the body of PATCH /api/v1/deliveries/{deliveryID}/status.
type DeliveryStatusRequest struct {
	Status string `json:"status"`
}

// DeliveryResponse describes a delivery after a status change.
type DeliveryResponse struct {
	ID             uuid.UUID `json:"id"`
	TrackingNumber string    `json:"trackingNumber"`
	Status         string    `json:"status"`
}

// TrackingResponse is the public tracking view of a delivery.
type TrackingResponse struct {
	ID             uuid.UUID `json:"id"`
	TrackingNumber string    `json:"trackingNumber"`
	Status         string    `json:"status"`
	EstimatedPrice float64   `json:"estimatedPrice"`
	ParcelCount    int       `json:"parcelCount"`
}

// CreateTripRequest is the body of POST /api/v1/trips.
type CreateTripRequest struct {
	TravelerID        uuid.UUID `json:"travelerId"`
	StartCity         string    `json:"startCity"`
	StartCountry      string    `json:"startCountry"`
	EndCity           string    `json:"endCity"`
	EndCountry        string    `json:"endCountry"`
	StartTime         time.Time `json:"startTime"`
	EndTime           time.Time `json:"endTime"`
	Vehicle           string    `json:"vehicle"`
	MaxParcels        int       `json:"maxParcels"`
	AvailableVolumeM3 float64   `json:"availableVolumeM3"`
	MaxWeightKg       float64   `json:"maxWeightKg"`
}

// TripStatusRequest is the body of PATCH /api/v1/trips/{tripID}/status.
type TripStatusRequest struct {
	Status string `json:"status"`
}

// TripResponse describes a trip.
type TripResponse struct {
	ID                 uuid.UUID `json:"id"`
	TravelerID         uuid.UUID `json:"travelerId"`
	Status             string    `json:"status"`
	AffectedDeliveries int       `json:"affectedDeliveries,omitempty"`
}

// TripDeliveryResponse is one entry of a trip's manifest.
type TripDeliveryResponse struct {
	ID             uuid.UUID `json:"id"`
	TrackingNumber string    `json:"trackingNumber"`
	Status         string    `json:"status"`
	PickupCity     string    `json:"pickupCity"`
	DeliveryCity   string    `json:"deliveryCity"`
	EstimatedPrice float64   `json:"estimatedPrice"`
}

// InvoiceStatusRequest is the body of PATCH /api/v1/invoices/{invoiceID}/status.
type InvoiceStatusRequest struct {
	Status string `json:"status"`
}

// InvoiceResponse describes an invoice after a status change.
type InvoiceResponse struct {
	ID          uuid.UUID  `json:"id"`
	DeliveryID  uuid.UUID  `json:"deliveryId"`
	Status      string     `json:"status"`
	TotalAmount float64    `json:"totalAmount"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
}
