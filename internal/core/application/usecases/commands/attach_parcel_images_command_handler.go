package commands

import (
	"bytes"
	"context"

	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/ports"
	"parcelmarket/internal/pkg/errs"
)

// MaxImageSizeBytes is the per-image upload ceiling.
const MaxImageSizeBytes = 5 << 20

// ImageOutcome reports what happened to one submitted image. Exactly one of
// URL and Err is set.
type ImageOutcome struct {
	FileName string
	URL      string
	Err      error
}

// AttachParcelImagesResult carries the per-item outcomes of an image batch.
type AttachParcelImagesResult struct {
	Outcomes []ImageOutcome
}

// StoredCount returns how many images of the batch were stored.
func (r AttachParcelImagesResult) StoredCount() int {
	stored := 0
	for _, o := range r.Outcomes {
		if o.Err == nil {
			stored++
		}
	}
	return stored
}

// AttachParcelImagesCommandHandler handles the business logic for parcel image
// attachment.
//
// The batch has partial-failure semantics: each image over the size ceiling, or
// failing to store, is reported individually while the rest proceed. The call
// as a whole only fails when the parcel itself cannot be resolved or updated.
type AttachParcelImagesCommandHandler struct {
	uowFactory ParcelUoWFactory
	mediaStore ports.MediaStore
}

// NewAttachParcelImagesCommandHandler creates a handler for image attachment.
func NewAttachParcelImagesCommandHandler(
	uowFactory ParcelUoWFactory,
	mediaStore ports.MediaStore,
) AttachParcelImagesCommandHandler {
	return AttachParcelImagesCommandHandler{
		uowFactory: uowFactory,
		mediaStore: mediaStore,
	}
}

// Handle processes the image attachment command.
// Stored references are appended to the parcel in one transaction after the
// uploads complete; a batch with zero stored images still succeeds.
func (h *AttachParcelImagesCommandHandler) Handle(ctx context.Context, cmd AttachParcelImagesCommand) (AttachParcelImagesResult, error) {
	if err := cmd.Validate(); err != nil {
		return AttachParcelImagesResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AttachParcelImagesResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	targetParcel, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return AttachParcelImagesResult{}, err
	}

	outcomes := make([]ImageOutcome, 0, len(cmd.Images()))
	for _, img := range cmd.Images() {
		outcomes = append(outcomes, h.storeOne(ctx, targetParcel, img))
	}

	if err = uow.ParcelRepository().Update(ctx, targetParcel); err != nil {
		return AttachParcelImagesResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AttachParcelImagesResult{}, err
	}

	return AttachParcelImagesResult{Outcomes: outcomes}, nil
}

func (h *AttachParcelImagesCommandHandler) storeOne(ctx context.Context, targetParcel *parcel.Parcel, img ImageUpload) ImageOutcome {
	size := int64(len(img.Content))
	if size > MaxImageSizeBytes {
		return ImageOutcome{
			FileName: img.FileName,
			Err:      errs.NewUploadFailedError(img.FileName, size, MaxImageSizeBytes),
		}
	}

	url, err := h.mediaStore.Store(ctx, img.FileName, bytes.NewReader(img.Content))
	if err != nil {
		return ImageOutcome{
			FileName: img.FileName,
			Err:      errs.NewUploadFailedErrorWithCause(img.FileName, size, MaxImageSizeBytes, err),
		}
	}

	ref, err := parcel.NewImageRef(url, img.Title)
	if err != nil {
		return ImageOutcome{FileName: img.FileName, Err: err}
	}

	targetParcel.AttachImage(ref)
	return ImageOutcome{FileName: img.FileName, URL: url}
}
