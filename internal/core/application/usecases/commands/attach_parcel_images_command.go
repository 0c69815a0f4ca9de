package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrAttachParcelImagesCommandIsNotConstructed = errors.New(
		"AttachParcelImagesCommand must be created via NewAttachParcelImagesCommand constructor",
	)
)

// ImageUpload is one image submitted for a parcel: the client file name, an
// optional display title, and the raw content.
type ImageUpload struct {
	FileName string
	Title    string
	Content  []byte
}

// AttachParcelImagesCommand represents a request to attach photos to a parcel.
// Images are processed item by item; an oversized or unstorable image fails on
// its own without aborting the rest.
type AttachParcelImagesCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	images   []ImageUpload

	guard guard.ConstructorGuard
}

// NewAttachParcelImagesCommand creates a command to attach images to a parcel.
// The image list must be non-empty and every entry must carry a file name.
func NewAttachParcelImagesCommand(parcelID kernel.UUID, images []ImageUpload) (AttachParcelImagesCommand, error) {
	cmd := AttachParcelImagesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setImages(images),
	); err != nil {
		return AttachParcelImagesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachParcelImagesCommand) Validate() error {
	return c.guard.Validate(ErrAttachParcelImagesCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel receiving the images.
func (c AttachParcelImagesCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Images returns the submitted uploads.
func (c AttachParcelImagesCommand) Images() []ImageUpload {
	return c.images
}

func (c *AttachParcelImagesCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AttachParcelImagesCommand) setImages(images []ImageUpload) error {
	if len(images) == 0 {
		return errs.NewValueIsRequiredError("images")
	}
	for _, img := range images {
		if img.FileName == "" {
			return errs.NewValueIsRequiredError("fileName")
		}
	}

	c.images = images
	return nil
}
