package parcel

import "parcelmarket/internal/pkg/errs"

// ImageRef is a value object pointing at a stored parcel photo. The URL comes back
// from the media store after a successful upload; the title is caller-supplied
// display text.
type ImageRef struct {
	url   string
	title string
}

// NewImageRef creates a validated image reference. The URL must be non-empty.
func NewImageRef(url, title string) (ImageRef, error) {
	if url == "" {
		return ImageRef{}, errs.NewValueIsRequiredError("imageUrl")
	}
	return ImageRef{url: url, title: title}, nil
}

// URL returns the stored location of the image.
func (r ImageRef) URL() string {
	return r.url
}

// Title returns the display title of the image.
func (r ImageRef) Title() string {
	return r.title
}
