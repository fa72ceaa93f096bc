package requests

// UploadAttachmentRequest carries a data-URI encoded image, e.g.
// "data:image/png;base64,iVBOR…".
type UploadAttachmentRequest struct {
	Image string `json:"image" validate:"required"`
}
