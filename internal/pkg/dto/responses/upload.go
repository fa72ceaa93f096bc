package responses

type UploadAttachmentResponse struct {
	ObjectName string `json:"objectName"`
	URI        string `json:"uri"`
}
