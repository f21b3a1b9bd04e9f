package requests

type CreateMerchantRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=120"`
	BusinessType string `json:"business_type" validate:"required"`
	Country      string `json:"country" validate:"required,len=2"`
	Website      string `json:"website" validate:"omitempty,url"`
}

type UploadMerchantDocumentRequest struct {
	DocType string `json:"doc_type" validate:"required"`
}

type CreateAuditLogRequest struct {
	EntityType string      `json:"entity_type" validate:"required"`
	EntityID   string      `json:"entity_id" validate:"required"`
	Action     string      `json:"action" validate:"required"`
	Payload    interface{} `json:"payload,omitempty"`
}
