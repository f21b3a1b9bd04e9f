package requests

type DemoActivateRequest struct {
	UserID string `json:"userId" validate:"required"`
}
