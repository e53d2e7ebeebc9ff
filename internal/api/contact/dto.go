package contact

type SendMessageRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=128"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10,max=4096"`
}
