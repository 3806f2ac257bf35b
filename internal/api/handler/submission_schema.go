package handler

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type"    validate:"required,oneof=general support hr help partnership"`
}

type careerRequest struct {
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	Phone      string `json:"phone"`
	Position   string `json:"position"   validate:"required"`
	Experience string `json:"experience" validate:"required"`
	Message    string `json:"message"`
	Resume     string `json:"resume"`
}
