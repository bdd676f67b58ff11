package models

// DetailResponse is the generic JSON body used for acknowledgements and errors.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// RegisterResponse acknowledges a registration. The confirmation token is
// delivered out of band and is deliberately absent from this body.
type RegisterResponse struct {
	Detail string `json:"detail"`
	Email  string `json:"email"`
}
