package dto

// LoginRequest credenciais de login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de sessão + identidade do usuário.
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
