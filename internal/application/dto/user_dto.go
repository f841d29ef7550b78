package dto

// UserDTO projeção de usuário para respostas. Nunca inclui o password_hash.
type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// UserCreateRequest criação de usuário (admin).
type UserCreateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
	IsAdmin  bool   `json:"is_admin"`
}
