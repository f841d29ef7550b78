package entity

// User representa um usuário do sistema.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // digest SHA-256 do plaintext, nunca a senha em claro
	IsAdmin      bool
}
