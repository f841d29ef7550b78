package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OkResponse corpo padrão de sucesso para mutações.
type OkResponse struct {
	Ok bool `json:"ok"`
}
