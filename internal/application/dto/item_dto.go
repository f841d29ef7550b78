package dto

// ItemDTO projeção do cadastro de item.
type ItemDTO struct {
	Cod           string `json:"cod"`
	Descricao     string `json:"descricao"`
	Unid          string `json:"unid"`
	EstoqueMinimo int64  `json:"estoque_minimo"`
}

// ItemCreateRequest registro de item no catálogo.
// EstoqueMinimo é opcional; ausente assume o padrão 10.
type ItemCreateRequest struct {
	Cod           string `json:"cod" validate:"required"`
	Descricao     string `json:"descricao" validate:"required"`
	Unid          string `json:"unid" validate:"required"`
	EstoqueMinimo *int64 `json:"estoque_minimo" validate:"omitempty,min=0"`
}
