package dto

// EstoqueDTO linha do razão com saldo derivado e flag de estoque baixo.
type EstoqueDTO struct {
	Cod           string `json:"cod"`
	Descricao     string `json:"descricao"`
	Unid          string `json:"unid"`
	Entradas      int64  `json:"entradas"`
	Saidas        int64  `json:"saidas"`
	EstoqueMinimo int64  `json:"estoque_minimo"`
	Saldo         int64  `json:"saldo"`
	AlertaBaixo   bool   `json:"alerta_baixo"`
}

// MovimentoRequest registro de entrada ou saída.
type MovimentoRequest struct {
	Cod  string `json:"cod" validate:"required"`
	Qtd  int64  `json:"qtd" validate:"required,gt=0"`
	Data string `json:"data" validate:"required,datetime=2006-01-02"`
}

// MovimentoDTO registro do histórico de movimentações.
type MovimentoDTO struct {
	ID         int64  `json:"id"`
	Cod        string `json:"cod"`
	Descricao  string `json:"descricao"`
	Unid       string `json:"unid"`
	Quantidade int64  `json:"quantidade"`
	Data       string `json:"data"` // 2006-01-02
}

// MovimentacoesDTO resposta de GET /api/movimentacoes (até 20 por lado).
type MovimentacoesDTO struct {
	Entradas []MovimentoDTO `json:"entradas"`
	Saidas   []MovimentoDTO `json:"saidas"`
}

// EstoqueEvent payload publicado no tópico de estoque após cada mutação.
// É apenas um aviso de invalidação: o cliente deve reler o estado no servidor.
type EstoqueEvent struct {
	Message string `json:"message"`
}
