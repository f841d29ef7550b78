package entity

import "time"

// Movimento é um registro imutável de entrada ou saída. Descricao e Unid são
// congelados no momento do insert, mesmo que o cadastro do item mude depois.
type Movimento struct {
	ID         int64
	Cod        string
	Descricao  string
	Unid       string
	Quantidade int64
	Data       time.Time // apenas a parte de data é relevante (coluna DATE)
}
