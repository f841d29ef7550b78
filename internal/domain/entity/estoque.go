package entity

// Estoque é a linha do razão de estoque de um item (1:1 com Item, mesmo cod).
// Os contadores são acumulados; o saldo é sempre derivado, nunca persistido.
type Estoque struct {
	Cod           string
	Descricao     string
	Unid          string
	Entradas      int64
	Saidas        int64
	EstoqueMinimo int64
}

// Saldo devolve o saldo atual (entradas - saidas).
func (e *Estoque) Saldo() int64 {
	return e.Entradas - e.Saidas
}

// AlertaBaixo indica estoque baixo (saldo <= mínimo).
func (e *Estoque) AlertaBaixo() bool {
	return e.Saldo() <= e.EstoqueMinimo
}
