package entity

// Item é o cadastro base do catálogo. O código é imutável após a criação;
// a unicidade é garantida pela primary key no banco.
type Item struct {
	Cod           string
	Descricao     string
	Unid          string
	EstoqueMinimo int64
}
