package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrItemNaoEncontrado    = errors.New("item não encontrado")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrCodigoDuplicado      = errors.New("código já existe")
	ErrUsuarioDuplicado     = errors.New("usuário já existe")
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	ErrAcessoNegado         = errors.New("acesso negado")
	ErrAutoExclusao         = errors.New("não é possível excluir o próprio usuário")
	ErrDadosInvalidos       = errors.New("dados inválidos")
)

// SaldoInsuficienteError é retornado quando uma saída excede o saldo atual.
// Carrega o saldo no momento da verificação: o contrato exige que a mensagem
// informe o valor disponível.
type SaldoInsuficienteError struct {
	Saldo int64
}

func (e *SaldoInsuficienteError) Error() string {
	return fmt.Sprintf("Saldo insuficiente (%d)", e.Saldo)
}
