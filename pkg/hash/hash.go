// Package hash implementa o digest de senhas do armazenamento de credenciais.
//
// O contrato exige um hash determinístico de mão única: o digest armazenado
// deve ser igual ao digest do plaintext apresentado no login. Por isso
// SHA-256 em hex, e não bcrypt (que embute salt e nunca repete a saída).
package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Digest devolve o SHA-256 hex do plaintext.
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Check compara em tempo constante o digest armazenado com o da senha dada.
func Check(storedHash, password string) bool {
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(Digest(password))) == 1
}
