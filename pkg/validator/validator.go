// Package validator é um wrapper fino sobre go-playground/validator para
// validação declarativa dos DTOs de request.
package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse descreve um campo que falhou na validação.
type ErrorResponse struct {
	FailedField string
	Tag         string
	Param       string
}

var validate = validator.New()

// ValidateStruct valida as tags `validate` do struct e devolve as falhas.
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs = append(errs, &ErrorResponse{
				FailedField: fe.StructNamespace(),
				Tag:         fe.Tag(),
				Param:       fe.Param(),
			})
		}
	}
	return errs
}

// Message monta uma mensagem legível a partir das falhas de validação.
func Message(errs []*ErrorResponse) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, fmt.Sprintf("campo '%s' falhou na regra '%s'", e.FailedField, e.Tag))
	}
	return strings.Join(parts, "; ")
}
