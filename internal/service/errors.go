package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Typed workflow errors. Handlers map these onto HTTP statuses; everything
// else is treated as an internal error, logged with context and surfaced as a
// generic envelope.

var (
	ErrSemReceita           = errors.New("nenhuma receita cadastrada para este produto")
	ErrReceitaVazia         = errors.New("receita não possui constituintes cadastrados")
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	ErrRefreshInvalido      = errors.New("refresh token inválido ou expirado")
	ErrTokenInvalido        = errors.New("token inválido ou expirado")
	ErrCPFDuplicado         = errors.New("CPF já cadastrado")
	ErrAcessoNegado         = errors.New("acesso negado")
)

// NaoEncontradoError marks a lookup whose id (or name) resolved to no row.
type NaoEncontradoError struct {
	Entidade string
	Ref      string
}

func (e *NaoEncontradoError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("%s não encontrado", e.Entidade)
	}
	return fmt.Sprintf("%s '%s' não encontrado", e.Entidade, e.Ref)
}

// EstoqueInsuficienteError marks a quantity guard failure: the debit would
// drive the product's stock negative.
type EstoqueInsuficienteError struct {
	Produto string
}

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("estoque insuficiente para '%s'", e.Produto)
}

// ReceitaInvalidaError marks a recipe definition that failed validation
// before any row was written.
type ReceitaInvalidaError struct {
	Motivo string
}

func (e *ReceitaInvalidaError) Error() string {
	return "receita inválida: " + e.Motivo
}

// RequisicaoInvalidaError marks request data that passed binding but failed a
// semantic check (non-positive quantity, malformed id).
type RequisicaoInvalidaError struct {
	Motivo string
}

func (e *RequisicaoInvalidaError) Error() string {
	return e.Motivo
}

// ItemVendaInvalidoError marks a malformed sale line item, detected before
// the transaction opens.
type ItemVendaInvalidoError struct {
	Indice int
	Motivo string
}

func (e *ItemVendaInvalidoError) Error() string {
	return fmt.Sprintf("item %d inválido: %s", e.Indice+1, e.Motivo)
}

// ConflitoError marks a duplicate unique key (CPF, CNPJ, e-mail).
type ConflitoError struct {
	Campo string
}

func (e *ConflitoError) Error() string {
	return fmt.Sprintf("%s já cadastrado", e.Campo)
}

// isDuplicateKey reports whether err is a unique constraint violation.
// Requires the driver's error translation to be enabled on the connection.
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
