package dto

import "github.com/shopspring/decimal"

type CriarProdutoRequest struct {
	Nome       string          `json:"nome"       validate:"required"`
	Tipo       string          `json:"tipo"       validate:"required"`
	Valor      decimal.Decimal `json:"valor"      validate:"required,gt=0"`
	Quantidade decimal.Decimal `json:"quantidade" validate:"min=0"`
	Descricao  *string         `json:"descricao"`
}

type EditarProdutoRequest struct {
	ID         string          `json:"id"         validate:"required,uuid"`
	Nome       string          `json:"nome"       validate:"required"`
	Tipo       string          `json:"tipo"       validate:"required"`
	Valor      decimal.Decimal `json:"valor"      validate:"required,gt=0"`
	Quantidade decimal.Decimal `json:"quantidade" validate:"min=0"`
	Descricao  *string         `json:"descricao"`
}

type RemoverProdutoRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

type ProdutoResponse struct {
	ID         string          `json:"id"`
	Nome       string          `json:"nome"`
	Tipo       string          `json:"tipo"`
	Valor      decimal.Decimal `json:"valor"`
	Quantidade decimal.Decimal `json:"quantidade"`
	Descricao  *string         `json:"descricao"`
}
