package dto

import "github.com/shopspring/decimal"

type ItemVendaRequest struct {
	ProdutoID     string          `json:"id"             validate:"required,uuid"`
	Quantidade    decimal.Decimal `json:"quantidade"     validate:"required"`
	ValorUnitario decimal.Decimal `json:"valor_unitario" validate:"required"`
}

type RegistrarVendaRequest struct {
	ClienteID      string             `json:"cliente"         validate:"required,uuid"`
	Produtos       []ItemVendaRequest `json:"produtos"        validate:"required,min=1,dive"`
	FormaPagamento string             `json:"forma_pagamento" validate:"required"`
	TipoPagamento  string             `json:"tipo_pagamento"  validate:"required"`
	NumeroCheque   *string            `json:"numero_cheque"`
	// Optional tax-id snapshot fields, captured into the sale history.
	CPF  *string `json:"cpf"`
	CNPJ *string `json:"cnpj"`
}

type VendaResponse struct {
	Mensagem       string          `json:"mensagem"`
	VendaID        string          `json:"vendaId"`
	HistoricoID    string          `json:"historicoId"`
	ValorTotal     decimal.Decimal `json:"valorTotal"`
	FormaPagamento string          `json:"forma_pagamento"`
	TipoPagamento  string          `json:"tipo_pagamento"`
	NumeroCheque   *string         `json:"numero_cheque"`
}

type HistoricoVendaItemResponse struct {
	ProdutoNome   string          `json:"produto_nome"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
}

type HistoricoVendaResponse struct {
	ID             string                       `json:"id"`
	ClienteID      string                       `json:"cliente_id"`
	ClienteNome    string                       `json:"cliente_nome"`
	ClienteCPF     *string                      `json:"cliente_cpf"`
	ClienteCNPJ    *string                      `json:"cliente_cnpj"`
	ValorTotal     decimal.Decimal              `json:"valor_total"`
	FormaPagamento string                       `json:"forma_pagamento"`
	TipoPagamento  string                       `json:"tipo_pagamento"`
	NumeroCheque   *string                      `json:"numero_cheque"`
	VendidoEm      string                       `json:"vendido_em"`
	Itens          []HistoricoVendaItemResponse `json:"itens"`
}
