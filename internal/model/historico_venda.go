package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistoricoVenda is the immutable denormalized snapshot of a sale, written in
// the same transaction as the live Venda. Customer and product names are
// captured at sale time so historical reports stay stable even if the live
// rows later change or disappear.
type HistoricoVenda struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID      uuid.UUID       `gorm:"type:uuid;not null"`
	ClienteNome    string          `gorm:"not null"`
	ClienteCPF     *string         `gorm:"column:cliente_cpf"`
	ClienteCNPJ    *string         `gorm:"column:cliente_cnpj"`
	ValorTotal     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FormaPagamento string          `gorm:"not null"`
	TipoPagamento  string          `gorm:"not null"`
	NumeroCheque   *string
	VendidoEm      time.Time `gorm:"autoCreateTime"`

	Itens []HistoricoVendaItem `gorm:"foreignKey:HistoricoVendaID"`
}

func (HistoricoVenda) TableName() string { return "historico_vendas" }

type HistoricoVendaItem struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HistoricoVendaID uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProdutoNome      string          `gorm:"not null"`
	Quantidade       decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	ValorUnitario    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ValorTotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (HistoricoVendaItem) TableName() string { return "historico_venda_itens" }
