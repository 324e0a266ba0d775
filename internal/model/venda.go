package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venda is the live sale header. ValorTotal is written at the end of the sale
// transaction, after all line items are accumulated.
type Venda struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	ValorTotal     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	FormaPagamento string          `gorm:"not null"`
	TipoPagamento  string          `gorm:"not null"`
	NumeroCheque   *string
	VendidoEm      time.Time `gorm:"autoCreateTime"`

	Cliente *Cliente    `gorm:"foreignKey:ClienteID"`
	Itens   []ItemVenda `gorm:"foreignKey:VendaID"`
}

func (Venda) TableName() string { return "vendas" }

type ItemVenda struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VendaID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProdutoID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantidade    decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	ValorUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ValorTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (ItemVenda) TableName() string { return "itens_venda" }
