package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TipoProduto is the closed set of product categories.
type TipoProduto string

const (
	TipoMaterial       TipoProduto = "Material"
	TipoProdutoAcabado TipoProduto = "Produto"
	TipoSobras         TipoProduto = "Sobras"
	TipoBobina         TipoProduto = "Bobina"
)

func (t TipoProduto) Valid() bool {
	switch t {
	case TipoMaterial, TipoProdutoAcabado, TipoSobras, TipoBobina:
		return true
	}
	return false
}

// Produto holds the stock ledger: Quantidade is the mutable quantity-on-hand
// that the production, sale and deletion workflows contend over. Every
// mutation happens inside a transaction holding the row lock.
type Produto struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome       string          `gorm:"index;not null"`
	Tipo       TipoProduto     `gorm:"type:varchar(20);not null"`
	Valor      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Quantidade decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	Descricao  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Produto) TableName() string { return "produtos" }
