package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistoricoEntrada records stock credited into inventory by a cutting run.
type HistoricoEntrada struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID   uuid.UUID        `gorm:"type:uuid;index;not null"`
	Quantidade  decimal.Decimal  `gorm:"type:decimal(12,3);not null"`
	DataEntrada time.Time        `gorm:"not null"`
	Nome        string           `gorm:"not null"` // bag dimension label
	Operador    string           `gorm:"not null"`
	Maquina     string           `gorm:"not null"`
	Aparas      *decimal.Decimal `gorm:"type:decimal(12,3)"`
}

func (HistoricoEntrada) TableName() string { return "historico_entrada" }
