package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receita is the bill-of-materials of one finished product. A product has at
// most one active recipe; re-adding a recipe replaces its constituents.
type Receita struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Constituintes []Constituinte `gorm:"foreignKey:ReceitaID"`
}

func (Receita) TableName() string { return "receitas" }

// Constituinte is one raw-material line within a recipe. The material is
// resolved by name against produtos at consumption time. Percentuais of a
// recipe sum to exactly 100, validated at write time.
type Constituinte struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReceitaID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	Constituinte string          `gorm:"not null"`
	Percentual   decimal.Decimal `gorm:"type:decimal(6,3);not null"`
	// Ordem preserves insertion order; the production workflow consumes
	// constituents in this order.
	Ordem     int `gorm:"not null"`
	CreatedAt time.Time
}

func (Constituinte) TableName() string { return "constituintes" }
