package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FichaExtrusao records one extrusion run. Its creation triggers the
// production workflow: recipe materials are debited and the finished product
// is credited in the same transaction that inserts this row.
type FichaExtrusao struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OperadorNome    string          `gorm:"not null"`
	OperadorCPF     string          `gorm:"column:operador_cpf;not null"`
	OperadorMaquina string          `gorm:"not null"`
	Inicio          string          `gorm:"not null"`
	Termino         string          `gorm:"not null"`
	Produto         string          `gorm:"not null"` // finished product name at run time
	Peso            decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Aparas          decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	Obs             *string
	PreenchidoEm    time.Time `gorm:"autoCreateTime"`
}

func (FichaExtrusao) TableName() string { return "fichas_extrusao" }

// FichaCorte records one cutting run (shift/machine dimensions instead of a
// time window). It may debit a source roll (bobina) and credit the scrap
// product, all inside one transaction.
type FichaCorte struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OperadorNome string    `gorm:"not null"`
	OperadorCPF  string    `gorm:"column:operador_cpf;not null"`
	Maquina      string    `gorm:"not null"`
	Turno        string    `gorm:"not null"`
	SacolaDim    string    `gorm:"not null"`
	Bobina       *string
	BobinaID     *uuid.UUID       `gorm:"type:uuid"`
	Total        decimal.Decimal  `gorm:"type:decimal(12,3);not null"`
	Aparas       *decimal.Decimal `gorm:"type:decimal(12,3)"`
	Obs          *string
	PreenchidoEm time.Time `gorm:"autoCreateTime"`
}

func (FichaCorte) TableName() string { return "fichas_corte" }
