package model

import (
	"time"

	"github.com/google/uuid"
)

// TipoCliente distinguishes individuals from organizations.
// Fisica requires CPF; Juridica requires CNPJ.
type TipoCliente string

const (
	ClienteFisica   TipoCliente = "FISICA"
	ClienteJuridica TipoCliente = "JURIDICA"
)

func (t TipoCliente) Valid() bool {
	return t == ClienteFisica || t == ClienteJuridica
}

type Cliente struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string      `gorm:"not null"`
	Tipo      TipoCliente `gorm:"type:varchar(10);not null"`
	CPF       *string     `gorm:"column:cpf;uniqueIndex"`
	CNPJ      *string     `gorm:"column:cnpj;uniqueIndex"`
	Telefone  *string
	Email     *string `gorm:"uniqueIndex"`
	Endereco  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cliente) TableName() string { return "clientes" }
