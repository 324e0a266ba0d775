package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of user roles. Stored as a small int, validated at
// the boundary and used as the sole representation internally.
type Role int

const (
	RoleGerente    Role = 1
	RoleSupervisor Role = 2
	RoleOperador   Role = 3
	RoleVendedor   Role = 4
)

func (r Role) Valid() bool {
	return r >= RoleGerente && r <= RoleVendedor
}

func (r Role) String() string {
	switch r {
	case RoleGerente:
		return "gerente"
	case RoleSupervisor:
		return "supervisor"
	case RoleOperador:
		return "operador"
	case RoleVendedor:
		return "vendedor"
	}
	return "desconhecido"
}

// Usuario stores system users with role-based access.
type Usuario struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"not null"`
	CPF       string    `gorm:"column:cpf;uniqueIndex;not null"`
	SenhaHash string    `gorm:"not null"`
	Role      Role      `gorm:"column:role_id;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Usuario) TableName() string { return "usuarios" }
