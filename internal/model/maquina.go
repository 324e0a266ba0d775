package model

import (
	"time"

	"github.com/google/uuid"
)

type Maquina struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Maquina) TableName() string { return "maquinas" }
