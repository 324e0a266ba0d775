package repository

import (
	"plastgest/internal/model"

	"gorm.io/gorm"
)

// FichaRepository persists production tickets. Tickets are always written
// inside the production transaction, after the stock mutations they justify.
type FichaRepository interface {
	CreateExtrusaoTx(tx *gorm.DB, f *model.FichaExtrusao) error
	CreateCorteTx(tx *gorm.DB, f *model.FichaCorte) error
	CreateEntradaTx(tx *gorm.DB, h *model.HistoricoEntrada) error
}

type fichaRepo struct{ db *gorm.DB }

func NewFichaRepository(db *gorm.DB) FichaRepository { return &fichaRepo{db: db} }

func (r *fichaRepo) CreateExtrusaoTx(tx *gorm.DB, f *model.FichaExtrusao) error {
	return tx.Create(f).Error
}

func (r *fichaRepo) CreateCorteTx(tx *gorm.DB, f *model.FichaCorte) error {
	return tx.Create(f).Error
}

func (r *fichaRepo) CreateEntradaTx(tx *gorm.DB, h *model.HistoricoEntrada) error {
	return tx.Create(h).Error
}
