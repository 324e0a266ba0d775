package repository

import (
	"context"

	"plastgest/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VendaRepository covers the live sale tables and the denormalized history
// snapshot. Everything the sale workflow writes goes through the Tx variants
// so the whole sale is one unit of work.
type VendaRepository interface {
	CreateTx(tx *gorm.DB, v *model.Venda) error
	CreateItemTx(tx *gorm.DB, item *model.ItemVenda) error
	UpdateValorTotalTx(tx *gorm.DB, id uuid.UUID, total decimal.Decimal) error

	CreateHistoricoTx(tx *gorm.DB, h *model.HistoricoVenda) error
	CreateHistoricoItemTx(tx *gorm.DB, item *model.HistoricoVendaItem) error

	// DeleteItensByProdutoTx is a cascade step of the product deletion workflow.
	DeleteItensByProdutoTx(tx *gorm.DB, produtoID uuid.UUID) error

	FindHistoricoByID(ctx context.Context, id uuid.UUID) (*model.HistoricoVenda, error)

	// Transaction runs fn inside a database transaction. An error returned
	// by fn rolls back everything fn wrote through the Tx variants.
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) CreateTx(tx *gorm.DB, v *model.Venda) error {
	return tx.Create(v).Error
}

func (r *vendaRepo) CreateItemTx(tx *gorm.DB, item *model.ItemVenda) error {
	return tx.Create(item).Error
}

func (r *vendaRepo) UpdateValorTotalTx(tx *gorm.DB, id uuid.UUID, total decimal.Decimal) error {
	return tx.Model(&model.Venda{}).Where("id = ?", id).Update("valor_total", total).Error
}

func (r *vendaRepo) CreateHistoricoTx(tx *gorm.DB, h *model.HistoricoVenda) error {
	return tx.Create(h).Error
}

func (r *vendaRepo) CreateHistoricoItemTx(tx *gorm.DB, item *model.HistoricoVendaItem) error {
	return tx.Create(item).Error
}

func (r *vendaRepo) DeleteItensByProdutoTx(tx *gorm.DB, produtoID uuid.UUID) error {
	return tx.Delete(&model.ItemVenda{}, "produto_id = ?", produtoID).Error
}

func (r *vendaRepo) FindHistoricoByID(ctx context.Context, id uuid.UUID) (*model.HistoricoVenda, error) {
	var h model.HistoricoVenda
	err := r.db.WithContext(ctx).Preload("Itens").First(&h, "id = ?", id).Error
	return &h, err
}

func (r *vendaRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
