package repository

import (
	"context"

	"plastgest/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReceitaRepository gives access to recipes and their constituents.
type ReceitaRepository interface {
	FindAll(ctx context.Context) ([]model.Receita, error)
	FindAllConstituintes(ctx context.Context) ([]model.Constituinte, error)

	FindByProdutoTx(tx *gorm.DB, produtoID uuid.UUID) (*model.Receita, error)
	CreateTx(tx *gorm.DB, r *model.Receita) error

	// ConstituintesTx returns a recipe's constituents in insertion order.
	ConstituintesTx(tx *gorm.DB, receitaID uuid.UUID) ([]model.Constituinte, error)
	CreateConstituinteTx(tx *gorm.DB, c *model.Constituinte) error
	DeleteConstituintesTx(tx *gorm.DB, receitaID uuid.UUID) error

	// Cascade helpers used by the product deletion workflow.
	DeleteConstituintesByProdutoTx(tx *gorm.DB, produtoID uuid.UUID) error
	DeleteByProdutoTx(tx *gorm.DB, produtoID uuid.UUID) error
}

type receitaRepo struct{ db *gorm.DB }

func NewReceitaRepository(db *gorm.DB) ReceitaRepository { return &receitaRepo{db: db} }

func (r *receitaRepo) FindAll(ctx context.Context) ([]model.Receita, error) {
	var receitas []model.Receita
	err := r.db.WithContext(ctx).Find(&receitas).Error
	return receitas, err
}

func (r *receitaRepo) FindAllConstituintes(ctx context.Context) ([]model.Constituinte, error) {
	var constituintes []model.Constituinte
	err := r.db.WithContext(ctx).Order("receita_id, ordem ASC").Find(&constituintes).Error
	return constituintes, err
}

func (r *receitaRepo) FindByProdutoTx(tx *gorm.DB, produtoID uuid.UUID) (*model.Receita, error) {
	var receita model.Receita
	err := tx.First(&receita, "produto_id = ?", produtoID).Error
	return &receita, err
}

func (r *receitaRepo) CreateTx(tx *gorm.DB, rec *model.Receita) error {
	return tx.Create(rec).Error
}

func (r *receitaRepo) ConstituintesTx(tx *gorm.DB, receitaID uuid.UUID) ([]model.Constituinte, error) {
	var constituintes []model.Constituinte
	err := tx.Where("receita_id = ?", receitaID).Order("ordem ASC").Find(&constituintes).Error
	return constituintes, err
}

func (r *receitaRepo) CreateConstituinteTx(tx *gorm.DB, c *model.Constituinte) error {
	return tx.Create(c).Error
}

func (r *receitaRepo) DeleteConstituintesTx(tx *gorm.DB, receitaID uuid.UUID) error {
	return tx.Delete(&model.Constituinte{}, "receita_id = ?", receitaID).Error
}

func (r *receitaRepo) DeleteConstituintesByProdutoTx(tx *gorm.DB, produtoID uuid.UUID) error {
	return tx.Where("receita_id IN (?)",
		tx.Session(&gorm.Session{NewDB: true}).Model(&model.Receita{}).Select("id").Where("produto_id = ?", produtoID),
	).Delete(&model.Constituinte{}).Error
}

func (r *receitaRepo) DeleteByProdutoTx(tx *gorm.DB, produtoID uuid.UUID) error {
	return tx.Delete(&model.Receita{}, "produto_id = ?", produtoID).Error
}
