package repository

import (
	"context"
	"errors"

	"plastgest/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrAjusteNegativo is returned by AjustarQuantidadeTx when the guarded update
// matched no row because the adjustment would drive quantidade below zero.
// Callers translate it into a typed insufficient-stock error with the product
// name they already hold.
var ErrAjusteNegativo = errors.New("ajuste deixaria o estoque negativo")

// ProdutoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
//
// The ...Tx variants run against a caller-supplied transaction handle; the
// ForUpdate reads take the row lock that serializes concurrent stock
// adjustments for the remainder of that transaction.
type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	FindAll(ctx context.Context) ([]model.Produto, error)
	Update(ctx context.Context, p *model.Produto) error

	CreateTx(tx *gorm.DB, p *model.Produto) error
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Produto, error)
	FindByNomeForUpdateTx(tx *gorm.DB, nome string) (*model.Produto, error)
	FindByTipoTx(tx *gorm.DB, tipo model.TipoProduto) ([]model.Produto, error)

	// AjustarQuantidadeTx applies a signed delta to quantidade with a guard
	// that refuses to let the result go negative.
	AjustarQuantidadeTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error

	// DeleteTx removes the product row and reports how many rows matched.
	DeleteTx(tx *gorm.DB, id uuid.UUID) (int64, error)

	// Transaction runs fn inside a database transaction. An error returned
	// by fn rolls back everything fn wrote through the Tx variants.
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *produtoRepo) FindAll(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produtoRepo) CreateTx(tx *gorm.DB, p *model.Produto) error {
	return tx.Create(p).Error
}

func (r *produtoRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *produtoRepo) FindByNomeForUpdateTx(tx *gorm.DB, nome string) (*model.Produto, error) {
	var p model.Produto
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, "nome = ?", nome).Error
	return &p, err
}

func (r *produtoRepo) FindByTipoTx(tx *gorm.DB, tipo model.TipoProduto) ([]model.Produto, error) {
	var produtos []model.Produto
	err := tx.Where("tipo = ?", tipo).Order("nome ASC").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) AjustarQuantidadeTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	res := tx.Model(&model.Produto{}).
		Where("id = ? AND quantidade + ? >= 0", id, delta).
		Update("quantidade", gorm.Expr("quantidade + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAjusteNegativo
	}
	return nil
}

func (r *produtoRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) (int64, error) {
	res := tx.Delete(&model.Produto{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *produtoRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
