package repository

import (
	"context"

	"plastgest/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaquinaRepository interface {
	Create(ctx context.Context, m *model.Maquina) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Maquina, error)
	FindAll(ctx context.Context) ([]model.Maquina, error)
	UpdateNome(ctx context.Context, id uuid.UUID, nome string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type maquinaRepo struct{ db *gorm.DB }

func NewMaquinaRepository(db *gorm.DB) MaquinaRepository { return &maquinaRepo{db: db} }

func (r *maquinaRepo) Create(ctx context.Context, m *model.Maquina) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *maquinaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Maquina, error) {
	var m model.Maquina
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *maquinaRepo) FindAll(ctx context.Context) ([]model.Maquina, error) {
	var maquinas []model.Maquina
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&maquinas).Error
	return maquinas, err
}

func (r *maquinaRepo) UpdateNome(ctx context.Context, id uuid.UUID, nome string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Maquina{}).Where("id = ?", id).Update("nome", nome)
	return res.RowsAffected, res.Error
}

func (r *maquinaRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Maquina{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
