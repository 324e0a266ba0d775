package service

import (
	"context"
	"errors"

	"plastgest/internal/dto"
	"plastgest/internal/model"
	"plastgest/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaquinaService interface {
	Criar(ctx context.Context, req dto.CriarMaquinaRequest) (*dto.MaquinaResponse, error)
	Listar(ctx context.Context) ([]dto.MaquinaResponse, error)
	Buscar(ctx context.Context, id uuid.UUID) (*dto.MaquinaResponse, error)
	Editar(ctx context.Context, req dto.EditarMaquinaRequest) error
	Remover(ctx context.Context, id uuid.UUID) error
}

type maquinaService struct {
	maquinaRepo repository.MaquinaRepository
}

func NewMaquinaService(maquinaRepo repository.MaquinaRepository) MaquinaService {
	return &maquinaService{maquinaRepo: maquinaRepo}
}

func (s *maquinaService) Criar(ctx context.Context, req dto.CriarMaquinaRequest) (*dto.MaquinaResponse, error) {
	maquina := model.Maquina{Nome: req.Nome}
	if err := s.maquinaRepo.Create(ctx, &maquina); err != nil {
		if isDuplicateKey(err) {
			return nil, &ConflitoError{Campo: "nome de máquina"}
		}
		return nil, err
	}
	return &dto.MaquinaResponse{ID: maquina.ID.String(), Nome: maquina.Nome}, nil
}

func (s *maquinaService) Listar(ctx context.Context) ([]dto.MaquinaResponse, error) {
	maquinas, err := s.maquinaRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaquinaResponse, 0, len(maquinas))
	for _, m := range maquinas {
		out = append(out, dto.MaquinaResponse{ID: m.ID.String(), Nome: m.Nome})
	}
	return out, nil
}

func (s *maquinaService) Buscar(ctx context.Context, id uuid.UUID) (*dto.MaquinaResponse, error) {
	maquina, err := s.maquinaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NaoEncontradoError{Entidade: "Máquina"}
		}
		return nil, err
	}
	return &dto.MaquinaResponse{ID: maquina.ID.String(), Nome: maquina.Nome}, nil
}

func (s *maquinaService) Editar(ctx context.Context, req dto.EditarMaquinaRequest) error {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return &RequisicaoInvalidaError{Motivo: "id de máquina inválido"}
	}
	rows, err := s.maquinaRepo.UpdateNome(ctx, id, req.Nome)
	if err != nil {
		if isDuplicateKey(err) {
			return &ConflitoError{Campo: "nome de máquina"}
		}
		return err
	}
	if rows == 0 {
		return &NaoEncontradoError{Entidade: "Máquina"}
	}
	return nil
}

func (s *maquinaService) Remover(ctx context.Context, id uuid.UUID) error {
	rows, err := s.maquinaRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return &NaoEncontradoError{Entidade: "Máquina"}
	}
	return nil
}
