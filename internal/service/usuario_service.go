package service

import (
	"context"
	"errors"

	"plastgest/internal/dto"
	"plastgest/internal/model"
	"plastgest/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UsuarioService interface {
	Listar(ctx context.Context) ([]dto.UsuarioResponse, error)
	Buscar(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error)
	Editar(ctx context.Context, req dto.EditarUsuarioRequest) (*dto.UsuarioResponse, error)
	Remover(ctx context.Context, id uuid.UUID) error
}

type usuarioService struct {
	usuarioRepo repository.UsuarioRepository
}

func NewUsuarioService(usuarioRepo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{usuarioRepo: usuarioRepo}
}

func (s *usuarioService) Listar(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.usuarioRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, *usuarioToResponse(&usuarios[i]))
	}
	return out, nil
}

func (s *usuarioService) Buscar(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error) {
	usuario, err := s.usuarioRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NaoEncontradoError{Entidade: "Usuário"}
		}
		return nil, err
	}
	return usuarioToResponse(usuario), nil
}

func (s *usuarioService) Editar(ctx context.Context, req dto.EditarUsuarioRequest) (*dto.UsuarioResponse, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, &RequisicaoInvalidaError{Motivo: "id de usuário inválido"}
	}
	role := model.Role(req.RoleID)
	if !role.Valid() {
		return nil, &RequisicaoInvalidaError{Motivo: "role_id inválido"}
	}

	usuario, err := s.usuarioRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NaoEncontradoError{Entidade: "Usuário"}
		}
		return nil, err
	}

	// Changing the CPF must not collide with another user.
	if req.CPF != usuario.CPF {
		if outro, err := s.usuarioRepo.FindByCPF(ctx, req.CPF); err == nil && outro.ID != usuario.ID {
			return nil, ErrCPFDuplicado
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	usuario.Nome = req.Nome
	usuario.CPF = req.CPF
	usuario.Role = role
	if req.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcryptCost)
		if err != nil {
			return nil, err
		}
		usuario.SenhaHash = string(hash)
	}

	if err := s.usuarioRepo.Update(ctx, usuario); err != nil {
		return nil, err
	}
	return usuarioToResponse(usuario), nil
}

func (s *usuarioService) Remover(ctx context.Context, id uuid.UUID) error {
	rows, err := s.usuarioRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return &NaoEncontradoError{Entidade: "Usuário"}
	}
	return nil
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:     u.ID.String(),
		Nome:   u.Nome,
		CPF:    u.CPF,
		RoleID: int(u.Role),
	}
}
