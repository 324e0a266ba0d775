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

type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context) ([]dto.ProdutoResponse, error)
	Buscar(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	Editar(ctx context.Context, req dto.EditarProdutoRequest) (*dto.ProdutoResponse, error)
	Remover(ctx context.Context, id uuid.UUID) error
}

type produtoService struct {
	produtoRepo repository.ProdutoRepository
	receitaRepo repository.ReceitaRepository
	vendaRepo   repository.VendaRepository
}

func NewProdutoService(
	produtoRepo repository.ProdutoRepository,
	receitaRepo repository.ReceitaRepository,
	vendaRepo repository.VendaRepository,
) ProdutoService {
	return &produtoService{produtoRepo: produtoRepo, receitaRepo: receitaRepo, vendaRepo: vendaRepo}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	tipo := model.TipoProduto(req.Tipo)
	if !tipo.Valid() {
		return nil, &RequisicaoInvalidaError{Motivo: "tipo de produto inválido: " + req.Tipo}
	}

	produto := model.Produto{
		Nome:       req.Nome,
		Tipo:       tipo,
		Valor:      req.Valor,
		Quantidade: req.Quantidade,
		Descricao:  req.Descricao,
	}
	if err := s.produtoRepo.Create(ctx, &produto); err != nil {
		return nil, err
	}
	return produtoToResponse(&produto), nil
}

func (s *produtoService) Listar(ctx context.Context) ([]dto.ProdutoResponse, error) {
	produtos, err := s.produtoRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		out = append(out, *produtoToResponse(&produtos[i]))
	}
	return out, nil
}

func (s *produtoService) Buscar(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	produto, err := s.produtoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NaoEncontradoError{Entidade: "Produto"}
		}
		return nil, err
	}
	return produtoToResponse(produto), nil
}

func (s *produtoService) Editar(ctx context.Context, req dto.EditarProdutoRequest) (*dto.ProdutoResponse, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, &RequisicaoInvalidaError{Motivo: "id de produto inválido"}
	}
	tipo := model.TipoProduto(req.Tipo)
	if !tipo.Valid() {
		return nil, &RequisicaoInvalidaError{Motivo: "tipo de produto inválido: " + req.Tipo}
	}

	produto, err := s.produtoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NaoEncontradoError{Entidade: "Produto"}
		}
		return nil, err
	}

	produto.Nome = req.Nome
	produto.Tipo = tipo
	produto.Valor = req.Valor
	produto.Quantidade = req.Quantidade
	produto.Descricao = req.Descricao
	if err := s.produtoRepo.Update(ctx, produto); err != nil {
		return nil, err
	}
	return produtoToResponse(produto), nil
}

// Remover deletes a product and everything that references it, in one
// transaction. Steps run leaf first so no foreign key is left dangling:
//
//  1. sale line items referencing the product
//  2. constituents of the product's recipes
//  3. the recipes themselves
//  4. the product row
//
// History snapshots are untouched: they reference products by name, not id.
func (s *produtoService) Remover(ctx context.Context, id uuid.UUID) error {
	return s.produtoRepo.Transaction(ctx, func(tx *gorm.DB) error {
		steps := []func(*gorm.DB) error{
			func(tx *gorm.DB) error { return s.vendaRepo.DeleteItensByProdutoTx(tx, id) },
			func(tx *gorm.DB) error { return s.receitaRepo.DeleteConstituintesByProdutoTx(tx, id) },
			func(tx *gorm.DB) error { return s.receitaRepo.DeleteByProdutoTx(tx, id) },
		}
		for _, step := range steps {
			if err := step(tx); err != nil {
				return err
			}
		}

		rows, err := s.produtoRepo.DeleteTx(tx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return &NaoEncontradoError{Entidade: "Produto"}
		}
		return nil
	})
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:         p.ID.String(),
		Nome:       p.Nome,
		Tipo:       string(p.Tipo),
		Valor:      p.Valor,
		Quantidade: p.Quantidade,
		Descricao:  p.Descricao,
	}
}
