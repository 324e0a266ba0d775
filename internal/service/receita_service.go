package service

import (
	"context"
	"errors"

	"plastgest/internal/dto"
	"plastgest/internal/model"
	"plastgest/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReceitaService manages product formulations. A recipe is a list of raw
// materials with percentuais that must sum to exactly 100.
type ReceitaService interface {
	DefinirReceita(ctx context.Context, req dto.DefinirReceitaRequest) error
	ListarReceitas(ctx context.Context) ([]dto.ReceitaResponse, error)
	ListarConstituintes(ctx context.Context) ([]dto.ConstituinteResponse, error)
}

type receitaService struct {
	receitaRepo repository.ReceitaRepository
	produtoRepo repository.ProdutoRepository
}

func NewReceitaService(receitaRepo repository.ReceitaRepository, produtoRepo repository.ProdutoRepository) ReceitaService {
	return &receitaService{receitaRepo: receitaRepo, produtoRepo: produtoRepo}
}

// DefinirReceita applies the formulation to every product of the Bobina
// category, replacing existing constituents. If no Bobina product exists yet,
// a zero-stock placeholder is created so the formulation has a home.
//
// Validation happens entirely before the transaction opens: each percentual
// must be positive and the exact sum must be 100.
func (s *receitaService) DefinirReceita(ctx context.Context, req dto.DefinirReceitaRequest) error {
	soma := decimal.Zero
	for _, c := range req.Constituintes {
		if !c.Percentual.IsPositive() {
			return &ReceitaInvalidaError{Motivo: "percentual de '" + c.Nome + "' deve ser maior que zero"}
		}
		soma = soma.Add(c.Percentual)
	}
	if !soma.Equal(cem) {
		return &ReceitaInvalidaError{Motivo: "a soma dos percentuais deve ser exatamente 100, obtido " + soma.String()}
	}

	return s.produtoRepo.Transaction(ctx, func(tx *gorm.DB) error {
		bobinas, err := s.produtoRepo.FindByTipoTx(tx, model.TipoBobina)
		if err != nil {
			return err
		}
		if len(bobinas) == 0 {
			placeholder := model.Produto{
				Nome:       string(model.TipoBobina),
				Tipo:       model.TipoBobina,
				Valor:      decimal.Zero,
				Quantidade: decimal.Zero,
			}
			if err := s.produtoRepo.CreateTx(tx, &placeholder); err != nil {
				return err
			}
			bobinas = []model.Produto{placeholder}
		}

		for _, produto := range bobinas {
			receita, err := s.receitaRepo.FindByProdutoTx(tx, produto.ID)
			switch {
			case err == nil:
				if err := s.receitaRepo.DeleteConstituintesTx(tx, receita.ID); err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				receita = &model.Receita{ProdutoID: produto.ID}
				if err := s.receitaRepo.CreateTx(tx, receita); err != nil {
					return err
				}
			default:
				return err
			}

			for i, c := range req.Constituintes {
				if err := s.receitaRepo.CreateConstituinteTx(tx, &model.Constituinte{
					ReceitaID:    receita.ID,
					Constituinte: c.Nome,
					Percentual:   c.Percentual,
					Ordem:        i,
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (s *receitaService) ListarReceitas(ctx context.Context) ([]dto.ReceitaResponse, error) {
	receitas, err := s.receitaRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReceitaResponse, 0, len(receitas))
	for _, r := range receitas {
		out = append(out, dto.ReceitaResponse{ID: r.ID.String(), ProdutoID: r.ProdutoID.String()})
	}
	return out, nil
}

func (s *receitaService) ListarConstituintes(ctx context.Context) ([]dto.ConstituinteResponse, error) {
	constituintes, err := s.receitaRepo.FindAllConstituintes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConstituinteResponse, 0, len(constituintes))
	for _, c := range constituintes {
		out = append(out, dto.ConstituinteResponse{
			ID:           c.ID.String(),
			ReceitaID:    c.ReceitaID.String(),
			Constituinte: c.Constituinte,
			Percentual:   c.Percentual,
		})
	}
	return out, nil
}
