package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"plastgest/internal/dto"
	"plastgest/internal/model"
	"plastgest/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// nomeProdutoAparas is the stock row credited with scrap by cutting runs.
// Scrap is only credited when this product exists.
const nomeProdutoAparas = "Aparas"

var cem = decimal.NewFromInt(100)

// ProducaoService runs the manufacturing workflows. Both variants open one
// transaction against the stock ledger; any failure at any step rolls back
// every debit and credit of that invocation.
type ProducaoService interface {
	RegistrarExtrusao(ctx context.Context, req dto.FichaExtrusaoRequest) (*dto.FichaResponse, error)
	RegistrarCorte(ctx context.Context, req dto.FichaCorteRequest) (*dto.FichaResponse, error)
}

type producaoService struct {
	produtoRepo repository.ProdutoRepository
	receitaRepo repository.ReceitaRepository
	fichaRepo   repository.FichaRepository
}

func NewProducaoService(
	produtoRepo repository.ProdutoRepository,
	receitaRepo repository.ReceitaRepository,
	fichaRepo repository.FichaRepository,
) ProducaoService {
	return &producaoService{produtoRepo: produtoRepo, receitaRepo: receitaRepo, fichaRepo: fichaRepo}
}

// ── Extrusão ──────────────────────────────────────────────────────────────────
// 1. Resolve the finished product and its recipe
// 2. Lock every raw material and verify sufficiency for the whole run
// 3. Debit materials by peso * percentual / 100, credit the finished product
// 4. Record the production ticket
// Steps 1–4 share one transaction; the sufficiency check and the debit happen
// under the same row locks, so concurrent runs over the same materials
// serialize instead of both passing a stale check.

func (s *producaoService) RegistrarExtrusao(ctx context.Context, req dto.FichaExtrusaoRequest) (*dto.FichaResponse, error) {
	produtoID, err := uuid.Parse(req.ProdutoID)
	if err != nil {
		return nil, &RequisicaoInvalidaError{Motivo: "id de produto inválido"}
	}
	if !req.Peso.IsPositive() {
		return nil, &RequisicaoInvalidaError{Motivo: "peso deve ser maior que zero"}
	}

	type consumo struct {
		materialID uuid.UUID
		nome       string
		usado      decimal.Decimal
	}

	var ficha model.FichaExtrusao
	txErr := s.produtoRepo.Transaction(ctx, func(tx *gorm.DB) error {
		produto, err := s.produtoRepo.FindByIDForUpdateTx(tx, produtoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NaoEncontradoError{Entidade: "Produto"}
			}
			return err
		}

		receita, err := s.receitaRepo.FindByProdutoTx(tx, produto.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSemReceita
			}
			return err
		}

		constituintes, err := s.receitaRepo.ConstituintesTx(tx, receita.ID)
		if err != nil {
			return err
		}
		if len(constituintes) == 0 {
			return ErrReceitaVazia
		}

		// Lock and verify every material before debiting anything, so a
		// failure on the last constituent never leaves a half-consumed recipe.
		consumos := make([]consumo, 0, len(constituintes))
		for _, c := range constituintes {
			usado := req.Peso.Mul(c.Percentual).Div(cem)

			material, err := s.produtoRepo.FindByNomeForUpdateTx(tx, c.Constituinte)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NaoEncontradoError{Entidade: "Insumo", Ref: c.Constituinte}
				}
				return err
			}
			if material.Quantidade.LessThan(usado) {
				return &EstoqueInsuficienteError{Produto: material.Nome}
			}
			consumos = append(consumos, consumo{materialID: material.ID, nome: material.Nome, usado: usado})
		}

		for _, c := range consumos {
			if err := s.produtoRepo.AjustarQuantidadeTx(tx, c.materialID, c.usado.Neg()); err != nil {
				if errors.Is(err, repository.ErrAjusteNegativo) {
					return &EstoqueInsuficienteError{Produto: c.nome}
				}
				return err
			}
		}

		if err := s.produtoRepo.AjustarQuantidadeTx(tx, produto.ID, req.Peso); err != nil {
			return err
		}

		ficha = model.FichaExtrusao{
			OperadorNome:    req.OperadorNome,
			OperadorCPF:     req.OperadorCPF,
			OperadorMaquina: req.OperadorMaquina,
			Inicio:          req.Inicio,
			Termino:         req.Termino,
			Produto:         produto.Nome,
			Peso:            req.Peso,
			Aparas:          req.Aparas,
			Obs:             req.Obs,
		}
		return s.fichaRepo.CreateExtrusaoTx(tx, &ficha)
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.FichaResponse{
		Mensagem: "Ficha de extrusão adicionada com sucesso.",
		FichaID:  ficha.ID.String(),
	}, nil
}

// ── Corte ─────────────────────────────────────────────────────────────────────
// Structurally the same workflow: credits the finished product by Total,
// optionally credits the scrap product, optionally debits the source roll
// (failing when the roll holds less than Total), and records the ticket plus
// a stock-entry history row, all in one transaction.

func (s *producaoService) RegistrarCorte(ctx context.Context, req dto.FichaCorteRequest) (*dto.FichaResponse, error) {
	produtoID, err := uuid.Parse(req.ProdutoID)
	if err != nil {
		return nil, &RequisicaoInvalidaError{Motivo: "id de produto inválido"}
	}
	if !req.Total.IsPositive() {
		return nil, &RequisicaoInvalidaError{Motivo: "total deve ser maior que zero"}
	}
	var bobinaID *uuid.UUID
	if req.BobinaID != nil && *req.BobinaID != "" {
		id, err := uuid.Parse(*req.BobinaID)
		if err != nil {
			return nil, &RequisicaoInvalidaError{Motivo: "id de bobina inválido"}
		}
		bobinaID = &id
	}

	var ficha model.FichaCorte
	txErr := s.produtoRepo.Transaction(ctx, func(tx *gorm.DB) error {
		ficha = model.FichaCorte{
			OperadorNome: req.OperadorNome,
			OperadorCPF:  req.OperadorCPF,
			Maquina:      req.Maquina,
			Turno:        req.Turno,
			SacolaDim:    req.SacolaDim,
			Bobina:       req.Bobina,
			BobinaID:     bobinaID,
			Total:        req.Total,
			Aparas:       req.Aparas,
			Obs:          req.Obs,
		}
		if err := s.fichaRepo.CreateCorteTx(tx, &ficha); err != nil {
			return err
		}

		// Credit the finished product
		if _, err := s.produtoRepo.FindByIDForUpdateTx(tx, produtoID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NaoEncontradoError{Entidade: "Produto"}
			}
			return err
		}
		if err := s.produtoRepo.AjustarQuantidadeTx(tx, produtoID, req.Total); err != nil {
			return err
		}

		// Credit scrap when a scrap product exists
		if req.Aparas != nil && req.Aparas.IsPositive() {
			aparasProduto, err := s.produtoRepo.FindByNomeForUpdateTx(tx, nomeProdutoAparas)
			switch {
			case err == nil:
				if err := s.produtoRepo.AjustarQuantidadeTx(tx, aparasProduto.ID, *req.Aparas); err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				// no scrap product registered, nothing to credit
			default:
				return err
			}
		}

		// Debit the source roll
		if bobinaID != nil {
			bobina, err := s.produtoRepo.FindByIDForUpdateTx(tx, *bobinaID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NaoEncontradoError{Entidade: "Bobina"}
				}
				return err
			}
			if bobina.Quantidade.LessThan(req.Total) {
				return &EstoqueInsuficienteError{Produto: bobina.Nome}
			}
			if err := s.produtoRepo.AjustarQuantidadeTx(tx, bobina.ID, req.Total.Neg()); err != nil {
				if errors.Is(err, repository.ErrAjusteNegativo) {
					return &EstoqueInsuficienteError{Produto: bobina.Nome}
				}
				return err
			}
		}

		entrada := model.HistoricoEntrada{
			ProdutoID:   produtoID,
			Quantidade:  req.Total,
			DataEntrada: time.Now(),
			Nome:        req.SacolaDim,
			Operador:    strings.TrimSpace(req.OperadorNome),
			Maquina:     strings.TrimSpace(req.Maquina),
			Aparas:      req.Aparas,
		}
		return s.fichaRepo.CreateEntradaTx(tx, &entrada)
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.FichaResponse{
		Mensagem: "Ficha de corte adicionada com sucesso.",
		FichaID:  ficha.ID.String(),
	}, nil
}
