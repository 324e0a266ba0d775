package service

import (
	"context"
	"errors"

	"plastgest/internal/dto"
	"plastgest/internal/model"
	"plastgest/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VendaService runs the sale workflow and serves the immutable history.
type VendaService interface {
	RegistrarVenda(ctx context.Context, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error)
	BuscarHistorico(ctx context.Context, id uuid.UUID) (*dto.HistoricoVendaResponse, error)
}

type vendaService struct {
	vendaRepo   repository.VendaRepository
	produtoRepo repository.ProdutoRepository
	clienteRepo repository.ClienteRepository
}

func NewVendaService(
	vendaRepo repository.VendaRepository,
	produtoRepo repository.ProdutoRepository,
	clienteRepo repository.ClienteRepository,
) VendaService {
	return &vendaService{vendaRepo: vendaRepo, produtoRepo: produtoRepo, clienteRepo: clienteRepo}
}

// itemVenda is a sale line after structural validation, ids parsed.
type itemVenda struct {
	produtoID     uuid.UUID
	quantidade    decimal.Decimal
	valorUnitario decimal.Decimal
}

// RegistrarVenda executes a sale as one transaction: every line item is locked
// and verified against stock, debited, recorded, and a denormalized history
// snapshot is written. Any failure rolls back the whole sale.
//
// Line items are validated before the transaction opens so malformed input
// never costs a database round trip.
func (s *vendaService) RegistrarVenda(ctx context.Context, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, &RequisicaoInvalidaError{Motivo: "id de cliente inválido"}
	}

	itens := make([]itemVenda, 0, len(req.Produtos))
	for i, p := range req.Produtos {
		produtoID, err := uuid.Parse(p.ProdutoID)
		if err != nil {
			return nil, &ItemVendaInvalidoError{Indice: i, Motivo: "id de produto inválido"}
		}
		if !p.Quantidade.IsPositive() {
			return nil, &ItemVendaInvalidoError{Indice: i, Motivo: "quantidade deve ser maior que zero"}
		}
		if !p.ValorUnitario.IsPositive() {
			return nil, &ItemVendaInvalidoError{Indice: i, Motivo: "valor unitário deve ser maior que zero"}
		}
		itens = append(itens, itemVenda{
			produtoID:     produtoID,
			quantidade:    p.Quantidade,
			valorUnitario: p.ValorUnitario,
		})
	}

	var venda model.Venda
	var historico model.HistoricoVenda
	txErr := s.vendaRepo.Transaction(ctx, func(tx *gorm.DB) error {
		cliente, err := s.clienteRepo.FindByIDTx(tx, clienteID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NaoEncontradoError{Entidade: "Cliente"}
			}
			return err
		}

		venda = model.Venda{
			ClienteID:      cliente.ID,
			ValorTotal:     decimal.Zero,
			FormaPagamento: req.FormaPagamento,
			TipoPagamento:  req.TipoPagamento,
			NumeroCheque:   req.NumeroCheque,
		}
		if err := s.vendaRepo.CreateTx(tx, &venda); err != nil {
			return err
		}

		total := decimal.Zero
		snapshots := make([]model.HistoricoVendaItem, 0, len(itens))
		for _, item := range itens {
			produto, err := s.produtoRepo.FindByIDForUpdateTx(tx, item.produtoID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NaoEncontradoError{Entidade: "Produto"}
				}
				return err
			}
			if produto.Quantidade.LessThan(item.quantidade) {
				return &EstoqueInsuficienteError{Produto: produto.Nome}
			}

			valorItem := item.quantidade.Mul(item.valorUnitario).Round(2)
			if err := s.vendaRepo.CreateItemTx(tx, &model.ItemVenda{
				VendaID:       venda.ID,
				ProdutoID:     produto.ID,
				Quantidade:    item.quantidade,
				ValorUnitario: item.valorUnitario,
				ValorTotal:    valorItem,
			}); err != nil {
				return err
			}
			if err := s.produtoRepo.AjustarQuantidadeTx(tx, produto.ID, item.quantidade.Neg()); err != nil {
				if errors.Is(err, repository.ErrAjusteNegativo) {
					return &EstoqueInsuficienteError{Produto: produto.Nome}
				}
				return err
			}

			total = total.Add(valorItem)
			snapshots = append(snapshots, model.HistoricoVendaItem{
				ProdutoNome:   produto.Nome,
				Quantidade:    item.quantidade,
				ValorUnitario: item.valorUnitario,
				ValorTotal:    valorItem,
			})
		}

		if err := s.vendaRepo.UpdateValorTotalTx(tx, venda.ID, total); err != nil {
			return err
		}
		venda.ValorTotal = total

		cpf := cliente.CPF
		if req.CPF != nil {
			cpf = req.CPF
		}
		cnpj := cliente.CNPJ
		if req.CNPJ != nil {
			cnpj = req.CNPJ
		}
		historico = model.HistoricoVenda{
			ClienteID:      cliente.ID,
			ClienteNome:    cliente.Nome,
			ClienteCPF:     cpf,
			ClienteCNPJ:    cnpj,
			ValorTotal:     total,
			FormaPagamento: req.FormaPagamento,
			TipoPagamento:  req.TipoPagamento,
			NumeroCheque:   req.NumeroCheque,
		}
		if err := s.vendaRepo.CreateHistoricoTx(tx, &historico); err != nil {
			return err
		}
		for i := range snapshots {
			snapshots[i].HistoricoVendaID = historico.ID
			if err := s.vendaRepo.CreateHistoricoItemTx(tx, &snapshots[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.VendaResponse{
		Mensagem:       "Venda registrada com sucesso.",
		VendaID:        venda.ID.String(),
		HistoricoID:    historico.ID.String(),
		ValorTotal:     venda.ValorTotal,
		FormaPagamento: venda.FormaPagamento,
		TipoPagamento:  venda.TipoPagamento,
		NumeroCheque:   venda.NumeroCheque,
	}, nil
}

func (s *vendaService) BuscarHistorico(ctx context.Context, id uuid.UUID) (*dto.HistoricoVendaResponse, error) {
	h, err := s.vendaRepo.FindHistoricoByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NaoEncontradoError{Entidade: "Histórico de venda"}
		}
		return nil, err
	}

	itens := make([]dto.HistoricoVendaItemResponse, 0, len(h.Itens))
	for _, item := range h.Itens {
		itens = append(itens, dto.HistoricoVendaItemResponse{
			ProdutoNome:   item.ProdutoNome,
			Quantidade:    item.Quantidade,
			ValorUnitario: item.ValorUnitario,
			ValorTotal:    item.ValorTotal,
		})
	}
	return &dto.HistoricoVendaResponse{
		ID:             h.ID.String(),
		ClienteID:      h.ClienteID.String(),
		ClienteNome:    h.ClienteNome,
		ClienteCPF:     h.ClienteCPF,
		ClienteCNPJ:    h.ClienteCNPJ,
		ValorTotal:     h.ValorTotal,
		FormaPagamento: h.FormaPagamento,
		TipoPagamento:  h.TipoPagamento,
		NumeroCheque:   h.NumeroCheque,
		VendidoEm:      h.VendidoEm.Format("2006-01-02 15:04:05"),
		Itens:          itens,
	}, nil
}
