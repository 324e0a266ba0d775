package service

import (
	"context"
	"strings"

	"plastgest/internal/dto"
	"plastgest/internal/model"
	"plastgest/internal/repository"
)

type ClienteService interface {
	Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
}

type clienteService struct {
	clienteRepo repository.ClienteRepository
}

func NewClienteService(clienteRepo repository.ClienteRepository) ClienteService {
	return &clienteService{clienteRepo: clienteRepo}
}

// Criar registers a customer. FISICA requires a CPF, JURIDICA a CNPJ; the
// opposite document is discarded so a unique index never trips on an empty
// leftover value.
func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	tipo := model.TipoCliente(strings.ToUpper(req.Tipo))
	if !tipo.Valid() {
		return nil, &RequisicaoInvalidaError{Motivo: "tipo de cliente inválido: " + req.Tipo}
	}

	cliente := model.Cliente{
		Nome:     req.Nome,
		Tipo:     tipo,
		Telefone: req.Telefone,
		Email:    req.Email,
		Endereco: req.Endereco,
	}
	switch tipo {
	case model.ClienteFisica:
		if req.CPF == nil || *req.CPF == "" {
			return nil, &RequisicaoInvalidaError{Motivo: "cliente pessoa física exige CPF"}
		}
		cliente.CPF = req.CPF
	case model.ClienteJuridica:
		if req.CNPJ == nil || *req.CNPJ == "" {
			return nil, &RequisicaoInvalidaError{Motivo: "cliente pessoa jurídica exige CNPJ"}
		}
		cliente.CNPJ = req.CNPJ
	}

	if err := s.clienteRepo.Create(ctx, &cliente); err != nil {
		if isDuplicateKey(err) {
			return nil, &ConflitoError{Campo: "documento"}
		}
		return nil, err
	}
	return clienteToResponse(&cliente), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.clienteRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, *clienteToResponse(&clientes[i]))
	}
	return out, nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:       c.ID.String(),
		Nome:     c.Nome,
		Tipo:     string(c.Tipo),
		CPF:      c.CPF,
		CNPJ:     c.CNPJ,
		Telefone: c.Telefone,
		Email:    c.Email,
		Endereco: c.Endereco,
	}
}
