package dto

import "github.com/shopspring/decimal"

type ConstituinteRequest struct {
	Nome       string          `json:"nome"       validate:"required"`
	Percentual decimal.Decimal `json:"percentual" validate:"required"`
}

// DefinirReceitaRequest applies one formulation to every product of the
// configured category (Bobina).
type DefinirReceitaRequest struct {
	Constituintes []ConstituinteRequest `json:"constituintes" validate:"required,min=1,dive"`
}

type ReceitaResponse struct {
	ID        string `json:"id"`
	ProdutoID string `json:"produto_id"`
}

type ConstituinteResponse struct {
	ID           string          `json:"id"`
	ReceitaID    string          `json:"receita_id"`
	Constituinte string          `json:"constituinte"`
	Percentual   decimal.Decimal `json:"percentual"`
}
