package dto

import "github.com/shopspring/decimal"

// FichaExtrusaoRequest triggers the extrusion production workflow: recipe
// materials are consumed and the finished product credited by Peso.
type FichaExtrusaoRequest struct {
	ProdutoID       string          `json:"id"               validate:"required,uuid"`
	OperadorNome    string          `json:"operador_nome"    validate:"required"`
	OperadorCPF     string          `json:"operador_cpf"     validate:"required"`
	OperadorMaquina string          `json:"operador_maquina" validate:"required"`
	Inicio          string          `json:"inicio"           validate:"required"`
	Termino         string          `json:"termino"          validate:"required"`
	Peso            decimal.Decimal `json:"peso"             validate:"required"`
	Aparas          decimal.Decimal `json:"aparas"`
	Obs             *string         `json:"obs"`
}

// FichaCorteRequest triggers the cutting production workflow. BobinaID, when
// present, names the source roll to debit by Total.
type FichaCorteRequest struct {
	ProdutoID    string           `json:"produto_id"    validate:"required,uuid"`
	OperadorNome string           `json:"operador_nome" validate:"required"`
	OperadorCPF  string           `json:"operador_cpf"  validate:"required"`
	Maquina      string           `json:"maquina"       validate:"required"`
	Turno        string           `json:"turno"         validate:"required"`
	SacolaDim    string           `json:"sacola_dim"    validate:"required"`
	Bobina       *string          `json:"bobina"`
	BobinaID     *string          `json:"bobina_id"     validate:"omitempty,uuid"`
	Total        decimal.Decimal  `json:"total"         validate:"required"`
	Aparas       *decimal.Decimal `json:"aparas"`
	Obs          *string          `json:"obs"`
}

type FichaResponse struct {
	Mensagem string `json:"mensagem"`
	FichaID  string `json:"fichaId"`
}
