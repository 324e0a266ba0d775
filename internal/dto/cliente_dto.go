package dto

type CriarClienteRequest struct {
	Nome     string  `json:"nome"     validate:"required"`
	Tipo     string  `json:"tipo"     validate:"required"`
	CPF      *string `json:"cpf"`
	CNPJ     *string `json:"cnpj"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Endereco *string `json:"endereco"`
}

type ClienteResponse struct {
	ID       string  `json:"id"`
	Nome     string  `json:"nome"`
	Tipo     string  `json:"tipo"`
	CPF      *string `json:"cpf"`
	CNPJ     *string `json:"cnpj"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email"`
	Endereco *string `json:"endereco"`
}
