package dto

type CriarMaquinaRequest struct {
	Nome string `json:"nome" validate:"required"`
}

type EditarMaquinaRequest struct {
	ID   string `json:"id"   validate:"required,uuid"`
	Nome string `json:"nome" validate:"required"`
}

type RemoverMaquinaRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

type MaquinaResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}
