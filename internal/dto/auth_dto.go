package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterRequest struct {
	Nome   string `json:"nome"    validate:"required"`
	CPF    string `json:"cpf"     validate:"required,len=11,numeric"`
	Senha  string `json:"senha"   validate:"required,min=6"`
	RoleID int    `json:"role_id" validate:"required"`
}

type LoginRequest struct {
	CPF   string `json:"cpf"   validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RegisterResponse struct {
	Mensagem  string `json:"mensagem"`
	UsuarioID string `json:"usuarioId"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	RoleID       int    `json:"role_id"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type UsuarioResponse struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	CPF    string `json:"cpf"`
	RoleID int    `json:"role_id"`
}

type RemoverUsuarioRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

// EditarUsuarioRequest updates a user; Senha is optional, empty keeps the
// current hash.
type EditarUsuarioRequest struct {
	ID     string `json:"id"      validate:"required,uuid"`
	Nome   string `json:"nome"    validate:"required"`
	CPF    string `json:"cpf"     validate:"required,len=11,numeric"`
	Senha  string `json:"senha"   validate:"omitempty,min=6"`
	RoleID int    `json:"role_id" validate:"required"`
}
