package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Senha    string `json:"senha"    validate:"required"`
}

// LoginResponse carries the logged user and a redirect hint: produção
// accounts land on the kanban, everyone else on the dashboard.
type LoginResponse struct {
	User     UsuarioResponse `json:"user"`
	Redirect string          `json:"redirect"`
}

type UsuarioResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	NomeCompleto string `json:"nome_completo"`
	NivelAcesso  int    `json:"nivel_acesso"`
	Ativo        bool   `json:"ativo"`
}

type CriarUsuarioRequest struct {
	Username     string `json:"username"      validate:"required,min=3"`
	NomeCompleto string `json:"nome_completo" validate:"required"`
	Senha        string `json:"senha"         validate:"required,min=6"`
	NivelAcesso  int    `json:"nivel_acesso"  validate:"min=0,max=3"`
}

type AtualizarUsuarioRequest struct {
	NomeCompleto string `json:"nome_completo"`
	// Senha em branco mantém a atual
	Senha       string `json:"senha"        validate:"omitempty,min=6"`
	NivelAcesso *int   `json:"nivel_acesso" validate:"omitempty,min=0,max=3"`
}
