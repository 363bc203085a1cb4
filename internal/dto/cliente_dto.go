package dto

type ClienteRequest struct {
	TipoPessoa string `json:"tipo_pessoa" validate:"required,oneof=PF PJ"`
	Nome       string `json:"nome"        validate:"required"`
	Documento  string `json:"documento"`
	Telefone   string `json:"telefone"`
	Email      string `json:"email"       validate:"omitempty,email"`
	IsRevenda  bool   `json:"is_revenda"`
}

type ClienteResponse struct {
	ID         string `json:"id"`
	TipoPessoa string `json:"tipo_pessoa"`
	Nome       string `json:"nome"`
	Documento  string `json:"documento,omitempty"`
	Telefone   string `json:"telefone,omitempty"`
	Email      string `json:"email,omitempty"`
	IsRevenda  bool   `json:"is_revenda"`
}

type ClienteFiltro struct {
	Busca  string `form:"q"`
	Limit  int    `form:"limit,default=50"`
	Offset int    `form:"offset,default=0"`
}
