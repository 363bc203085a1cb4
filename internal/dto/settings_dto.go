package dto

type ConfiguracaoRequest struct {
	NomeEmpresa string `json:"nome_empresa" validate:"required"`
	Telefone    string `json:"telefone"`
	Endereco    string `json:"endereco"`
}

type ConfiguracaoResponse struct {
	NomeEmpresa     string `json:"nome_empresa"`
	Telefone        string `json:"telefone,omitempty"`
	Endereco        string `json:"endereco,omitempty"`
	LogoFilename    string `json:"logo_filename,omitempty"`
	FaviconFilename string `json:"favicon_filename,omitempty"`
}

type EtapaRequest struct {
	Nome  string `json:"nome"  validate:"required"`
	Ordem int    `json:"ordem" validate:"gte=0"`
}

type EtapaResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Ordem int    `json:"ordem"`
}

type StatusRequest struct {
	Nome string `json:"nome" validate:"required"`
	Cor  string `json:"cor"  validate:"omitempty,hexcolor"`
}

type StatusResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
	Cor  string `json:"cor"`
}
