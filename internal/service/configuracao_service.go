package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/repository"
)

var ErrExtensaoInvalida = errors.New("formato de arquivo não permitido")

// Extensões aceitas para logo e favicon.
var extensoesPermitidas = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
	".ico":  true,
}

type ConfiguracaoService interface {
	Obter(ctx context.Context) (*dto.ConfiguracaoResponse, error)
	Atualizar(ctx context.Context, req dto.ConfiguracaoRequest) (*dto.ConfiguracaoResponse, error)
	// SalvarImagem stores an uploaded logo/favicon under the upload dir and
	// records the generated filename. campo must be "logo" or "favicon".
	SalvarImagem(ctx context.Context, campo, nomeOriginal string, conteudo io.Reader) (*dto.ConfiguracaoResponse, error)
}

type configuracaoService struct {
	repo       repository.ConfiguracaoRepository
	uploadPath string
}

func NewConfiguracaoService(repo repository.ConfiguracaoRepository, uploadPath string) ConfiguracaoService {
	return &configuracaoService{repo: repo, uploadPath: uploadPath}
}

func (s *configuracaoService) Obter(ctx context.Context) (*dto.ConfiguracaoResponse, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ConfiguracaoResponse{
		NomeEmpresa:     cfg.NomeEmpresa,
		Telefone:        cfg.Telefone,
		Endereco:        cfg.Endereco,
		LogoFilename:    cfg.LogoFilename,
		FaviconFilename: cfg.FaviconFilename,
	}, nil
}

func (s *configuracaoService) Atualizar(ctx context.Context, req dto.ConfiguracaoRequest) (*dto.ConfiguracaoResponse, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	cfg.NomeEmpresa = req.NomeEmpresa
	cfg.Telefone = req.Telefone
	cfg.Endereco = req.Endereco
	if err := s.repo.Save(ctx, cfg); err != nil {
		return nil, err
	}
	return s.Obter(ctx)
}

func (s *configuracaoService) SalvarImagem(ctx context.Context, campo, nomeOriginal string, conteudo io.Reader) (*dto.ConfiguracaoResponse, error) {
	ext := strings.ToLower(filepath.Ext(nomeOriginal))
	if !extensoesPermitidas[ext] {
		return nil, ErrExtensaoInvalida
	}
	if campo != "logo" && campo != "favicon" {
		return nil, fmt.Errorf("campo de imagem desconhecido: %s", campo)
	}

	if err := os.MkdirAll(s.uploadPath, 0o755); err != nil {
		return nil, err
	}
	filename := fmt.Sprintf("%s-%s%s", campo, uuid.NewString(), ext)
	dst, err := os.Create(filepath.Join(s.uploadPath, filename))
	if err != nil {
		return nil, err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, conteudo); err != nil {
		return nil, err
	}

	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if campo == "logo" {
		cfg.LogoFilename = filename
	} else {
		cfg.FaviconFilename = filename
	}
	if err := s.repo.Save(ctx, cfg); err != nil {
		return nil, err
	}
	return s.Obter(ctx)
}
