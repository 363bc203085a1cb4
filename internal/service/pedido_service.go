package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/infra"
	"github.com/nunes1886/prisma/internal/model"
	"github.com/nunes1886/prisma/internal/pricing"
	"github.com/nunes1886/prisma/internal/repository"
)

var (
	ErrPedidoNaoEncontrado  = errors.New("pedido não encontrado")
	ErrCancelarFinalizado   = errors.New("pedido finalizado não pode ser cancelado")
	ErrStatusNaoEncontrado  = errors.New("status não encontrado")
	ErrEtapaNaoEncontrada   = errors.New("etapa não encontrada")
	ErrClienteNaoEncontrado = errors.New("cliente não encontrado")
)

type PedidoService interface {
	CriarPedido(ctx context.Context, usuarioID uuid.UUID, req dto.CriarPedidoRequest) (*dto.PedidoResponse, error)
	ListarPedidos(ctx context.Context, filtro dto.PedidoFiltro) ([]dto.PedidoResponse, int64, error)
	ObterPedido(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	MudarEtapa(ctx context.Context, id, etapaID uuid.UUID) (*dto.PedidoResponse, error)
	MudarStatus(ctx context.Context, id, statusID uuid.UUID) (*dto.PedidoResponse, error)
	Kanban(ctx context.Context) ([]dto.KanbanColuna, error)
	GerarOrcamentoPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error)
}

type pedidoService struct {
	repo           repository.PedidoRepository
	clienteRepo    repository.ClienteRepository
	materialRepo   repository.MaterialRepository
	etapaRepo      repository.EtapaRepository
	statusRepo     repository.StatusRepository
	lancamentoRepo repository.LancamentoRepository
	configRepo     repository.ConfiguracaoRepository
}

func NewPedidoService(
	repo repository.PedidoRepository,
	clienteRepo repository.ClienteRepository,
	materialRepo repository.MaterialRepository,
	etapaRepo repository.EtapaRepository,
	statusRepo repository.StatusRepository,
	lancamentoRepo repository.LancamentoRepository,
	configRepo repository.ConfiguracaoRepository,
) PedidoService {
	return &pedidoService{
		repo:           repo,
		clienteRepo:    clienteRepo,
		materialRepo:   materialRepo,
		etapaRepo:      etapaRepo,
		statusRepo:     statusRepo,
		lancamentoRepo: lancamentoRepo,
		configRepo:     configRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// CriarPedido registra o pedido completo em uma única transação:
//  1. resolve cliente e materiais, congela preços e calcula subtotais
//  2. posiciona na primeira etapa com status Orçamento
//  3. grava cabeçalho + itens
//  4. gera a receita pendente no caixa quando o total é positivo
func (s *pedidoService) CriarPedido(ctx context.Context, usuarioID uuid.UUID, req dto.CriarPedidoRequest) (*dto.PedidoResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente_id inválido: %w", err)
	}
	cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}

	var prazo *time.Time
	if req.Prazo != "" {
		t, err := time.Parse("2006-01-02", req.Prazo)
		if err != nil {
			return nil, fmt.Errorf("prazo inválido: %w", err)
		}
		prazo = &t
	}

	// Resolve materials and freeze prices outside the TX. Any invalid line
	// aborts the whole order before a single row is written.
	type itemResolvido struct {
		material *model.Material
		req      dto.ItemPedidoRequest
		preco    decimal.Decimal
		subtotal decimal.Decimal
	}

	var resolvidos []itemResolvido
	total := decimal.Zero

	for _, item := range req.Items {
		mid, err := uuid.Parse(item.MaterialID)
		if err != nil {
			return nil, fmt.Errorf("material_id inválido: %w", err)
		}
		m, err := s.materialRepo.FindByID(ctx, mid)
		if err != nil {
			return nil, fmt.Errorf("material %s não encontrado", item.MaterialID)
		}
		if !m.Ativo {
			return nil, fmt.Errorf("material %s está inativo", m.Nome)
		}

		subtotal, err := pricing.Subtotal(m, item.Quantidade, item.Largura, item.Altura, cliente.IsRevenda)
		if err != nil {
			return nil, fmt.Errorf("item com material %s: %w", m.Nome, err)
		}

		total = total.Add(subtotal)
		resolvidos = append(resolvidos, itemResolvido{
			material: m,
			req:      item,
			preco:    pricing.PrecoUnitario(m, cliente.IsRevenda),
			subtotal: subtotal,
		})
	}

	etapa, err := s.etapaRepo.Primeira(ctx)
	if err != nil {
		return nil, errors.New("nenhuma etapa de produção cadastrada")
	}
	status, err := s.statusRepo.FindByNome(ctx, model.StatusOrcamento)
	if err != nil {
		return nil, errors.New("status Orçamento não cadastrado")
	}

	var pedido model.Pedido
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		pedido = model.Pedido{
			Titulo:      req.Titulo,
			ClienteID:   cliente.ID,
			UsuarioID:   usuarioID,
			EtapaID:     etapa.ID,
			StatusID:    status.ID,
			ValorTotal:  total,
			Prazo:       prazo,
			Observacoes: req.Observacoes,
		}
		for _, r := range resolvidos {
			pedido.Items = append(pedido.Items, model.ItemPedido{
				MaterialID:    r.material.ID,
				Largura:       r.req.Largura,
				Altura:        r.req.Altura,
				Quantidade:    r.req.Quantidade,
				PrecoUnitario: r.preco,
				Subtotal:      r.subtotal,
			})
		}
		if err := s.repo.Create(ctx, tx, &pedido); err != nil {
			return err
		}

		if total.IsPositive() {
			vencimento := time.Now()
			if prazo != nil {
				vencimento = *prazo
			}
			uid := usuarioID
			receita := model.Lancamento{
				Tipo:           model.LancamentoReceita,
				Descricao:      fmt.Sprintf("Pedido #%d - %s", pedido.Numero, req.Titulo),
				Valor:          total,
				Status:         model.LancamentoPendente,
				DataVencimento: vencimento,
				PedidoID:       &pedido.ID,
				UsuarioID:      &uid,
			}
			return s.lancamentoRepo.CreateTx(ctx, tx, &receita)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	pedido.Cliente = cliente
	pedido.Etapa = etapa
	pedido.Status = status
	resp := pedidoToResponse(&pedido)
	for i, r := range resolvidos {
		resp.Items[i].MaterialNome = r.material.Nome
		resp.Items[i].Unidade = r.material.Unidade
	}
	return resp, nil
}

func (s *pedidoService) ListarPedidos(ctx context.Context, filtro dto.PedidoFiltro) ([]dto.PedidoResponse, int64, error) {
	if filtro.Limit < 1 {
		filtro.Limit = 50
	}
	pedidos, total, err := s.repo.List(ctx, filtro)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		p := pedidoToResponse(&pedidos[i])
		p.Items = nil
		out = append(out, *p)
	}
	return out, total, nil
}

func (s *pedidoService) ObterPedido(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPedidoNaoEncontrado
	}
	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) MudarEtapa(ctx context.Context, id, etapaID uuid.UUID) (*dto.PedidoResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, ErrPedidoNaoEncontrado
	}
	if _, err := s.etapaRepo.FindByID(ctx, etapaID); err != nil {
		return nil, ErrEtapaNaoEncontrada
	}
	if err := s.repo.UpdateEtapa(ctx, id, etapaID); err != nil {
		return nil, err
	}
	return s.ObterPedido(ctx, id)
}

func (s *pedidoService) MudarStatus(ctx context.Context, id, statusID uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPedidoNaoEncontrado
	}
	novo, err := s.statusRepo.FindByID(ctx, statusID)
	if err != nil {
		return nil, ErrStatusNaoEncontrado
	}

	// Um pedido já entregue não pode virar cancelamento.
	if pedido.Status != nil && pedido.Status.Nome == model.StatusFinalizado && novo.Nome == model.StatusCancelado {
		return nil, ErrCancelarFinalizado
	}

	if err := s.repo.UpdateStatus(ctx, id, statusID); err != nil {
		return nil, err
	}
	return s.ObterPedido(ctx, id)
}

// Kanban agrupa os pedidos em aberto por etapa, uma coluna por etapa
// cadastrada, mesmo as vazias.
func (s *pedidoService) Kanban(ctx context.Context) ([]dto.KanbanColuna, error) {
	etapas, err := s.etapaRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	pedidos, err := s.repo.ListByEtapas(ctx)
	if err != nil {
		return nil, err
	}

	porEtapa := make(map[uuid.UUID][]dto.PedidoResponse, len(etapas))
	for i := range pedidos {
		p := pedidoToResponse(&pedidos[i])
		p.Items = nil
		porEtapa[pedidos[i].EtapaID] = append(porEtapa[pedidos[i].EtapaID], *p)
	}

	colunas := make([]dto.KanbanColuna, 0, len(etapas))
	for _, e := range etapas {
		cards := porEtapa[e.ID]
		if cards == nil {
			cards = []dto.PedidoResponse{}
		}
		colunas = append(colunas, dto.KanbanColuna{
			EtapaID: e.ID.String(),
			Etapa:   e.Nome,
			Ordem:   e.Ordem,
			Pedidos: cards,
		})
	}
	return colunas, nil
}

func (s *pedidoService) GerarOrcamentoPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", ErrPedidoNaoEncontrado
	}
	nomeEmpresa := "Minha Gráfica"
	if cfg, err := s.configRepo.Get(ctx); err == nil {
		nomeEmpresa = cfg.NomeEmpresa
	}
	pdf, err := infra.GenerateOrcamentoPDF(pedido, nomeEmpresa)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("orcamento-%d.pdf", pedido.Numero), nil
}

func pedidoToResponse(p *model.Pedido) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:          p.ID.String(),
		Numero:      p.Numero,
		Titulo:      p.Titulo,
		ClienteID:   p.ClienteID.String(),
		EtapaID:     p.EtapaID.String(),
		StatusID:    p.StatusID.String(),
		ValorTotal:  p.ValorTotal,
		Observacoes: p.Observacoes,
		CriadoEm:    p.CreatedAt.Format(time.RFC3339),
	}
	if p.Cliente != nil {
		resp.ClienteNome = p.Cliente.Nome
	}
	if p.Usuario != nil {
		resp.Vendedor = p.Usuario.NomeCompleto
	}
	if p.Etapa != nil {
		resp.Etapa = p.Etapa.Nome
	}
	if p.Status != nil {
		resp.Status = p.Status.Nome
		resp.StatusCor = p.Status.Cor
	}
	if p.Prazo != nil {
		resp.Prazo = p.Prazo.Format("2006-01-02")
	}
	for _, item := range p.Items {
		ir := dto.ItemPedidoResponse{
			ID:            item.ID.String(),
			MaterialID:    item.MaterialID.String(),
			Largura:       item.Largura,
			Altura:        item.Altura,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      item.Subtotal,
		}
		if item.Material != nil {
			ir.MaterialNome = item.Material.Nome
			ir.Unidade = item.Material.Unidade
		}
		resp.Items = append(resp.Items, ir)
	}
	return resp
}
