package service_test

// In-memory stub repositories. Service transactions run with a nil *gorm.DB
// (runTx calls fn directly), so the stubs never see a real transaction.

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nunes1886/prisma/internal/auth"
	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/model"
	"github.com/nunes1886/prisma/internal/repository"
)

var errNotFound = errors.New("not found")

// ── Sessions ─────────────────────────────────────────────────────────────────

type stubSessionStore struct {
	sessions map[string]*auth.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*auth.Session)}
}

func (s *stubSessionStore) Create(_ context.Context, sess *auth.Session) error {
	s.sessions[sess.Token] = sess
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (*auth.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, auth.ErrSessionNotFound
	}
	return sess, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

var _ auth.SessionStore = (*stubSessionStore)(nil)

// ── Usuarios ─────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Desativar(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errNotFound
	}
	u.Ativo = false
	return nil
}

func (r *stubUsuarioRepo) Reativar(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errNotFound
	}
	u.Ativo = true
	return nil
}

func (r *stubUsuarioRepo) CountAtivos(_ context.Context) (int64, error) {
	var n int64
	for _, u := range r.usuarios {
		if u.Ativo {
			n++
		}
	}
	return n, nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Clientes ─────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
	pedidos  map[uuid.UUID]int64
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{
		clientes: make(map[uuid.UUID]*model.Cliente),
		pedidos:  make(map[uuid.UUID]int64),
	}
}

func (r *stubClienteRepo) documentoExiste(c *model.Cliente) bool {
	if c.Documento == nil {
		return false
	}
	for id, other := range r.clientes {
		if id != c.ID && other.Documento != nil && *other.Documento == *c.Documento {
			return true
		}
	}
	return false
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if r.documentoExiste(c) {
		return gorm.ErrDuplicatedKey
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context, filtro dto.ClienteFiltro) ([]model.Cliente, int64, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		if filtro.Busca != "" && !strings.Contains(strings.ToLower(c.Nome), strings.ToLower(filtro.Busca)) {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	if r.documentoExiste(c) {
		return gorm.ErrDuplicatedKey
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clientes, id)
	return nil
}

func (r *stubClienteRepo) CountPedidos(_ context.Context, clienteID uuid.UUID) (int64, error) {
	return r.pedidos[clienteID], nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── Materiais ────────────────────────────────────────────────────────────────

type stubMaterialRepo struct {
	materiais map[uuid.UUID]*model.Material
}

func newStubMaterialRepo() *stubMaterialRepo {
	return &stubMaterialRepo{materiais: make(map[uuid.UUID]*model.Material)}
}

func (r *stubMaterialRepo) Create(_ context.Context, m *model.Material) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.materiais[m.ID] = m
	return nil
}

func (r *stubMaterialRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Material, error) {
	m, ok := r.materiais[id]
	if !ok {
		return nil, errNotFound
	}
	return m, nil
}

func (r *stubMaterialRepo) List(_ context.Context, incluirInativos bool) ([]model.Material, error) {
	var out []model.Material
	for _, m := range r.materiais {
		if !incluirInativos && !m.Ativo {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMaterialRepo) Update(_ context.Context, m *model.Material) error {
	r.materiais[m.ID] = m
	return nil
}

func (r *stubMaterialRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	m, ok := r.materiais[id]
	if !ok {
		return errNotFound
	}
	m.Ativo = false
	return nil
}

func (r *stubMaterialRepo) Reativar(_ context.Context, id uuid.UUID) error {
	m, ok := r.materiais[id]
	if !ok {
		return errNotFound
	}
	m.Ativo = true
	return nil
}

var _ repository.MaterialRepository = (*stubMaterialRepo)(nil)

// ── Etapas e status ──────────────────────────────────────────────────────────

type stubEtapaRepo struct {
	etapas map[uuid.UUID]*model.Etapa
}

func newStubEtapaRepo() *stubEtapaRepo {
	return &stubEtapaRepo{etapas: make(map[uuid.UUID]*model.Etapa)}
}

func (r *stubEtapaRepo) Create(_ context.Context, e *model.Etapa) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.etapas[e.ID] = e
	return nil
}

func (r *stubEtapaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Etapa, error) {
	e, ok := r.etapas[id]
	if !ok {
		return nil, errNotFound
	}
	return e, nil
}

func (r *stubEtapaRepo) List(_ context.Context) ([]model.Etapa, error) {
	out := make([]model.Etapa, 0, len(r.etapas))
	for _, e := range r.etapas {
		out = append(out, *e)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Ordem < out[i].Ordem {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *stubEtapaRepo) Primeira(_ context.Context) (*model.Etapa, error) {
	var first *model.Etapa
	for _, e := range r.etapas {
		if first == nil || e.Ordem < first.Ordem {
			first = e
		}
	}
	if first == nil {
		return nil, errNotFound
	}
	return first, nil
}

func (r *stubEtapaRepo) Update(_ context.Context, e *model.Etapa) error {
	r.etapas[e.ID] = e
	return nil
}

func (r *stubEtapaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.etapas, id)
	return nil
}

var _ repository.EtapaRepository = (*stubEtapaRepo)(nil)

type stubStatusRepo struct {
	status     map[uuid.UUID]*model.Status
	pedidoRepo *stubPedidoRepo
}

func newStubStatusRepo() *stubStatusRepo {
	return &stubStatusRepo{status: make(map[uuid.UUID]*model.Status)}
}

func (r *stubStatusRepo) Create(_ context.Context, s *model.Status) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Cor == "" {
		s.Cor = "#CCCCCC"
	}
	r.status[s.ID] = s
	return nil
}

func (r *stubStatusRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Status, error) {
	s, ok := r.status[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (r *stubStatusRepo) FindByNome(_ context.Context, nome string) (*model.Status, error) {
	for _, s := range r.status {
		if s.Nome == nome {
			return s, nil
		}
	}
	return nil, errNotFound
}

func (r *stubStatusRepo) List(_ context.Context) ([]model.Status, error) {
	out := make([]model.Status, 0, len(r.status))
	for _, s := range r.status {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubStatusRepo) Update(_ context.Context, s *model.Status) error {
	r.status[s.ID] = s
	return nil
}

func (r *stubStatusRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.status, id)
	return nil
}

func (r *stubStatusRepo) CountPedidos(_ context.Context, statusID uuid.UUID) (int64, error) {
	if r.pedidoRepo == nil {
		return 0, nil
	}
	var n int64
	for _, p := range r.pedidoRepo.pedidos {
		if p.StatusID == statusID {
			n++
		}
	}
	return n, nil
}

var _ repository.StatusRepository = (*stubStatusRepo)(nil)

// ── Pedidos ──────────────────────────────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos    map[uuid.UUID]*model.Pedido
	seq        int
	etapaRepo  *stubEtapaRepo
	statusRepo *stubStatusRepo
}

func newStubPedidoRepo(etapas *stubEtapaRepo, status *stubStatusRepo) *stubPedidoRepo {
	r := &stubPedidoRepo{
		pedidos:    make(map[uuid.UUID]*model.Pedido),
		etapaRepo:  etapas,
		statusRepo: status,
	}
	if status != nil {
		status.pedidoRepo = r
	}
	return r
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

func (r *stubPedidoRepo) Create(_ context.Context, _ *gorm.DB, p *model.Pedido) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.seq++
	p.Numero = r.seq
	p.CreatedAt = time.Now()
	for i := range p.Items {
		if p.Items[i].ID == uuid.Nil {
			p.Items[i].ID = uuid.New()
		}
		p.Items[i].PedidoID = p.ID
	}
	r.pedidos[p.ID] = p
	return nil
}

// resolve fills the etapa/status relations the way Preload would.
func (r *stubPedidoRepo) resolve(p *model.Pedido) *model.Pedido {
	cp := *p
	if r.etapaRepo != nil {
		cp.Etapa = r.etapaRepo.etapas[p.EtapaID]
	}
	if r.statusRepo != nil {
		cp.Status = r.statusRepo.status[p.StatusID]
	}
	return &cp
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, errNotFound
	}
	return r.resolve(p), nil
}

func (r *stubPedidoRepo) List(_ context.Context, _ dto.PedidoFiltro) ([]model.Pedido, int64, error) {
	out := make([]model.Pedido, 0, len(r.pedidos))
	for _, p := range r.pedidos {
		out = append(out, *r.resolve(p))
	}
	return out, int64(len(out)), nil
}

func (r *stubPedidoRepo) ListByEtapas(_ context.Context) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		rp := r.resolve(p)
		if rp.Status != nil &&
			(rp.Status.Nome == model.StatusFinalizado || rp.Status.Nome == model.StatusCancelado) {
			continue
		}
		out = append(out, *rp)
	}
	return out, nil
}

func (r *stubPedidoRepo) UpdateEtapa(_ context.Context, id, etapaID uuid.UUID) error {
	p, ok := r.pedidos[id]
	if !ok {
		return errNotFound
	}
	p.EtapaID = etapaID
	return nil
}

func (r *stubPedidoRepo) UpdateStatus(_ context.Context, id, statusID uuid.UUID) error {
	p, ok := r.pedidos[id]
	if !ok {
		return errNotFound
	}
	p.StatusID = statusID
	return nil
}

func (r *stubPedidoRepo) CountByEtapa(_ context.Context, etapaID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.pedidos {
		if p.EtapaID == etapaID {
			n++
		}
	}
	return n, nil
}

func (r *stubPedidoRepo) CountAbertos(_ context.Context) (int64, error) {
	pedidos, _ := r.ListByEtapas(context.Background())
	return int64(len(pedidos)), nil
}

func (r *stubPedidoRepo) CountDesde(_ context.Context, desde time.Time) (int64, error) {
	var n int64
	for _, p := range r.pedidos {
		if !p.CreatedAt.Before(desde) {
			n++
		}
	}
	return n, nil
}

func (r *stubPedidoRepo) UltimosPedidos(_ context.Context, limit int) ([]model.Pedido, error) {
	pedidos, _, _ := r.List(context.Background(), dto.PedidoFiltro{})
	if len(pedidos) > limit {
		pedidos = pedidos[:limit]
	}
	return pedidos, nil
}

func (r *stubPedidoRepo) ProximasEntregas(_ context.Context, limit int) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if p.Prazo != nil {
			out = append(out, *r.resolve(p))
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubPedidoRepo) ContagemPorEtapa(_ context.Context) ([]dto.EtapaContagem, error) {
	counts := make(map[uuid.UUID]int64)
	for _, p := range r.pedidos {
		counts[p.EtapaID]++
	}
	var out []dto.EtapaContagem
	for id, n := range counts {
		nome := ""
		if r.etapaRepo != nil && r.etapaRepo.etapas[id] != nil {
			nome = r.etapaRepo.etapas[id].Nome
		}
		out = append(out, dto.EtapaContagem{EtapaID: id.String(), Etapa: nome, Total: n})
	}
	return out, nil
}

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// ── Lancamentos ──────────────────────────────────────────────────────────────

type stubLancamentoRepo struct {
	lancamentos map[uuid.UUID]*model.Lancamento
}

func newStubLancamentoRepo() *stubLancamentoRepo {
	return &stubLancamentoRepo{lancamentos: make(map[uuid.UUID]*model.Lancamento)}
}

func (r *stubLancamentoRepo) Create(_ context.Context, l *model.Lancamento) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	r.lancamentos[l.ID] = l
	return nil
}

func (r *stubLancamentoRepo) CreateTx(ctx context.Context, _ *gorm.DB, l *model.Lancamento) error {
	return r.Create(ctx, l)
}

func (r *stubLancamentoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Lancamento, error) {
	l, ok := r.lancamentos[id]
	if !ok {
		return nil, errNotFound
	}
	return l, nil
}

func (r *stubLancamentoRepo) List(_ context.Context, filtro dto.LancamentoFiltro) ([]model.Lancamento, int64, error) {
	var out []model.Lancamento
	for _, l := range r.lancamentos {
		if filtro.Tipo != "" && l.Tipo != filtro.Tipo {
			continue
		}
		if filtro.Status != "" && l.Status != filtro.Status {
			continue
		}
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

func (r *stubLancamentoRepo) MarcarPago(_ context.Context, id uuid.UUID, formaPagamento string, quando time.Time) error {
	l, ok := r.lancamentos[id]
	if !ok {
		return errNotFound
	}
	l.Status = model.LancamentoPago
	l.DataPagamento = &quando
	if formaPagamento != "" {
		l.FormaPagamento = formaPagamento
	}
	return nil
}

func (r *stubLancamentoRepo) sum(tipo, status string) decimal.Decimal {
	total := decimal.Zero
	for _, l := range r.lancamentos {
		if l.Tipo == tipo && l.Status == status {
			total = total.Add(l.Valor)
		}
	}
	return total
}

func (r *stubLancamentoRepo) TotalPago(_ context.Context, tipo string) (decimal.Decimal, error) {
	return r.sum(tipo, model.LancamentoPago), nil
}

func (r *stubLancamentoRepo) TotalPendente(_ context.Context, tipo string) (decimal.Decimal, error) {
	return r.sum(tipo, model.LancamentoPendente), nil
}

func (r *stubLancamentoRepo) ReceitaDesde(_ context.Context, desde time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range r.lancamentos {
		if l.Tipo == model.LancamentoReceita && l.Status == model.LancamentoPago &&
			l.DataPagamento != nil && !l.DataPagamento.Before(desde) {
			total = total.Add(l.Valor)
		}
	}
	return total, nil
}

var _ repository.LancamentoRepository = (*stubLancamentoRepo)(nil)

// ── Configuracao ─────────────────────────────────────────────────────────────

type stubConfiguracaoRepo struct {
	cfg *model.Configuracao
}

func newStubConfiguracaoRepo() *stubConfiguracaoRepo {
	return &stubConfiguracaoRepo{cfg: &model.Configuracao{NomeEmpresa: "Gráfica Prisma"}}
}

func (r *stubConfiguracaoRepo) Get(_ context.Context) (*model.Configuracao, error) {
	return r.cfg, nil
}

func (r *stubConfiguracaoRepo) Save(_ context.Context, c *model.Configuracao) error {
	r.cfg = c
	return nil
}

var _ repository.ConfiguracaoRepository = (*stubConfiguracaoRepo)(nil)
