package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/nunes1886/prisma/internal/auth"
	"github.com/nunes1886/prisma/internal/config"
	"github.com/nunes1886/prisma/internal/handler"
	"github.com/nunes1886/prisma/internal/middleware"
	"github.com/nunes1886/prisma/internal/model"
	"github.com/nunes1886/prisma/internal/repository"
	"github.com/nunes1886/prisma/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	sessions := auth.NewRedisStore(rdb, sessionTTL)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	etapaRepo := repository.NewEtapaRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	lancamentoRepo := repository.NewLancamentoRepository(db)
	configRepo := repository.NewConfiguracaoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, sessions, sessionTTL)
	clienteSvc := service.NewClienteService(clienteRepo)
	materialSvc := service.NewMaterialService(materialRepo, rdb)
	pedidoSvc := service.NewPedidoService(pedidoRepo, clienteRepo, materialRepo, etapaRepo, statusRepo, lancamentoRepo, configRepo)
	financeiroSvc := service.NewFinanceiroService(lancamentoRepo)
	pipelineSvc := service.NewPipelineService(etapaRepo, statusRepo, pedidoRepo)
	configSvc := service.NewConfiguracaoService(configRepo, cfg.UploadPath)
	dashboardSvc := service.NewDashboardService(pedidoRepo, lancamentoRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	materiaisH := handler.NewMateriaisHandler(materialSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	financeiroH := handler.NewFinanceiroHandler(financeiroSvc)
	pipelineH := handler.NewPipelineHandler(pipelineSvc)
	settingsH := handler.NewSettingsHandler(configSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/v1/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Uploaded branding assets (logo/favicon)
	r.Static("/uploads", cfg.UploadPath)

	// Protected routes. nivel_acesso is ordinal: 0=Admin, 1=Financeiro,
	// 2=Vendas, 3=Produção; RequireNivel(n) admits anyone at tier n or below.
	sessMW := middleware.SessionAuth(sessions)
	v1 := r.Group("/v1", sessMW)
	{
		v1.POST("/auth/logout", authH.Logout)
		v1.GET("/auth/me", authH.Me)

		clientes := v1.Group("/clientes", middleware.RequireNivel(model.NivelVendas))
		{
			clientes.POST("", clientesH.CriarCliente)
			clientes.GET("", clientesH.ListarClientes)
			clientes.GET("/:id", clientesH.ObterCliente)
			clientes.PUT("/:id", clientesH.AtualizarCliente)
			clientes.DELETE("/:id", clientesH.DeletarCliente)
		}

		// Materials: everyone reads the catalog, only financeiro/admin write
		v1.GET("/materiais", materiaisH.ListarMateriais)
		v1.GET("/materiais/precos", materiaisH.Catalogo)
		v1.GET("/materiais/:id", materiaisH.ObterMaterial)
		materiais := v1.Group("/materiais", middleware.RequireNivel(model.NivelFinanceiro))
		{
			materiais.POST("", materiaisH.CriarMaterial)
			materiais.PUT("/:id", materiaisH.AtualizarMaterial)
			materiais.DELETE("/:id", materiaisH.DesativarMaterial)
			materiais.PUT("/:id/reativar", materiaisH.ReativarMaterial)
		}

		// The kanban is the production home screen, open to every tier
		v1.GET("/pedidos/kanban", pedidosH.Kanban)
		v1.PUT("/pedidos/:id/etapa", pedidosH.MudarEtapa)
		v1.PUT("/pedidos/:id/status", pedidosH.MudarStatus)
		pedidos := v1.Group("/pedidos", middleware.RequireNivel(model.NivelVendas))
		{
			pedidos.POST("", pedidosH.CriarPedido)
			pedidos.GET("", pedidosH.ListarPedidos)
			pedidos.GET("/:id", pedidosH.ObterPedido)
			pedidos.GET("/:id/orcamento.pdf", pedidosH.OrcamentoPDF)
		}

		financeiro := v1.Group("/financeiro", middleware.RequireNivel(model.NivelFinanceiro))
		{
			financeiro.GET("", financeiroH.Listar)
			financeiro.POST("", financeiroH.Lancar)
			financeiro.PUT("/:id/baixar", financeiroH.Baixar)
		}

		v1.GET("/dashboard", middleware.RequireNivel(model.NivelVendas), dashboardH.Resumo)

		// Pipeline vocabulary: read for everyone, write for admin
		v1.GET("/etapas", pipelineH.ListarEtapas)
		v1.GET("/status", pipelineH.ListarStatus)
		etapas := v1.Group("/etapas", middleware.RequireNivel(model.NivelAdmin))
		{
			etapas.POST("", pipelineH.CriarEtapa)
			etapas.PUT("/:id", pipelineH.AtualizarEtapa)
			etapas.DELETE("/:id", pipelineH.DeletarEtapa)
		}
		status := v1.Group("/status", middleware.RequireNivel(model.NivelAdmin))
		{
			status.POST("", pipelineH.CriarStatus)
			status.PUT("/:id", pipelineH.AtualizarStatus)
			status.DELETE("/:id", pipelineH.DeletarStatus)
		}

		// Branding: read for everyone, write for admin
		v1.GET("/configuracoes", settingsH.Obter)
		configuracoes := v1.Group("/configuracoes", middleware.RequireNivel(model.NivelAdmin))
		{
			configuracoes.PUT("", settingsH.Atualizar)
			configuracoes.POST("/:campo", settingsH.UploadImagem)
		}

		usuarios := v1.Group("/usuarios", middleware.RequireNivel(model.NivelAdmin))
		{
			usuarios.POST("", authH.CriarUsuario)
			usuarios.GET("", authH.ListarUsuarios)
			usuarios.PUT("/:id", authH.AtualizarUsuario)
			usuarios.DELETE("/:id", authH.DesativarUsuario)
			usuarios.PATCH("/:id/reativar", authH.ReativarUsuario)
		}
	}

	// Swagger UI only outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
