package router

import (
	"time"

	"plastgest/internal/config"
	"plastgest/internal/handler"
	"plastgest/internal/middleware"
	"plastgest/internal/model"
	"plastgest/internal/repository"
	"plastgest/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
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
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	receitaRepo := repository.NewReceitaRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	maquinaRepo := repository.NewMaquinaRepository(db)
	fichaRepo := repository.NewFichaRepository(db)
	tokenRepo := repository.NewTokenRepository(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	accessTTL := time.Duration(cfg.JWTExpirationHours) * time.Hour
	refreshTTL := time.Duration(cfg.JWTRefreshDays) * 24 * time.Hour
	authSvc := service.NewAuthService(usuarioRepo, tokenRepo,
		cfg.JWTAccessSecret, cfg.JWTRefreshSecret, accessTTL, refreshTTL)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	produtoSvc := service.NewProdutoService(produtoRepo, receitaRepo, vendaRepo)
	receitaSvc := service.NewReceitaService(receitaRepo, produtoRepo)
	producaoSvc := service.NewProducaoService(produtoRepo, receitaRepo, fichaRepo)
	vendaSvc := service.NewVendaService(vendaRepo, produtoRepo, clienteRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	maquinaSvc := service.NewMaquinaService(maquinaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	receitasH := handler.NewReceitasHandler(receitaSvc)
	fichasH := handler.NewFichasHandler(producaoSvc)
	vendasH := handler.NewVendasHandler(vendaSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	maquinasH := handler.NewMaquinasHandler(maquinaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	jwtMW := middleware.JWTAuth(cfg.JWTAccessSecret)

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/token", authH.Refresh)
		auth.POST("/logout", authH.Logout)
		auth.POST("/register", jwtMW, middleware.RequireRole(model.RoleGerente), authH.Register)
	}

	// Protected routes
	protected := r.Group("/", jwtMW)
	{
		protected.GET("/perfil", authH.Perfil)

		todos := middleware.RequireRole(
			model.RoleGerente, model.RoleSupervisor, model.RoleOperador, model.RoleVendedor)
		gestao := middleware.RequireRole(model.RoleGerente, model.RoleSupervisor)
		producao := middleware.RequireRole(model.RoleGerente, model.RoleSupervisor, model.RoleOperador)
		vendas := middleware.RequireRole(model.RoleGerente, model.RoleSupervisor, model.RoleVendedor)

		protected.GET("/produtos", todos, produtosH.Listar)
		protected.GET("/produtos/:id", todos, produtosH.Buscar)
		prods := protected.Group("/produtos", gestao)
		{
			prods.POST("/add", produtosH.Criar)
			prods.POST("/edit", produtosH.Editar)
			prods.POST("/remove", produtosH.Remover)
		}

		receita := protected.Group("/receita", producao)
		{
			receita.GET("", receitasH.Listar)
			receita.GET("/constituintes", receitasH.ListarConstituintes)
			receita.POST("/add", receitasH.Definir)
		}

		protected.POST("/ficha_extrusao/add", producao, fichasH.AdicionarExtrusao)
		protected.POST("/ficha_corte/add", producao, fichasH.AdicionarCorte)

		protected.POST("/vendas/vender", vendas, vendasH.Vender)
		protected.GET("/vendas/historico/:id", vendas, vendasH.Historico)

		protected.GET("/clientes", vendas, clientesH.Listar)
		protected.POST("/clientes/add", vendas, clientesH.Criar)

		protected.GET("/maquinas", todos, maquinasH.Listar)
		protected.GET("/maquinas/:id", todos, maquinasH.Buscar)
		maqs := protected.Group("/maquinas", gestao)
		{
			maqs.POST("/add", maquinasH.Criar)
			maqs.POST("/edit", maquinasH.Editar)
			maqs.POST("/remove", maquinasH.Remover)
		}

		usuarios := protected.Group("/usuarios", middleware.RequireRole(model.RoleGerente))
		{
			usuarios.GET("", usuariosH.Listar)
			usuarios.GET("/:id", usuariosH.Buscar)
			usuarios.POST("/edit", usuariosH.Editar)
			usuarios.POST("/remove", usuariosH.Remover)
		}
	}

	return r
}
