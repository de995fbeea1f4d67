package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/caixaforte/comercial-api/internal/application/auth"
	"github.com/caixaforte/comercial-api/internal/application/comercial"
	"github.com/caixaforte/comercial-api/internal/application/usecase"
	infrapdf "github.com/caixaforte/comercial-api/internal/infrastructure/pdf"
	"github.com/caixaforte/comercial-api/internal/infrastructure/postgres"
	httpRouter "github.com/caixaforte/comercial-api/internal/interfaces/http"
	"github.com/caixaforte/comercial-api/pkg/config"
	"github.com/caixaforte/comercial-api/pkg/logger"
)

// registerSwagger monta a UI do swagger somente quando o arquivo existe; o
// middleware entra em pânico no boot se o caminho não for encontrado.
func registerSwagger(app *fiber.App, filePath string) {
	if _, err := os.Stat(filePath); err != nil {
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Comercial API",
	}))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("criação do schema")
	}

	empresaRepo := postgres.NewEmpresaSolicitanteRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	contatoRepo := postgres.NewContatoRepository(pool)
	oportunidadeRepo := postgres.NewOportunidadeRepository(pool)
	amostraRepo := postgres.NewAmostraRepository(pool)
	orcamentoRepo := postgres.NewOrcamentoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	empresaUC := usecase.NewEmpresaSolicitanteUseCase(empresaRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	contatoUC := usecase.NewContatoUseCase(contatoRepo, clienteRepo)
	oportunidadeUC := comercial.NewOportunidadeUseCase(oportunidadeRepo, clienteRepo)
	amostraUC := comercial.NewAmostraUseCase(amostraRepo, oportunidadeRepo)
	orcamentoUC := comercial.NewOrcamentoUseCase(txRunner, orcamentoRepo, empresaRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := comercial.NewPDFUseCase(orcamentoRepo, empresaRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI local: http://localhost:<port>/docs
	registerSwagger(app, "./docs/swagger.json")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmpresaSolicitanteUC: empresaUC,
		ClienteUC:            clienteUC,
		ContatoUC:            contatoUC,
		OportunidadeUC:       oportunidadeUC,
		AmostraUC:            amostraUC,
		OrcamentoUC:          orcamentoUC,
		PDFUC:                pdfUC,
		AuthUC:               authUC,
		JWTSecret:            cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
