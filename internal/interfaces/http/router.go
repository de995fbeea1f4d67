package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caixaforte/comercial-api/internal/application/auth"
	"github.com/caixaforte/comercial-api/internal/application/comercial"
	"github.com/caixaforte/comercial-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	EmpresaSolicitanteUC *usecase.EmpresaSolicitanteUseCase
	ClienteUC            *usecase.ClienteUseCase
	ContatoUC            *usecase.ContatoUseCase
	OportunidadeUC       *comercial.OportunidadeUseCase
	AmostraUC            *comercial.AmostraUseCase
	OrcamentoUC          *comercial.OrcamentoUseCase
	PDFUC                *comercial.PDFUseCase
	AuthUC               *auth.AuthUseCase
	JWTSecret            string
}

// Router registra as rotas da API. As rotas de CRUD são públicas,
// somente a exportação de PDF exige Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Empresas solicitantes
	empresas := app.Group("/empresasolicitante")
	empresaHandler := NewEmpresaSolicitanteHandler(deps.EmpresaSolicitanteUC)
	empresas.Post("/", empresaHandler.Create)
	empresas.Get("/", empresaHandler.List)
	empresas.Get("/:id", empresaHandler.GetByID)
	empresas.Put("/:id", empresaHandler.Update)
	empresas.Delete("/:id", empresaHandler.Delete)

	// Clientes
	clientes := app.Group("/cliente")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Contatos
	contatos := app.Group("/contato")
	contatoHandler := NewContatoHandler(deps.ContatoUC)
	contatos.Post("/", contatoHandler.Create)
	contatos.Get("/", contatoHandler.List)
	contatos.Get("/:id", contatoHandler.GetByID)
	contatos.Put("/:id", contatoHandler.Update)
	contatos.Delete("/:id", contatoHandler.Delete)

	// Oportunidades
	oportunidades := app.Group("/oportunidade")
	oportunidadeHandler := NewOportunidadeHandler(deps.OportunidadeUC)
	oportunidades.Post("/", oportunidadeHandler.Create)
	oportunidades.Get("/", oportunidadeHandler.List)
	oportunidades.Get("/:id", oportunidadeHandler.GetByID)
	oportunidades.Put("/:id", oportunidadeHandler.Update)
	oportunidades.Delete("/:id", oportunidadeHandler.Delete)

	// Amostras
	amostras := app.Group("/amostra")
	amostraHandler := NewAmostraHandler(deps.AmostraUC)
	amostras.Post("/", amostraHandler.Create)
	amostras.Get("/", amostraHandler.List)
	amostras.Get("/:id", amostraHandler.GetByID)
	amostras.Put("/:id", amostraHandler.Update)
	amostras.Delete("/:id", amostraHandler.Delete)

	// Orçamentos
	orcamentos := app.Group("/orcamento")
	orcamentoHandler := NewOrcamentoHandler(deps.OrcamentoUC, deps.PDFUC)
	orcamentos.Post("/", orcamentoHandler.Create)
	orcamentos.Get("/", orcamentoHandler.List)
	orcamentos.Get("/:id", orcamentoHandler.GetByID)
	orcamentos.Delete("/:id", orcamentoHandler.Delete)

	// Exportação de PDF (protegido, requer Bearer Token)
	orcamentos.Get("/:id/pdf", AuthMiddleware(deps.JWTSecret), orcamentoHandler.ExportPDF)
}
