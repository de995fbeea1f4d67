package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/caixaforte/comercial-api/internal/application/comercial"
	"github.com/caixaforte/comercial-api/internal/application/dto"
	"github.com/caixaforte/comercial-api/internal/domain"
)

const orcamentoNotFound = "orçamento não encontrado"

// OrcamentoHandler trata as requisições HTTP do recurso Orcamento,
// incluindo a exportação do documento em PDF.
type OrcamentoHandler struct {
	uc    *comercial.OrcamentoUseCase
	pdfUC *comercial.PDFUseCase
}

// NewOrcamentoHandler constrói o handler.
func NewOrcamentoHandler(uc *comercial.OrcamentoUseCase, pdfUC *comercial.PDFUseCase) *OrcamentoHandler {
	return &OrcamentoHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Criar orçamento com itens
// @Tags         orcamento
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrcamentoRequest  true  "Cabeçalho e itens do orçamento"
// @Success      200   {object}  dto.OrcamentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /orcamento/ [post]
func (h *OrcamentoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrcamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: empresaSolicitanteNotFound})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar orçamentos
// @Tags         orcamento
// @Produce      json
// @Param        empresa_solicitante_id  query  string  false  "Filtro por empresa solicitante"
// @Param        limit                   query  int     false  "Tamanho da página"
// @Param        offset                  query  int     false  "Deslocamento"
// @Success      200  {array}  dto.OrcamentoResponse
// @Router       /orcamento/ [get]
func (h *OrcamentoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.List(c.Query("empresa_solicitante_id"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obter orçamento por ID com itens
// @Tags         orcamento
// @Produce      json
// @Param        id   path  string  true  "ID do orçamento"
// @Success      200  {object}  dto.OrcamentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orcamento/{id} [get]
func (h *OrcamentoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: orcamentoNotFound})
	}
	return c.JSON(out)
}

// Delete DELETE /orcamento/:id (remove também os itens)
func (h *OrcamentoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: orcamentoNotFound})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// ExportPDF godoc
// @Summary      Exportar orçamento em PDF
// @Tags         orcamento
// @Produce      application/pdf
// @Param        id   path  string  true  "ID do orçamento"
// @Success      200  {file}  binary
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /orcamento/{id}/pdf [get]
func (h *OrcamentoHandler) ExportPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	buf, err := h.pdfUC.Generate(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: orcamentoNotFound})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="orcamento-%s.pdf"`, id))
	return c.Send(buf)
}
