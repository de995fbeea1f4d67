package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/caixaforte/comercial-api/internal/application/comercial"
	"github.com/caixaforte/comercial-api/internal/application/dto"
	"github.com/caixaforte/comercial-api/internal/domain"
)

const oportunidadeNotFound = "oportunidade não encontrada"

// OportunidadeHandler trata as requisições HTTP do recurso Oportunidade.
type OportunidadeHandler struct {
	uc *comercial.OportunidadeUseCase
}

// NewOportunidadeHandler constrói o handler.
func NewOportunidadeHandler(uc *comercial.OportunidadeUseCase) *OportunidadeHandler {
	return &OportunidadeHandler{uc: uc}
}

// Create godoc
// @Summary      Criar oportunidade
// @Tags         oportunidade
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOportunidadeRequest  true  "Dados da oportunidade"
// @Success      200   {object}  dto.OportunidadeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /oportunidade/ [post]
func (h *OportunidadeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOportunidadeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: clienteNotFound})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar oportunidades
// @Tags         oportunidade
// @Produce      json
// @Param        cliente_id  query  string  false  "Filtro por cliente"
// @Param        status      query  string  false  "Filtro por status"
// @Param        limit       query  int     false  "Tamanho da página"
// @Param        offset      query  int     false  "Deslocamento"
// @Success      200  {array}  dto.OportunidadeResponse
// @Router       /oportunidade/ [get]
func (h *OportunidadeHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.List(c.Query("cliente_id"), c.Query("status"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID GET /oportunidade/:id
func (h *OportunidadeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: oportunidadeNotFound})
	}
	return c.JSON(out)
}

// Update PUT /oportunidade/:id (parcial)
func (h *OportunidadeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOportunidadeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: oportunidadeNotFound})
	}
	return c.JSON(out)
}

// Delete DELETE /oportunidade/:id
func (h *OportunidadeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: oportunidadeNotFound})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "existem amostras vinculadas à oportunidade"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.OKResponse{OK: true})
}
