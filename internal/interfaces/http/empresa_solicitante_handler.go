package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/caixaforte/comercial-api/internal/application/dto"
	"github.com/caixaforte/comercial-api/internal/application/usecase"
	"github.com/caixaforte/comercial-api/internal/domain"
)

const empresaSolicitanteNotFound = "empresa solicitante não encontrada"

// EmpresaSolicitanteHandler trata as requisições HTTP do recurso EmpresaSolicitante.
type EmpresaSolicitanteHandler struct {
	uc *usecase.EmpresaSolicitanteUseCase
}

// NewEmpresaSolicitanteHandler constrói o handler injetando o caso de uso.
func NewEmpresaSolicitanteHandler(uc *usecase.EmpresaSolicitanteUseCase) *EmpresaSolicitanteHandler {
	return &EmpresaSolicitanteHandler{uc: uc}
}

// Create godoc
// @Summary      Criar empresa solicitante
// @Tags         empresasolicitante
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmpresaSolicitanteRequest  true  "Dados da empresa"
// @Success      200   {object}  dto.EmpresaSolicitanteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /empresasolicitante/ [post]
func (h *EmpresaSolicitanteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmpresaSolicitanteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é obrigatório"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "já existe uma empresa com esse CNPJ"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas solicitantes
// @Tags         empresasolicitante
// @Produce      json
// @Param        limit   query  int     false  "Tamanho da página"
// @Param        offset  query  int     false  "Deslocamento"
// @Param        q       query  string  false  "Filtro por nome (sem acentos)"
// @Success      200  {array}  dto.EmpresaSolicitanteResponse
// @Router       /empresasolicitante/ [get]
func (h *EmpresaSolicitanteHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.List(limit, offset, c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obter empresa solicitante por ID
// @Tags         empresasolicitante
// @Produce      json
// @Param        id   path  string  true  "ID da empresa"
// @Success      200  {object}  dto.EmpresaSolicitanteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /empresasolicitante/{id} [get]
func (h *EmpresaSolicitanteHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: empresaSolicitanteNotFound})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar empresa solicitante (parcial)
// @Tags         empresasolicitante
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da empresa"
// @Param        body  body  dto.UpdateEmpresaSolicitanteRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.EmpresaSolicitanteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /empresasolicitante/{id} [put]
func (h *EmpresaSolicitanteHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateEmpresaSolicitanteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome não pode ser vazio"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "já existe uma empresa com esse CNPJ"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: empresaSolicitanteNotFound})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover empresa solicitante
// @Tags         empresasolicitante
// @Produce      json
// @Param        id   path  string  true  "ID da empresa"
// @Success      200  {object}  dto.OKResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /empresasolicitante/{id} [delete]
func (h *EmpresaSolicitanteHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: empresaSolicitanteNotFound})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "existem orçamentos vinculados à empresa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// pageParams extrai limit/offset da query com os padrões da API.
func pageParams(c *fiber.Ctx) (int, int) {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
