package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrcamentoItemRequest linha do orçamento na criação.
type CreateOrcamentoItemRequest struct {
	Referencia                    string           `json:"referencia" validate:"required"`
	EstiloCaixa                   string           `json:"estilo_caixa"`
	Fechamento                    string           `json:"fechamento"`
	NumeroCores                   *int             `json:"numero_cores"`
	Medidas                       string           `json:"medidas"`
	Qualidade                     string           `json:"qualidade"`
	Quantidade                    int              `json:"quantidade" validate:"required,min=1"`
	ValorFerramental              decimal.Decimal  `json:"valor_ferramental"`
	ValorUnitario                 decimal.Decimal  `json:"valor_unitario"`
	ValorDiluicaoFerramentalTotal decimal.Decimal  `json:"valor_diluicao_ferramental_total"`
	ValorTotal                    decimal.Decimal  `json:"valor_total"`
	IPIPercentual                 *decimal.Decimal `json:"ipi_percentual"`
}

// CreateOrcamentoRequest entrada para criar um orçamento com seus itens.
// Os totais são informados pelo emissor e gravados como recebidos.
type CreateOrcamentoRequest struct {
	EmpresaSolicitanteID          string                       `json:"empresa_solicitante_id" validate:"required"`
	ValidadeDias                  *int                         `json:"validade_dias"`
	PrazoEntregaDias              *int                         `json:"prazo_entrega_dias"`
	CondicaoPagamento             string                       `json:"condicao_pagamento"`
	IPIPercentual                 *decimal.Decimal             `json:"ipi_percentual"`
	Observacoes                   string                       `json:"observacoes"`
	PrecoBrutoTotal               decimal.Decimal              `json:"preco_bruto_total"`
	ValorFerramentalTotal         decimal.Decimal              `json:"valor_ferramental_total"`
	ValorDiluicaoFerramentalTotal decimal.Decimal              `json:"valor_diluicao_ferramental_total"`
	ValorIPITotal                 decimal.Decimal              `json:"valor_ipi_total"`
	PrecoFinalTotal               decimal.Decimal              `json:"preco_final_total"`
	Itens                         []CreateOrcamentoItemRequest `json:"itens"`
}

// OrcamentoItemResponse linha do orçamento na saída.
type OrcamentoItemResponse struct {
	ID                            string           `json:"id"`
	OrcamentoID                   string           `json:"orcamento_id"`
	Referencia                    string           `json:"referencia"`
	EstiloCaixa                   string           `json:"estilo_caixa"`
	Fechamento                    string           `json:"fechamento"`
	NumeroCores                   *int             `json:"numero_cores,omitempty"`
	Medidas                       string           `json:"medidas"`
	Qualidade                     string           `json:"qualidade"`
	Quantidade                    int              `json:"quantidade"`
	ValorFerramental              decimal.Decimal  `json:"valor_ferramental"`
	ValorUnitario                 decimal.Decimal  `json:"valor_unitario"`
	ValorDiluicaoFerramentalTotal decimal.Decimal  `json:"valor_diluicao_ferramental_total"`
	ValorTotal                    decimal.Decimal  `json:"valor_total"`
	IPIPercentual                 *decimal.Decimal `json:"ipi_percentual,omitempty"`
}

// OrcamentoResponse saída de um orçamento. Itens só é preenchido no GET por ID.
type OrcamentoResponse struct {
	ID                            string                  `json:"id"`
	EmpresaSolicitanteID          string                  `json:"empresa_solicitante_id"`
	DataCriacao                   time.Time               `json:"data_criacao"`
	ValidadeDias                  *int                    `json:"validade_dias,omitempty"`
	PrazoEntregaDias              *int                    `json:"prazo_entrega_dias,omitempty"`
	CondicaoPagamento             string                  `json:"condicao_pagamento"`
	IPIPercentual                 *decimal.Decimal        `json:"ipi_percentual,omitempty"`
	Observacoes                   string                  `json:"observacoes"`
	PrecoBrutoTotal               decimal.Decimal         `json:"preco_bruto_total"`
	ValorFerramentalTotal         decimal.Decimal         `json:"valor_ferramental_total"`
	ValorDiluicaoFerramentalTotal decimal.Decimal         `json:"valor_diluicao_ferramental_total"`
	ValorIPITotal                 decimal.Decimal         `json:"valor_ipi_total"`
	PrecoFinalTotal               decimal.Decimal         `json:"preco_final_total"`
	Itens                         []OrcamentoItemResponse `json:"itens,omitempty"`
}
