package entity

import "github.com/shopspring/decimal"

// OrcamentoItem representa uma linha do orçamento: um modelo de caixa com
// suas especificações técnicas e valores.
type OrcamentoItem struct {
	ID                            string
	OrcamentoID                   string
	Referencia                    string
	EstiloCaixa                   string // ex. "normal", "corte e vinco"
	Fechamento                    string // ex. "cola", "grampo"
	NumeroCores                   *int
	Medidas                       string // C x L x A em mm
	Qualidade                     string // onda/gramatura do papelão
	Quantidade                    int
	ValorFerramental              decimal.Decimal
	ValorUnitario                 decimal.Decimal
	ValorDiluicaoFerramentalTotal decimal.Decimal
	ValorTotal                    decimal.Decimal
	IPIPercentual                 *decimal.Decimal
}
