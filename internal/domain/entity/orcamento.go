package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Orcamento representa o cabeçalho de um orçamento de caixas de papelão
// emitido para uma empresa solicitante. Os totais monetários são informados
// pelo emissor no momento da criação.
type Orcamento struct {
	ID                            string
	EmpresaSolicitanteID          string
	DataCriacao                   time.Time
	ValidadeDias                  *int
	PrazoEntregaDias              *int
	CondicaoPagamento             string
	IPIPercentual                 *decimal.Decimal
	Observacoes                   string
	PrecoBrutoTotal               decimal.Decimal
	ValorFerramentalTotal         decimal.Decimal
	ValorDiluicaoFerramentalTotal decimal.Decimal
	ValorIPITotal                 decimal.Decimal
	PrecoFinalTotal               decimal.Decimal
	CreatedAt                     time.Time
	UpdatedAt                     time.Time
}
