// Package pdf implementa a geração da representação impressa de um orçamento
// de caixas de papelão.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: emissor  │  N° Orçamento + Data                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SOLICITANTE: nome + CNPJ + contato                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Ref | Estilo | Medidas | Qtd | V.Unit | Total      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Preço bruto / Ferramental / IPI / PREÇO FINAL      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: validade, prazo de entrega, condição de pagamento  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/caixaforte/comercial-api/internal/application/comercial"
	"github.com/caixaforte/comercial-api/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 102, Green: 51, Blue: 0}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa comercial.OrcamentoPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ comercial.OrcamentoPDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateOrcamentoPDF gera o PDF e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateOrcamentoPDF(
	_ context.Context,
	orcamento *entity.Orcamento,
	empresa *entity.EmpresaSolicitante,
	itens []*entity.OrcamentoItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orçamento "+orcamento.ID, true).
		Build()

	m := maroto.New(cfg)

	// Cabeçalho
	m.AddRows(headerRow(orcamento))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(solicitanteRow(empresa))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabela de itens
	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(itens) {
		m.AddRows(r)
	}

	// Totais
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(orcamento))

	// Rodapé comercial
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range condicoesRows(orcamento) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título do documento (esq) e número + data (dir).
func headerRow(orcamento *entity.Orcamento) core.Row {
	data := orcamento.DataCriacao.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("ORÇAMENTO DE EMBALAGENS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Caixas de papelão ondulado", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("N° "+shortID(orcamento.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

// solicitanteRow: dados da empresa solicitante.
func solicitanteRow(empresa *entity.EmpresaSolicitante) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("EMPRESA SOLICITANTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(empresa.Nome, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CNPJ: %s   |   A/C: %s   |   Tel: %s",
				nonEmpty(empresa.CNPJ, "—"),
				nonEmpty(empresa.Responsavel, "—"),
				nonEmpty(empresa.Telefone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ref.", 2, align.Left),
		h("Estilo / Medidas", 4, align.Left),
		h("Qtd.", 1, align.Center),
		h("V. Unit.", 2, align.Right),
		h("Ferramental", 1, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableItemRows: uma linha por item do orçamento.
func tableItemRows(itens []*entity.OrcamentoItem) []core.Row {
	result := make([]core.Row, 0, len(itens))
	for _, item := range itens {
		espec := item.EstiloCaixa
		if item.Medidas != "" {
			espec = strings.TrimSpace(espec + " " + item.Medidas)
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				item.Referencia,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				nonEmpty(espec, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", item.Quantidade),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+formatMoney(item.ValorUnitario, 4),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				"R$ "+formatMoney(item.ValorFerramental, 2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+formatMoney(item.ValorTotal, 2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita.
func totalsRow(orcamento *entity.Orcamento) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(32).Add(
		col.New(2), // espaço à esquerda
		col.New(5).Add(
			label("Preço bruto:"),
			label("Ferramental:"),
			label("Diluição de ferramental:"),
			label("IPI:"),
			grandLabel("PREÇO FINAL:"),
		),
		col.New(3).Add(
			value("R$ "+formatMoney(orcamento.PrecoBrutoTotal, 2)),
			value("R$ "+formatMoney(orcamento.ValorFerramentalTotal, 2)),
			value("R$ "+formatMoney(orcamento.ValorDiluicaoFerramentalTotal, 2)),
			value("R$ "+formatMoney(orcamento.ValorIPITotal, 2)),
			grandValue("R$ "+formatMoney(orcamento.PrecoFinalTotal, 2)),
		),
		col.New(2), // espaço à direita
	)
}

// condicoesRows: condições comerciais e observações.
func condicoesRows(orcamento *entity.Orcamento) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("CONDIÇÕES COMERCIAIS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Validade: %s   |   Prazo de entrega: %s   |   Pagamento: %s",
				formatDias(orcamento.ValidadeDias),
				formatDias(orcamento.PrazoEntregaDias),
				nonEmpty(orcamento.CondicaoPagamento, "—"),
			), props.Text{Size: 8, Top: 1, Color: colorGray}),
		)),
	}

	if orcamento.Observacoes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Observações: "+orcamento.Observacoes, props.Text{
				Size: 7.5, Color: colorGray, Top: 2,
			}),
		)))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Os valores de ferramental referem-se a facas e clichês de impressão. "+
				"Este orçamento não tem valor fiscal.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatDias(d *int) string {
	if d == nil {
		return "—"
	}
	return fmt.Sprintf("%d dias", *d)
}

// shortID usa o primeiro bloco do UUID como número curto do documento.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return strings.ToUpper(id[:i])
	}
	return id
}

// formatMoney formata um decimal em convenção brasileira: milhar com ponto e
// decimais com vírgula. Ex.: 1234.5 → "1.234,50".
func formatMoney(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart := s
	decPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, decPart = s[:i], s[i+1:]
	}
	var b strings.Builder
	n := len(intPart)
	for i, c := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	out := b.String()
	if decPart != "" {
		out += "," + decPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
