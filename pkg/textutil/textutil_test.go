package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caixaforte/comercial-api/pkg/textutil"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"São João", "sao joao"},
		{"EMBALAGENS", "embalagens"},
		{"ação", "acao"},
		{"papelão ondulado", "papelao ondulado"},
		{"", ""},
		{"sem acento", "sem acento"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, textutil.Normalize(c.in), "entrada: %q", c.in)
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, textutil.ContainsFold("Caixas São Paulo", "sao"))
	assert.True(t, textutil.ContainsFold("Caixas São Paulo", "SÃO"))
	assert.True(t, textutil.ContainsFold("Papelão Ondulado", "papelao"))
	assert.False(t, textutil.ContainsFold("Embalagens Rio", "sao"))

	// Needle vazio casa com qualquer haystack (filtro ausente)
	assert.True(t, textutil.ContainsFold("qualquer", ""))
}
