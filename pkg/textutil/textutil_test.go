package textutil_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/pkg/textutil"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "12,5", want: "12.5"},
		{in: "12.5", want: "12.5"},
		{in: " 49,90 ", want: "49.9"},
		{in: "0", want: "0"},
		{in: "-3", want: "-3"},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "1,2,3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := textutil.ParseDecimal(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"esperado %s, veio %s", tt.want, got)
		})
	}
}

// Regra comercial: duas casas, metade arredonda para cima.
func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "500", want: "500.00"},
		{in: "10.005", want: "10.01"},
		{in: "10.004", want: "10.00"},
		{in: "123.456", want: "123.46"},
		{in: "0.125", want: "0.13"},
	}

	for _, tt := range tests {
		got := textutil.RoundMoney(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.want, got.StringFixed(2), "entrada %s", tt.in)
	}
}

func TestToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Cafés", want: "cafes"},
		{in: "Café Bourbon Amarelo", want: "cafe-bourbon-amarelo"},
		{in: "  EMBALAGENS  ", want: "embalagens"},
		{in: "ação", want: "acao"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, textutil.Token(tt.in), "entrada %q", tt.in)
	}
}
