package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hendaya/pedidos-api/internal/application/dto"
)

func TestFlexibleInt_CoercionaEntradasInvalidasACero(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"número", `{"quantity": 7}`, 7},
		{"string numérico", `{"quantity": "12"}`, 12},
		{"string con espacios", `{"quantity": " 7 "}`, 7},
		{"decimal trunca", `{"quantity": 3.7}`, 3},
		{"no numérico", `{"quantity": "abc"}`, 0},
		{"vacío", `{"quantity": ""}`, 0},
		{"null", `{"quantity": null}`, 0},
		{"booleano", `{"quantity": true}`, 0},
		{"negativo se conserva", `{"quantity": -4}`, -4}, // el clamp ocurre en el caso de uso
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var in dto.SetQuantityRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &in),
				"el decode nunca debe fallar por un valor inválido")
			assert.Equal(t, tc.want, int(in.Quantity))
		})
	}
}
