package handlers

import (
	"net/http"
	"testing"
)

func TestCriarAnotacaoCamposObrigatorios(t *testing.T) {
	casos := []string{
		`{"autor": "Secretária Maria"}`,
		`{"conteudo": "Documentação entregue"}`,
		`{}`,
	}
	for _, corpo := range casos {
		rec := executar(t, CriarAnotacaoHandler(nil), "POST", "/associados/3/anotacoes", corpo)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("corpo %s: esperado 400, obtido %d", corpo, rec.Code)
		}
	}
}

func TestCriarAnotacaoIDInvalido(t *testing.T) {
	corpo := `{"conteudo": "Documentação entregue", "autor": "Secretária Maria"}`
	rec := executar(t, CriarAnotacaoHandler(nil), "POST", "/associados/abc/anotacoes", corpo)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("esperado 400, obtido %d", rec.Code)
	}
}
