package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

// Os testes abaixo cobrem a validação dos handlers, que acontece antes de
// qualquer acesso ao banco; por isso o *sql.DB pode ser nulo.

func executar(t *testing.T, handler http.HandlerFunc, metodo, caminho, corpo string) *httptest.ResponseRecorder {
	t.Helper()
	router := mux.NewRouter()
	router.HandleFunc("/processos/{id}/anotacoes", handler)
	router.HandleFunc("/processos/{id}", handler)
	router.HandleFunc("/associados/{id}/anotacoes", handler)
	router.PathPrefix("/").HandlerFunc(handler)

	req := httptest.NewRequest(metodo, caminho, strings.NewReader(corpo))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCriarProcessoCamposObrigatorios(t *testing.T) {
	casos := []struct {
		nome  string
		corpo string
	}{
		{"sem autor", `{"processo": "123-45.2020", "situacao": "Em andamento"}`},
		{"sem numero", `{"autor": "Maria Silva", "situacao": "Em andamento"}`},
		{"sem situacao", `{"autor": "Maria Silva", "processo": "123-45.2020"}`},
		{"vazio", `{}`},
	}
	for _, caso := range casos {
		rec := executar(t, CriarProcessoHandler(nil), "POST", "/processos/create", caso.corpo)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: esperado 400, obtido %d", caso.nome, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Campos obrigatórios") {
			t.Fatalf("%s: mensagem inesperada: %s", caso.nome, rec.Body.String())
		}
	}
}

func TestCriarProcessoJSONInvalido(t *testing.T) {
	rec := executar(t, CriarProcessoHandler(nil), "POST", "/processos/create", `{autor:`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("esperado 400, obtido %d", rec.Code)
	}
}

func TestAtualizarProcessoSemID(t *testing.T) {
	corpo := `{"autor": "Maria Silva", "processo": "123-45.2020", "situacao": "Em andamento"}`
	rec := executar(t, AtualizarProcessoHandler(nil), "PUT", "/processos/update", corpo)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("esperado 400, obtido %d", rec.Code)
	}
}

func TestAnotacaoProcessoCamposObrigatorios(t *testing.T) {
	casos := []string{
		`{"autor": "Advogado João"}`,
		`{"anotacoes": "Audiência remarcada"}`,
		`{}`,
	}
	for _, corpo := range casos {
		rec := executar(t, AnotacaoProcessoHandler(nil), "POST", "/processos/7/anotacoes", corpo)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("corpo %s: esperado 400, obtido %d", corpo, rec.Code)
		}
	}
}

func TestAnotacaoProcessoIDInvalido(t *testing.T) {
	corpo := `{"anotacoes": "Audiência remarcada", "autor": "Advogado João"}`
	rec := executar(t, AnotacaoProcessoHandler(nil), "POST", "/processos/abc/anotacoes", corpo)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("esperado 400, obtido %d", rec.Code)
	}
}

func TestExcluirProcessoIDInvalido(t *testing.T) {
	rec := executar(t, ExcluirProcessoHandler(nil), "DELETE", "/processos/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("esperado 400, obtido %d", rec.Code)
	}
}
