// Package consulta concentra o filtro, a ordenação e as estatísticas das
// listagens de associados e processos. As funções são puras: recebem a
// coleção carregada do banco e devolvem uma nova fatia, sem alterar a origem.
package consulta

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"APEOC_GESTAO_GO/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Chaves de ordenação aceitas na listagem de associados
const (
	OrdenarPorNome        = "nome"
	OrdenarPorMatricula   = "matricula"
	OrdenarPorValor       = "valor"
	OrdenarPorEstado      = "estado"
	OrdenarPorCargo       = "cargo"
	OrdenarPorAniversario = "aniversario"
)

func novoCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese)
}

func texto(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func contem(campo, termo string) bool {
	return strings.Contains(strings.ToLower(campo), termo)
}

// FiltrarAssociados devolve os associados em que o termo aparece em algum dos
// campos textuais (nome, matrícula, estado, categoria, cargo ou aniversário),
// sem diferenciar maiúsculas. Termo vazio devolve todos.
func FiltrarAssociados(associados []models.Associado, termo string) []models.Associado {
	resultado := make([]models.Associado, 0, len(associados))
	if strings.TrimSpace(termo) == "" {
		return append(resultado, associados...)
	}

	termoLower := strings.ToLower(termo)
	for _, a := range associados {
		if contem(a.Nome, termoLower) ||
			contem(a.Matricula, termoLower) ||
			contem(texto(a.Estado), termoLower) ||
			contem(texto(a.Categoria), termoLower) ||
			contem(texto(a.Cargo), termoLower) ||
			contem(texto(a.Aniversario), termoLower) {
			resultado = append(resultado, a)
		}
	}
	return resultado
}

// ValorNumerico converte o valor monetário do associado (vírgula como
// separador decimal) para float64. Valores ausentes ou malformados
// retornam NaN.
func ValorNumerico(valor *string) float64 {
	if valor == nil {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.Replace(*valor, ",", ".", 1), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// OrdenarAssociados devolve uma nova fatia ordenada pela chave informada.
// Chaves textuais ordenam de forma crescente com colação pt-BR, tratando
// campos ausentes como vazio; "valor" ordena de forma decrescente pelo valor
// numérico, com valores malformados ao final. Chave desconhecida mantém a
// ordem recebida.
func OrdenarAssociados(associados []models.Associado, chave string) []models.Associado {
	resultado := append([]models.Associado(nil), associados...)

	var campo func(models.Associado) string
	switch chave {
	case OrdenarPorNome:
		campo = func(a models.Associado) string { return a.Nome }
	case OrdenarPorMatricula:
		campo = func(a models.Associado) string { return a.Matricula }
	case OrdenarPorEstado:
		campo = func(a models.Associado) string { return texto(a.Estado) }
	case OrdenarPorCargo:
		campo = func(a models.Associado) string { return texto(a.Cargo) }
	case OrdenarPorAniversario:
		campo = func(a models.Associado) string { return texto(a.Aniversario) }
	case OrdenarPorValor:
		sort.Slice(resultado, func(i, j int) bool {
			return valorMaior(ValorNumerico(resultado[i].Valor), ValorNumerico(resultado[j].Valor))
		})
		return resultado
	default:
		return resultado
	}

	col := novoCollator()
	sort.Slice(resultado, func(i, j int) bool {
		return col.CompareString(campo(resultado[i]), campo(resultado[j])) < 0
	})
	return resultado
}

// valorMaior ordena do maior para o menor, empurrando NaN para o final
func valorMaior(a, b float64) bool {
	switch {
	case math.IsNaN(a):
		return false
	case math.IsNaN(b):
		return true
	default:
		return a > b
	}
}

// EstatisticasAssociados resume a listagem exibida no painel
type EstatisticasAssociados struct {
	Estaduais              int `json:"estaduais"`
	Municipais             int `json:"municipais"`
	AniversariantesOutubro int `json:"aniversariantesOutubro"`
}

// CalcularEstatisticas conta estaduais, municipais e aniversariantes de
// outubro na fatia recebida (normalmente a já filtrada)
func CalcularEstatisticas(associados []models.Associado) EstatisticasAssociados {
	var e EstatisticasAssociados
	for _, a := range associados {
		if texto(a.Estado) == "estado" || texto(a.Categoria) == "estadual" {
			e.Estaduais++
		}
		if texto(a.Estado) == "município" || texto(a.Categoria) == "municipal" {
			e.Municipais++
		}
		if strings.Contains(texto(a.Aniversario), "10") {
			e.AniversariantesOutubro++
		}
	}
	return e
}

// FiltrarProcessos aplica um único filtro à listagem, nesta precedência:
// autor exato, depois tipo de ação, depois pesquisa livre. Os filtros não se
// combinam; sem nenhum deles, devolve todos.
func FiltrarProcessos(processos []models.Processo, autor, tipoAcao, pesquisa string) []models.Processo {
	resultado := make([]models.Processo, 0, len(processos))

	switch {
	case autor != "":
		for _, p := range processos {
			if p.Autor == autor {
				resultado = append(resultado, p)
			}
		}
	case tipoAcao != "":
		for _, p := range processos {
			if texto(p.TipoAcao) == tipoAcao {
				resultado = append(resultado, p)
			}
		}
	case pesquisa != "":
		termoLower := strings.ToLower(pesquisa)
		for _, p := range processos {
			if contem(p.Autor, termoLower) ||
				contem(p.Numero, termoLower) ||
				contem(texto(p.Vara), termoLower) ||
				contem(texto(p.Situacao), termoLower) ||
				contem(texto(p.ProximoPasso), termoLower) ||
				contem(texto(p.Advogado), termoLower) ||
				contem(texto(p.TipoAcao), termoLower) {
				resultado = append(resultado, p)
			}
		}
	default:
		resultado = append(resultado, processos...)
	}
	return resultado
}

// TiposAcoes devolve os tipos de ação distintos, ordenados com colação pt-BR
func TiposAcoes(processos []models.Processo) []string {
	vistos := make(map[string]bool)
	var tipos []string
	for _, p := range processos {
		t := texto(p.TipoAcao)
		if t != "" && !vistos[t] {
			vistos[t] = true
			tipos = append(tipos, t)
		}
	}
	novoCollator().SortStrings(tipos)
	return tipos
}

// Autores devolve os autores distintos, ordenados com colação pt-BR
func Autores(processos []models.Processo) []string {
	vistos := make(map[string]bool)
	var autores []string
	for _, p := range processos {
		if p.Autor != "" && !vistos[p.Autor] {
			vistos[p.Autor] = true
			autores = append(autores, p.Autor)
		}
	}
	novoCollator().SortStrings(autores)
	return autores
}
