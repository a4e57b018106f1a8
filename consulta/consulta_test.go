package consulta

import (
	"math"
	"strings"
	"testing"

	"APEOC_GESTAO_GO/models"
)

func str(s string) *string {
	return &s
}

func associadosDeTeste() []models.Associado {
	return []models.Associado{
		{ID: 1, Matricula: "3001", Nome: "Beto Costa", Valor: str("28,00"), Estado: str("município"), Cargo: str("Professor")},
		{ID: 2, Matricula: "1002", Nome: "Ana Silva", Valor: str("35,50"), Categoria: str("estadual"), Aniversario: str("12/10")},
		{ID: 3, Matricula: "2003", Nome: "Carla Silva", Valor: str("41,20"), Estado: str("estado"), Cargo: str("Diretora")},
	}
}

func TestFiltrarTermoVazioRetornaTodos(t *testing.T) {
	associados := associadosDeTeste()
	resultado := FiltrarAssociados(associados, "")
	if len(resultado) != len(associados) {
		t.Fatalf("termo vazio deveria retornar todos: esperado %d, obtido %d", len(associados), len(resultado))
	}
	resultado = FiltrarAssociados(associados, "   ")
	if len(resultado) != len(associados) {
		t.Fatalf("termo em branco deveria retornar todos: esperado %d, obtido %d", len(associados), len(resultado))
	}
}

func TestFiltrarNaoAlteraOrigem(t *testing.T) {
	associados := associadosDeTeste()
	FiltrarAssociados(associados, "silva")
	OrdenarAssociados(associados, OrdenarPorNome)
	if associados[0].Nome != "Beto Costa" {
		t.Fatalf("a coleção de origem foi alterada: %v", associados[0].Nome)
	}
}

func TestFiltrarCaseInsensitive(t *testing.T) {
	associados := associadosDeTeste()
	for _, termo := range []string{"silva", "SILVA", "SiLvA"} {
		resultado := FiltrarAssociados(associados, termo)
		if len(resultado) != 2 {
			t.Fatalf("termo %q: esperados 2 associados, obtidos %d", termo, len(resultado))
		}
	}
}

func TestFiltrarTodoResultadoContemOTermo(t *testing.T) {
	associados := associadosDeTeste()
	termo := "o"
	campos := func(a models.Associado) []string {
		valores := []string{a.Nome, a.Matricula}
		for _, p := range []*string{a.Estado, a.Categoria, a.Cargo, a.Aniversario} {
			if p != nil {
				valores = append(valores, *p)
			}
		}
		return valores
	}
	for _, a := range FiltrarAssociados(associados, termo) {
		encontrou := false
		for _, campo := range campos(a) {
			if strings.Contains(strings.ToLower(campo), termo) {
				encontrou = true
				break
			}
		}
		if !encontrou {
			t.Fatalf("associado %q não contém o termo %q em nenhum campo", a.Nome, termo)
		}
	}
}

func TestFiltrarPorMatriculaEOutrosCampos(t *testing.T) {
	associados := associadosDeTeste()

	resultado := FiltrarAssociados(associados, "1002")
	if len(resultado) != 1 || resultado[0].Nome != "Ana Silva" {
		t.Fatalf("busca por matrícula falhou: %+v", resultado)
	}

	resultado = FiltrarAssociados(associados, "diretora")
	if len(resultado) != 1 || resultado[0].Nome != "Carla Silva" {
		t.Fatalf("busca por cargo falhou: %+v", resultado)
	}
}

func TestBuscaSilvaOrdenadaPorNome(t *testing.T) {
	associados := associadosDeTeste()
	resultado := OrdenarAssociados(FiltrarAssociados(associados, "silva"), OrdenarPorNome)

	esperados := []string{"Ana Silva", "Carla Silva"}
	if len(resultado) != len(esperados) {
		t.Fatalf("esperados %d associados, obtidos %d", len(esperados), len(resultado))
	}
	for i, nome := range esperados {
		if resultado[i].Nome != nome {
			t.Fatalf("posição %d: esperado %q, obtido %q", i, nome, resultado[i].Nome)
		}
	}
}

func TestOrdenarPorNomeComAcentos(t *testing.T) {
	associados := []models.Associado{
		{Nome: "Zuleide Ramos"},
		{Nome: "Átila Barbosa"},
		{Nome: "Antonio Prado"},
	}
	resultado := OrdenarAssociados(associados, OrdenarPorNome)
	// Com colação pt-BR, "Átila" fica entre "Antonio" e "Zuleide",
	// não depois de "Zuleide" como na ordem de bytes
	esperados := []string{"Antonio Prado", "Átila Barbosa", "Zuleide Ramos"}
	for i, nome := range esperados {
		if resultado[i].Nome != nome {
			t.Fatalf("posição %d: esperado %q, obtido %q", i, nome, resultado[i].Nome)
		}
	}
}

func TestOrdenarPorValorDecrescente(t *testing.T) {
	associados := associadosDeTeste()
	resultado := OrdenarAssociados(associados, OrdenarPorValor)

	for i := 0; i < len(resultado)-1; i++ {
		atual := ValorNumerico(resultado[i].Valor)
		seguinte := ValorNumerico(resultado[i+1].Valor)
		if atual < seguinte {
			t.Fatalf("ordenação por valor não é decrescente: %v antes de %v", atual, seguinte)
		}
	}
	if resultado[0].Nome != "Carla Silva" {
		t.Fatalf("maior valor deveria vir primeiro, obtido %q", resultado[0].Nome)
	}
}

func TestOrdenarPorValorMalformadoVaiParaOFim(t *testing.T) {
	associados := []models.Associado{
		{Nome: "Sem valor"},
		{Nome: "Malformado", Valor: str("abc")},
		{Nome: "Trinta", Valor: str("30,00")},
		{Nome: "Quarenta", Valor: str("40,00")},
	}
	resultado := OrdenarAssociados(associados, OrdenarPorValor)
	if resultado[0].Nome != "Quarenta" || resultado[1].Nome != "Trinta" {
		t.Fatalf("valores numéricos deveriam vir primeiro: %+v", resultado)
	}
	for _, a := range resultado[2:] {
		if !math.IsNaN(ValorNumerico(a.Valor)) {
			t.Fatalf("final da lista deveria conter apenas valores malformados, obtido %q", a.Nome)
		}
	}
}

func TestValorNumericoNormalizaVirgula(t *testing.T) {
	if v := ValorNumerico(str("1234,56")); v != 1234.56 {
		t.Fatalf("esperado 1234.56, obtido %v", v)
	}
	if !math.IsNaN(ValorNumerico(nil)) {
		t.Fatal("valor ausente deveria resultar em NaN")
	}
	if !math.IsNaN(ValorNumerico(str("R$ 30"))) {
		t.Fatal("valor malformado deveria resultar em NaN")
	}
}

func TestOrdenarChaveDesconhecidaMantemOrdem(t *testing.T) {
	associados := associadosDeTeste()
	resultado := OrdenarAssociados(associados, "inexistente")
	for i := range associados {
		if resultado[i].ID != associados[i].ID {
			t.Fatalf("chave desconhecida deveria manter a ordem recebida")
		}
	}
}

func TestCalcularEstatisticas(t *testing.T) {
	estatisticas := CalcularEstatisticas(associadosDeTeste())
	if estatisticas.Estaduais != 2 {
		t.Fatalf("esperados 2 estaduais, obtidos %d", estatisticas.Estaduais)
	}
	if estatisticas.Municipais != 1 {
		t.Fatalf("esperado 1 municipal, obtido %d", estatisticas.Municipais)
	}
	if estatisticas.AniversariantesOutubro != 1 {
		t.Fatalf("esperado 1 aniversariante de outubro, obtido %d", estatisticas.AniversariantesOutubro)
	}
}

func processosDeTeste() []models.Processo {
	return []models.Processo{
		{ID: 1, Autor: "Maria Silva", Numero: "123-45.2020", TipoAcao: str("COBRANÇA - ABONOS"), Situacao: str("Em andamento")},
		{ID: 2, Autor: "José Santos", Numero: "678-90.2021", TipoAcao: str("AÇÃO DE COBRANÇA ATS"), Situacao: str("CONCLUSO AO JUIZ"), Advogado: str("Dr. Ítalo")},
		{ID: 3, Autor: "Maria Silva", Numero: "111-22.2019", TipoAcao: str("AÇÃO DE COBRANÇA ATS"), Situacao: str("Arquivado")},
	}
}

func TestFiltrarProcessosPorAutor(t *testing.T) {
	resultado := FiltrarProcessos(processosDeTeste(), "Maria Silva", "", "")
	if len(resultado) != 2 {
		t.Fatalf("esperados 2 processos da autora, obtidos %d", len(resultado))
	}
	for _, p := range resultado {
		if p.Autor != "Maria Silva" {
			t.Fatalf("processo de outro autor no resultado: %q", p.Autor)
		}
	}
}

func TestFiltrarProcessosPrecedencia(t *testing.T) {
	processos := processosDeTeste()

	// autor tem precedência sobre tipoAcao e pesquisa
	resultado := FiltrarProcessos(processos, "José Santos", "COBRANÇA - ABONOS", "arquivado")
	if len(resultado) != 1 || resultado[0].Autor != "José Santos" {
		t.Fatalf("filtro por autor deveria prevalecer: %+v", resultado)
	}

	// tipoAcao tem precedência sobre pesquisa
	resultado = FiltrarProcessos(processos, "", "COBRANÇA - ABONOS", "arquivado")
	if len(resultado) != 1 || resultado[0].ID != 1 {
		t.Fatalf("filtro por tipo de ação deveria prevalecer: %+v", resultado)
	}
}

func TestFiltrarProcessosPesquisaLivre(t *testing.T) {
	resultado := FiltrarProcessos(processosDeTeste(), "", "", "ítalo")
	if len(resultado) != 1 || resultado[0].ID != 2 {
		t.Fatalf("pesquisa livre pelo advogado falhou: %+v", resultado)
	}

	resultado = FiltrarProcessos(processosDeTeste(), "", "", "")
	if len(resultado) != 3 {
		t.Fatalf("sem filtros deveria retornar todos, obtidos %d", len(resultado))
	}
}

func TestTiposAcoesEAutoresDistintos(t *testing.T) {
	processos := processosDeTeste()

	tipos := TiposAcoes(processos)
	if len(tipos) != 2 {
		t.Fatalf("esperados 2 tipos de ação distintos, obtidos %v", tipos)
	}

	autores := Autores(processos)
	if len(autores) != 2 {
		t.Fatalf("esperados 2 autores distintos, obtidos %v", autores)
	}
	if autores[0] != "José Santos" || autores[1] != "Maria Silva" {
		t.Fatalf("autores fora de ordem: %v", autores)
	}
}
