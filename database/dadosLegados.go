package database

import "APEOC_GESTAO_GO/models"

// DadosLegados são os processos da planilha antiga do escritório,
// importados pela migração de dados
var DadosLegados = []models.ProcessoLegado{
	{
		Autor:     "Neudson Carvalho das Chagas e Antonio da Silva Gomes Júnior",
		Processo:  "10309-88.2014.8.06.0053",
		Vara:      "1ª VARA",
		Data:      "04/12/2014 11:37",
		UltimoMov: "04/12/2014 11:37",
		Situacao:  "CONCLUSÃO AO JUIZ",
		Advogado:  "Dr. Ítalo",
		TipoAcao:  "COBRANÇA - ABONOS",
	},
	{
		Autor:     "Ricardo Ferro de Oliveira",
		Processo:  "11456-86.2013.8.06.0053",
		Vara:      "2ª vara",
		Data:      "24/07/2015",
		UltimoMov: "24/07/2015 13:40",
		Situacao:  "JUNTADA DE DOCUMENTO - TIPO DE DOCUMENTO: DESPACHO",
		Advogado:  "Dr. Ítalo",
		TipoAcao:  "AÇÃO DE COBRANÇA ATS ( SALÁRIO)",
	},
	{
		Autor:     "Rosa Helena Fontenele Vieira Rodrigues",
		Processo:  "11457-71.2013.8.06.0053",
		Vara:      "1ª vara",
		Data:      "11/09/2014",
		UltimoMov: "11/09/2014 10:20",
		Situacao:  "CONCLUSO AO JUIZ",
		Advogado:  "Dr. Ítalo",
		TipoAcao:  "AÇÃO DE COBRANÇA ATS ( SALÁRIO)",
	},
	{
		Autor:    "Adriana Melo Mesquita",
		Processo: "0506704-43.2014.4.05.8103",
		Advogado: "Dr. Bruno/Augusto",
		TipoAcao: "COBRANÇA - INSS (ADICIONAL DE FÉRIAS)",
	},
	{
		Autor:    "Aldacy do Nascimento Pereira",
		Processo: "0501456-62.2015.4.05.8103",
		Advogado: "Dr. Bruno/Augusto",
		TipoAcao: "COBRANÇA - INSS (ADICIONAL DE FÉRIAS)",
	},
	{
		Autor:    "Alissandra José de Almeida",
		Processo: "0512872-61.2014.4.05.8103",
		Advogado: "Dr. Bruno/Augusto",
		TipoAcao: "COBRANÇA - INSS (ADICIONAL DE FÉRIAS)",
	},
	{
		Autor:    "Ana Angélica Bento de Andrade",
		Processo: "0512980-90.2014.4.05.8103",
		Advogado: "Dr. Bruno/Augusto",
		TipoAcao: "COBRANÇA - INSS (ADICIONAL DE FÉRIAS)",
	},
	{
		Autor:     "João Paulo Ferreira da Costa",
		Processo:  "11765-73.2014.8.06.0053",
		Vara:      "2ª vara",
		Data:      "30/07/2015",
		UltimoMov: "30/07/2015 15:12",
		Situacao:  "CONCLUSO AO JUIZ",
		Advogado:  "Dr. Ítalo",
		TipoAcao:  "AÇÃO DE COBRANÇA ATS ( SALÁRIO)",
	},
}
