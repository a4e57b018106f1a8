package models

// ProcessoLegado é o formato dos processos vindos da planilha antiga,
// usado apenas pela migração de dados
type ProcessoLegado struct {
	Autor        string `json:"autor"`
	Processo     string `json:"processo"`
	Vara         string `json:"vara"`
	Data         string `json:"data"`
	UltimoMov    string `json:"ultimoMov"`
	Situacao     string `json:"situacao"`
	ProximoPasso string `json:"proximoPasso"`
	IdaAoForum   string `json:"idaAoForum"`
	Advogado     string `json:"advogado"`
	TipoAcao     string `json:"tipoAcao"`
}
