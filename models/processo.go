package models

import "time"

type Processo struct {
	ID           int       `json:"id" db:"id"`
	IDAssociado  *int      `json:"id_associado,omitempty" db:"id_associado"`
	Autor        string    `json:"autor" db:"autor"`
	Numero       string    `json:"processo" db:"numero"`
	Vara         *string   `json:"vara" db:"vara"`
	Data         *string   `json:"data" db:"data"`
	UltimoMov    *string   `json:"ultimoMov" db:"ultimo_mov"`
	Situacao     *string   `json:"situacao" db:"situacao"`
	ProximoPasso *string   `json:"proximoPasso" db:"proximo_passo"`
	IdaAoForum   *string   `json:"idaAoForum" db:"ida_ao_forum"`
	Advogado     *string   `json:"advogado" db:"advogado"`
	TipoAcao     *string   `json:"tipoAcao" db:"tipo_acao"`
	Anotacoes    *string   `json:"anotacoes" db:"anotacoes"`
	DateCreate   time.Time `json:"date_create" db:"date_create"`
	DateUpdate   time.Time `json:"date_update" db:"date_update"`
}
