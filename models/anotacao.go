package models

import "time"

type Anotacao struct {
	ID          int       `json:"id" db:"id"`
	IDAssociado int       `json:"id_associado" db:"id_associado"`
	Conteudo    string    `json:"conteudo" db:"conteudo"`
	Autor       string    `json:"autor" db:"autor"`
	DateCreate  time.Time `json:"date_create" db:"date_create"`
	DateUpdate  time.Time `json:"date_update" db:"date_update"`
}
