package models

import "time"

type Associado struct {
	ID          int       `json:"id" db:"id"`
	Matricula   string    `json:"matricula" db:"matricula"`
	Nome        string    `json:"nome" db:"nome"`
	Referencia  *string   `json:"referencia,omitempty" db:"referencia"`
	Valor       *string   `json:"valor,omitempty" db:"valor"`
	Estado      *string   `json:"estado,omitempty" db:"estado"`
	Categoria   *string   `json:"categoria,omitempty" db:"categoria"`
	Cargo       *string   `json:"cargo,omitempty" db:"cargo"`
	Aniversario *string   `json:"aniversario,omitempty" db:"aniversario"`
	DateCreate  time.Time `json:"date_create" db:"date_create"`
	DateUpdate  time.Time `json:"date_update" db:"date_update"`
}
