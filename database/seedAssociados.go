package database

import (
	"database/sql"
	"fmt"
	"log"

	"APEOC_GESTAO_GO/models"
)

func campo(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// associadosExemplo é um recorte da planilha de associados usado para
// demonstração do sistema
var associadosExemplo = []models.Associado{
	{Matricula: "1002", Nome: "Ana Silva", Referencia: campo("REF-001"), Valor: campo("35,50"), Categoria: campo("estadual"), Cargo: campo("Professora"), Aniversario: campo("12/10")},
	{Matricula: "3001", Nome: "Beto Costa", Referencia: campo("REF-002"), Valor: campo("28,00"), Estado: campo("município"), Cargo: campo("Professor"), Aniversario: campo("03/04")},
	{Matricula: "2003", Nome: "Carla Silva", Referencia: campo("REF-003"), Valor: campo("41,20"), Estado: campo("estado"), Cargo: campo("Diretora"), Aniversario: campo("21/07")},
	{Matricula: "4010", Nome: "Francisca das Chagas Lima", Referencia: campo("REF-004"), Valor: campo("33,00"), Categoria: campo("municipal"), Cargo: campo("Professora"), Aniversario: campo("30/10")},
	{Matricula: "5230", Nome: "José Ribamar Sousa", Referencia: campo("REF-005"), Valor: campo("27,80"), Estado: campo("estado"), Cargo: campo("Supervisor"), Aniversario: campo("17/01")},
	{Matricula: "6412", Nome: "Maria do Socorro Andrade", Referencia: campo("REF-006"), Valor: campo("39,90"), Categoria: campo("estadual"), Cargo: campo("Coordenadora"), Aniversario: campo("08/06")},
}

// SeedAssociados insere os associados de exemplo, pulando matrículas já
// cadastradas para a carga poder ser repetida
func SeedAssociados(db *sql.DB) (int, error) {
	criados := 0
	for _, a := range associadosExemplo {
		var existe bool
		err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM apeoc.associado WHERE matricula = $1)`, a.Matricula).Scan(&existe)
		if err != nil {
			return criados, fmt.Errorf("erro ao verificar matrícula %q: %v", a.Matricula, err)
		}
		if existe {
			continue
		}

		_, err = db.Exec(`
			INSERT INTO apeoc.associado (matricula, nome, referencia, valor, estado, categoria, cargo, aniversario)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, a.Matricula, a.Nome, a.Referencia, a.Valor, a.Estado, a.Categoria, a.Cargo, a.Aniversario)
		if err != nil {
			return criados, fmt.Errorf("erro ao criar associado %q: %v", a.Nome, err)
		}
		criados++
		log.Printf("Associado criado: %s", a.Nome)
	}
	return criados, nil
}
