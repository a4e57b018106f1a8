package auth

import (
	"database/sql"
	"errors"

	"APEOC_GESTAO_GO/models"
)

// PostgresUserStore implementa UserStore sobre a tabela apeoc.usuario
type PostgresUserStore struct {
	db *sql.DB
}

func NovoPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

const colunasUsuario = `id, username, password, name, email, role, active, inicial, date_create, date_update`

func (s *PostgresUserStore) buscar(query string, arg interface{}) (*models.Usuario, error) {
	var u models.Usuario
	err := s.db.QueryRow(query, arg).Scan(
		&u.ID, &u.Username, &u.Password, &u.Name, &u.Email,
		&u.Role, &u.Active, &u.Inicial, &u.DateCreate, &u.DateUpdate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *PostgresUserStore) BuscarPorUsername(username string) (*models.Usuario, error) {
	return s.buscar(`SELECT `+colunasUsuario+` FROM apeoc.usuario WHERE username = $1`, username)
}

func (s *PostgresUserStore) BuscarPorEmail(email string) (*models.Usuario, error) {
	return s.buscar(`SELECT `+colunasUsuario+` FROM apeoc.usuario WHERE email = $1`, email)
}

func (s *PostgresUserStore) BuscarPorID(id string) (*models.Usuario, error) {
	return s.buscar(`SELECT `+colunasUsuario+` FROM apeoc.usuario WHERE id = $1`, id)
}

func (s *PostgresUserStore) Criar(usuario *models.Usuario) error {
	_, err := s.db.Exec(`
		INSERT INTO apeoc.usuario (id, username, password, name, email, role, active, inicial, date_create, date_update)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, usuario.ID, usuario.Username, usuario.Password, usuario.Name, usuario.Email,
		usuario.Role, usuario.Active, usuario.Inicial, usuario.DateCreate, usuario.DateUpdate)
	return err
}

func (s *PostgresUserStore) ContarUsuarios() (int, error) {
	var total int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM apeoc.usuario`).Scan(&total)
	return total, err
}

func (s *PostgresUserStore) AtualizarSenha(id, senhaHash string, inicial bool) error {
	_, err := s.db.Exec(`
		UPDATE apeoc.usuario SET password = $1, inicial = $2, date_update = now() WHERE id = $3
	`, senhaHash, inicial, id)
	return err
}
