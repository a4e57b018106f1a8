// Package auth cuida da autenticação do sistema: login com usuário e senha,
// emissão e validação de tokens JWT, registro de usuários e a criação do
// administrador inicial.
package auth

import (
	"errors"
	"fmt"
	"time"

	"APEOC_GESTAO_GO/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Credenciais do administrador criado na inicialização do sistema. São
// exibidas abertamente na tela de setup; por isso o usuário nasce com a
// flag "inicial" e deve trocar a senha no primeiro acesso.
const (
	UsuarioInicial = "rocha"
	SenhaInicial   = "4884"
)

const (
	validadeToken = 7 * 24 * time.Hour
	custoBcrypt   = 10
)

var (
	ErrCredenciaisInvalidas = errors.New("usuário ou senha incorretos")
	ErrTokenInvalido        = errors.New("token inválido")
	ErrJaInicializado       = errors.New("sistema já foi inicializado")
	ErrUsernameEmUso        = errors.New("nome de usuário já existe")
	ErrEmailEmUso           = errors.New("email já está em uso")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
)

// UserStore abstrai a persistência de usuários. As buscas devolvem
// (nil, nil) quando o usuário não existe.
type UserStore interface {
	BuscarPorUsername(username string) (*models.Usuario, error)
	BuscarPorEmail(email string) (*models.Usuario, error)
	BuscarPorID(id string) (*models.Usuario, error)
	Criar(usuario *models.Usuario) error
	ContarUsuarios() (int, error)
	AtualizarSenha(id, senhaHash string, inicial bool) error
}

// Service implementa o serviço de autenticação sobre um UserStore
type Service struct {
	store     UserStore
	jwtSecret []byte
}

func NovoService(store UserStore, jwtSecret string) *Service {
	return &Service{store: store, jwtSecret: []byte(jwtSecret)}
}

// Login verifica as credenciais e emite um token com validade de 7 dias.
// Usuário inexistente, inativo ou senha errada produzem o mesmo erro, sem
// indicar qual campo falhou.
func (s *Service) Login(username, password string) (*models.Usuario, string, error) {
	usuario, err := s.store.BuscarPorUsername(username)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao buscar usuário: %w", err)
	}
	if usuario == nil || !usuario.Active {
		return nil, "", ErrCredenciaisInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(password)); err != nil {
		return nil, "", ErrCredenciaisInvalidas
	}

	token, err := s.gerarToken(usuario)
	if err != nil {
		return nil, "", err
	}
	return usuario, token, nil
}

func (s *Service) gerarToken(usuario *models.Usuario) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       usuario.ID,
		"username": usuario.Username,
		"role":     usuario.Role,
		"exp":      time.Now().Add(validadeToken).Unix(),
	})
	assinado, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar token: %w", err)
	}
	return assinado, nil
}

// ValidarToken confere a assinatura e a validade do token e busca o usuário
// no banco para garantir que ele ainda existe e está ativo. Qualquer falha
// resulta em ErrTokenInvalido.
func (s *Service) ValidarToken(tokenString string) (*models.Usuario, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalido
	}
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return nil, ErrTokenInvalido
	}

	usuario, err := s.store.BuscarPorID(id)
	if err != nil || usuario == nil || !usuario.Active {
		return nil, ErrTokenInvalido
	}
	return usuario, nil
}

// Registrar cria um novo usuário comum. O username "rocha" recebe o papel
// de administrador, como no cadastro aberto original.
func (s *Service) Registrar(username, password string, name, email *string) (*models.Usuario, error) {
	existente, err := s.store.BuscarPorUsername(username)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}
	if existente != nil {
		return nil, ErrUsernameEmUso
	}

	if email != nil && *email != "" {
		existente, err := s.store.BuscarPorEmail(*email)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar email: %w", err)
		}
		if existente != nil {
			return nil, ErrEmailEmUso
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), custoBcrypt)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}

	role := "user"
	if username == UsuarioInicial {
		role = "admin"
	}

	agora := time.Now()
	usuario := &models.Usuario{
		ID:         uuid.NewString(),
		Username:   username,
		Password:   string(hash),
		Name:       name,
		Email:      email,
		Role:       role,
		Active:     true,
		DateCreate: agora,
		DateUpdate: agora,
	}
	if err := s.store.Criar(usuario); err != nil {
		return nil, fmt.Errorf("erro ao criar usuário: %w", err)
	}
	return usuario, nil
}

// Inicializar cria o administrador padrão, somente se nenhum usuário
// existir. A verificação consulta o banco a cada chamada, então o resultado
// vale mesmo após reinício do processo.
func (s *Service) Inicializar() (*models.Usuario, error) {
	total, err := s.store.ContarUsuarios()
	if err != nil {
		return nil, fmt.Errorf("erro ao contar usuários: %w", err)
	}
	if total > 0 {
		return nil, ErrJaInicializado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(SenhaInicial), custoBcrypt)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}

	nome := "Administrador"
	email := "admin@apeoc.com"
	agora := time.Now()
	usuario := &models.Usuario{
		ID:         uuid.NewString(),
		Username:   UsuarioInicial,
		Password:   string(hash),
		Name:       &nome,
		Email:      &email,
		Role:       "admin",
		Active:     true,
		Inicial:    true,
		DateCreate: agora,
		DateUpdate: agora,
	}
	if err := s.store.Criar(usuario); err != nil {
		return nil, fmt.Errorf("erro ao criar usuário administrador: %w", err)
	}
	return usuario, nil
}

// Inicializado informa se o sistema já possui usuários cadastrados
func (s *Service) Inicializado() (bool, int, error) {
	total, err := s.store.ContarUsuarios()
	if err != nil {
		return false, 0, fmt.Errorf("erro ao contar usuários: %w", err)
	}
	return total > 0, total, nil
}

// AlterarSenha troca a senha do usuário após conferir a senha atual e limpa
// a flag de senha inicial
func (s *Service) AlterarSenha(id, senhaAtual, novaSenha string) error {
	usuario, err := s.store.BuscarPorID(id)
	if err != nil {
		return fmt.Errorf("erro ao buscar usuário: %w", err)
	}
	if usuario == nil {
		return ErrUsuarioNaoEncontrado
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(senhaAtual)); err != nil {
		return ErrCredenciaisInvalidas
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(novaSenha), custoBcrypt)
	if err != nil {
		return fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}
	if err := s.store.AtualizarSenha(usuario.ID, string(hash), false); err != nil {
		return fmt.Errorf("erro ao atualizar senha: %w", err)
	}
	return nil
}
