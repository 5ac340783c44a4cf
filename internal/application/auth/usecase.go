package auth

import (
	"strings"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/internal/domain/validate"
	"github.com/jhoicas/Tienda-api/pkg/jwt"
	"github.com/jhoicas/Tienda-api/pkg/obfuscate"
)

// timeLayout formato de los timestamps de registro y de orden.
const timeLayout = "02-01-2006_15:04:05"

// Now devuelve el instante actual ya formateado para persistir.
func Now() string {
	return time.Now().Format(timeLayout)
}

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro de clientes, login
// y bootstrap del admin. La clave se valida en claro y se persiste
// siempre ofuscada.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// RegisterCustomer valida los cuatro campos, ofusca la clave y persiste
// un cliente nuevo. Devuelve domain.ErrInvalidInput si algún campo no
// pasa su predicado y domain.ErrDuplicate si el nombre ya existe. Nunca
// deja estado parcial: el repositorio persiste todo o nada.
func (uc *AuthUseCase) RegisterCustomer(in dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	email := strings.TrimSpace(in.Email)
	mobile := strings.TrimSpace(in.Mobile)

	if !validate.Username(username) || !validate.Password(password) ||
		!validate.Email(email) || !validate.Mobile(mobile) {
		return nil, domain.ErrInvalidInput
	}

	customer := &entity.Customer{
		Profile: entity.Profile{
			Name:         username,
			Password:     obfuscate.Obfuscate(password),
			RegisteredAt: Now(),
			Role:         entity.RoleCustomer,
		},
		Email:  email,
		Mobile: mobile,
	}
	if err := uc.users.Create(customer); err != nil {
		return nil, err
	}
	return ToUserResponse(customer), nil
}

// Login busca por nombre de usuario, revierte el token almacenado y
// compara con la clave en claro. Credenciales malas devuelven
// domain.ErrUserNotFound, nunca un panic ni un error de formato al
// llamador.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByUsername(strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	stored, err := obfuscate.Reveal(user.Base().Password)
	if err != nil || stored != in.Password {
		// Un token ilegible en el archivo cuenta como credencial inválida;
		// no se filtra el detalle al llamador.
		return nil, domain.ErrUserNotFound
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Base().ID, user.Base().Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// EnsureAdmin garantiza que exista exactamente una cuenta admin con el
// nombre dado, creándola en el primer arranque. Idempotente.
func (uc *AuthUseCase) EnsureAdmin(username, password string) error {
	existing, err := uc.users.FindByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	admin := &entity.Admin{Profile: entity.Profile{
		Name:         username,
		Password:     obfuscate.Obfuscate(password),
		RegisteredAt: Now(),
		Role:         entity.RoleAdmin,
	}}
	return uc.users.Create(admin)
}

// ToUserResponse convierte la variante concreta a DTO. El type switch
// sobre la suma cerrada decide qué campos de contacto se emiten.
func ToUserResponse(u entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	p := u.Base()
	out := &dto.UserResponse{
		ID:           p.ID,
		Username:     p.Name,
		Role:         p.Role,
		RegisteredAt: p.RegisteredAt,
	}
	if c, ok := u.(*entity.Customer); ok {
		out.Email = c.Email
		out.Mobile = c.Mobile
	}
	return out
}
