package usecase

import (
	"strings"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/internal/domain/validate"
	"github.com/jhoicas/Tienda-api/pkg/obfuscate"
)

// Atributos actualizables del perfil.
const (
	AttrUsername = "username"
	AttrPassword = "password"
	AttrEmail    = "email"
	AttrMobile   = "mobile"
)

// UserUseCase aplica reglas de negocio para usuarios ya registrados:
// consulta, actualización de perfil y administración de clientes.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID, o nil si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return auth.ToUserResponse(user), nil
}

// UpdateProfile actualiza un único atributo del perfil, re-validando
// solo ese atributo. La clave nueva se ofusca antes de persistir.
// Email y mobile solo existen para clientes. Un fallo de validación o
// de persistencia deja al usuario exactamente como estaba.
func (uc *UserUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	value := strings.TrimSpace(in.Value)
	switch strings.ToLower(in.Attribute) {
	case AttrUsername:
		if !validate.Username(value) {
			return nil, domain.ErrInvalidInput
		}
		if value != user.Base().Name {
			existing, err := uc.repo.FindByUsername(value)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		user.Base().Name = value
	case AttrPassword:
		if !validate.Password(value) {
			return nil, domain.ErrInvalidInput
		}
		user.Base().Password = obfuscate.Obfuscate(value)
	case AttrEmail:
		c, ok := user.(*entity.Customer)
		if !ok || !validate.Email(value) {
			return nil, domain.ErrInvalidInput
		}
		c.Email = value
	case AttrMobile:
		c, ok := user.(*entity.Customer)
		if !ok || !validate.Mobile(value) {
			return nil, domain.ErrInvalidInput
		}
		c.Mobile = value
	default:
		return nil, domain.ErrInvalidInput
	}

	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// ListCustomers pagina los clientes registrados (uso administrativo).
func (uc *UserUseCase) ListCustomers(pageNumber int) (*dto.CustomerListResponse, error) {
	page, err := uc.repo.ListCustomers(pageNumber)
	if err != nil {
		return nil, err
	}
	out := &dto.CustomerListResponse{
		Items: make([]dto.UserResponse, 0, len(page.Items)),
		Page:  dto.PageResponse{CurrentPage: page.CurrentPage, TotalPages: page.TotalPages},
	}
	for _, c := range page.Items {
		out.Items = append(out.Items, *auth.ToUserResponse(c))
	}
	return out, nil
}

// DeleteCustomer elimina un cliente por ID (uso administrativo).
func (uc *UserUseCase) DeleteCustomer(id string) error {
	return uc.repo.DeleteCustomer(id)
}

// DeleteAllCustomers elimina todos los clientes conservando los admins.
func (uc *UserUseCase) DeleteAllCustomers() error {
	return uc.repo.DeleteAllCustomers()
}
