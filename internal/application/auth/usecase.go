package auth

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

// AuthUseCase verifica credenciales de operador contra la tabla users y registra operadores nuevos.
type AuthUseCase struct {
	userRepo repository.UserRepository
	log      *logger.Logger
	cost     int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewAuthUseCase construye el caso de uso de auth con bcrypt.DefaultCost.
func NewAuthUseCase(userRepo repository.UserRepository, log *logger.Logger) *AuthUseCase {
	return NewAuthUseCaseWithCost(userRepo, log, bcrypt.DefaultCost)
}

// NewAuthUseCaseWithCost permite fijar el costo de bcrypt (tests usan bcrypt.MinCost).
func NewAuthUseCaseWithCost(userRepo repository.UserRepository, log *logger.Logger, cost int) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, log: log, cost: cost}
}

// Verify devuelve true solo si el usuario existe y la contraseña coincide con su hash.
// Cualquier error del almacén se registra y cuenta como fallo (fail-closed).
func (uc *AuthUseCase) Verify(ctx context.Context, username, password string) bool {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.log.Error().Err(err).Msg("error de base de datos durante el inicio de sesión")
		return false
	}
	if user == nil {
		// Comparar igual contra un hash fijo para no revelar por tiempo si el usuario existe.
		_ = bcrypt.CompareHashAndPassword(uc.dummy(), []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// RegisterUser hashea la contraseña con bcrypt y persiste el usuario. ErrDuplicate si ya existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterUserRequest) error {
	if err := dto.Validate(in); err != nil {
		uc.log.Error().Msgf("registro de usuario rechazado: %v", err)
		return err
	}
	existing, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		uc.log.Error().Err(err).Msg("error de base de datos al verificar usuario")
		return err
	}
	if existing != nil {
		uc.log.Error().Msgf("el usuario ya existe: %s", in.Username)
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, in.Username)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user := &entity.User{Username: in.Username, PasswordHash: string(hash)}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		uc.log.Error().Err(err).Msg("error de base de datos al registrar usuario")
		return err
	}
	uc.log.Info().Msgf("usuario registrado: %s", in.Username)
	return nil
}

func (uc *AuthUseCase) dummy() []byte {
	uc.dummyOnce.Do(func() {
		uc.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("ims-dummy-password"), uc.cost)
	})
	return uc.dummyHash
}
