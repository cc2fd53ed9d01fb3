package account

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	doctorRepo "quickmed/database/repository/doctor"
	userRepo "quickmed/database/repository/user"
	"quickmed/models"
	"quickmed/utils"
)

// RoleStore resolves the capability set of an identity. Admin capability
// lives on user documents, doctor capability on doctor documents; callers
// see one uniform interface.
type RoleStore interface {
	HasRole(ctx context.Context, email, role string) (bool, error)
}

// Service manages portal accounts, doctor profiles and role membership.
type Service interface {
	RoleStore

	// UpsertUser writes the account document and issues a bearer token
	// for the email. This is the portal's login path.
	UpsertUser(ctx context.Context, email string, user models.User) (string, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	DeleteUser(ctx context.Context, email string) error
	// PromoteAdmin grants the admin capability to an account.
	PromoteAdmin(ctx context.Context, email string) error

	// ApplyDoctor records a doctor application (no capability yet).
	ApplyDoctor(ctx context.Context, email string, doctor models.Doctor) error
	// ApproveDoctor grants the doctor capability to an application.
	ApproveDoctor(ctx context.Context, email string) error
	DeleteDoctor(ctx context.Context, email string) error
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	GetDoctorByEmail(ctx context.Context, email string) (*models.Doctor, error)

	GetWallet(ctx context.Context, email string) (*models.WalletData, error)
	SetWallet(ctx context.Context, email string, data models.WalletData) error
	// Roles returns the capability set of an email.
	Roles(ctx context.Context, email string) ([]string, error)
}

// DefaultAccountService implements Service against the user and doctor
// repositories. Cache is optional; role sets are cached per email and
// invalidated on every capability mutation.
type DefaultAccountService struct {
	Users   userRepo.UserRepository
	Doctors doctorRepo.DoctorRepository
	Cache   *redis.Client
	Logger  *zap.Logger
}

func (s *DefaultAccountService) UpsertUser(ctx context.Context, email string, user models.User) (string, error) {
	if email == "" {
		return "", utils.Errorf(utils.KindInvalidArgument, "email is required")
	}
	if err := s.Users.Upsert(ctx, email, &user); err != nil {
		return "", utils.InfraError("user upsert", err)
	}
	token, err := utils.IssueToken(email)
	if err != nil {
		return "", utils.InfraError("token issuance", err)
	}
	return token, nil
}

func (s *DefaultAccountService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Users.GetAll(ctx)
	if err != nil {
		return nil, utils.InfraError("user lookup", err)
	}
	return users, nil
}

func (s *DefaultAccountService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.InfraError("user lookup", err)
	}
	if user == nil {
		return nil, utils.Errorf(utils.KindNotFound, "user %s not found", email)
	}
	return user, nil
}

func (s *DefaultAccountService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrInvalidID) {
			return nil, utils.Errorf(utils.KindInvalidArgument, "invalid user id")
		}
		return nil, utils.InfraError("user lookup", err)
	}
	if user == nil {
		return nil, utils.Errorf(utils.KindNotFound, "user not found")
	}
	return user, nil
}

func (s *DefaultAccountService) DeleteUser(ctx context.Context, email string) error {
	if err := s.Users.Delete(ctx, email); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return utils.Errorf(utils.KindNotFound, "user %s not found", email)
		}
		return utils.InfraError("user delete", err)
	}
	s.invalidateRoles(ctx, email)
	return nil
}

func (s *DefaultAccountService) PromoteAdmin(ctx context.Context, email string) error {
	if err := s.Users.SetRole(ctx, email, models.RoleAdmin); err != nil {
		return utils.InfraError("admin promotion", err)
	}
	s.invalidateRoles(ctx, email)
	if s.Logger != nil {
		s.Logger.Info("admin capability granted", zap.String("email", email))
	}
	return nil
}

func (s *DefaultAccountService) ApplyDoctor(ctx context.Context, email string, doctor models.Doctor) error {
	if email == "" {
		return utils.Errorf(utils.KindInvalidArgument, "email is required")
	}
	if err := s.Doctors.Upsert(ctx, email, &doctor); err != nil {
		return utils.InfraError("doctor application", err)
	}
	return nil
}

func (s *DefaultAccountService) ApproveDoctor(ctx context.Context, email string) error {
	if err := s.Doctors.SetRole(ctx, email, models.RoleDoctor); err != nil {
		return utils.InfraError("doctor approval", err)
	}
	s.invalidateRoles(ctx, email)
	if s.Logger != nil {
		s.Logger.Info("doctor capability granted", zap.String("email", email))
	}
	return nil
}

func (s *DefaultAccountService) DeleteDoctor(ctx context.Context, email string) error {
	if err := s.Doctors.Delete(ctx, email); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return utils.Errorf(utils.KindNotFound, "doctor %s not found", email)
		}
		return utils.InfraError("doctor delete", err)
	}
	s.invalidateRoles(ctx, email)
	return nil
}

func (s *DefaultAccountService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Doctors.GetAll(ctx)
	if err != nil {
		return nil, utils.InfraError("doctor lookup", err)
	}
	return doctors, nil
}

func (s *DefaultAccountService) GetDoctorByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	doctor, err := s.Doctors.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.InfraError("doctor lookup", err)
	}
	return doctor, nil
}

func (s *DefaultAccountService) GetWallet(ctx context.Context, email string) (*models.WalletData, error) {
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.InfraError("user lookup", err)
	}
	if user == nil || user.Data == nil {
		return nil, utils.Errorf(utils.KindNotFound, "no wallet on record for %s", email)
	}
	return user.Data, nil
}

func (s *DefaultAccountService) SetWallet(ctx context.Context, email string, data models.WalletData) error {
	if email == "" {
		return utils.Errorf(utils.KindInvalidArgument, "email is required")
	}
	if err := s.Users.SetWallet(ctx, email, &data); err != nil {
		return utils.InfraError("wallet update", err)
	}
	return nil
}
