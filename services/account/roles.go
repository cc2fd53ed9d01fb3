package account

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"quickmed/models"
	"quickmed/utils"
)

// Roles resolves the capability set of an email from the user and doctor
// collections, consulting the role cache first.
func (s *DefaultAccountService) Roles(ctx context.Context, email string) ([]string, error) {
	if email == "" {
		return nil, nil
	}

	if cached, ok := s.rolesFromCache(ctx, email); ok {
		return cached, nil
	}

	var roles []string

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.InfraError("role lookup", err)
	}
	if user != nil && user.Role == models.RoleAdmin {
		roles = append(roles, models.RoleAdmin)
	}

	doctor, err := s.Doctors.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.InfraError("role lookup", err)
	}
	if doctor != nil && doctor.Role == models.RoleDoctor {
		roles = append(roles, models.RoleDoctor)
	}

	s.rolesToCache(ctx, email, roles)
	return roles, nil
}

// HasRole reports whether the email holds the given capability.
func (s *DefaultAccountService) HasRole(ctx context.Context, email, role string) (bool, error) {
	roles, err := s.Roles(ctx, email)
	if err != nil {
		return false, err
	}
	for _, r := range roles {
		if r == role {
			return true, nil
		}
	}
	return false, nil
}

func (s *DefaultAccountService) rolesFromCache(ctx context.Context, email string) ([]string, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, utils.RoleCacheKey(email)).Result()
	if err != nil {
		if err != redis.Nil && s.Logger != nil {
			s.Logger.Warn("role cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var roles []string
	if err := json.Unmarshal([]byte(raw), &roles); err != nil {
		return nil, false
	}
	return roles, true
}

func (s *DefaultAccountService) rolesToCache(ctx context.Context, email string, roles []string) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(roles)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, utils.RoleCacheKey(email), raw, utils.RoleCacheTTL).Err(); err != nil && s.Logger != nil {
		s.Logger.Warn("role cache write failed", zap.Error(err))
	}
}

// invalidateRoles drops the cached capability set after a role mutation.
func (s *DefaultAccountService) invalidateRoles(ctx context.Context, email string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.RoleCacheKey(email)).Err(); err != nil && s.Logger != nil {
		s.Logger.Warn("role cache invalidation failed", zap.String("email", email), zap.Error(err))
	}
}
