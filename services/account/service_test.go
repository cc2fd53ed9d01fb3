package account

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	doctorRepo "quickmed/database/repository/doctor"
	userRepo "quickmed/database/repository/user"
	"quickmed/models"
	"quickmed/utils"
)

type memUsers struct {
	byEmail map[string]*models.User
}

func newMemUsers() *memUsers {
	return &memUsers{byEmail: make(map[string]*models.User)}
}

func (m *memUsers) Upsert(ctx context.Context, email string, user *models.User) error {
	existing, ok := m.byEmail[email]
	if !ok {
		u := *user
		u.Email = email
		m.byEmail[email] = &u
		return nil
	}
	if user.Name != "" {
		existing.Name = user.Name
	}
	if user.Role != "" {
		existing.Role = user.Role
	}
	return nil
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := m.byEmail[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (m *memUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, fmt.Errorf("%w: %q", userRepo.ErrInvalidID, id)
}

func (m *memUsers) GetAll(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range m.byEmail {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUsers) SetRole(ctx context.Context, email, role string) error {
	u, ok := m.byEmail[email]
	if !ok {
		u = &models.User{Email: email}
		m.byEmail[email] = u
	}
	u.Role = role
	return nil
}

func (m *memUsers) SetWallet(ctx context.Context, email string, data *models.WalletData) error {
	u, ok := m.byEmail[email]
	if !ok {
		u = &models.User{Email: email}
		m.byEmail[email] = u
	}
	u.Data = data
	u.ProfileCreated = "True"
	return nil
}

func (m *memUsers) Delete(ctx context.Context, email string) error {
	if _, ok := m.byEmail[email]; !ok {
		return userRepo.ErrNotFound
	}
	delete(m.byEmail, email)
	return nil
}

type memDoctors struct {
	byEmail map[string]*models.Doctor
}

func newMemDoctors() *memDoctors {
	return &memDoctors{byEmail: make(map[string]*models.Doctor)}
}

func (m *memDoctors) Upsert(ctx context.Context, email string, doctor *models.Doctor) error {
	d := *doctor
	d.Email = email
	m.byEmail[email] = &d
	return nil
}

func (m *memDoctors) GetByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	if d, ok := m.byEmail[email]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, nil
}

func (m *memDoctors) GetAll(ctx context.Context) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range m.byEmail {
		out = append(out, *d)
	}
	return out, nil
}

func (m *memDoctors) SetRole(ctx context.Context, email, role string) error {
	d, ok := m.byEmail[email]
	if !ok {
		d = &models.Doctor{Email: email}
		m.byEmail[email] = d
	}
	d.Role = role
	return nil
}

func (m *memDoctors) Delete(ctx context.Context, email string) error {
	if _, ok := m.byEmail[email]; !ok {
		return doctorRepo.ErrNotFound
	}
	delete(m.byEmail, email)
	return nil
}

func newTestAccountService() (*DefaultAccountService, *memUsers, *memDoctors) {
	users := newMemUsers()
	doctors := newMemDoctors()
	return &DefaultAccountService{Users: users, Doctors: doctors}, users, doctors
}

func TestRolesResolveAcrossBothStores(t *testing.T) {
	svc, users, doctors := newTestAccountService()
	ctx := context.Background()

	require.NoError(t, users.SetRole(ctx, "root@example.com", models.RoleAdmin))
	require.NoError(t, doctors.SetRole(ctx, "doc@example.com", models.RoleDoctor))
	require.NoError(t, users.Upsert(ctx, "pat@example.com", &models.User{Name: "Pat"}))

	roles, err := svc.Roles(ctx, "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{models.RoleAdmin}, roles)

	roles, err = svc.Roles(ctx, "doc@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{models.RoleDoctor}, roles)

	roles, err = svc.Roles(ctx, "pat@example.com")
	require.NoError(t, err)
	assert.Empty(t, roles)
}

func TestRolesBothCapabilities(t *testing.T) {
	svc, users, doctors := newTestAccountService()
	ctx := context.Background()

	require.NoError(t, users.SetRole(ctx, "both@example.com", models.RoleAdmin))
	require.NoError(t, doctors.SetRole(ctx, "both@example.com", models.RoleDoctor))

	ok, err := svc.HasRole(ctx, "both@example.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.HasRole(ctx, "both@example.com", models.RoleDoctor)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasRoleIgnoresUnapprovedApplication(t *testing.T) {
	svc, _, _ := newTestAccountService()
	ctx := context.Background()

	// An application stores a profile without the role field.
	require.NoError(t, svc.ApplyDoctor(ctx, "new@example.com", models.Doctor{Name: "Dr. New"}))

	ok, err := svc.HasRole(ctx, "new@example.com", models.RoleDoctor)
	require.NoError(t, err)
	assert.False(t, ok)

	// Approval grants the capability.
	require.NoError(t, svc.ApproveDoctor(ctx, "new@example.com"))
	ok, err = svc.HasRole(ctx, "new@example.com", models.RoleDoctor)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPromoteAdminGrantsCapability(t *testing.T) {
	svc, _, _ := newTestAccountService()
	ctx := context.Background()

	ok, err := svc.HasRole(ctx, "soon@example.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.PromoteAdmin(ctx, "soon@example.com"))

	ok, err = svc.HasRole(ctx, "soon@example.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpsertUserIssuesToken(t *testing.T) {
	utils.InitJWT("test-secret")
	svc, users, _ := newTestAccountService()
	ctx := context.Background()

	token, err := svc.UpsertUser(ctx, "pat@example.com", models.User{Name: "Pat"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "pat@example.com", claims.Email)

	stored, _ := users.GetByEmail(ctx, "pat@example.com")
	require.NotNil(t, stored)
	assert.Equal(t, "Pat", stored.Name)
}

func TestGetWallet(t *testing.T) {
	svc, _, _ := newTestAccountService()
	ctx := context.Background()

	_, err := svc.GetWallet(ctx, "doc@example.com")
	var serr *utils.ServiceError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, utils.KindNotFound, serr.Kind)

	require.NoError(t, svc.SetWallet(ctx, "doc@example.com", models.WalletData{WalletAddress: "0xabc"}))

	data, err := svc.GetWallet(ctx, "doc@example.com")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", data.WalletAddress)
}
