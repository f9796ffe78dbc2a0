package storage

import (
	"fmt"
	"testing"

	"studio-backoffice/internal/config"
	"studio-backoffice/internal/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// openTestStore gives each test its own named in-memory sqlite database;
// cache=shared keeps every pooled connection on the same database.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := &config.Config{
		DBDriver: "sqlite",
		DBDSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}
	s, err := Open(cfg, zap.NewNop())
	require.NoError(t, err)
	return s
}

func createTestUser(t *testing.T, s *Store, email string, role models.UserRole) *models.User {
	t.Helper()

	u := &models.User{
		Email:        email,
		PasswordHash: "x",
		Name:         "Test User",
		Role:         role,
	}
	require.NoError(t, s.CreateUser(u))
	return u
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	cfg := &config.Config{DBDriver: "oracle", DBDSN: "whatever"}
	_, err := Open(cfg, zap.NewNop())
	require.Error(t, err)
}

func TestOpenSeedsDefaultAdmin(t *testing.T) {
	s := openTestStore(t)

	admin, err := s.UserByEmail("admin@studio.local")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, admin.Role)
}
