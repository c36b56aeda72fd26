//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/authkeeper/internal/model"
	repo "github.com/dtroode/authkeeper/internal/repository/postgres"
	"github.com/dtroode/authkeeper/internal/storage/storagetest"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "authkeeper_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/authkeeper_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestDirectory(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	roles := repo.NewRoleRepository(conn)
	users := repo.NewUserRepository(conn)

	t.Run("seeded roles", func(t *testing.T) {
		list, err := roles.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)

		admin, ok, err := roles.GetByName(ctx, "admin")
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, admin.Permissions, 3)
	})

	t.Run("save and reload user", func(t *testing.T) {
		userRole, ok, err := roles.GetByName(ctx, "user")
		require.NoError(t, err)
		require.True(t, ok)
		adminRole, _, err := roles.GetByName(ctx, "admin")
		require.NoError(t, err)

		saved, err := users.Save(ctx, model.User{
			Name:         "Ada",
			Email:        "ada@example.com",
			PasswordHash: "hash",
			Roles:        []model.Role{userRole},
		})
		require.NoError(t, err)

		saved.Roles = append(saved.Roles, adminRole)
		_, err = users.Save(ctx, saved)
		require.NoError(t, err)

		byEmail, ok, err := users.GetByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, saved.ID, byEmail.ID)
		require.Equal(t, []string{"user", "admin"}, byEmail.RoleNames())
		require.Len(t, byEmail.Roles[0].Permissions, 2)

		_, ok, err = users.GetByID(ctx, byEmail.ID)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("email is unique", func(t *testing.T) {
		_, err := users.Save(ctx, model.User{Name: "Twin", Email: "ada@example.com", PasswordHash: "hash"})
		require.ErrorIs(t, err, model.ErrEmailTaken)
	})
}

func TestTokenRepository_Contract(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	storagetest.Run(t, func(t *testing.T) storagetest.Harness {
		_, err := conn.ExecContext(ctx, "TRUNCATE token_records")
		require.NoError(t, err)
		clock := storagetest.NewClock()
		return storagetest.Harness{
			Store:   repo.NewTokenRepository(conn, "refresh", repo.WithTokenClock(clock.Now)),
			Advance: clock.Advance,
		}
	})
}
