package client

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-tamer/internal/adapter"
	"github.com/MKhiriev/go-task-tamer/internal/config"
	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/mock"
	"github.com/MKhiriev/go-task-tamer/models"
)

var testNow = time.Date(2024, 5, 20, 11, 0, 0, 0, time.UTC)

type testApp struct {
	app        *App
	srv        *mock.MockServerAdapter
	configPath string
	stdin      *bytes.Buffer
	stdout     *bytes.Buffer
}

func newTestApp(t *testing.T, token string) *testApp {
	t.Helper()

	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	configPath := filepath.Join(t.TempDir(), "tamer", "config.yaml")

	if token != "" {
		require.NoError(t, config.SaveClientConfig(configPath, &config.ClientConfig{
			ServerAddress:  "http://localhost:8080",
			RequestTimeout: time.Second,
			Token:          token,
			Email:          "alice@example.com",
		}))
	}

	ta := &testApp{srv: srv, configPath: configPath, stdin: &bytes.Buffer{}, stdout: &bytes.Buffer{}}
	ta.app = NewApp(configPath, logger.Nop(),
		WithAdapterFactory(func(config.ClientConfig, *logger.Logger) (adapter.ServerAdapter, error) {
			return srv, nil
		}),
		WithIO(ta.stdin, ta.stdout, &bytes.Buffer{}),
		WithClock(func() time.Time { return testNow }),
		WithBuildInfo(models.NewAppBuildInfo("v1.0.0", "", "abc123")),
	)

	return ta
}

func (ta *testApp) run(args ...string) error {
	return ta.app.Run(context.Background(), args)
}

func (ta *testApp) savedProfile(t *testing.T) *config.ClientConfig {
	t.Helper()
	cfg, err := config.LoadClientConfig(ta.configPath)
	require.NoError(t, err)
	return cfg
}

func TestLogin_SavesToken(t *testing.T) {
	ta := newTestApp(t, "")
	ta.stdin.WriteString("secret1\n")

	ta.srv.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "alice@example.com", Password: "secret1"}).
		Return(models.User{ID: "u-1", Username: "alice", Email: "alice@example.com"}, nil)
	ta.srv.EXPECT().Token().Return("new-token")

	require.NoError(t, ta.run("login", "--email", "alice@example.com", "--password-stdin"))

	assert.Equal(t, "logged in as alice <alice@example.com>\n", ta.stdout.String())
	profile := ta.savedProfile(t)
	assert.Equal(t, "new-token", profile.Token)
	assert.Equal(t, "alice@example.com", profile.Email)
}

func TestLogin_DefaultsToSavedEmail(t *testing.T) {
	ta := newTestApp(t, "old-token")

	ta.srv.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "alice@example.com", Password: "secret1"}).
		Return(models.User{Username: "alice", Email: "alice@example.com"}, nil)
	ta.srv.EXPECT().Token().Return("new-token")

	require.NoError(t, ta.run("login", "--password", "secret1"))
	assert.Equal(t, "new-token", ta.savedProfile(t).Token)
}

func TestLogin_PasswordRequired(t *testing.T) {
	ta := newTestApp(t, "")

	err := ta.run("login", "--email", "alice@example.com")
	assert.ErrorIs(t, err, ErrPasswordRequired)

	err = ta.run("login", "--email", "alice@example.com", "--password-stdin")
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestLogin_WrongPassword(t *testing.T) {
	ta := newTestApp(t, "")

	ta.srv.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, adapter.ErrUnauthorized)

	err := ta.run("login", "--email", "alice@example.com", "--password", "wrong")
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrSessionExpired)
}

func TestRegister(t *testing.T) {
	ta := newTestApp(t, "")

	ta.srv.EXPECT().
		Register(gomock.Any(), models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1", Name: "Alice"}).
		Return(models.User{ID: "u-1", Username: "alice", Email: "alice@example.com"}, nil)
	ta.srv.EXPECT().Token().Return("tok")

	require.NoError(t, ta.run("register", "--username", "alice", "--email", "alice@example.com", "--name", "Alice", "--password", "secret1"))

	assert.Equal(t, "registered alice <alice@example.com>\n", ta.stdout.String())
	assert.Equal(t, "tok", ta.savedProfile(t).Token)
}

func TestLogout(t *testing.T) {
	ta := newTestApp(t, "tok")

	require.NoError(t, ta.run("logout"))

	profile := ta.savedProfile(t)
	assert.Empty(t, profile.Token)
	assert.Equal(t, "alice@example.com", profile.Email)
}

func TestAuthenticatedCommands_RequireLogin(t *testing.T) {
	for _, args := range [][]string{
		{"whoami"},
		{"start", "Write"},
		{"status"},
		{"today"},
		{"earnings", "list"},
		{"metrics"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			ta := newTestApp(t, "")
			assert.ErrorIs(t, ta.run(args...), ErrNotLoggedIn)
		})
	}
}

func TestRejectedToken(t *testing.T) {
	ta := newTestApp(t, "stale")

	ta.srv.EXPECT().Me(gomock.Any()).Return(models.User{}, adapter.ErrUnauthorized)

	err := ta.run("whoami")
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestWhoami(t *testing.T) {
	ta := newTestApp(t, "tok")

	ta.srv.EXPECT().Me(gomock.Any()).
		Return(models.User{ID: "u-1", Username: "alice", Email: "alice@example.com", Name: "Alice"}, nil)

	require.NoError(t, ta.run("whoami"))
	assert.Equal(t, "alice <alice@example.com>\nname: Alice\nid: u-1\n", ta.stdout.String())
}

func TestVersion(t *testing.T) {
	ta := newTestApp(t, "")

	ta.srv.EXPECT().Version(gomock.Any()).Return("v1.1.0", nil)

	require.NoError(t, ta.run("version"))
	assert.Equal(t, "client: version v1.0.0, built N/A, commit abc123\nserver: v1.1.0\n", ta.stdout.String())
}

func TestVersion_ServerDown(t *testing.T) {
	ta := newTestApp(t, "")

	ta.srv.EXPECT().Version(gomock.Any()).Return("", errors.New("connection refused"))

	assert.Error(t, ta.run("version"))
	assert.Contains(t, ta.stdout.String(), "client: version v1.0.0")
}
