package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/expense-tracker/internal/app"
	"github.com/polkiloo/expense-tracker/internal/server/http/middleware"
	"github.com/polkiloo/expense-tracker/internal/server/http/router"
	testhelpers "github.com/polkiloo/expense-tracker/internal/test"
	"github.com/polkiloo/expense-tracker/internal/usecase"
)

var uuidPattern = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

func startServer(t *testing.T) string {
	t.Helper()
	authUC := usecase.NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{})
	expenseUC := usecase.NewExpenseUseCase(testhelpers.NewExpenseRepositoryStub())
	facade := app.NewExpenseFacade(authUC, expenseUC, nil)
	engine := router.Setup(facade, slog.New(slog.NewJSONHandler(io.Discard, nil)), middleware.NewIPRateLimiter(1000, 1000))

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv.URL
}

type cli struct {
	t         *testing.T
	apiURL    string
	tokenFile string
}

func (c cli) run(args ...string) (string, error) {
	c.t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--api-url", c.apiURL, "--token-file", c.tokenFile}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCLIExpenseLifecycle(t *testing.T) {
	c := cli{t: t, apiURL: startServer(t), tokenFile: filepath.Join(t.TempDir(), "nested", "token")}

	_, err := c.run("expenses", "list")
	require.ErrorIs(t, err, errNotLoggedIn)

	out, err := c.run("register", "--username", "alice", "--email", "a@x.com", "--password", "pw1")
	require.NoError(t, err)
	assert.Contains(t, out, "User registered successfully")

	_, err = c.run("login", "--email", "a@x.com", "--password", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email or password")

	out, err = c.run("login", "--email", "a@x.com", "--password", "pw1")
	require.NoError(t, err)
	assert.Contains(t, out, "Login successful")
	token, err := loadToken(c.tokenFile)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	out, err = c.run("expenses", "add", "--description", "coffee", "--amount", "3.50", "--category", "food")
	require.NoError(t, err)
	assert.Contains(t, out, "Expense added successfully")
	assert.Contains(t, out, "3.50")
	id := uuidPattern.FindString(out)
	require.NotEmpty(t, id)

	_, err = c.run("expenses", "add", "--description", "taxi", "--amount", "20")
	require.NoError(t, err)

	out, err = c.run("expenses", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "coffee")
	assert.Contains(t, out, "taxi")

	out, err = c.run("expenses", "update", id, "--amount", "4", "--category", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Expense updated successfully")
	assert.Contains(t, out, "4.00")

	out, err = c.run("expenses", "get", id)
	require.NoError(t, err)
	assert.Contains(t, out, "coffee")

	out, err = c.run("expenses", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "24.00")
	assert.Contains(t, out, uncategorized)

	out, err = c.run("expenses", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Expense deleted successfully")

	_, err = c.run("expenses", "get", id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expense not found")
}

func TestCLIRequiresFlags(t *testing.T) {
	c := cli{t: t, apiURL: "http://127.0.0.1:1", tokenFile: filepath.Join(t.TempDir(), "token")}

	_, err := c.run("login", "--email", "a@x.com")
	assert.Error(t, err)

	_, err = c.run("expenses", "get")
	assert.Error(t, err)
}

func TestTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	_, err := loadToken(path)
	assert.ErrorIs(t, err, errNotLoggedIn)

	require.NoError(t, saveToken(path, "abc"))
	token, err := loadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestDefaultTokenPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	assert.Equal(t, filepath.Join("/tmp/cfg", "expensectl", "token"), defaultTokenPath())
}
