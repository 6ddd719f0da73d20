package main

import (
	"bytes"
	"strings"
	"testing"

	"capi-onboarding-backend/internal/auth"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_EMAIL", "")
	t.Setenv("GOOGLE_PRIVATE_KEY", "")
	t.Setenv("GOOGLE_SHEET_ID", "")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestStepsCommand(t *testing.T) {
	out, err := runCmd(t, "steps")
	require.NoError(t, err)
	assert.Contains(t, out, "Phase 1:")
	assert.Contains(t, out, "core.prerequisites")
	assert.Contains(t, out, "hubspot.connection")

	out, err = runCmd(t, "steps", "snowflake")
	require.NoError(t, err)
	assert.Contains(t, out, "snowflake.connection")
	assert.NotContains(t, out, "hubspot.connection")
	assert.Less(t, strings.Index(out, "Phase 1:"), strings.Index(out, "snowflake.connection"))

	_, err = runCmd(t, "steps", "myspace")
	assert.ErrorContains(t, err, "unknown platform")
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-test-secret")

	out, err := runCmd(t, "token", "--email", "ops@capi.example", "--name", "Ops")
	require.NoError(t, err)

	svc, err := auth.NewAuthService("cli-test-secret")
	require.NoError(t, err)
	claims, err := svc.ValidateJWT(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops@capi.example", claims.Email)
	assert.Equal(t, "Ops", claims.Name)

	_, err = runCmd(t, "token")
	assert.Error(t, err)
}

func TestMigrateNeedsPostgres(t *testing.T) {
	_, err := runCmd(t, "migrate")
	assert.ErrorContains(t, err, "STORE_DRIVER=postgres")
}

func TestSheetsInitNeedsCredentials(t *testing.T) {
	_, err := runCmd(t, "sheets", "init")
	assert.ErrorContains(t, err, "GOOGLE_SHEET_ID")
}
