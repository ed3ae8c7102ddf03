package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/lms/pkg/lmsapi"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		JWTKey:        "test-secret",
		Issuer:        "lms-test",
		DatabaseFile:  filepath.Join(t.TempDir(), "lms.db"),
		Env:           "test",
		LogLevel:      "error",
		LogFormat:     "text",
		S3Endpoint:    "http://127.0.0.1:9",
		S3Region:      "us-east-1",
		S3ImageBucket: "course-images",
		S3PDFBucket:   "course-pdfs",
	}
}

func TestNewRequiresJWTKey(t *testing.T) {
	cfg := testConfig(t)
	cfg.JWTKey = ""

	_, err := New(cfg)
	require.ErrorIs(t, err, ErrNoJWTKey)
}

func TestApplicationServesAPI(t *testing.T) {
	application, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	client := lmsapi.NewClient(srv.URL)
	ctx := t.Context()

	health, err := client.Readyz(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)

	_, err = client.Signup(ctx, lmsapi.SignupRequest{
		FirstName: "A", LastName: "B", Email: "a@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	sess, login, err := client.Login(ctx, lmsapi.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "student", login.Role)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), login.ExpiresAt, time.Minute)

	_, err = sess.AdminCheck(ctx)
	var apiErr *lmsapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}
