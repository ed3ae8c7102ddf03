package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	httpapi "github.com/aussiebroadwan/lms/internal/lms/http"
	"github.com/aussiebroadwan/lms/internal/lms/service"
	"github.com/aussiebroadwan/lms/internal/lms/store/drivers/sqlite"
	"github.com/aussiebroadwan/lms/pkg/httpx"
	"github.com/aussiebroadwan/lms/pkg/jwtx"
	"github.com/aussiebroadwan/lms/pkg/lmsapi"
	"github.com/stretchr/testify/require"
)


type memObjects struct {
	mu   sync.Mutex
	keys []string
}

func (m *memObjects) Put(_ context.Context, obj service.PutObject) error {
	if _, err := io.Copy(io.Discard, obj.Body); err != nil {
		return err
	}
	m.mu.Lock()
	m.keys = append(m.keys, obj.Bucket+"/"+obj.Key)
	m.mu.Unlock()
	return nil
}

func (m *memObjects) PublicURL(bucket, key string) string {
	return "https://cdn.test/" + bucket + "/" + key
}

type testServer struct {
	*lmsapi.Client
	signer  *jwtx.HS256
	objects *memObjects
	store   *sqlite.Store
}

type serverOption func(*serverOptions)

type serverOptions struct {
	liveCheck bool
	clock     func() time.Time
	secret    string
}

func withLiveCheck() serverOption { return func(o *serverOptions) { o.liveCheck = true } }

func withSecret(secret string) serverOption { return func(o *serverOptions) { o.secret = secret } }

func withSignerClock(now func() time.Time) serverOption {
	return func(o *serverOptions) { o.clock = now }
}

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	o := serverOptions{secret: "test-secret"}
	for _, opt := range opts {
		opt(&o)
	}

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "lms.db")))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signerOpts := []jwtx.Option{jwtx.WithIssuer("lms-test")}
	if o.clock != nil {
		signerOpts = append(signerOpts, jwtx.WithClock(o.clock))
	}
	signer, err := jwtx.NewHS256([]byte(o.secret), signerOpts...)
	require.NoError(t, err)

	auth := &service.AuthService{Store: st, Signer: signer}
	objects := &memObjects{}

	var resolve httpx.ClaimsResolver
	if o.liveCheck {
		resolve = auth.ResolveClaims
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := httpapi.NewRouter(signer, signer, resolve, "test", st, logger)
	router.AuthService = auth
	router.UserService = &service.UserService{Store: st}
	router.CourseService = &service.CourseService{Store: st}
	router.ReviewService = &service.ReviewService{Store: st}
	router.UploadService = &service.UploadService{
		Objects:     objects,
		ImageBucket: "course-images",
		PDFBucket:   "course-pdfs",
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		Client:  lmsapi.NewClient(srv.URL),
		signer:  signer,
		objects: objects,
		store:   st,
	}
}

// signupAndLogin registers an account and returns a session for it.
func (s *testServer) signupAndLogin(t *testing.T, email, role string) *lmsapi.Session {
	t.Helper()
	ctx := context.Background()

	_, err := s.Signup(ctx, lmsapi.SignupRequest{
		FirstName: "Test", LastName: "User", Email: email, Password: "secret1", Role: role,
	})
	require.NoError(t, err)

	sess, _, err := s.Login(ctx, lmsapi.LoginRequest{Email: email, Password: "secret1"})
	require.NoError(t, err)
	return sess
}

// requireAPIError asserts err is an *lmsapi.APIError with status and code.
func requireAPIError(t *testing.T, err error, status int, code string) *lmsapi.APIError {
	t.Helper()
	var apiErr *lmsapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

func ptr[T any](v T) *T { return &v }

func decodeBody(resp *http.Response, v any) error {
	return json.NewDecoder(resp.Body).Decode(v)
}
