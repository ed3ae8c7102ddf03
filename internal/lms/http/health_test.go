package http_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	live, err := s.Livez(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := s.Readyz(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Signer)

	require.NoError(t, s.store.Close())
	_, err = s.Readyz(ctx)
	require.Error(t, err)
}

func TestBanner(t *testing.T) {
	s := newTestServer(t)

	resp, err := http.Get(s.BaseURL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(b), "Learning Management System API is running")

	resp, err = http.Get(s.BaseURL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSwaggerDocument(t *testing.T) {
	s := newTestServer(t)

	resp, err := http.Get(s.BaseURL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, decodeBody(resp, &doc))
	require.Equal(t, "LMS API", doc.Info.Title)
	require.Contains(t, doc.Paths, "/api/student/signup")
	require.Contains(t, doc.Paths, "/api/course-pdfs")
}
