package objectstore

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aussiebroadwan/lms/internal/lms/service"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method       string
	path         string
	contentType  string
	cacheControl string
	body         []byte
}

func fakeS3(t *testing.T, status int) (*httptest.Server, func() []recorded) {
	t.Helper()

	var (
		mu   sync.Mutex
		reqs []recorded
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		reqs = append(reqs, recorded{
			method:       r.Method,
			path:         r.URL.Path,
			contentType:  r.Header.Get("Content-Type"),
			cacheControl: r.Header.Get("Cache-Control"),
			body:         b,
		})
		mu.Unlock()

		if status != http.StatusOK {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(status)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>denied</Message></Error>`)
			return
		}
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []recorded {
		mu.Lock()
		defer mu.Unlock()
		return append([]recorded(nil), reqs...)
	}
}

func newTestS3(t *testing.T, endpoint string) *S3 {
	t.Helper()
	s, err := New(context.Background(), Config{
		Endpoint:        endpoint,
		Region:          "us-east-1",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		UsePathStyle:    true,
	})
	require.NoError(t, err)
	return s
}

func TestPut(t *testing.T) {
	srv, requests := fakeS3(t, http.StatusOK)
	s := newTestS3(t, srv.URL)

	err := s.Put(context.Background(), service.PutObject{
		Bucket:       "course-pdfs",
		Key:          "pdfs/1-notes.pdf",
		ContentType:  "application/pdf",
		CacheControl: "max-age=3600",
		Size:         4,
		Body:         strings.NewReader("%PDF"),
	})
	require.NoError(t, err)

	got := requests()
	require.Len(t, got, 1)
	require.Equal(t, http.MethodPut, got[0].method)
	require.Equal(t, "/course-pdfs/pdfs/1-notes.pdf", got[0].path)
	require.Equal(t, "application/pdf", got[0].contentType)
	require.Equal(t, "max-age=3600", got[0].cacheControl)
	require.Equal(t, []byte("%PDF"), got[0].body)
}

func TestPutBuffersUnseekableBody(t *testing.T) {
	srv, requests := fakeS3(t, http.StatusOK)
	s := newTestS3(t, srv.URL)

	body := io.MultiReader(bytes.NewReader([]byte("ab")), bytes.NewReader([]byte("cd")))
	require.NoError(t, s.Put(context.Background(), service.PutObject{
		Bucket: "course-images", Key: "courses/x.png", ContentType: "image/png", Body: body,
	}))

	got := requests()
	require.Len(t, got, 1)
	require.Equal(t, []byte("abcd"), got[0].body)
}

func TestPutError(t *testing.T) {
	srv, _ := fakeS3(t, http.StatusForbidden)
	s := newTestS3(t, srv.URL)

	err := s.Put(context.Background(), service.PutObject{
		Bucket: "b", Key: "k", ContentType: "image/png", Size: 1, Body: strings.NewReader("x"),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "b/k")
}

func TestPublicURL(t *testing.T) {
	s, err := New(context.Background(), Config{
		Endpoint:      "http://minio:9000",
		Region:        "us-east-1",
		PublicBaseURL: "https://cdn.example/storage/v1/object/public/",
	})
	require.NoError(t, err)
	require.Equal(t,
		"https://cdn.example/storage/v1/object/public/course-images/courses/1-my%20cover.png",
		s.PublicURL("course-images", "courses/1-my cover.png"))

	s, err = New(context.Background(), Config{Endpoint: "http://minio:9000/", Region: "us-east-1"})
	require.NoError(t, err)
	require.Equal(t, "http://minio:9000/b/k", s.PublicURL("b", "k"))

	s, err = New(context.Background(), Config{Region: "ap-southeast-2"})
	require.NoError(t, err)
	require.Equal(t, "https://s3.ap-southeast-2.amazonaws.com/b/k", s.PublicURL("b", "k"))
}
