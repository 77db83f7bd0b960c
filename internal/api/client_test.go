package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mmaictl/internal/record"
)

type capturedRequest struct {
	method string
	path   string
	header http.Header
	body   string
}

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		captured.method = r.Method
		captured.path = r.URL.EscapedPath()
		captured.header = r.Header.Clone()
		captured.body = string(data)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv, captured
}

func TestClient_GetPreservesKeyOrder(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `[{"uid":"u1","name":"a"},{"uid":"u2","name":"b"}]`)

	c := New(srv.URL + "/v1/")
	got, err := c.Get(context.Background(), "clusters")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.method)
	assert.Equal(t, "/v1/clusters", captured.path)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, []string{"uid", "name"}, got.Items()[0].Keys())
}

func TestClient_BearerToken(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `{}`)

	c := New(srv.URL, WithToken("s3cret"))
	_, err := c.Get(context.Background(), "clusters")
	require.NoError(t, err)

	assert.Equal(t, "Bearer s3cret", captured.header.Get("Authorization"))
}

func TestClient_NoTokenNoAuthorizationHeader(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `{}`)

	_, err := New(srv.URL).Get(context.Background(), "clusters")
	require.NoError(t, err)

	assert.Empty(t, captured.header.Get("Authorization"))
}

func TestClient_SendsRequestIDAndUserAgent(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `{}`)

	_, err := New(srv.URL, WithUserAgent("mmaictl/test")).Get(context.Background(), "clusters")
	require.NoError(t, err)

	assert.Len(t, captured.header.Get(HeaderRequestID), 36)
	assert.Equal(t, "mmaictl/test", captured.header.Get("User-Agent"))
}

func TestClient_PostSendsOrderedJSON(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusCreated, `{"name":"finance","uid":"d1"}`)

	body := record.Map(
		record.F("name", record.String("finance")),
		record.F("description", record.String("money")),
	)
	got, err := New(srv.URL).Post(context.Background(), "departments", body)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, `{"name":"finance","description":"money"}`, captured.body)
	assert.Equal(t, "application/json", captured.header.Get("Content-Type"))
	assert.Equal(t, "d1", got.StringField("uid"))
}

func TestClient_PutWithoutBody(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, ``)

	got, err := New(srv.URL).Put(context.Background(), "projects/ml/workloads/train/resume", record.Missing())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, captured.method)
	assert.Empty(t, captured.body)
	assert.Equal(t, record.KindNull, got.Kind(), "empty response body decodes to null")
}

func TestClient_Delete(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "204 is success", status: http.StatusNoContent},
		{name: "200 is not confirmed", status: http.StatusOK, wantErr: ErrDeleteNotConfirmed},
		{name: "202 is not confirmed", status: http.StatusAccepted, wantErr: ErrDeleteNotConfirmed},
		{name: "403 is unauthorized", status: http.StatusForbidden, wantErr: ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, captured := newTestServer(t, tt.status, ``)

			err := New(srv.URL).Delete(context.Background(), "departments/finance")

			assert.Equal(t, http.MethodDelete, captured.method)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_StatusError(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusInternalServerError, `{"detail":"boom"}`)

	_, err := New(srv.URL).Get(context.Background(), "clusters/u1/departments")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, "GET", se.Method)
	assert.Equal(t, "clusters/u1/departments", se.Path)
	assert.Equal(t, `{"detail":"boom"}`, se.Body)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "500 Internal Server Error")
}

func TestClient_Unauthorized(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusUnauthorized, `unauthorized`)

	_, err := New(srv.URL).Get(context.Background(), "clusters")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_NotFound(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusNotFound, ``)

	_, err := New(srv.URL).Get(context.Background(), "departments/ghost")

	assert.True(t, IsNotFound(err))
}

func TestClient_InvalidJSON(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"name": `)

	_, err := New(srv.URL).Get(context.Background(), "clusters")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestClient_CanceledContext(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL).Get(ctx, "clusters")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPath(t *testing.T) {
	assert.Equal(t, "clusters/u1/departments", Path("clusters", "u1", "departments"))
	assert.Equal(t, "projects/a%2Fb/workloads", Path("projects", "a/b", "workloads"))
	assert.Equal(t, "departments/R&D%20team", Path("departments", "R&D team"))
}
