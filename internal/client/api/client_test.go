package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/poken-app/poken/internal/profile"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type staticToken string

func (t staticToken) Token() string { return string(t) }

// statusRecorder records every SetStatus call, in order.
type statusRecorder struct {
	calls []statusCall
}

type statusCall struct {
	message string
	busy    bool
}

func (r *statusRecorder) SetStatus(message string, busy bool) {
	r.calls = append(r.calls, statusCall{message, busy})
}

func newTestClient(t *testing.T, handler http.HandlerFunc, token string, opts ...Option) (*Client, *statusRecorder) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	rec := &statusRecorder{}
	return New(srv.URL, staticToken(token), rec, opts...), rec
}

// ---- tests ----

func TestRequest_AttachesBearerWhenTokenPresent(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}, "tok-123")

	_, err := c.Request(context.Background(), "/profile", RequestOptions{})
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
}

func TestRequest_NoTokenMeansNoAuthHeader(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}, "")

	_, err := c.Request(context.Background(), "/profile", RequestOptions{})
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestRequest_JSONBodyAndContentType(t *testing.T) {
	var gotType string
	var gotBody map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}, "")

	_, err := c.Request(context.Background(), "/x", RequestOptions{
		Method: http.MethodPost,
		Body:   map[string]string{"userId": "alice"},
	})
	require.NoError(t, err)
	require.Equal(t, "application/json", gotType)
	require.Equal(t, "alice", gotBody["userId"])
}

func TestRequest_CallerContentTypeWins(t *testing.T) {
	var gotType string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	}, "")

	_, err := c.Request(context.Background(), "/x", RequestOptions{
		Method:  http.MethodPost,
		RawBody: []byte("raw-bytes"),
		Headers: map[string]string{"Content-Type": "application/octet-stream"},
	})
	require.NoError(t, err)
	require.Equal(t, "application/octet-stream", gotType)
}

func TestRequest_BusyIdleFiresExactlyOnce(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, "")

	_, err := c.Request(context.Background(), "/x", RequestOptions{StatusMessage: "保存中…"})
	require.NoError(t, err)
	require.Equal(t, []statusCall{{"保存中…", true}, {"", false}}, rec.calls)
}

func TestRequest_BusyIdleClearsOnNetworkFailure(t *testing.T) {
	rec := &statusRecorder{}
	c := New("http://127.0.0.1:1", staticToken(""), rec)

	_, err := c.Request(context.Background(), "/x", RequestOptions{})
	require.Error(t, err)
	require.Equal(t, []statusCall{{BusyDefaultMessage, true}, {"", false}}, rec.calls)
}

func TestRequest_SkipStatus(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, "")

	_, err := c.Request(context.Background(), "/x", RequestOptions{SkipStatus: true})
	require.NoError(t, err)
	require.Empty(t, rec.calls)
}

func TestRequest_ErrorDetailParsed(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid user ID or password"}`))
	}, "")

	_, err := c.Request(context.Background(), "/auth/login", RequestOptions{Method: http.MethodPost})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "Invalid user ID or password", apiErr.Message)
}

func TestRequest_ErrorFallsBackToStatusText(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>nope</html>"))
	}, "")

	_, err := c.Request(context.Background(), "/x", RequestOptions{})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestRequest_NoContentReturnsNil(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, "")

	raw, err := c.Request(context.Background(), "/x", RequestOptions{})
	require.NoError(t, err)
	require.Nil(t, raw)
}

func TestRequest_InvalidSuccessBodyIsAnError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{broken"))
	}, "")

	_, err := c.Request(context.Background(), "/x", RequestOptions{})
	require.Error(t, err)
}

func TestRequest_RetryRecoversFromDroppedConnections(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			_ = conn.Close()
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}, "", WithRetryAttempts(3))

	_, err := c.Request(context.Background(), "/x", RequestOptions{})
	require.NoError(t, err)
	require.Equal(t, int32(3), calls.Load())
}

func TestRequest_NoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		hj := w.(http.Hijacker)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	}, "")

	_, err := c.Request(context.Background(), "/x", RequestOptions{})
	require.Error(t, err)
	require.Equal(t, int32(1), calls.Load())
}

func TestLogin_DecodesToken(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "alice", creds["userId"])
		require.Equal(t, "pw", creds["password"])

		_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"bearer"}`))
	}, "")

	resp, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok", resp.AccessToken)
	require.Equal(t, []statusCall{{LoginStatusMessage, true}, {"", false}}, rec.calls)
}

func TestLogin_MissingTokenIsAnError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token_type":"bearer"}`))
	}, "")

	_, err := c.Login(context.Background(), "alice", "pw")
	require.Error(t, err)
}

func TestFetchProfile_FillsDefaults(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Jane","status":"final_interview"}`))
	}, "tok")

	p, err := c.FetchProfile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Jane", p.Name)
	require.Equal(t, profile.StatusFinalInterview, p.Status)
	require.Equal(t, profile.DefaultAvatarRef, p.AvatarData)
}

func TestUpdateProfile_ReturnsServerAuthoritativeBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		_, _ = w.Write([]byte(`{"name":"Server Truth","status":"offer"}`))
	}, "tok")

	p, err := c.UpdateProfile(context.Background(), profile.Profile{Name: "Client Draft"})
	require.NoError(t, err)
	require.Equal(t, "Server Truth", p.Name)
	require.Equal(t, profile.StatusOffer, p.Status)
}
