package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FrontDeskService/pkg/logger"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, func()) {
	srv := httptest.NewServer(handler)
	client := NewClient(srv.URL+"/", "test-key", 2*time.Second, logger.NewNop())
	return client, srv.Close
}

func writeProviderError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write([]byte(`{"error":{"code":400,"message":"` + message + `"}}`))
}

func TestSignIn_Success(t *testing.T) {
	client, closeFn := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body passwordRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "desk@hotel.com", body.Email)
		assert.Equal(t, "secret1", body.Password)
		assert.True(t, body.ReturnSecureToken)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"localId":"uid-1","email":"desk@hotel.com","idToken":"tok"}`))
	})
	defer closeFn()

	user, err := client.SignIn(context.Background(), "desk@hotel.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, &User{ID: "uid-1", Email: "desk@hotel.com"}, user)
}

func TestSignIn_ProviderErrors(t *testing.T) {
	cases := map[string]error{
		"INVALID_LOGIN_CREDENTIALS": ErrInvalidCredentials,
		"EMAIL_NOT_FOUND":           ErrInvalidCredentials,
		"USER_DISABLED":             ErrInvalidCredentials,
		"INVALID_EMAIL":             ErrInvalidEmail,
	}

	for message, expected := range cases {
		t.Run(message, func(t *testing.T) {
			client, closeFn := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeProviderError(w, message)
			})
			defer closeFn()

			_, err := client.SignIn(context.Background(), "desk@hotel.com", "x")
			assert.ErrorIs(t, err, expected)
		})
	}
}

func TestSignUp_Errors(t *testing.T) {
	client, closeFn := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:signUp", r.URL.Path)
		writeProviderError(w, "WEAK_PASSWORD : Password should be at least 6 characters")
	})
	defer closeFn()

	_, err := client.SignUp(context.Background(), "desk@hotel.com", "123")
	assert.ErrorIs(t, err, ErrWeakPassword)

	client2, closeFn2 := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeProviderError(w, "EMAIL_EXISTS")
	})
	defer closeFn2()

	_, err = client2.SignUp(context.Background(), "desk@hotel.com", "secret1")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestSignIn_ServerErrorIsRetried(t *testing.T) {
	var calls int32
	client, closeFn := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer closeFn()

	_, err := client.SignIn(context.Background(), "desk@hotel.com", "secret1")

	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestSignIn_EmptyUserID(t *testing.T) {
	client, closeFn := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})
	defer closeFn()

	_, err := client.SignIn(context.Background(), "desk@hotel.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
