package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filesession/pkg/cookie"
)

const (
	secret    = "this-is-a-very-long-secret-key-32-chars-long"
	oldSecret = "this-is-old-very-long-secret-key-32-chars-ok"
)

func newManager(t *testing.T, secrets ...string) *cookie.Manager {
	t.Helper()
	if len(secrets) == 0 {
		secrets = []string{secret}
	}
	m, err := cookie.New(secrets)
	require.NoError(t, err)
	return m
}

// roundTrip copies the cookies written to w onto a fresh request.
func roundTrip(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		secrets []string
		wantErr error
	}{
		{name: "no secrets", secrets: []string{}, wantErr: cookie.ErrNoSecret},
		{name: "empty secrets", secrets: []string{"", ""}, wantErr: cookie.ErrNoSecret},
		{name: "secret too short", secrets: []string{"short"}, wantErr: cookie.ErrSecretTooShort},
		{name: "valid secret", secrets: []string{secret}},
		{name: "multiple secrets with rotation", secrets: []string{secret, oldSecret}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := cookie.New(tt.secrets)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestManager_SetGet(t *testing.T) {
	t.Parallel()
	m := newManager(t)

	w := httptest.NewRecorder()
	require.NoError(t, m.Set(w, "plain", "value", cookie.WithMaxAgeDays(2)))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, 2*24*60*60, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, "/", cookies[0].Path)

	got, err := m.Get(roundTrip(w), "plain")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	_, err = m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "plain")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManager_SetGetSigned(t *testing.T) {
	t.Parallel()
	m := newManager(t)

	w := httptest.NewRecorder()
	require.NoError(t, m.SetSigned(w, "sid", "0123456789abcdef"))

	assert.NotEqual(t, "0123456789abcdef", w.Result().Cookies()[0].Value)

	got, err := m.GetSigned(roundTrip(w), "sid")
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef", got)
}

func TestManager_SignedTamperDetection(t *testing.T) {
	t.Parallel()
	m := newManager(t)

	w := httptest.NewRecorder()
	require.NoError(t, m.SetSigned(w, "sid", "original"))
	signed := w.Result().Cookies()[0].Value

	t.Run("modified signature", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "sid", Value: signed + "AA"})
		_, err := m.GetSigned(r, "sid")
		assert.Error(t, err)
	})

	t.Run("unsigned value", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "sid", Value: "forged"})
		_, err := m.GetSigned(r, "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
	})

	t.Run("value moved to another cookie name", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "other", Value: signed})
		_, err := m.GetSigned(r, "other")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("signed by a foreign secret", func(t *testing.T) {
		foreign := newManager(t, oldSecret)
		fw := httptest.NewRecorder()
		require.NoError(t, foreign.SetSigned(fw, "sid", "original"))

		_, err := m.GetSigned(roundTrip(fw), "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})
}

func TestManager_SetGetEncrypted(t *testing.T) {
	t.Parallel()
	m := newManager(t)

	w := httptest.NewRecorder()
	require.NoError(t, m.SetEncrypted(w, "secret", "hidden value"))

	raw := w.Result().Cookies()[0].Value
	assert.False(t, strings.Contains(raw, "hidden"))

	got, err := m.GetEncrypted(roundTrip(w), "secret")
	require.NoError(t, err)
	assert.Equal(t, "hidden value", got)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "secret", Value: "not-base64!!"})
	_, err = m.GetEncrypted(r, "secret")
	assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
}

func TestManager_SecretRotation(t *testing.T) {
	t.Parallel()
	old := newManager(t, oldSecret)
	rotated := newManager(t, secret, oldSecret)

	w := httptest.NewRecorder()
	require.NoError(t, old.SetSigned(w, "sid", "signed"))
	require.NoError(t, old.SetEncrypted(w, "enc", "encrypted"))
	r := roundTrip(w)

	got, err := rotated.GetSigned(r, "sid")
	require.NoError(t, err)
	assert.Equal(t, "signed", got)

	got, err = rotated.GetEncrypted(r, "enc")
	require.NoError(t, err)
	assert.Equal(t, "encrypted", got)
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()
	m := newManager(t)

	w := httptest.NewRecorder()
	m.Delete(w, "sid")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("requires secrets", func(t *testing.T) {
		_, err := cookie.NewFromConfig(cookie.DefaultConfig())
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("applies config", func(t *testing.T) {
		cfg := cookie.DefaultConfig()
		cfg.Secrets = " " + secret + " , " + oldSecret
		cfg.Secure = true
		cfg.Domain = "example.com"

		m, err := cookie.NewFromConfig(cfg)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "a", "b"))
		c := w.Result().Cookies()[0]
		assert.True(t, c.Secure)
		assert.Equal(t, "example.com", c.Domain)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})
}
