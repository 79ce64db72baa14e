package auth

import (
	"encoding/hex"
	"errors"
	"net/url"
	"strconv"
	"testing"
	"time"
)

const botToken = "123456:TEST-TOKEN"

// signedInitData builds initData the way the Telegram client does.
func signedInitData(t *testing.T, token, user string, authDate time.Time) string {
	t.Helper()
	values := url.Values{}
	values.Set("query_id", "AAHdF6IQAAAAAN0XohDhrOrc")
	values.Set("auth_date", strconv.FormatInt(authDate.Unix(), 10))
	if user != "" {
		values.Set("user", user)
	}
	values.Set("hash", hex.EncodeToString(signature(values, token)))
	return values.Encode()
}

func TestResolve(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	newResolver := func(fallback int64) *Resolver {
		r := NewResolver(botToken, time.Hour, fallback)
		r.now = func() time.Time { return now }
		return r
	}
	user := `{"id":1148831907,"first_name":"Ann","username":"ann"}`

	t.Run("ValidInitData", func(t *testing.T) {
		id, err := newResolver(0).Resolve(signedInitData(t, botToken, user, now.Add(-time.Minute)))
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if id.UserID != 1148831907 || id.FirstName != "Ann" || id.Fallback {
			t.Errorf("unexpected identity %+v", id)
		}
	})

	t.Run("WrongBotToken", func(t *testing.T) {
		_, err := newResolver(0).Resolve(signedInitData(t, "other:token", user, now))
		if !errors.Is(err, ErrInvalidInitData) {
			t.Errorf("expected ErrInvalidInitData, got %v", err)
		}
	})

	t.Run("TamperedUser", func(t *testing.T) {
		raw := signedInitData(t, botToken, user, now)
		values, _ := url.ParseQuery(raw)
		values.Set("user", `{"id":1,"first_name":"Mallory"}`)
		_, err := newResolver(0).Resolve(values.Encode())
		if !errors.Is(err, ErrInvalidInitData) {
			t.Errorf("expected ErrInvalidInitData, got %v", err)
		}
	})

	t.Run("Expired", func(t *testing.T) {
		_, err := newResolver(0).Resolve(signedInitData(t, botToken, user, now.Add(-2*time.Hour)))
		if !errors.Is(err, ErrInitDataExpired) {
			t.Errorf("expected ErrInitDataExpired, got %v", err)
		}
	})

	t.Run("FromTheFuture", func(t *testing.T) {
		_, err := newResolver(0).Resolve(signedInitData(t, botToken, user, now.Add(time.Hour)))
		if !errors.Is(err, ErrInvalidInitData) {
			t.Errorf("expected ErrInvalidInitData, got %v", err)
		}
	})

	t.Run("SmallClockSkew", func(t *testing.T) {
		if _, err := newResolver(0).Resolve(signedInitData(t, botToken, user, now.Add(time.Minute))); err != nil {
			t.Errorf("a minute of skew should pass, got %v", err)
		}
	})

	t.Run("NoUser", func(t *testing.T) {
		_, err := newResolver(0).Resolve(signedInitData(t, botToken, "", now))
		if !errors.Is(err, ErrNoIdentity) {
			t.Errorf("expected ErrNoIdentity, got %v", err)
		}
	})

	t.Run("MissingHash", func(t *testing.T) {
		_, err := newResolver(0).Resolve("auth_date=1&user=%7B%22id%22%3A1%7D")
		if !errors.Is(err, ErrInvalidInitData) {
			t.Errorf("expected ErrInvalidInitData, got %v", err)
		}
	})

	t.Run("AbsentWithoutFallback", func(t *testing.T) {
		_, err := newResolver(0).Resolve("")
		if !errors.Is(err, ErrNoIdentity) {
			t.Errorf("absent host data must not resolve to a default id, got %v", err)
		}
	})

	t.Run("AbsentWithExplicitFallback", func(t *testing.T) {
		id, err := newResolver(77).Resolve("")
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if id.UserID != 77 || !id.Fallback {
			t.Errorf("unexpected identity %+v", id)
		}
	})

	t.Run("FallbackDoesNotMaskBadData", func(t *testing.T) {
		_, err := newResolver(77).Resolve(signedInitData(t, "other:token", user, now))
		if !errors.Is(err, ErrInvalidInitData) {
			t.Errorf("expected ErrInvalidInitData, got %v", err)
		}
	})

	t.Run("NoBotToken", func(t *testing.T) {
		r := NewResolver("", time.Hour, 77)
		_, err := r.Resolve(signedInitData(t, botToken, user, time.Now()))
		if !errors.Is(err, ErrUnsignedInitData) {
			t.Errorf("expected ErrUnsignedInitData, got %v", err)
		}
	})
}
