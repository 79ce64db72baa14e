package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNoIdentity       = errors.New("user not found")
	ErrInvalidInitData  = errors.New("invalid telegram init data")
	ErrInitDataExpired  = errors.New("telegram init data expired")
	ErrUnsignedInitData = errors.New("telegram init data cannot be verified without a bot token")
)

// maxClockSkew bounds how far auth_date may run ahead of the server clock.
const maxClockSkew = 5 * time.Minute

// Identity is the Telegram user the Mini App runs for.
type Identity struct {
	UserID       int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	// Fallback is set when the identity comes from configuration rather
	// than from signed host data.
	Fallback bool `json:"-"`
}

// Resolver extracts the user from the WebApp initData string.
type Resolver struct {
	botToken   string
	ttl        time.Duration
	fallbackID int64
	now        func() time.Time
}

// NewResolver builds a resolver. fallbackID is used only when non-zero and
// only when no initData is presented at all.
func NewResolver(botToken string, ttl time.Duration, fallbackID int64) *Resolver {
	return &Resolver{
		botToken:   botToken,
		ttl:        ttl,
		fallbackID: fallbackID,
		now:        time.Now,
	}
}

func (r *Resolver) Resolve(initData string) (*Identity, error) {
	if initData == "" {
		if r.fallbackID != 0 {
			return &Identity{UserID: r.fallbackID, Fallback: true}, nil
		}
		return nil, ErrNoIdentity
	}
	if r.botToken == "" {
		return nil, ErrUnsignedInitData
	}

	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, ErrInvalidInitData
	}

	hash := values.Get("hash")
	if hash == "" {
		return nil, ErrInvalidInitData
	}
	want, err := hex.DecodeString(hash)
	if err != nil {
		return nil, ErrInvalidInitData
	}
	values.Del("hash")

	if !hmac.Equal(signature(values, r.botToken), want) {
		return nil, ErrInvalidInitData
	}

	authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	if err != nil {
		return nil, ErrInvalidInitData
	}
	age := r.now().Sub(time.Unix(authDate, 0))
	if age < -maxClockSkew {
		return nil, ErrInvalidInitData
	}
	if r.ttl > 0 && age > r.ttl {
		return nil, ErrInitDataExpired
	}

	raw := values.Get("user")
	if raw == "" {
		return nil, ErrNoIdentity
	}
	var id Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		return nil, ErrInvalidInitData
	}
	if id.UserID == 0 {
		return nil, ErrNoIdentity
	}
	return &id, nil
}

// signature computes the WebApp hash: HMAC-SHA256 over the sorted
// "key=value" lines, keyed by HMAC-SHA256("WebAppData", botToken).
func signature(values url.Values, botToken string) []byte {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+values.Get(k))
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(lines, "\n")))
	return mac.Sum(nil)
}
