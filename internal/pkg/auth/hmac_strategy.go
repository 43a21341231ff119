package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"
	"time"
)

var tokenEncoding = base64.RawURLEncoding

// HMACStrategy signs "<user>.<expiry>" payloads with HMAC-SHA256.
type HMACStrategy struct {
	secret []byte
	opts   Options
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	return &HMACStrategy{secret: []byte(secret), opts: opts.normalized()}
}

// IssueToken generates signed auth token for the user.
func (s *HMACStrategy) IssueToken(userID int64) (string, error) {
	expires := s.opts.Now().Add(s.opts.TTL).Unix()
	payload := strconv.FormatInt(userID, 10) + "." + strconv.FormatInt(expires, 10)
	encoded := tokenEncoding.EncodeToString([]byte(payload))
	return encoded + "." + s.sign(encoded), nil
}

// ParseToken validates token and returns encoded user ID.
func (s *HMACStrategy) ParseToken(token string) (int64, error) {
	encoded, sig, ok := strings.Cut(token, ".")
	if !ok || encoded == "" || sig == "" {
		return 0, ErrInvalidToken
	}
	if !hmac.Equal([]byte(s.sign(encoded)), []byte(sig)) {
		return 0, ErrInvalidToken
	}

	raw, err := tokenEncoding.DecodeString(encoded)
	if err != nil {
		return 0, ErrInvalidToken
	}
	idPart, expPart, ok := strings.Cut(string(raw), ".")
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	expires, err := strconv.ParseInt(expPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	if !s.opts.Now().Before(time.Unix(expires, 0)) {
		return 0, ErrInvalidToken
	}
	return userID, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return tokenEncoding.EncodeToString(mac.Sum(nil))
}
