package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idemp:ax:"

// epoch values at or above this are milliseconds
const epochMillisFloor = 1e12

var (
	reUUID  = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[1-5][a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)
	reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

	errRequestAtMissing = errors.New("Thiếu Ax-Request-At")
	errRequestAtFormat  = errors.New("Ax-Request-At phải là epoch (giây/mili giây) hoặc RFC3339 có múi giờ")
)

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func nowUTC() time.Time { return time.Now().UTC() }

// idempotencyKey scopes a request id to one caller on one route.
func idempotencyKey(method, route, userID, requestID string) string {
	return keyPrefix + strings.Join([]string{strings.ToLower(method), route, userID, requestID}, ":")
}

func fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]any{"success": false, "message": msg})
}

func validRequestID(id string) bool {
	id = strings.TrimSpace(id)
	return reHex32.MatchString(id) || reUUID.MatchString(id)
}

// parseRequestAt reads Ax-Request-At as epoch seconds, epoch milliseconds
// or an RFC3339 timestamp that carries a zone.
func parseRequestAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errRequestAtMissing
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n >= epochMillisFloor {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}
	// RFC3339Nano also accepts whole seconds
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, errRequestAtFormat
	}
	return t.UTC(), nil
}

// entryStore keeps idempotency entries in redis as JSON.
type entryStore struct{ rdb *redis.Client }

// reserve claims key for an in-flight request. false means someone holds it.
func (s entryStore) reserve(ctx context.Context, key string, e idempEntry) (bool, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return false, err
	}
	return s.rdb.SetNX(ctx, key, b, provisionalLockTTL).Result()
}

func (s entryStore) load(ctx context.Context, key string) (idempEntry, error) {
	var e idempEntry
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	err = json.Unmarshal(b, &e)
	return e, err
}

// commit replaces the reservation with the finished response.
func (s entryStore) commit(ctx context.Context, key string, e idempEntry, ttl time.Duration) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, b, ttl).Err()
}

func (s entryStore) release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
