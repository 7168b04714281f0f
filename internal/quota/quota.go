package quota

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Access codes gate training sessions. Each code lives in redis as a JSON
// value under testcode:<code>; a MaxUses of -1 means unlimited.

const keyPrefix = "testcode:"

var (
	ErrNotFound  = errors.New("access code not found")
	ErrExhausted = errors.New("access code exhausted")
)

type Code struct {
	Code        string     `json:"code"`
	Type        string     `json:"type"`
	MaxUses     int        `json:"maxUses"`
	UsedCount   int        `json:"usedCount"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastUsedAt  *time.Time `json:"lastUsedAt,omitempty"`
}

// Remaining reports how many uses are left, or -1 for unlimited codes.
func (c Code) Remaining() int {
	if c.MaxUses < 0 {
		return -1
	}
	left := c.MaxUses - c.UsedCount
	if left < 0 {
		return 0
	}
	return left
}

type Store struct {
	rdb    *redis.Client
	logger *slog.Logger
}

func NewStore(rdb *redis.Client, logger *slog.Logger) *Store {
	return &Store{rdb: rdb, logger: logger}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.rdb.Close()
}

// Verify checks that a code exists and still has uses left. It does not
// consume a use; callers claim one with RecordUsage once the session starts.
func (s *Store) Verify(ctx context.Context, code string) (Code, error) {
	c, err := s.get(ctx, code)
	if err != nil {
		return Code{}, err
	}
	if c.MaxUses >= 0 && c.UsedCount >= c.MaxUses {
		return c, ErrExhausted
	}
	return c, nil
}

// RecordUsage consumes one use of a code. Exhausted codes are rejected so a
// client cannot bypass the verify step.
func (s *Store) RecordUsage(ctx context.Context, code string) (Code, error) {
	c, err := s.get(ctx, code)
	if err != nil {
		return Code{}, err
	}
	if c.MaxUses >= 0 && c.UsedCount >= c.MaxUses {
		return c, ErrExhausted
	}

	now := time.Now().UTC()
	c.UsedCount++
	c.LastUsedAt = &now
	if err := s.put(ctx, c); err != nil {
		return Code{}, err
	}

	s.logger.Info("access code used",
		"code", c.Code,
		"used_count", c.UsedCount,
		"remaining", c.Remaining())
	return c, nil
}

// Seed writes the standard code set. Existing codes are left untouched so
// re-seeding never resets usage counters.
func (s *Store) Seed(ctx context.Context) (int, error) {
	seeded := 0
	for _, c := range defaultCodes() {
		exists, err := s.rdb.Exists(ctx, keyPrefix+c.Code).Result()
		if err != nil {
			return seeded, fmt.Errorf("checking code %s: %w", c.Code, err)
		}
		if exists > 0 {
			continue
		}
		if err := s.put(ctx, c); err != nil {
			return seeded, err
		}
		seeded++
	}
	s.logger.Info("seeded access codes", "count", seeded)
	return seeded, nil
}

func (s *Store) get(ctx context.Context, code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if code == "" {
		return Code{}, ErrNotFound
	}

	raw, err := s.rdb.Get(ctx, keyPrefix+code).Result()
	if errors.Is(err, redis.Nil) {
		return Code{}, ErrNotFound
	}
	if err != nil {
		return Code{}, fmt.Errorf("fetching code %s: %w", code, err)
	}

	var c Code
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Code{}, fmt.Errorf("decoding code %s: %w", code, err)
	}
	return c, nil
}

func (s *Store) put(ctx context.Context, c Code) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding code %s: %w", c.Code, err)
	}
	if err := s.rdb.Set(ctx, keyPrefix+c.Code, raw, 0).Err(); err != nil {
		return fmt.Errorf("storing code %s: %w", c.Code, err)
	}
	return nil
}

func defaultCodes() []Code {
	now := time.Now().UTC()
	mk := func(code, typ string, maxUses int, desc string) Code {
		return Code{Code: code, Type: typ, MaxUses: maxUses, Description: desc, CreatedAt: now}
	}
	return []Code{
		mk("ADMIN-2026", "admin", -1, "管理員測試碼（無使用限制）"),
		mk("VIP-001", "vip", 5, "VIP 體驗碼（5次）"),
		mk("VIP-002", "vip", 5, "VIP 體驗碼（5次）"),
		mk("VIP-003", "vip", 5, "VIP 體驗碼（5次）"),
		mk("TEST-001", "test", 3, "一般測試碼（3次）"),
		mk("TEST-002", "test", 3, "一般測試碼（3次）"),
		mk("TEST-003", "test", 3, "一般測試碼（3次）"),
		mk("TRIAL-001", "trial", 1, "單次體驗碼"),
	}
}
