package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Allowance es el resultado de consultar el limitador de sesiones.
type Allowance struct {
	Allowed bool
	// RetryAfter es lo que falta para que se reinicie la ventana; sólo tiene sentido si !Allowed.
	RetryAfter time.Duration
}

// SessionLimiter decide si un cliente (por IP) puede abrir otra sesión.
type SessionLimiter interface {
	Allow(ctx context.Context, clientKey string) Allowance
}

// sessionWindowScript cuenta creaciones en una ventana fija y devuelve {count, ttl}.
// Repone el EXPIRE si la clave quedó sin TTL.
const sessionWindowScript = `
local count = redis.call("INCR", KEYS[1])
local ttl = redis.call("TTL", KEYS[1])
if count == 1 or ttl < 0 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {count, ttl}
`

type scriptRunner interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// RedisSessionLimiter implementa SessionLimiter con una ventana fija en Redis.
type RedisSessionLimiter struct {
	redis        scriptRunner
	window       time.Duration
	maxPerWindow int64
	callTimeout  time.Duration
}

func NewRedisSessionLimiter(client *redis.Client, window time.Duration, maxPerWindow int) *RedisSessionLimiter {
	if client == nil {
		return nil
	}
	return newRedisSessionLimiter(client, window, maxPerWindow)
}

func newRedisSessionLimiter(runner scriptRunner, window time.Duration, maxPerWindow int) *RedisSessionLimiter {
	if window < time.Second {
		window = time.Minute
	}
	if maxPerWindow <= 0 {
		maxPerWindow = 1
	}
	return &RedisSessionLimiter{
		redis:        runner,
		window:       window,
		maxPerWindow: int64(maxPerWindow),
		callTimeout:  300 * time.Millisecond,
	}
}

func sessionLimitKey(clientKey string) string {
	return "tutor:sessions:" + strings.ToLower(strings.TrimSpace(clientKey))
}

// Allow respeta la cancelación del request. Si Redis no responde deja pasar.
func (l *RedisSessionLimiter) Allow(ctx context.Context, clientKey string) Allowance {
	if l == nil || l.redis == nil {
		return Allowance{Allowed: true}
	}
	if strings.TrimSpace(clientKey) == "" {
		return Allowance{Allowed: false, RetryAfter: l.window}
	}

	callCtx, cancel := context.WithTimeout(ctx, l.callTimeout)
	defer cancel()

	res, err := l.redis.Eval(callCtx, sessionWindowScript, []string{sessionLimitKey(clientKey)}, int(l.window/time.Second)).Int64Slice()
	if err != nil || len(res) != 2 {
		return Allowance{Allowed: true}
	}
	count, ttl := res[0], res[1]
	if count <= l.maxPerWindow {
		return Allowance{Allowed: true}
	}
	retry := time.Duration(ttl) * time.Second
	if retry <= 0 {
		retry = l.window
	}
	return Allowance{Allowed: false, RetryAfter: retry}
}
