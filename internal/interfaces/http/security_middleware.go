package http

import (
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

// IPAllowList rechaza con 403 las peticiones cuya IP no cae en ninguno de los rangos permitidos.
// allowed acepta IPs sueltas o rangos CIDR. Las rutas con alguno de los prefijos exempt no se filtran.
func IPAllowList(allowed []string, exempt ...string) (fiber.Handler, error) {
	prefixes := make([]netip.Prefix, 0, len(allowed))
	for _, raw := range allowed {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		if !strings.Contains(s, "/") {
			addr, err := netip.ParseAddr(s)
			if err != nil {
				return nil, fmt.Errorf("ip permitida inválida %q: %w", s, err)
			}
			addr = addr.Unmap()
			prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return nil, fmt.Errorf("rango permitido inválido %q: %w", s, err)
		}
		prefixes = append(prefixes, p.Masked())
	}

	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, e := range exempt {
			if strings.HasPrefix(path, e) {
				return c.Next()
			}
		}
		if addr, err := netip.ParseAddr(c.IP()); err == nil {
			addr = addr.Unmap()
			for _, p := range prefixes {
				if p.Contains(addr) {
					return c.Next()
				}
			}
		}
		zerolog.Ctx(c.UserContext()).Warn().Str("ip", c.IP()).Str("path", path).Msg("petición bloqueada por IP")
		return errorJSON(c, fiber.StatusForbidden, "IP_NOT_ALLOWED", "acceso denegado desde esta dirección IP")
	}, nil
}

// RateLimit limita a perMinute peticiones por minuto para cada par (IP, ruta).
func RateLimit(perMinute int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + ":" + c.Path()
		},
		LimitReached: func(c *fiber.Ctx) error {
			zerolog.Ctx(c.UserContext()).Warn().Str("ip", c.IP()).Str("path", c.Path()).Msg("límite de peticiones excedido")
			return errorJSON(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "demasiadas peticiones, intente más tarde")
		},
	})
}

// RequestLogger registra cada petición (método, ruta, estado, latencia, IP, request id) y deja
// en el UserContext un logger con el request id para los handlers.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		l := log.With().Str("request_id", reqID).Logger()
		c.SetUserContext(l.WithContext(c.UserContext()))

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		ev := l.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = l.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = l.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("petición HTTP")
		return err
	}
}
