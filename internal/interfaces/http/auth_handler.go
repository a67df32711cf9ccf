package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/farhanzaidann/paw-12/internal/application/auth"
	"github.com/farhanzaidann/paw-12/internal/application/dto"
	"github.com/farhanzaidann/paw-12/internal/domain"
	"github.com/farhanzaidann/paw-12/pkg/logger"
)

// Cookie non-otoritatif pengingat username terakhir, umur 24 jam.
const (
	lastUsernameCookie = "last_username"
	lastUsernameMaxAge = 24 * time.Hour
)

// AuthHandler menangani login, logout, dan penambahan user.
type AuthHandler struct {
	uc         *auth.UseCase
	cookieName string // nama cookie token sesi
	log        *logger.Logger
}

// NewAuthHandler membuat handler auth.
func NewAuthHandler(uc *auth.UseCase, cookieName string, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cookieName: cookieName, log: log}
}

// ShowLogin merender form login. Yang sudah login langsung diarahkan ke index.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	if CurrentSession(c) != nil {
		return c.Redirect("/", fiber.StatusFound)
	}
	return c.Render("login", fiber.Map{
		"Message":      "",
		"LastUsername": c.Cookies(lastUsernameCookie),
	})
}

// Login memproses form login. Username tidak dikenal dan password salah
// menghasilkan satu pesan generik yang sama.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if CurrentSession(c) != nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Form tidak valid.")
	}

	session, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if err == domain.ErrUnauthorized {
			return c.Render("login", fiber.Map{
				"Message":      "Username atau password salah.",
				"LastUsername": c.Cookies(lastUsernameCookie),
			})
		}
		h.log.Error().Err(err).Str("path", c.Path()).Msg("login gagal di sisi server")
		return c.Status(fiber.StatusInternalServerError).SendString("Terjadi kesalahan pada server.")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:    lastUsernameCookie,
		Value:   in.Username,
		Expires: time.Now().Add(lastUsernameMaxAge),
		MaxAge:  int(lastUsernameMaxAge.Seconds()),
	})
	h.log.Info().Str("username", session.Username).Str("role", string(session.Role)).Msg("login berhasil")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout menghapus sesi di server dan membersihkan kedua cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.Context(), c.Cookies(h.cookieName)); err != nil {
		h.log.Warn().Err(err).Msg("hapus sesi saat logout gagal")
	}
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: h.cookieName, Value: "", Expires: expired, MaxAge: -1, HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: lastUsernameCookie, Value: "", Expires: expired, MaxAge: -1})
	return c.Redirect("/login", fiber.StatusFound)
}

// ShowRegister merender form tambah user (rute sudah dijaga admin-only).
func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	return c.Render("register", fiber.Map{})
}

// Register membuat user baru lalu kembali ke index.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Form tidak valid.")
	}
	if _, err := h.uc.Register(c.Context(), in); err != nil {
		if err == domain.ErrUsernameTaken {
			return c.Status(fiber.StatusConflict).SendString("Username sudah dipakai.")
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).SendString("Username dan password wajib diisi.")
		}
		h.log.Error().Err(err).Msg("tambah user gagal")
		return c.Status(fiber.StatusInternalServerError).SendString("Terjadi kesalahan pada server.")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
