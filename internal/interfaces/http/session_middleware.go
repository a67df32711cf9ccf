package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farhanzaidann/paw-12/internal/domain/entity"
	"github.com/farhanzaidann/paw-12/internal/domain/repository"
)

// Locals key untuk sesi yang sudah dimuat.
const localSession = "session"

// Pesan penolakan untuk user non-admin, sama persis dengan aplikasi aslinya.
const msgAdminOnly = "Akses ditolak! (Admin Only)"

// LoadSession membaca token dari cookie dan memuat sesi dari store ke c.Locals.
// Token yang tidak ada, tidak dikenal, atau kedaluwarsa bukan error: berarti
// belum login, biar RequireLogin yang memutuskan.
func LoadSession(store repository.SessionStore, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Next()
		}
		session, err := store.Get(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Terjadi kesalahan pada server.")
		}
		if session != nil {
			c.Locals(localSession, session)
		}
		return c.Next()
	}
}

// RequireLogin memastikan request punya sesi valid; kalau tidak, redirect ke
// halaman login (303 untuk POST supaya browser tidak mengulang body-nya).
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentSession(c) == nil {
			status := fiber.StatusFound
			if c.Method() != fiber.MethodGet {
				status = fiber.StatusSeeOther
			}
			return c.Redirect("/login", status)
		}
		return c.Next()
	}
}

// RequireAdmin menolak sesi non-admin dengan pesan teks eksplisit, tanpa redirect.
// Dipasang SETELAH RequireLogin: autentikasi selalu diperiksa lebih dulu daripada
// otorisasi, dan penolakan di sini tidak membocorkan data apa pun.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := CurrentSession(c)
		if session == nil {
			return c.Redirect("/login", fiber.StatusFound)
		}
		if !session.Role.IsAdmin() {
			return c.Status(fiber.StatusForbidden).SendString(msgAdminOnly)
		}
		return c.Next()
	}
}

// CurrentSession mengembalikan sesi request ini, atau nil bila belum login.
func CurrentSession(c *fiber.Ctx) *entity.Session {
	s, _ := c.Locals(localSession).(*entity.Session)
	return s
}
