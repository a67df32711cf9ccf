package dto

// LoginRequest input form login.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// RegisterRequest input form tambah user (hanya admin; password di-hash di use case).
type RegisterRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Role     string `form:"role"`
}
