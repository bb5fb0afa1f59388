package auth

// Claims representa la información extraída del token.
// UserID identifica también la sesión de adopciones.
type Claims struct {
	UserID string
	Email  string
	Role   string
}
