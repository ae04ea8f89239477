package auth

// PasswordVerifier capacidad opaca de verificación de contraseñas.
// El core no elige algoritmo; pkg/password la implementa con bcrypt.
type PasswordVerifier interface {
	Matches(rawPassword, storedHash string) bool
}

// PasswordHasher capacidad de generación de hashes (registro de usuarios).
type PasswordHasher interface {
	Hash(rawPassword string) (string, error)
}
