// Package password implementa la capacidad opaca de hash/verificación de
// contraseñas con bcrypt. El core depende solo de los puertos de
// application/auth; el algoritmo se decide aquí.
package password

import "golang.org/x/crypto/bcrypt"

// Bcrypt implementa auth.PasswordHasher y auth.PasswordVerifier.
type Bcrypt struct {
	cost int
}

// NewBcrypt construye el servicio con el costo dado (<=0 usa bcrypt.DefaultCost).
func NewBcrypt(cost int) *Bcrypt {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash genera el hash bcrypt de una contraseña en texto plano.
func (b *Bcrypt) Hash(rawPassword string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), b.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Matches verifica una contraseña en texto plano contra un hash almacenado.
func (b *Bcrypt) Matches(rawPassword, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(rawPassword)) == nil
}
