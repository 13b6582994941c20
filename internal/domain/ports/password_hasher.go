package ports

// PasswordHasher define o hash e a verificação de senhas
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare retorna true quando a senha em texto puro corresponde ao hash
	Compare(hashed, password string) bool
}
