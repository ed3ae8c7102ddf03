package jwtx

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
	Issue(Identity) (string, Claims, error)
	Validate() error
}
