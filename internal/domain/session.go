package domain

import "github.com/golang-jwt/jwt/v5"

// Session é o par de credenciais do vendor estabelecido no login, mais o
// pseudônimo de exibição da empresa. É passada explicitamente a cada
// operação, nunca guardada como estado global.
type Session struct {
	Company      string `json:"company"`
	SessionToken string `json:"sessionToken"`
	Pseudonym    string `json:"pseudonym"`
}

// Claims é o conteúdo do JWT emitido no login, carregando a sessão do
// vendor entre requisições do dashboard.
type Claims struct {
	Company      string `json:"company"`
	SessionToken string `json:"session_token"`
	Pseudonym    string `json:"pseudonym"`
	jwt.RegisteredClaims
}

// Session reconstrói a sessão do vendor a partir das claims do token.
func (c *Claims) Session() Session {
	return Session{
		Company:      c.Company,
		SessionToken: c.SessionToken,
		Pseudonym:    c.Pseudonym,
	}
}
