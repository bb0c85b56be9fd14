package duzzclient

import "errors"

var (
	// ErrInvalidCredentials indica falha de autenticação no vendor. O
	// chamador deve pedir novas credenciais, nunca repetir a tentativa.
	ErrInvalidCredentials = errors.New("usuário, senha ou id da empresa incorretos")

	// ErrSessionExpired indica HTTP 401 em qualquer chamada de dados: a
	// sessão expirou e o usuário precisa autenticar de novo.
	ErrSessionExpired = errors.New("sessão expirada no vendor")
)
