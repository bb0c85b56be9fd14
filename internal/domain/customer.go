package domain

import "strings"

// Customer é um cliente cadastrado no vendor.
type Customer struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Whatsapp string `json:"whatsapp"`
	Email    string `json:"email"`
}

// FullName monta o nome completo do cliente. O sobrenome ausente vira
// string vazia, nunca nulo. Dois clientes com o mesmo nome completo caem
// no mesmo balde de agregação (caso de borda conhecido do relatório).
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.Name + " " + c.LastName)
}
