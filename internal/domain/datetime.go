package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout é o formato fixo de data/hora usado pela API do DUZZ
// Commercial em todas as requisições e respostas (DD-MM-YYYY HH:MM:SS).
const DateTimeLayout = "02-01-2006 15:04:05"

// DateTime encapsula time.Time para decodificar o formato de data do vendor.
// Uma data malformada é um erro fatal de parse, nunca recuperada.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// ParseDateTime converte uma string no formato do vendor para DateTime.
func ParseDateTime(value string) (DateTime, error) {
	t, err := time.Parse(DateTimeLayout, value)
	if err != nil {
		return DateTime{}, fmt.Errorf("data inválida %q: esperado formato %s", value, DateTimeLayout)
	}
	return DateTime{Time: t}, nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" || raw == "" {
		return fmt.Errorf("data obrigatória ausente na resposta do vendor")
	}

	parsed, err := ParseDateTime(raw)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateTimeLayout) + `"`), nil
}
