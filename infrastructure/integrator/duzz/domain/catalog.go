package duzzdomain

import (
	"strconv"

	"github.com/pkg/errors"
)

// CatalogItem é a forma de fio dos itens de /products e /services. Os
// atributos livres chegam em particulars com tipos mistos (número ou
// string), então a coerção é explícita.
type CatalogItem struct {
	ID          int            `json:"id"`
	Name        *string        `json:"name"`
	Category    int            `json:"category"`
	Value       *float64       `json:"value"`
	BarCode     string         `json:"barCode"`
	IsActive    bool           `json:"isActive"`
	Particulars map[string]any `json:"particulars"`
}

// ParticularString lê um atributo livre como string.
func (i *CatalogItem) ParticularString(key string) (string, error) {
	raw, ok := i.Particulars[key]
	if !ok {
		return "", errors.Errorf("atributo %q ausente em particulars do item %d", key, i.ID)
	}

	switch v := raw.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", errors.Errorf("atributo %q do item %d com tipo inesperado %T", key, i.ID, raw)
	}
}

// ParticularFloat lê um atributo livre como número.
func (i *CatalogItem) ParticularFloat(key string) (float64, error) {
	raw, err := i.ParticularString(key)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "atributo %q do item %d não é numérico", key, i.ID)
	}

	return value, nil
}
