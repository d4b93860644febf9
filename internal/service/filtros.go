package service

import (
	"strconv"
	"strings"

	"github.com/sistemasvillaallende/Creditos/internal/models"
)

// ApplyFilters derives the visible credit list from the raw merged list and
// the current filter state. It is pure: the same inputs always produce the
// same output, and the input slice is never mutated.
//
// The text filter matches case-insensitively as a substring against id,
// legajo, nombre, domicilio, cuit and garantes; a row passes if any field
// matches. The overdue filter keeps only rows whose ImpVencido is present and
// greater than zero. Both filters combine with AND.
func ApplyFilters(all []models.CreditoConResumen, termino string, soloVencidos bool) []models.CreditoConResumen {
	termino = strings.ToLower(strings.TrimSpace(termino))

	filtrados := make([]models.CreditoConResumen, 0, len(all))
	for _, credito := range all {
		if termino != "" && !matchTermino(&credito, termino) {
			continue
		}
		if soloVencidos && !estaVencido(&credito) {
			continue
		}
		filtrados = append(filtrados, credito)
	}
	return filtrados
}

func matchTermino(c *models.CreditoConResumen, termino string) bool {
	campos := []string{
		strconv.Itoa(c.IDCreditoMateriales),
		strconv.Itoa(c.Legajo),
		c.Nombre,
		c.Domicilio,
		c.CuitSolicitante,
		c.Garantes,
	}
	for _, campo := range campos {
		if strings.Contains(strings.ToLower(campo), termino) {
			return true
		}
	}
	return false
}

func estaVencido(c *models.CreditoConResumen) bool {
	return c.ImpVencido != nil && *c.ImpVencido > 0
}
