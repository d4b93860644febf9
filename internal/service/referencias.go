package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sistemasvillaallende/Creditos/internal/models"
)

// Categorias fetches the debt-category reference list.
func (s *CreditosService) Categorias(ctx context.Context) ([]models.CategoriaDeuda, error) {
	return s.api.GetCategoriasDeuda(ctx)
}

// Rubros fetches the credit-rubro reference list.
func (s *CreditosService) Rubros(ctx context.Context) ([]models.RubroCredito, error) {
	return s.api.GetRubros(ctx)
}

// ValorUva fetches the current UVA index value.
func (s *CreditosService) ValorUva(ctx context.Context) (*models.ValorUva, error) {
	return s.api.GetValorUva(ctx)
}

// NuevoValorUva posts a new UVA index value, audited as an alta.
func (s *CreditosService) NuevoValorUva(ctx context.Context, valor models.ValorUva, usuario *models.Usuario) error {
	if valor.Valor <= 0 {
		return &ValidationError{Campos: map[string]string{
			"valor": "El valor UVA debe ser mayor a cero",
		}}
	}
	auditoria := models.NewAuditoria(models.ProcesoAltaValorUva, "", usuario.NombreCompleto)
	if err := s.api.InsertValorUva(ctx, valor, auditoria); err != nil {
		return fmt.Errorf("failed to insert UVA value: %w", err)
	}
	s.logger.Info("UVA value inserted", zap.Float64("valor", valor.Valor))
	return nil
}
