package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/sistemasvillaallende/Creditos/internal/models"
	"github.com/sistemasvillaallende/Creditos/internal/upstream"
)

// MinLargoCuit is the minimum typed fragment length before the borrower
// lookup fires.
const MinLargoCuit = 3

// ValidationError carries per-field validation messages. No upstream call is
// made when validation fails.
type ValidationError struct {
	Campos map[string]string
}

func (e *ValidationError) Error() string {
	claves := make([]string, 0, len(e.Campos))
	for campo := range e.Campos {
		claves = append(claves, campo)
	}
	return fmt.Sprintf("campos inválidos: %s", strings.Join(claves, ", "))
}

// ErrMotivoRequerido is returned when a status toggle arrives without a
// justification. A cancelled prompt on the client never reaches this service.
var ErrMotivoRequerido = fmt.Errorf("se requiere un motivo para cambiar el estado del crédito")

// CreditosService owns the merged credit list and every credit mutation. The
// in-memory snapshot is the single owner of the "all credits" slice; callers
// derive filtered views from it and never mutate it.
type CreditosService struct {
	api    upstream.CreditosAPI
	logger *zap.Logger

	mu         sync.Mutex
	snapshot   []models.CreditoConResumen
	generation uint64 // last reload started
	applied    uint64 // last reload published
}

// NewCreditosService creates a CreditosService.
func NewCreditosService(api upstream.CreditosAPI, logger *zap.Logger) *CreditosService {
	return &CreditosService{api: api, logger: logger}
}

// LoadAll fetches the credit list and the debt-summary feed concurrently,
// merges them by legajo and publishes the result as the current snapshot.
//
// Two overlapping reloads may resolve out of order; only the most recently
// started one may publish (last-write-wins per view). Either way the merged
// result of this call is returned to the caller. On any fetch failure nothing
// is published and no partial merge is exposed.
func (s *CreditosService) LoadAll(ctx context.Context) ([]models.CreditoConResumen, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	var (
		wg        sync.WaitGroup
		creditos  []models.Credito
		resumenes []models.ResumenImporte
		errCred   error
		errRes    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		creditos, errCred = s.api.GetAllCreditos(ctx)
	}()
	go func() {
		defer wg.Done()
		resumenes, errRes = s.api.GetResumenImportes(ctx)
	}()
	wg.Wait()

	if errCred != nil {
		return nil, fmt.Errorf("failed to fetch credits: %w", errCred)
	}
	if errRes != nil {
		return nil, fmt.Errorf("failed to fetch debt summaries: %w", errRes)
	}

	merged := MergeResumenes(creditos, resumenes)

	s.mu.Lock()
	if gen > s.applied {
		s.applied = gen
		s.snapshot = merged
	} else {
		s.logger.Debug("stale reload discarded", zap.Uint64("generation", gen))
	}
	s.mu.Unlock()

	return merged, nil
}

// Snapshot returns the last published merged list.
func (s *CreditosService) Snapshot() []models.CreditoConResumen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// MergeResumenes joins each credit with its borrower's debt summary. Currency
// fields are coerced, a missing display name falls back to the sentinel, and
// rows without a matching summary keep all summary fields nil.
func MergeResumenes(creditos []models.Credito, resumenes []models.ResumenImporte) []models.CreditoConResumen {
	porLegajo := make(map[int]models.ResumenImporte, len(resumenes))
	for _, r := range resumenes {
		porLegajo[r.Legajo] = r
	}

	merged := make([]models.CreditoConResumen, 0, len(creditos))
	for _, c := range creditos {
		if c.Nombre == "" {
			c.Nombre = models.SinNombre
		}
		fila := models.CreditoConResumen{Credito: c}
		if r, ok := porLegajo[c.Legajo]; ok {
			fila.ImpPagado = &r.ImpPagado
			fila.ImpAdeudado = &r.ImpAdeudado
			fila.ImpVencido = &r.ImpVencido
			fila.CuotasVencidas = &r.CuotasVencidas
			fila.CuotasPagadas = &r.CuotasPagadas
			fila.FechaUltimoPago = r.FechaUltimoPago
		}
		merged = append(merged, fila)
	}
	return merged
}

// BuscarPaginado proxies the backend's paginated search.
func (s *CreditosService) BuscarPaginado(ctx context.Context, buscarPor string, pagina, registros int) (*upstream.PaginaCreditos, error) {
	if pagina < 1 {
		pagina = 1
	}
	if registros < 1 {
		registros = 10
	}
	return s.api.GetCreditosPaginado(ctx, buscarPor, pagina, registros)
}

// GetByID fetches one credit for the edit dialog, resolving the borrower's
// current display name through the directory when the backend omits it.
func (s *CreditosService) GetByID(ctx context.Context, id int) (*models.Credito, error) {
	credito, err := s.api.GetCreditoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if credito.Nombre == "" {
		credito.Nombre = s.resolverNombre(ctx, credito.CuitSolicitante)
	}
	return credito, nil
}

// Nuevo validates and submits a credit creation, tagged as an alta.
func (s *CreditosService) Nuevo(ctx context.Context, credito models.Credito, usuario *models.Usuario) error {
	if err := validarCredito(&credito); err != nil {
		return err
	}
	if credito.Nombre == "" {
		credito.Nombre = s.resolverNombre(ctx, credito.CuitSolicitante)
	}

	auditoria := models.NewAuditoria(models.ProcesoAltaCredito, "", usuario.NombreCompleto)
	if err := s.api.InsertCredito(ctx, credito, auditoria); err != nil {
		return fmt.Errorf("failed to create credit: %w", err)
	}

	s.logger.Info("credit created",
		zap.Int("legajo", credito.Legajo),
		zap.String("cuit", credito.CuitSolicitante))
	return nil
}

// Editar validates and submits a credit update, tagged as a modificación with
// a fixed justification referencing the credit id.
func (s *CreditosService) Editar(ctx context.Context, credito models.Credito, usuario *models.Usuario) error {
	if err := validarCredito(&credito); err != nil {
		return err
	}

	obs := fmt.Sprintf("Modificación del crédito %d", credito.IDCreditoMateriales)
	auditoria := models.NewAuditoria(models.ProcesoModificaCredito, obs, usuario.NombreCompleto)
	if err := s.api.UpdateCredito(ctx, credito.Legajo, credito, auditoria); err != nil {
		return fmt.Errorf("failed to update credit: %w", err)
	}

	s.logger.Info("credit updated", zap.Int("id", credito.IDCreditoMateriales))
	return nil
}

// Baja deactivates a credit. The operator-supplied motivo is mandatory.
func (s *CreditosService) Baja(ctx context.Context, id int, motivo string, usuario *models.Usuario) error {
	if strings.TrimSpace(motivo) == "" {
		return ErrMotivoRequerido
	}
	auditoria := models.NewAuditoria(models.ProcesoBajaCredito, motivo, usuario.NombreCompleto)
	if err := s.api.BajaCredito(ctx, id, auditoria); err != nil {
		return fmt.Errorf("failed to deactivate credit: %w", err)
	}
	s.logger.Info("credit deactivated", zap.Int("id", id))
	return nil
}

// Rehabilitar re-activates a credit. The operator-supplied motivo is
// mandatory.
func (s *CreditosService) Rehabilitar(ctx context.Context, id int, motivo string, usuario *models.Usuario) error {
	if strings.TrimSpace(motivo) == "" {
		return ErrMotivoRequerido
	}
	auditoria := models.NewAuditoria(models.ProcesoRehabilitaCredito, motivo, usuario.NombreCompleto)
	if err := s.api.RehabilitarCredito(ctx, id, auditoria); err != nil {
		return fmt.Errorf("failed to reactivate credit: %w", err)
	}
	s.logger.Info("credit reactivated", zap.Int("id", id))
	return nil
}

// BuscarBadec runs the borrower autocomplete lookup. Fragments shorter than
// MinLargoCuit return no candidates without hitting the backend.
func (s *CreditosService) BuscarBadec(ctx context.Context, cuit string) ([]models.BadecData, error) {
	cuit = strings.TrimSpace(cuit)
	if len(cuit) < MinLargoCuit {
		return nil, nil
	}
	return s.api.GetBadecByCuit(ctx, cuit)
}

// resolverNombre looks up the borrower's display name by exact CUIT. Lookup
// failures degrade to the sentinel; they never block the mutation.
func (s *CreditosService) resolverNombre(ctx context.Context, cuit string) string {
	candidatos, err := s.api.GetBadecByCuit(ctx, cuit)
	if err != nil {
		s.logger.Warn("borrower name lookup failed", zap.String("cuit", cuit), zap.Error(err))
		return models.SinNombre
	}
	for _, c := range candidatos {
		if c.Cuit == cuit {
			return c.Nombre
		}
	}
	if len(candidatos) > 0 {
		return candidatos[0].Nombre
	}
	return models.SinNombre
}

// validarCredito enforces the required-field rules shared by create and edit.
func validarCredito(c *models.Credito) error {
	campos := make(map[string]string)

	if strings.TrimSpace(c.CuitSolicitante) == "" {
		campos["cuit_solicitante"] = "El CUIT es obligatorio"
	}
	if c.Legajo <= 0 {
		campos["legajo"] = "El legajo es obligatorio"
	}
	if strings.TrimSpace(c.Domicilio) == "" {
		campos["domicilio"] = "El domicilio es obligatorio"
	}
	if strings.TrimSpace(c.Garantes) == "" {
		campos["garantes"] = "Los garantes son obligatorios"
	}
	if c.Presupuesto <= 0 {
		campos["presupuesto"] = "El presupuesto es obligatorio"
	}
	if c.PresupuestoUva <= 0 {
		campos["presupuesto_uva"] = "El presupuesto UVA es obligatorio"
	}
	if c.CantCuotas <= 0 {
		campos["cant_cuotas"] = "La cantidad de cuotas es obligatoria"
	}
	if c.CodCategoria <= 0 {
		campos["cod_categoria"] = "La categoría de deuda es obligatoria"
	}
	if strings.TrimSpace(c.Circunscripcion) == "" {
		campos["circunscripcion"] = "La circunscripción es obligatoria"
	}
	if strings.TrimSpace(c.Seccion) == "" {
		campos["seccion"] = "La sección es obligatoria"
	}
	if strings.TrimSpace(c.Manzana) == "" {
		campos["manzana"] = "La manzana es obligatoria"
	}
	if strings.TrimSpace(c.Parcela) == "" {
		campos["parcela"] = "La parcela es obligatoria"
	}

	if len(campos) > 0 {
		return &ValidationError{Campos: campos}
	}
	return nil
}
