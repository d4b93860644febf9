package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/sistemasvillaallende/Creditos/internal/models"
)

// CedulonesAPI is the surface of the voucher service, which lives behind a
// separate base URL from the credits API.
type CedulonesAPI interface {
	GetCabecera(ctx context.Context, nroCedulon int) (*models.CabeceraCedulon, error)
	GetDetalle(ctx context.Context, nroCedulon int) ([]models.DetalleCedulon, error)
	EmitirCedulon(ctx context.Context, req models.CedulonRequest) (int, error)
}

// CedulonesClient talks to the cedulones service.
type CedulonesClient struct {
	*Client
}

// NewCedulonesClient creates a cedulones API client.
func NewCedulonesClient(baseURL string, timeout time.Duration, logger *zap.Logger) *CedulonesClient {
	return &CedulonesClient{Client: NewClient(baseURL, timeout, logger)}
}

// GetCabecera fetches the printable header of an issued voucher.
func (c *CedulonesClient) GetCabecera(ctx context.Context, nroCedulon int) (*models.CabeceraCedulon, error) {
	q := url.Values{}
	q.Set("nroCedulon", strconv.Itoa(nroCedulon))

	var cabecera models.CabeceraCedulon
	if err := c.getJSON(ctx, "Credito/getCabeceraPrintCedulonCredito", q, &cabecera); err != nil {
		return nil, err
	}
	return &cabecera, nil
}

// GetDetalle fetches the line items of an issued voucher.
func (c *CedulonesClient) GetDetalle(ctx context.Context, nroCedulon int) ([]models.DetalleCedulon, error) {
	q := url.Values{}
	q.Set("nroCedulon", strconv.Itoa(nroCedulon))

	var detalles []models.DetalleCedulon
	err := c.getJSON(ctx, "Credito/getDetallePrintCedulonCredito", q, &detalles)
	return detalles, err
}

// EmitirCedulon issues a voucher for the selected installments and returns
// the assigned voucher number.
func (c *CedulonesClient) EmitirCedulon(ctx context.Context, req models.CedulonRequest) (int, error) {
	var resp models.CedulonResponse
	if err := c.sendJSON(ctx, http.MethodPost, "Credito/EmitirCedulonCredito", nil, req, &resp); err != nil {
		return 0, err
	}
	return resp.NroCedulon, nil
}
