package models

// CabeceraCedulon is the header of an issued payment voucher as served by the
// cedulones API.
type CabeceraCedulon struct {
	NroCedulon   int     `json:"nroCedulon"`
	Denominacion string  `json:"denominacion"`
	Detalle      string  `json:"detalle"`
	Nombre       string  `json:"nombre"`
	Cuit         string  `json:"cuit"`
	Domicilio    string  `json:"domicilio"`
	Legajo       int     `json:"legajo"`
	Vencimiento  string  `json:"vencimiento"`
	MontoPagar   float64 `json:"montoPagar"`
	CantCuotas   int     `json:"cant_cuotas"`
	Presupuesto  float64 `json:"presupuesto"`
}

// DetalleCedulon is one voucher line. Total is not part of the upstream
// payload: it is recomputed as MontoOriginal + Recargo when reconciling.
type DetalleCedulon struct {
	Periodo        string  `json:"periodo"`
	Concepto       string  `json:"concepto"`
	MontoPagado    float64 `json:"montoPagado"`
	MontoOriginal  float64 `json:"montoOriginal"`
	Recargo        float64 `json:"recargo"`
	DescInteres    float64 `json:"descInteres"`
	SaldoFavor     float64 `json:"saldoFavor"`
	NroTransaccion int     `json:"nro_transaccion"`
	Total          float64 `json:"total"`
}

// CedulonImpresion is the fully reconciled document handed to the renderer:
// lines deduplicated by transaction number, per-line totals computed, and the
// header total recomputed as the sum of line totals.
type CedulonImpresion struct {
	Cabecera CabeceraCedulon  `json:"cabecera"`
	Detalles []DetalleCedulon `json:"detalles"`
}

// DeudaCedulon is one line item of an issuance request, built from a selected
// installment.
type DeudaCedulon struct {
	Periodo        string  `json:"periodo"`
	MontoOriginal  float64 `json:"monto_original"`
	Debe           float64 `json:"debe"`
	Vencimiento    string  `json:"vencimiento"`
	NroTransaccion int     `json:"nroTtransaccion"`
	CategoriaDeuda int     `json:"categoria_deuda"`
}

// CedulonRequest is the body of an issue-voucher call against the cedulones
// API.
type CedulonRequest struct {
	IDCreditoMateriales int            `json:"id_credito_materiales"`
	Legajo              int            `json:"legajo"`
	CuitTitular         string         `json:"cuit_titular"`
	Vencimiento         string         `json:"vencimiento"`
	MontoCedulon        float64        `json:"monto_cedulon"`
	ListDeuda           []DeudaCedulon `json:"listDeuda"`
	Auditoria           Auditoria      `json:"auditoria"`
}

// CedulonResponse carries the voucher number assigned by the backend.
type CedulonResponse struct {
	NroCedulon int `json:"nroCedulon"`
}

// CategoriaDeudaCedulon is the placeholder category code tagged on every new
// voucher line.
const CategoriaDeudaCedulon = 0
