package models

// Deuda is one open installment of a credit. NroTransaccion is its identity
// within the credit and the dedup key when building cedulón line items.
type Deuda struct {
	Periodo       string  `json:"periodo"`
	MontoOriginal float64 `json:"monto_original"`
	Debe          float64 `json:"debe"`
	Vencimiento   string  `json:"vencimiento"`
	DesCategoria  string  `json:"desCategoria"`
	Pagado        float64 `json:"pagado"`
	// Tag matches the upstream field, typo included.
	NroTransaccion int `json:"nroTtransaccion"`
}

// CtaCte is one posting of a credit's running account ledger.
type CtaCte struct {
	// Tag matches the upstream field, typo included.
	FechaTransaccion string  `json:"fecha_trasaccion"`
	Debe             float64 `json:"debe"`
	Haber            float64 `json:"haber"`
	Vencimiento      string  `json:"vencimiento"`
	Periodo          string  `json:"periodo"`
	MontoOriginal    float64 `json:"monto_original"`
	CategoriaDeuda   int     `json:"categoria_deuda"`
}

// TotalesCtaCte are running totals over the entire fetched ledger, independent
// of any pagination applied to the visible rows.
type TotalesCtaCte struct {
	Debe          float64 `json:"debe"`
	Haber         float64 `json:"haber"`
	MontoOriginal float64 `json:"monto_original"`
}
