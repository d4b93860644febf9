package models

// Credito represents a construction-material credit loan as served by the
// CM_Credito_materiales upstream API. JSON tags mirror the upstream field names.
type Credito struct {
	IDCreditoMateriales int     `json:"id_credito_materiales"`
	Legajo              int     `json:"legajo"`
	Domicilio           string  `json:"domicilio"`
	FechaAlta           string  `json:"fecha_alta"`
	Baja                bool    `json:"baja"`
	FechaBaja           string  `json:"fecha_baja"`
	CuitSolicitante     string  `json:"cuit_solicitante"`
	Garantes            string  `json:"garantes"`
	Presupuesto         float64 `json:"presupuesto"`
	PresupuestoUva      float64 `json:"presupuesto_uva"`
	CantCuotas          int     `json:"cant_cuotas"`
	ValorCuotaUva       float64 `json:"valor_cuota_uva"`
	IDUva               int     `json:"id_uva"`
	IDEstado            int     `json:"id_estado"`
	PerUltimo           string  `json:"per_ultimo"`
	ConDeuda            float64 `json:"con_deuda"`
	SaldoAdeudado       float64 `json:"saldo_adeudado"`
	ProximoVencimiento  string  `json:"proximo_vencimiento"`
	Nombre              string  `json:"nombre"`
	CodCategoria        int     `json:"cod_categoria"`
	CodRubro            int     `json:"cod_rubro"`

	// Nomenclatura catastral
	Circunscripcion string `json:"circunscripcion"`
	Seccion         string `json:"seccion"`
	Manzana         string `json:"manzana"`
	Parcela         string `json:"parcela"`
	PH              string `json:"p_h"`
}

// ResumenImporte is the per-borrower debt aggregate computed by the backend.
// It is joined to Credito by legajo and may be absent for a given borrower.
type ResumenImporte struct {
	IDCreditoMateriales int     `json:"id_credito_materiales"`
	Legajo              int     `json:"legajo"`
	ImpPagado           float64 `json:"imp_pagado"`
	ImpAdeudado         float64 `json:"imp_adeudado"`
	ImpVencido          float64 `json:"imp_vencido"`
	CuotasVencidas      int     `json:"cuotas_vencidas"`
	CuotasPagadas       int     `json:"cuotas_pagadas"`
	FechaUltimoPago     *string `json:"fecha_ultimo_pago"`
}

// CreditoConResumen merges a Credito with its matching ResumenImporte.
// Summary fields are pointers: they are either all set (a summary exists for
// the borrower) or all nil, and must render downstream as "N/A", never as zero.
type CreditoConResumen struct {
	Credito
	ImpPagado       *float64 `json:"imp_pagado,omitempty"`
	ImpAdeudado     *float64 `json:"imp_adeudado,omitempty"`
	ImpVencido      *float64 `json:"imp_vencido,omitempty"`
	CuotasVencidas  *int     `json:"cuotas_vencidas,omitempty"`
	CuotasPagadas   *int     `json:"cuotas_pagadas,omitempty"`
	FechaUltimoPago *string  `json:"fecha_ultimo_pago,omitempty"`
}

// TieneResumen reports whether the row carries borrower-summary fields.
func (c *CreditoConResumen) TieneResumen() bool {
	return c.ImpPagado != nil
}

// CategoriaDeuda is a static debt-category lookup (code -> description).
type CategoriaDeuda struct {
	CodCategoria int    `json:"cod_categoria"`
	DesCategoria string `json:"des_categoria"`
	IDSubrubro   int    `json:"id_subrubro"`
	TipoDeuda    int    `json:"tipo_deuda"`
}

// RubroCredito is a static credit-rubro lookup.
type RubroCredito struct {
	CodRubro    int    `json:"cod_rubro"`
	Descripcion string `json:"descripcion"`
	Rubro       string `json:"rubro"`
	IDSubrubro  int    `json:"id_subrubro"`
	TipoDeuda   int    `json:"tipo_deuda"`
}

// ValorUva is the current UVA index value, used to convert a currency budget
// into UVA-denominated units at credit-creation time.
type ValorUva struct {
	IDUva float64 `json:"id_uva"`
	Fecha string  `json:"fecha"`
	Valor float64 `json:"valor"`
}

// BadecData is a borrower-directory candidate returned by the CUIT lookup.
type BadecData struct {
	NroBad      int    `json:"nro_bad"`
	Nombre      string `json:"nombre"`
	NombreCalle string `json:"nombre_calle"`
	NroDom      int    `json:"nro_dom"`
	Cuit        string `json:"cuit"`
}

// SinNombre is the sentinel display name for borrowers the backend returns
// without one.
const SinNombre = "SIN NOMBRE"
