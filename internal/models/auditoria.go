package models

import "time"

// Auditoria is the audit payload attached to every state-changing upstream
// call. Records are write-once: the backend never edits them after creation.
type Auditoria struct {
	IDAuditoria    int    `json:"id_auditoria"`
	Fecha          string `json:"fecha"`
	Usuario        string `json:"usuario"`
	Proceso        string `json:"proceso"`
	Identificacion string `json:"identificacion"`
	Autorizaciones string `json:"autorizaciones"`
	Observaciones  string `json:"observaciones"`
	Detalle        string `json:"detalle"`
	IP             string `json:"ip"`
}

// Process tag constants
const (
	ProcesoAltaCredito       = "ALTA CREDITO"
	ProcesoModificaCredito   = "MODIFICA CREDITO"
	ProcesoBajaCredito       = "BAJA CREDITO"
	ProcesoRehabilitaCredito = "REHABILITA CREDITO"
	ProcesoEmiteCedulon      = "EMISION CEDULON"
	ProcesoAltaValorUva      = "ALTA VALOR UVA"
)

// NewAuditoria builds a standardized audit record for the acting user.
func NewAuditoria(proceso, observaciones, usuario string) Auditoria {
	return Auditoria{
		Fecha:          time.Now().Format(time.RFC3339),
		Usuario:        usuario,
		Proceso:        proceso,
		Identificacion: "web",
		Observaciones:  observaciones,
	}
}
