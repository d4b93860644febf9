package models

// Usuario is the operator identity carried by the CIDI login cookie. The
// cookie is set by an external portal; this service only reads it.
type Usuario struct {
	Administrador  string `json:"administrador"`
	Apellido       string `json:"apellido"`
	CodOficina     string `json:"cod_oficina"`
	CodUsuario     string `json:"cod_usuario"`
	Cuit           string `json:"cuit"`
	CuitFormateado string `json:"cuit_formateado"`
	Legajo         string `json:"legajo"`
	Nombre         string `json:"nombre"`
	NombreCompleto string `json:"nombre_completo"`
	NombreOficina  string `json:"nombre_oficina"`
	NombreUsuario  string `json:"nombre_usuario"`
	SesionHash     string `json:"sesion_hash"`
}
