package dto

// ParseDocumentRequest body para POST /api/documents/parse: texto plano
// extraído de una Constancia de Situación Fiscal (el cliente hace la
// extracción de texto del PDF; aquí solo llega el texto).
type ParseDocumentRequest struct {
	RawText string `json:"raw_text"`
}

// ConstanciaDataDTO datos fiscales extraídos para pre-llenar el alta de cliente.
type ConstanciaDataDTO struct {
	RFC         string `json:"rfc,omitempty"`
	RazonSocial string `json:"razon_social,omitempty"`
	ZipCode     string `json:"zip_code,omitempty"`
}
