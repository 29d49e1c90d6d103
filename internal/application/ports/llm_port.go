package ports

import "context"

// ConstanciaData datos fiscales extraídos de una Constancia de Situación
// Fiscal del SAT.
type ConstanciaData struct {
	RFC         string `json:"rfc"`
	RazonSocial string `json:"razon_social"`
	ZipCode     string `json:"zip_code"`
}

// DocumentParser extrae datos estructurados de texto libre de documentos
// fiscales. La implementación de producción llama un LLM.
type DocumentParser interface {
	ParseConstancia(ctx context.Context, rawText string) (*ConstanciaData, error)
}
