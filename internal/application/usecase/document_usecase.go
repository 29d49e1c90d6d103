package usecase

import (
	"context"
	"strings"

	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/application/ports"
	"github.com/norteindustrial/norte-erp/internal/domain"
)

// DocumentUseCase extracción de datos fiscales de una Constancia de
// Situación Fiscal para pre-llenar el alta de cliente.
type DocumentUseCase struct {
	parser ports.DocumentParser
}

// NewDocumentUseCase construye el caso de uso de documentos.
func NewDocumentUseCase(parser ports.DocumentParser) *DocumentUseCase {
	return &DocumentUseCase{parser: parser}
}

// ParseConstancia manda el texto de la constancia al extractor y normaliza
// el RFC resultante.
func (uc *DocumentUseCase) ParseConstancia(ctx context.Context, in dto.ParseDocumentRequest) (*dto.ConstanciaDataDTO, error) {
	if strings.TrimSpace(in.RawText) == "" {
		return nil, domain.ErrInvalidInput
	}
	data, err := uc.parser.ParseConstancia(ctx, in.RawText)
	if err != nil {
		return nil, err
	}
	return &dto.ConstanciaDataDTO{
		RFC:         strings.ToUpper(strings.TrimSpace(data.RFC)),
		RazonSocial: strings.TrimSpace(data.RazonSocial),
		ZipCode:     strings.TrimSpace(data.ZipCode),
	}, nil
}
