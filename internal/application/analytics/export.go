package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/domain"
)

// ReportRenderer convierte el reporte de tiempo perdido a un formato descargable (pdf, xlsx).
type ReportRenderer interface {
	Format() string
	ContentType() string
	Render(report *dto.LostTimeReport, generatedAt time.Time) ([]byte, error)
}

// ExportFile archivo generado listo para enviar.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ExportLostTime genera el reporte con los mismos filtros y lo renderiza en format.
func (uc *ReportUseCase) ExportLostTime(ctx context.Context, companyID string, q LostTimeQuery, format string) (*ExportFile, error) {
	r, ok := uc.renderers[format]
	if !ok {
		return nil, domain.NewValidationError("format", "formato no soportado: "+format)
	}
	report, err := uc.LostTimeReport(ctx, companyID, q)
	if err != nil {
		return nil, err
	}
	now := uc.now().In(uc.loc)
	data, err := r.Render(report, now)
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", format, err)
	}
	return &ExportFile{
		Name:        fmt.Sprintf("tiempo-perdido-%s.%s", now.Format("20060102-1504"), format),
		ContentType: r.ContentType(),
		Data:        data,
	}, nil
}
