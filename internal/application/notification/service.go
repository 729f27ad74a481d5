package notification

import (
	"context"

	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
	"github.com/jhoicas/factory-ops-api/pkg/logger"
)

// Notifier sink de notificaciones. Notify no debe bloquear: un error indica que el
// mensaje no pudo encolarse y solo se registra.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// StatusNotifier detecta cambios de estado de máquinas y los envía al Notifier.
type StatusNotifier struct {
	notifier Notifier
	lineRepo repository.LineRepository
	log      *logger.Logger
}

// NewStatusNotifier construye el servicio.
func NewStatusNotifier(notifier Notifier, lineRepo repository.LineRepository, log *logger.Logger) *StatusNotifier {
	return &StatusNotifier{notifier: notifier, lineRepo: lineRepo, log: log}
}

// MachineUpdated se invoca después de confirmar la actualización. Nunca devuelve error:
// las fallas se registran y la actualización queda firme.
func (s *StatusNotifier) MachineUpdated(ctx context.Context, before, after *entity.Machine) {
	change, ok := DiffStatus(before, after)
	if !ok {
		return
	}
	if after.LineID != nil && *after.LineID != "" {
		loc, err := s.lineRepo.GetLocation(ctx, *after.LineID)
		if err != nil {
			s.log.Warn().Err(err).Str("machine_id", after.MachineID).Msg("no se pudo resolver la ubicación de la máquina")
		}
		change.Location = loc
	}
	msg := Compose(change)
	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.log.Warn().Err(err).
			Str("company_id", msg.CompanyID).
			Str("machine_id", msg.MachineID).
			Str("topic", msg.Topic).
			Msg("notificación de estado descartada")
		return
	}
	s.log.Info().
		Str("machine_id", msg.MachineID).
		Str("from", change.OldStatus).
		Str("to", change.NewStatus).
		Str("topic", msg.Topic).
		Msg("cambio de estado notificado")
}

// LogNotifier Notifier que solo registra el mensaje. Se usa cuando no hay llaves VAPID.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el sink de solo log.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, msg Message) error {
	n.log.Info().
		Str("company_id", msg.CompanyID).
		Str("machine_id", msg.MachineID).
		Str("title", msg.Title).
		Bool("urgent", msg.Urgent).
		Msg(msg.Body)
	return nil
}
