package notification_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factory-ops-api/internal/application/notification"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/pkg/logger"
)

type recordingNotifier struct {
	msgs []notification.Message
	err  error
}

func (r *recordingNotifier) Notify(_ context.Context, msg notification.Message) error {
	if r.err != nil {
		return r.err
	}
	r.msgs = append(r.msgs, msg)
	return nil
}

type stubLines struct {
	loc *entity.LineLocation
	err error
}

func (s *stubLines) Create(context.Context, *entity.Line) error { return nil }
func (s *stubLines) GetByID(context.Context, string) (*entity.Line, error) {
	return nil, nil
}
func (s *stubLines) Update(context.Context, *entity.Line) error { return nil }
func (s *stubLines) ListByCompany(context.Context, string, int, int) ([]*entity.Line, error) {
	return nil, nil
}
func (s *stubLines) Delete(context.Context, string) error { return nil }
func (s *stubLines) GetLocation(context.Context, string) (*entity.LineLocation, error) {
	return s.loc, s.err
}

func machine(status string) *entity.Machine {
	line := "line-1"
	return &entity.Machine{
		ID:          "m-1",
		CompanyID:   "company-a",
		MachineID:   "SEW-001",
		ModelNumber: "DDL-8700",
		LineID:      &line,
		LastProblem: "Needle break",
		Status:      status,
	}
}

func newNotifier(n notification.Notifier, lines *stubLines) *notification.StatusNotifier {
	return notification.NewStatusNotifier(n, lines, logger.Nop())
}

func TestMachineUpdated_ActiveABroken_Urgente(t *testing.T) {
	rec := &recordingNotifier{}
	lines := &stubLines{loc: &entity.LineLocation{LineName: "L-3", FloorName: "Floor 2", OperationType: "sewing"}}

	newNotifier(rec, lines).MachineUpdated(context.Background(), machine(entity.MachineActive), machine(entity.MachineBroken))

	require.Len(t, rec.msgs, 1)
	msg := rec.msgs[0]
	assert.Equal(t, notification.TopicMechanics, msg.Topic)
	assert.True(t, msg.Urgent)
	assert.Contains(t, msg.Title, "Needle break")
	assert.Contains(t, msg.Title, "Floor: Floor 2, Line: L-3, Operation: sewing")
	assert.Contains(t, msg.Body, "Broken (was Active)")
	assert.Contains(t, msg.Body, "Model: DDL-8700")
}

func TestMachineUpdated_OtroCambio_Generico(t *testing.T) {
	cases := [][2]string{
		{entity.MachineActive, entity.MachineMaintenance},
		{entity.MachineBroken, entity.MachineActive},
		{entity.MachineInactive, entity.MachineBroken},
	}
	for _, c := range cases {
		rec := &recordingNotifier{}
		newNotifier(rec, &stubLines{}).MachineUpdated(context.Background(), machine(c[0]), machine(c[1]))

		require.Len(t, rec.msgs, 1, "%s -> %s", c[0], c[1])
		assert.Equal(t, notification.TopicMachineStatus, rec.msgs[0].Topic)
		assert.False(t, rec.msgs[0].Urgent)
		assert.Equal(t, "Machine SEW-001 Status Updated", rec.msgs[0].Title)
	}
}

func TestMachineUpdated_MismoEstado_SinNotificacion(t *testing.T) {
	rec := &recordingNotifier{}
	newNotifier(rec, &stubLines{}).MachineUpdated(context.Background(), machine(entity.MachineActive), machine(entity.MachineActive))
	assert.Empty(t, rec.msgs)
}

func TestMachineUpdated_SinUbicacion_UsaMarcadores(t *testing.T) {
	rec := &recordingNotifier{}
	after := machine(entity.MachineMaintenance)
	after.LineID = nil
	after.LastProblem = ""

	newNotifier(rec, &stubLines{}).MachineUpdated(context.Background(), machine(entity.MachineActive), after)

	require.Len(t, rec.msgs, 1)
	body := rec.msgs[0].Body
	assert.Contains(t, body, "Unknown Line")
	assert.Contains(t, body, "Unknown Floor")
	assert.Contains(t, body, "Operation: operation")
	assert.Contains(t, body, "from Active to Maintenance")
}

func TestMachineUpdated_FallaDelSink_NoPropaga(t *testing.T) {
	rec := &recordingNotifier{err: errors.New("cola llena")}
	lines := &stubLines{err: errors.New("db caída")}

	assert.NotPanics(t, func() {
		newNotifier(rec, lines).MachineUpdated(context.Background(), machine(entity.MachineActive), machine(entity.MachineBroken))
	})
}

func TestCompose_ProblemaDesconocido(t *testing.T) {
	after := machine(entity.MachineBroken)
	after.LastProblem = "  "
	msg := notification.Compose(notification.StatusChange{Machine: *after, OldStatus: entity.MachineActive, NewStatus: entity.MachineBroken})
	assert.Contains(t, msg.Title, "Unknown Problem")
	assert.Contains(t, msg.Body, "Unknown Floor")
}

func TestLogNotifier_RegistraMensaje(t *testing.T) {
	var buf bytes.Buffer
	n := notification.NewLogNotifier(logger.FromZerolog(zerolog.New(&buf)))

	err := n.Notify(context.Background(), notification.Message{
		CompanyID: "company-a", MachineID: "M-01", Title: "Máquina averiada", Body: "M-01 pasó a Broken", Urgent: true,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"machine_id":"M-01"`)
	assert.Contains(t, buf.String(), `"urgent":true`)
	assert.Contains(t, buf.String(), "M-01 pasó a Broken")
}
