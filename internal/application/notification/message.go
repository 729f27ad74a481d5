package notification

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
)

// Tópicos de notificación.
const (
	TopicMechanics     = "mechanics"      // parada urgente (active -> broken)
	TopicMachineStatus = "machine-status" // cualquier otro cambio de estado
)

const (
	unknownLine    = "Unknown Line"
	unknownFloor   = "Unknown Floor"
	unknownProblem = "Unknown Problem"
	unknownOp      = "operation"
)

// Message notificación lista para el sink de push.
type Message struct {
	CompanyID string
	MachineID string
	Title     string
	Body      string
	Topic     string
	Urgent    bool
}

// StatusChange cambio de estado detectado en una actualización de máquina.
type StatusChange struct {
	Machine   entity.Machine
	OldStatus string
	NewStatus string
	Location  *entity.LineLocation // nil si la máquina no tiene línea
}

// Urgent indica la transición active -> broken.
func (c StatusChange) Urgent() bool {
	return c.OldStatus == entity.MachineActive && c.NewStatus == entity.MachineBroken
}

// DiffStatus compara la máquina antes y después de la actualización.
// Devuelve false si el estado no cambió.
func DiffStatus(before, after *entity.Machine) (StatusChange, bool) {
	if before == nil || after == nil || before.Status == after.Status {
		return StatusChange{}, false
	}
	return StatusChange{Machine: *after, OldStatus: before.Status, NewStatus: after.Status}, true
}

var titleCaser = cases.Title(language.English)

func label(status string) string {
	return titleCaser.String(strings.ReplaceAll(status, "_", " "))
}

// Compose arma título, cuerpo y tópico según el tipo de transición.
func Compose(c StatusChange) Message {
	line, floor, op := unknownLine, unknownFloor, unknownOp
	if c.Location != nil {
		if c.Location.LineName != "" {
			line = c.Location.LineName
		}
		if c.Location.FloorName != "" {
			floor = c.Location.FloorName
		}
		if c.Location.OperationType != "" {
			op = c.Location.OperationType
		}
	}
	problem := c.Machine.LastProblem
	if strings.TrimSpace(problem) == "" {
		problem = unknownProblem
	}
	m := c.Machine

	msg := Message{CompanyID: m.CompanyID, MachineID: m.MachineID}
	if c.Urgent() {
		msg.Topic = TopicMechanics
		msg.Urgent = true
		msg.Title = fmt.Sprintf("🚨 A machine is broken down with %s in Floor: %s, Line: %s, Operation: %s.", problem, floor, line, op)
		var b strings.Builder
		b.WriteString("🔧 Urgent Action Required\n\n")
		b.WriteString("📌 Machine Details:\n")
		fmt.Fprintf(&b, "    - ID: %s\n", m.MachineID)
		fmt.Fprintf(&b, "    - Model: %s\n", m.ModelNumber)
		fmt.Fprintf(&b, "    - Status: ❌ %s (was %s)\n", label(c.NewStatus), label(c.OldStatus))
		fmt.Fprintf(&b, "    - Issue: %s\n\n", problem)
		b.WriteString("📍 Location Details:\n")
		fmt.Fprintf(&b, "    - Floor: %s\n", floor)
		fmt.Fprintf(&b, "    - Line: %s\n", line)
		fmt.Fprintf(&b, "    - Operation Type: %s\n\n", op)
		b.WriteString("🚨 Immediate inspection and resolution are required to avoid further delays.")
		msg.Body = b.String()
		return msg
	}

	msg.Topic = TopicMachineStatus
	msg.Title = fmt.Sprintf("Machine %s Status Updated", m.MachineID)
	msg.Body = fmt.Sprintf(
		"Machine %s (%s) status changed from %s to %s.\n"+
			"Location details:\n"+
			"  - Operation: %s\n"+
			"  - Line: %s\n"+
			"  - Floor: %s\n\n"+
			"Please check the machine's current condition and ensure it's functioning as expected.",
		m.MachineID, m.ModelNumber, label(c.OldStatus), label(c.NewStatus), op, line, floor,
	)
	return msg
}
