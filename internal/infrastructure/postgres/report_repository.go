package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura de los reportes de paradas.
type ReportRepo struct {
	q Querier
}

func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

const factSelect = `
	SELECT b.id, COALESCE(m.id::text, ''), COALESCE(m.machine_id, ''), COALESCE(m.status, ''),
		COALESCE(mt.name, ''), COALESCE(pc.name, ''), COALESCE(l.id::text, ''), COALESCE(l.name, ''),
		COALESCE(b.mechanic_id::text, ''), b.breakdown_start, b.repairing_start, ` + lostTimeMicros + `
	FROM breakdown_logs b
	LEFT JOIN machines m ON m.id = b.machine_id
	LEFT JOIN machine_types mt ON mt.id = m.type_id
	LEFT JOIN problem_categories pc ON pc.id = b.problem_category_id
	LEFT JOIN lines l ON l.id = b.line_id`

// ListBreakdownFacts paradas de la empresa filtradas por piso y línea de la parada y por día
// calendario de breakdown_start en f.Location.
func (r *ReportRepo) ListBreakdownFacts(ctx context.Context, f repository.LocationFilter) ([]repository.BreakdownFact, error) {
	conds := []string{"b.company_id = $1"}
	args := []any{f.CompanyID}
	if len(f.FloorIDs) > 0 {
		args = append(args, f.FloorIDs)
		conds = append(conds, fmt.Sprintf("l.floor_id::text = ANY($%d)", len(args)))
	}
	if len(f.LineIDs) > 0 {
		args = append(args, f.LineIDs)
		conds = append(conds, fmt.Sprintf("b.line_id::text = ANY($%d)", len(args)))
	}
	if len(f.Dates) > 0 {
		days := make([]string, 0, len(f.Dates))
		for _, d := range f.Dates {
			days = append(days, d.Format("2006-01-02"))
		}
		args = append(args, locationName(f.Location), days)
		conds = append(conds, fmt.Sprintf("(b.breakdown_start AT TIME ZONE $%d)::date = ANY($%d::date[])", len(args)-1, len(args)))
	}
	query := factSelect + " WHERE " + strings.Join(conds, " AND ") + " ORDER BY b.breakdown_start"
	return r.facts(ctx, query, args...)
}

// CountMachinesByStatus cuenta máquinas de la empresa por estado usando solo piso y línea.
func (r *ReportRepo) CountMachinesByStatus(ctx context.Context, f repository.LocationFilter) (map[string]int, error) {
	conds := []string{"m.company_id = $1"}
	args := []any{f.CompanyID}
	if len(f.FloorIDs) > 0 {
		args = append(args, f.FloorIDs)
		conds = append(conds, fmt.Sprintf("l.floor_id::text = ANY($%d)", len(args)))
	}
	if len(f.LineIDs) > 0 {
		args = append(args, f.LineIDs)
		conds = append(conds, fmt.Sprintf("m.line_id::text = ANY($%d)", len(args)))
	}
	query := `
		SELECT m.status, COUNT(*)
		FROM machines m
		LEFT JOIN lines l ON l.id = m.line_id
		WHERE ` + strings.Join(conds, " AND ") + `
		GROUP BY m.status`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count machines by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan machine count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// ListMachineBreakdownsSince paradas de la máquina desde since (inclusive).
func (r *ReportRepo) ListMachineBreakdownsSince(ctx context.Context, machineRef string, since time.Time) ([]repository.BreakdownFact, error) {
	query := factSelect + ` WHERE b.machine_id = $1 AND b.breakdown_start >= $2 ORDER BY b.breakdown_start`
	return r.facts(ctx, query, machineRef, since)
}

func (r *ReportRepo) facts(ctx context.Context, query string, args ...any) ([]repository.BreakdownFact, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list breakdown facts: %w", err)
	}
	defer rows.Close()

	var out []repository.BreakdownFact
	for rows.Next() {
		var (
			f  repository.BreakdownFact
			us int64
		)
		if err := rows.Scan(&f.ID, &f.MachineRef, &f.MachineCode, &f.MachineStatus, &f.MachineType, &f.Problem,
			&f.LineID, &f.LineName, &f.MechanicID, &f.BreakdownStart, &f.RepairingStart, &us); err != nil {
			return nil, fmt.Errorf("scan breakdown fact: %w", err)
		}
		f.LostTime = fromMicros(us)
		out = append(out, f)
	}
	return out, rows.Err()
}

// locationName nombre de zona para AT TIME ZONE. PostgreSQL no conoce "Local".
func locationName(loc *time.Location) string {
	if loc == nil || loc == time.Local || loc.String() == "Local" {
		return "UTC"
	}
	return loc.String()
}
