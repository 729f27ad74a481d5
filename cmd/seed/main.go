// seed genera el script SQL que puebla las tablas globales: grupos (uno por rol) y el
// catálogo de tipos y categorías de problema a partir de un CSV.
//
// Uso: go run ./cmd/seed [ruta/problemas.csv]
// Por defecto busca problemas.csv en el directorio actual. Columnas: tipo,nombre,severidad,descripcion
// (la primera fila es el encabezado). Acepta CSV en UTF-8 o Windows-1252 (exportado desde Excel).
// Escribe: internal/infrastructure/postgres/seed.sql
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/factory-ops-api/internal/domain/permission"
)

// seedNamespace fija los UUID generados: el mismo nombre produce el mismo id en cada corrida.
var seedNamespace = uuid.MustParse("6f1c2d7e-3b4a-4f59-9a0e-2c8d5b7e1a34")

var severities = map[string]bool{"minor": true, "major": true, "critical": true}

type problemRow struct {
	typeName    string
	name        string
	severity    string
	description string
}

func main() {
	csvPath := "problemas.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}

	rows, err := parseCatalog(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}

	// Ruta del script de salida (relativa al módulo)
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "seed.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	types, err := writeSeed(out, seedRoles(), rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d tipos, %d categorías de problema\n", outPath, types, len(rows))
}

// seedRoles grupos que se crean: todos los roles con capacidades propias.
func seedRoles() []string {
	return []string{
		permission.RoleAdmin,
		permission.RoleSupervisor,
		permission.RoleMechanic,
		permission.RoleHR,
	}
}

// parseCatalog lee el CSV del catálogo. Si el contenido no es UTF-8 válido se decodifica
// como Windows-1252.
func parseCatalog(raw []byte) ([]problemRow, error) {
	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
	}
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("el CSV no tiene filas de datos")
	}

	seen := make(map[string]bool)
	rows := make([]problemRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) < 2 {
			return nil, fmt.Errorf("línea %d: se esperan al menos tipo y nombre", line)
		}
		row := problemRow{
			typeName: strings.TrimSpace(rec[0]),
			name:     strings.TrimSpace(rec[1]),
			severity: "minor",
		}
		if row.name == "" {
			return nil, fmt.Errorf("línea %d: nombre vacío", line)
		}
		if len(rec) > 2 && strings.TrimSpace(rec[2]) != "" {
			row.severity = strings.ToLower(strings.TrimSpace(rec[2]))
			if !severities[row.severity] {
				return nil, fmt.Errorf("línea %d: severidad %q inválida", line, rec[2])
			}
		}
		if len(rec) > 3 {
			row.description = strings.TrimSpace(rec[3])
		}
		if seen[row.name] {
			return nil, fmt.Errorf("línea %d: categoría %q repetida", line, row.name)
		}
		seen[row.name] = true
		rows = append(rows, row)
	}
	return rows, nil
}

// writeSeed escribe grupos, tipos y categorías. Devuelve cuántos tipos distintos escribió.
func writeSeed(w io.Writer, roles []string, rows []problemRow) (int, error) {
	var b strings.Builder

	b.WriteString("-- Datos globales: grupos y catálogo de problemas\n")
	b.WriteString("-- Generado con cmd/seed; los ids son estables entre corridas\n\n")

	b.WriteString("-- 1. Grupos\n")
	b.WriteString("INSERT INTO groups (id, name) VALUES\n")
	for i, role := range roles {
		fmt.Fprintf(&b, "  ('%s', '%s')%s\n", stableID("group", role), escapeSQL(role), sep(i, len(roles)))
	}
	b.WriteString("ON CONFLICT (name) DO NOTHING;\n\n")

	// Tipos únicos ordenados para salida estable
	typeSet := make(map[string]bool)
	for _, r := range rows {
		if r.typeName != "" {
			typeSet[r.typeName] = true
		}
	}
	typeNames := make([]string, 0, len(typeSet))
	for t := range typeSet {
		typeNames = append(typeNames, t)
	}
	sort.Strings(typeNames)

	if len(typeNames) > 0 {
		b.WriteString("-- 2. Tipos de problema\n")
		b.WriteString("INSERT INTO problem_category_types (id, name) VALUES\n")
		for i, t := range typeNames {
			fmt.Fprintf(&b, "  ('%s', '%s')%s\n", stableID("type", t), escapeSQL(t), sep(i, len(typeNames)))
		}
		b.WriteString("ON CONFLICT (name) DO NOTHING;\n\n")
	}

	// 3. Categorías con subquery al tipo por nombre
	b.WriteString("-- 3. Categorías de problema\n")
	for _, r := range rows {
		typeExpr := "NULL"
		if r.typeName != "" {
			typeExpr = fmt.Sprintf("(SELECT id FROM problem_category_types WHERE name = '%s')", escapeSQL(r.typeName))
		}
		fmt.Fprintf(&b, "INSERT INTO problem_categories (id, name, description, severity, category_type_id)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', '%s', %s)\n",
			stableID("problem", r.name), escapeSQL(r.name), escapeSQL(r.description), r.severity, typeExpr)
		b.WriteString("ON CONFLICT (name) DO UPDATE SET severity = EXCLUDED.severity, category_type_id = EXCLUDED.category_type_id;\n")
	}

	_, err := io.WriteString(w, b.String())
	return len(typeNames), err
}

func stableID(kind, name string) string {
	return uuid.NewSHA1(seedNamespace, []byte(kind+":"+name)).String()
}

func sep(i, n int) string {
	if i < n-1 {
		return ","
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
