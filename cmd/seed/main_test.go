package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const catalogCSV = `tipo,nombre,severidad,descripcion
Mecánico,Rotura de aguja,major,Aguja partida
Eléctrico,Motor quemado,critical,
Mecánico,Hilo enredado,,
,Otro,minor,Sin clasificar
`

func TestParseCatalog_UTF8(t *testing.T) {
	rows, err := parseCatalog([]byte(catalogCSV))
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, problemRow{typeName: "Mecánico", name: "Rotura de aguja", severity: "major", description: "Aguja partida"}, rows[0])
	assert.Equal(t, "minor", rows[2].severity, "severidad vacía usa minor")
	assert.Empty(t, rows[3].typeName)
}

func TestParseCatalog_Windows1252(t *testing.T) {
	encoded, err := charmap.Windows1252.NewEncoder().String(catalogCSV)
	require.NoError(t, err)

	rows, err := parseCatalog([]byte(encoded))
	require.NoError(t, err)
	assert.Equal(t, "Mecánico", rows[0].typeName)
	assert.Equal(t, "Eléctrico", rows[1].typeName)
}

func TestParseCatalog_Errores(t *testing.T) {
	cases := map[string]string{
		"sin datos":          "tipo,nombre\n",
		"severidad inválida": "tipo,nombre,severidad\nMecánico,Rotura,urgente\n",
		"nombre repetido":    "tipo,nombre\nA,Rotura\nB,Rotura\n",
		"nombre vacío":       "tipo,nombre\nA, \n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseCatalog([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestWriteSeed(t *testing.T) {
	rows, err := parseCatalog([]byte(catalogCSV))
	require.NoError(t, err)

	var b strings.Builder
	types, err := writeSeed(&b, seedRoles(), rows)
	require.NoError(t, err)
	sql := b.String()

	assert.Equal(t, 2, types)
	assert.Contains(t, sql, "'mechanic'")
	assert.Contains(t, sql, "(SELECT id FROM problem_category_types WHERE name = 'Mecánico')")
	assert.Contains(t, sql, "'Otro', 'Sin clasificar', 'minor', NULL")
	assert.Less(t, strings.Index(sql, "'Eléctrico'"), strings.Index(sql, "'Mecánico')"), "tipos ordenados")

	// ids estables entre corridas
	var again strings.Builder
	_, err = writeSeed(&again, seedRoles(), rows)
	require.NoError(t, err)
	assert.Equal(t, sql, again.String())
}

func TestEscapeSQL(t *testing.T) {
	assert.Equal(t, "O''Brien", escapeSQL("O'Brien"))
}
