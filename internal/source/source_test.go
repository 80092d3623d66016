package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSynthetic(t *testing.T) {
	src, err := Create("synthetic", "", "", 42)
	require.NoError(t, err)
	assert.Equal(t, "synthetic(seed=42)", src.Name())

	ds, err := src.Load()
	require.NoError(t, err)
	assert.NotEmpty(t, ds)

	again, err := src.Load()
	require.NoError(t, err)
	assert.Equal(t, ds, again)

	assert.NoError(t, src.Close())
}

func TestCreateDefaultsToSynthetic(t *testing.T) {
	src, err := Create("", "", "", 7)
	require.NoError(t, err)
	_, ok := src.(*SyntheticSource)
	assert.True(t, ok)
}

func TestCreateSQLKinds(t *testing.T) {
	tests := []struct {
		kind   string
		driver string
	}{
		{"postgres", "postgres"},
		{"postgresql", "postgres"},
		{"mysql", "mysql"},
		{"mariadb", "mysql"},
		{"sqlite", "sqlite3"},
		{"sqlite3", "sqlite3"},
		{"oracle", "godror"},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			src, err := Create(tt.kind, "dsn", "", 0)
			require.NoError(t, err)
			sqlSrc, ok := src.(*SQLSource)
			require.True(t, ok)
			assert.Equal(t, tt.driver, sqlSrc.Driver)
			assert.Equal(t, DefaultTable, sqlSrc.Table)
		})
	}
}

func TestCreateUnknownKind(t *testing.T) {
	_, err := Create("mongodb", "dsn", "", 0)
	assert.Error(t, err)
}

func TestSQLSourceCustomTable(t *testing.T) {
	src := NewSQLSource("sqlite3", ":memory:", "hechos")
	assert.Equal(t, "sqlite3/hechos", src.Name())
}
