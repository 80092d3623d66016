// Package source loads the sales dataset the server aggregates. The
// default source generates a seeded synthetic dataset; SQL sources read
// the facts from a database table instead.
package source

import (
	"fmt"

	"github.com/eduardofuncao/cubo/internal/cube"
)

type Source interface {
	Name() string
	Load() (cube.Dataset, error)
	Close() error
}

// Create resolves a source kind to an implementation. SQL kinds expect a
// connection string; synthetic uses the seed.
func Create(kind, connString, table string, seed int64) (Source, error) {
	switch kind {
	case "", "synthetic":
		return &SyntheticSource{Seed: seed}, nil
	case "postgres", "postgresql":
		return NewSQLSource("postgres", connString, table), nil
	case "mysql", "mariadb":
		return NewSQLSource("mysql", connString, table), nil
	case "sqlite", "sqlite3":
		return NewSQLSource("sqlite3", connString, table), nil
	case "oracle", "godror":
		return NewSQLSource("godror", connString, table), nil
	default:
		return nil, fmt.Errorf("driver not implemented for %s", kind)
	}
}

// SyntheticSource generates the dataset in memory; same seed, same cube.
type SyntheticSource struct {
	Seed int64
}

func (s *SyntheticSource) Name() string {
	return fmt.Sprintf("synthetic(seed=%d)", s.Seed)
}

func (s *SyntheticSource) Load() (cube.Dataset, error) {
	return cube.Generate(s.Seed), nil
}

func (s *SyntheticSource) Close() error {
	return nil
}
