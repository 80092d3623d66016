package source

import (
	"database/sql"
	"fmt"

	"github.com/eduardofuncao/cubo/internal/cube"
)

// DefaultTable is the fact table a SQL source reads when none is given.
const DefaultTable = "ventas"

// SQLSource reads sales facts from a database table with columns
// anio, trimestre, mes, region, canal, producto, cantidad, ventas.
// The driver must be registered by the importing binary.
type SQLSource struct {
	Driver     string
	ConnString string
	Table      string
	db         *sql.DB
}

func NewSQLSource(driver, connString, table string) *SQLSource {
	if table == "" {
		table = DefaultTable
	}
	return &SQLSource{
		Driver:     driver,
		ConnString: connString,
		Table:      table,
	}
}

func (s *SQLSource) Name() string {
	return fmt.Sprintf("%s/%s", s.Driver, s.Table)
}

func (s *SQLSource) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open(s.Driver, s.ConnString)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("ping db: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLSource) Load() (cube.Dataset, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		"SELECT anio, trimestre, mes, region, canal, producto, cantidad, ventas FROM %s",
		s.Table,
	)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.Table, err)
	}
	defer rows.Close()

	var ds cube.Dataset
	for rows.Next() {
		var rec cube.Record
		err := rows.Scan(
			&rec.Anio, &rec.Trimestre, &rec.Mes, &rec.Region,
			&rec.Canal, &rec.Producto, &rec.Cantidad, &rec.Ventas,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		ds = append(ds, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return ds, nil
}

func (s *SQLSource) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
