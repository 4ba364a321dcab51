package epidemicgo

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDeltaLogger is a DeltaSink that writes delta records into a
// single SQLite database: a newTable-closure-per-table Init phase, then
// a prepared-statement-inside-a-transaction write per table
// (exposures/infections/recoveries/deaths/zone_loads).
type SQLiteDeltaLogger struct {
	path  string
	runID string
	db    *sql.DB
}

// NewSQLiteDeltaLogger opens (creating if absent) the database at path.
func NewSQLiteDeltaLogger(path, runID string) (*SQLiteDeltaLogger, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return &SQLiteDeltaLogger{path: path, runID: runID, db: db}, nil
}

// Init creates the five delta tables if they do not already exist.
func (l *SQLiteDeltaLogger) Init() error {
	newTable := func(name, cols string) error {
		stmt := fmt.Sprintf("create table if not exists %s %s;", name, cols)
		if _, err := l.db.Exec(stmt); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
		return nil
	}

	if err := newTable("exposures", "(id integer not null primary key, run_id text, time integer, subject integer)"); err != nil {
		return err
	}
	if err := newTable("infections", "(id integer not null primary key, run_id text, time integer, subject integer, method text, source integer, zone integer)"); err != nil {
		return err
	}
	if err := newTable("recoveries", "(id integer not null primary key, run_id text, time integer, subject integer)"); err != nil {
		return err
	}
	if err := newTable("deaths", "(id integer not null primary key, run_id text, time integer, subject integer)"); err != nil {
		return err
	}
	if err := newTable("zone_loads", "(id integer not null primary key, run_id text, time integer, zone integer, load real)"); err != nil {
		return err
	}
	return nil
}

// Close releases the underlying database handle.
func (l *SQLiteDeltaLogger) Close() error {
	return l.db.Close()
}

// Handle writes one row per id/record in d, each table's insert wrapped
// in its own transaction so a mid-batch failure on one table does not
// lose rows already committed to another.
func (l *SQLiteDeltaLogger) Handle(d Delta) error {
	if d.Err != "" || d.Done {
		return nil
	}

	if len(d.NewExposed) > 0 {
		if err := l.insertSubjects("exposures", "(run_id, time, subject) values(?, ?, ?)", d.Time, d.NewExposed); err != nil {
			return err
		}
	}
	if len(d.NewRecovered) > 0 {
		if err := l.insertSubjects("recoveries", "(run_id, time, subject) values(?, ?, ?)", d.Time, d.NewRecovered); err != nil {
			return err
		}
	}
	if len(d.NewDead) > 0 {
		if err := l.insertSubjects("deaths", "(run_id, time, subject) values(?, ?, ?)", d.Time, d.NewDead); err != nil {
			return err
		}
	}
	if len(d.Infections) > 0 {
		if err := l.insertInfections(d.Time, d.Infections); err != nil {
			return err
		}
	}
	if len(d.ZoneUpdates) > 0 {
		if err := l.insertZoneLoads(d.Time, d.ZoneUpdates); err != nil {
			return err
		}
	}
	return nil
}

func (l *SQLiteDeltaLogger) insertSubjects(table, valuesClause string, t int64, ids []int) error {
	tx, err := l.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare("insert into " + table + valuesClause)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, id := range ids {
		if _, err := stmt.Exec(l.runID, t, id); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (l *SQLiteDeltaLogger) insertInfections(t int64, recs []InfectionRecord) error {
	tx, err := l.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare("insert into infections(run_id, time, subject, method, source, zone) values(?, ?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, rec := range recs {
		var source, zone sql.NullInt64
		if rec.Source != nil {
			source = sql.NullInt64{Int64: int64(*rec.Source), Valid: true}
		}
		if rec.Zone != nil {
			zone = sql.NullInt64{Int64: int64(*rec.Zone), Valid: true}
		}
		if _, err := stmt.Exec(l.runID, t, rec.ID, string(rec.Method), source, zone); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (l *SQLiteDeltaLogger) insertZoneLoads(t int64, updates map[int]float64) error {
	tx, err := l.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare("insert into zone_loads(run_id, time, zone, load) values(?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for zone, load := range updates {
		if _, err := stmt.Exec(l.runID, t, zone, load); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
