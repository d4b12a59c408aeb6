// Copyright 2025 The StriGO Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package benchhist keeps a local SQLite history of averaged
// benchmark results, so drift between reruns can be eyeballed without
// digging old log files out of the shell history.
package benchhist

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DB is a handle to the history database. It's safe for concurrent
// use by multiple goroutines.
type DB struct {
	sql *sql.DB
	// prepared statements
	insertRun    *sql.Stmt
	insertResult *sql.Stmt
}

// Open opens the history database at path, creating the schema if
// needed. Pass ":memory:" for a throwaway in-memory database.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	d := &DB{sql: db}
	if err := d.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

const createStmts = `
CREATE TABLE IF NOT EXISTS Runs (
	RunID INTEGER PRIMARY KEY AUTOINCREMENT,
	Source VARCHAR(255),
	RecordedAt TIMESTAMP
);
CREATE TABLE IF NOT EXISTS Results (
	RunID INTEGER,
	Name VARCHAR(255),
	NsPerOp DOUBLE,
	PRIMARY KEY (RunID, Name),
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON UPDATE CASCADE ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS RunsSource ON Runs(Source);
`

// createTables creates any missing tables on the connection.
func (db *DB) createTables() error {
	for _, q := range strings.Split(createStmts, ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertRun, err = db.sql.Prepare("INSERT INTO Runs(Source, RecordedAt) VALUES (?, ?)")
	if err != nil {
		return err
	}
	db.insertResult, err = db.sql.Prepare("INSERT INTO Results(RunID, Name, NsPerOp) VALUES (?, ?, ?)")
	return err
}

// RecordRun stores one run's averaged results under source (e.g.
// "redis"). The whole run is written in a single transaction.
func (db *DB) RecordRun(source string, means map[string]float64) (err error) {
	tx, err := db.sql.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	res, err := tx.Stmt(db.insertRun).Exec(source, time.Now().UTC())
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	for name, nsPerOp := range means {
		if _, err := tx.Stmt(db.insertResult).Exec(id, name, nsPerOp); err != nil {
			return err
		}
	}
	return nil
}

// LastRun returns the most recently recorded means for source. A
// source with no recorded runs yields an empty map.
func (db *DB) LastRun(source string) (map[string]float64, error) {
	var id int64
	err := db.sql.QueryRow("SELECT RunID FROM Runs WHERE Source = ? ORDER BY RunID DESC LIMIT 1", source).Scan(&id)
	if err == sql.ErrNoRows {
		return map[string]float64{}, nil
	}
	if err != nil {
		return nil, err
	}
	rows, err := db.sql.Query("SELECT Name, NsPerOp FROM Results WHERE RunID = ?", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	means := make(map[string]float64)
	for rows.Next() {
		var name string
		var nsPerOp float64
		if err := rows.Scan(&name, &nsPerOp); err != nil {
			return nil, err
		}
		means[name] = nsPerOp
	}
	return means, rows.Err()
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.sql.Close()
}
