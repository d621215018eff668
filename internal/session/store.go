package session

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/synthai/go-core/internal/analysis"
	"github.com/danielpatrickdp/synthai/go-core/internal/dimension"
)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id  TEXT PRIMARY KEY,
	label       TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS readings (
	seq                  INTEGER PRIMARY KEY AUTOINCREMENT,
	reading_id           TEXT NOT NULL UNIQUE,
	session_id           TEXT NOT NULL,
	note_id              TEXT NOT NULL DEFAULT '',
	text                 TEXT NOT NULL DEFAULT '',
	coordinate           TEXT NOT NULL,
	position             TEXT NOT NULL,
	sign                 TEXT NOT NULL,
	gate                 INTEGER NOT NULL,
	line                 INTEGER NOT NULL,
	color                INTEGER NOT NULL,
	tone                 INTEGER NOT NULL,
	base                 INTEGER NOT NULL,
	geometric_json       TEXT NOT NULL,
	evidence_json        TEXT NOT NULL,
	blended_json         TEXT NOT NULL,
	detected_dimension   TEXT NOT NULL,
	detection_confidence REAL NOT NULL,
	primary_dimension    TEXT NOT NULL,
	coherence            REAL NOT NULL,
	stability            REAL NOT NULL,
	confidence           REAL NOT NULL,
	created_at           TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE INDEX IF NOT EXISTS idx_readings_session ON readings(session_id, seq);

CREATE TABLE IF NOT EXISTS analysis_log (
	id                   INTEGER PRIMARY KEY AUTOINCREMENT,
	reading_id           TEXT NOT NULL,
	session_id           TEXT,
	trigger_type         TEXT NOT NULL,
	coordinate           TEXT NOT NULL,
	detected_dimension   TEXT NOT NULL,
	detection_confidence REAL NOT NULL,
	coherence            REAL NOT NULL,
	stability            REAL NOT NULL,
	confidence           REAL NOT NULL,
	eval_passed          INTEGER NOT NULL,
	reason               TEXT,
	created_at           TEXT NOT NULL
);
`

// #endregion schema

// #region store
// Store keeps sessions and their readings in SQLite. It is the only holder
// of "previous reading" state; the analysis core receives it as an argument.
type Store struct {
	db *sqlx.DB
}

// Open opens (or creates) the database at path and runs migrations.
func Open(path string) (*Store, error) {
	// foreign_keys is per connection, so it goes in the DSN for every
	// pooled connection rather than a one-off PRAGMA.
	db, err := sqlx.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for the provenance log.
func (s *Store) DB() *sql.DB {
	return s.db.DB
}

// #endregion store

// #region sessions
// CreateSession starts a new session with a fresh ID.
func (s *Store) CreateSession(label string) (Session, error) {
	return s.EnsureSession(uuid.New().String(), label)
}

// EnsureSession returns the session with id, creating it if needed.
func (s *Store) EnsureSession(id, label string) (Session, error) {
	now := time.Now().UTC()
	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, label, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(session_id) DO NOTHING`,
		id, label, now.Format(timeLayout),
	)
	if err != nil {
		return Session{}, fmt.Errorf("insert session: %w", err)
	}
	return s.GetSession(id)
}

// GetSession loads one session.
func (s *Store) GetSession(id string) (Session, error) {
	var sess Session
	if err := s.db.Get(&sess, `SELECT session_id, label, created_at FROM sessions WHERE session_id = ?`, id); err != nil {
		return Session{}, fmt.Errorf("get session %s: %w", id, err)
	}
	sess.CreatedAt, _ = time.Parse(timeLayout, sess.Created)
	return sess, nil
}

// ListSessions returns the most recent sessions first.
func (s *Store) ListSessions(limit int) ([]Session, error) {
	var out []Session
	err := s.db.Select(&out,
		`SELECT session_id, label, created_at FROM sessions ORDER BY created_at DESC LIMIT ?`, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	for i := range out {
		out[i].CreatedAt, _ = time.Parse(timeLayout, out[i].Created)
	}
	return out, nil
}

// #endregion sessions

// #region readings
const recordColumns = `seq, reading_id, session_id, note_id, text, coordinate, position, sign,
	gate, line, color, tone, base, geometric_json, evidence_json, blended_json,
	detected_dimension, detection_confidence, primary_dimension,
	coherence, stability, confidence, created_at`

// Save stores r under sessionID.
func (s *Store) Save(sessionID string, r analysis.Reading) (Record, error) {
	at := r.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	rec := Record{
		ReadingID:           r.ID,
		SessionID:           sessionID,
		NoteID:              r.NoteID,
		Text:                r.Text,
		Coordinate:          r.Description.Coordinate,
		Position:            r.Description.Position,
		Sign:                r.Coordinate.Sign.String(),
		Gate:                r.Coordinate.Gate,
		Line:                r.Coordinate.Line,
		Color:               r.Coordinate.Color,
		Tone:                r.Coordinate.Tone,
		Base:                r.Coordinate.Base,
		Geometric:           VectorColumn(r.Geometric),
		Evidence:            VectorColumn(r.Evidence),
		Blended:             VectorColumn(r.Blended),
		DetectedDimension:   r.Detection.Dimension.String(),
		DetectionConfidence: r.Detection.Confidence,
		PrimaryDimension:    r.Primary.String(),
		Coherence:           r.Metrics.Coherence,
		Stability:           r.Metrics.Stability,
		Confidence:          r.Metrics.Confidence,
		Created:             at.UTC().Format(timeLayout),
		CreatedAt:           at.UTC(),
	}
	if rec.ReadingID == "" {
		rec.ReadingID = uuid.New().String()
	}

	res, err := s.db.NamedExec(
		`INSERT INTO readings (reading_id, session_id, note_id, text, coordinate, position, sign,
			gate, line, color, tone, base, geometric_json, evidence_json, blended_json,
			detected_dimension, detection_confidence, primary_dimension,
			coherence, stability, confidence, created_at)
		 VALUES (:reading_id, :session_id, :note_id, :text, :coordinate, :position, :sign,
			:gate, :line, :color, :tone, :base, :geometric_json, :evidence_json, :blended_json,
			:detected_dimension, :detection_confidence, :primary_dimension,
			:coherence, :stability, :confidence, :created_at)`,
		rec,
	)
	if err != nil {
		return Record{}, fmt.Errorf("insert reading: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return Record{}, fmt.Errorf("reading seq: %w", err)
	}
	rec.Seq = seq
	return rec, nil
}

// Latest returns the newest reading of a session. ok is false when the
// session has none.
func (s *Store) Latest(sessionID string) (rec Record, ok bool, err error) {
	err = s.db.Get(&rec,
		`SELECT `+recordColumns+` FROM readings WHERE session_id = ? ORDER BY seq DESC LIMIT 1`, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("latest reading: %w", err)
	}
	rec.CreatedAt, _ = time.Parse(timeLayout, rec.Created)
	return rec, true, nil
}

// Previous returns the blended vector of the newest reading, or nil for an
// empty session. It is the value to pass as analysis.Input.Previous.
func (s *Store) Previous(sessionID string) (*dimension.Vector, error) {
	rec, ok, err := s.Latest(sessionID)
	if err != nil || !ok {
		return nil, err
	}
	v := rec.Blended.Vector()
	return &v, nil
}

// List returns up to limit readings of a session, newest first. A limit of
// zero or less returns all of them.
func (s *Store) List(sessionID string, limit int) ([]Record, error) {
	var out []Record
	err := s.db.Select(&out,
		`SELECT `+recordColumns+` FROM readings WHERE session_id = ? ORDER BY seq DESC LIMIT ?`,
		sessionID, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	for i := range out {
		out[i].CreatedAt, _ = time.Parse(timeLayout, out[i].Created)
	}
	return out, nil
}

// Count returns the number of readings in a session.
func (s *Store) Count(sessionID string) (int, error) {
	var n int
	if err := s.db.Get(&n, `SELECT COUNT(*) FROM readings WHERE session_id = ?`, sessionID); err != nil {
		return 0, fmt.Errorf("count readings: %w", err)
	}
	return n, nil
}

// #endregion readings

// #region helpers
// sqlLimit maps non-positive limits to SQLite's "no limit".
func sqlLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

// #endregion helpers
