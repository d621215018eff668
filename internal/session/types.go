package session

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielpatrickdp/synthai/go-core/internal/dimension"
)

// #region session
// Session groups the readings of one user conversation.
type Session struct {
	ID        string    `db:"session_id"`
	Label     string    `db:"label"`
	CreatedAt time.Time `db:"-"`
	Created   string    `db:"created_at"`
}

// #endregion session

// #region record
// Record is a stored reading: the coordinate, the three vectors and the
// scalar metrics, flattened to columns.
type Record struct {
	Seq       int64  `db:"seq"`
	ReadingID string `db:"reading_id"`
	SessionID string `db:"session_id"`
	NoteID    string `db:"note_id"`
	Text      string `db:"text"`

	Coordinate string `db:"coordinate"`
	Position   string `db:"position"`
	Sign       string `db:"sign"`
	Gate       int    `db:"gate"`
	Line       int    `db:"line"`
	Color      int    `db:"color"`
	Tone       int    `db:"tone"`
	Base       int    `db:"base"`

	Geometric VectorColumn `db:"geometric_json"`
	Evidence  VectorColumn `db:"evidence_json"`
	Blended   VectorColumn `db:"blended_json"`

	DetectedDimension   string  `db:"detected_dimension"`
	DetectionConfidence float64 `db:"detection_confidence"`
	PrimaryDimension    string  `db:"primary_dimension"`

	Coherence  float64 `db:"coherence"`
	Stability  float64 `db:"stability"`
	Confidence float64 `db:"confidence"`

	Created   string    `db:"created_at"`
	CreatedAt time.Time `db:"-"`
}

// #endregion record

// #region vector-column
// VectorColumn stores a dimension vector as a JSON array in a TEXT column.
type VectorColumn dimension.Vector

// Vector returns the column as a dimension vector.
func (v VectorColumn) Vector() dimension.Vector {
	return dimension.Vector(v)
}

// Value implements driver.Valuer.
func (v VectorColumn) Value() (driver.Value, error) {
	b, err := json.Marshal([dimension.Count]float64(v))
	if err != nil {
		return nil, fmt.Errorf("encode vector: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (v *VectorColumn) Scan(src any) error {
	var raw []byte
	switch s := src.(type) {
	case string:
		raw = []byte(s)
	case []byte:
		raw = s
	case nil:
		*v = VectorColumn(dimension.Uniform())
		return nil
	default:
		return fmt.Errorf("scan vector: unsupported type %T", src)
	}
	var arr [dimension.Count]float64
	if err := json.Unmarshal(raw, &arr); err != nil {
		return fmt.Errorf("decode vector: %w", err)
	}
	*v = VectorColumn(arr)
	return nil
}

// #endregion vector-column
