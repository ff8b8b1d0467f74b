package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Genres is stored as a JSON array in a text column so the same schema works
// on PostgreSQL and SQLite.
type Genres []string

// Value implements driver.Valuer.
func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(g))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (g *Genres) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*g = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("failed to scan Genres")
	}
	if len(raw) == 0 {
		*g = nil
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(g))
}

// GormDataType keeps AutoMigrate on a plain text column.
func (Genres) GormDataType() string {
	return "text"
}
