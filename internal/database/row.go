package database

import (
	"fmt"
	"strconv"
	"time"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Row is a result row addressed by column name. Both backends produce the
// same shape; []byte column values are converted to string.
type Row map[string]any

// Has reports whether the row carries the named column.
func (r Row) Has(column string) bool {
	_, ok := r[column]
	return ok
}

// String returns the column as a string. NULL and missing columns yield "".
func (r Row) String(column string) string {
	switch v := r[column].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// Int64 returns the column as an int64.
func (r Row) Int64(column string) (int64, error) {
	switch v := r[column].(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	case nil:
		return 0, fmt.Errorf("column %q is null or missing", column)
	default:
		return 0, fmt.Errorf("column %q has unsupported type %T", column, v)
	}
}

// Bool returns the column as a bool. SQLite stores booleans as integers.
func (r Row) Bool(column string) bool {
	switch v := r[column].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	case []byte:
		b, _ := strconv.ParseBool(string(v))
		return b
	default:
		return false
	}
}

// Time returns the column as a time. Drivers that hand back text timestamps
// are parsed with the layouts SQLite and PostgreSQL use.
func (r Row) Time(column string) (time.Time, bool) {
	switch v := r[column].(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func normalizeRow(values map[string]any) Row {
	row := make(Row, len(values))
	for column, value := range values {
		if b, ok := value.([]byte); ok {
			value = string(b)
		}
		row[column] = value
	}
	return row
}
