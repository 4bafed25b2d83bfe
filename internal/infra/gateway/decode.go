package gateway

import (
	"encoding/json"
	"fmt"
)

// Decode переносит строки в срез структур с json-тегами (dest - указатель на срез)
func Decode(rows []Row, dest interface{}) error {
	if rows == nil {
		rows = []Row{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("%w: marshal rows: %v", ErrDecode, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// KeyString приводит значение первичного ключа к строке
func KeyString(v interface{}) string {
	switch key := v.(type) {
	case nil:
		return ""
	case string:
		return key
	case []byte:
		return string(key)
	case json.Number:
		return key.String()
	case float64:
		return fmt.Sprintf("%.0f", key)
	default:
		return fmt.Sprint(key)
	}
}
