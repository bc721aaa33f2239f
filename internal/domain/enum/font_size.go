package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FontSize represents the character magnification of a receipt section
type FontSize int

const (
	FontSizeSmall  FontSize = 0
	FontSizeNormal FontSize = 1
	FontSizeLarge  FontSize = 2
)

func (f FontSize) String() string {
	names := [...]string{"small", "normal", "large"}
	if int(f) < 0 || int(f) >= len(names) {
		return "normal"
	}
	return names[f]
}

// IsValid reports whether f is one of the defined sizes.
func (f FontSize) IsValid() bool {
	return f >= FontSizeSmall && f <= FontSizeLarge
}

func (f FontSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *FontSize) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if !FontSize(i).IsValid() {
			return fmt.Errorf("invalid font size %d", i)
		}
		*f = FontSize(i)
		return nil
	}
	switch str {
	case "small":
		*f = FontSizeSmall
	case "normal":
		*f = FontSizeNormal
	case "large":
		*f = FontSizeLarge
	default:
		return fmt.Errorf("invalid font size %q", str)
	}
	return nil
}

func (f FontSize) Value() (driver.Value, error) {
	return int64(f), nil
}

func (f *FontSize) Scan(value interface{}) error {
	if value == nil {
		*f = FontSizeNormal
		return nil
	}
	switch v := value.(type) {
	case int64:
		*f = FontSize(v)
	case int:
		*f = FontSize(v)
	}
	return nil
}
