package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Justification represents the text alignment of a receipt section
type Justification int

const (
	JustifyLeft   Justification = 0
	JustifyCenter Justification = 1
	JustifyRight  Justification = 2
)

func (j Justification) String() string {
	names := [...]string{"left", "center", "right"}
	if int(j) < 0 || int(j) >= len(names) {
		return "left"
	}
	return names[j]
}

// IsValid reports whether j is one of the defined modes.
func (j Justification) IsValid() bool {
	return j >= JustifyLeft && j <= JustifyRight
}

func (j Justification) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.String())
}

func (j *Justification) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if !Justification(i).IsValid() {
			return fmt.Errorf("invalid justification %d", i)
		}
		*j = Justification(i)
		return nil
	}
	switch str {
	case "left":
		*j = JustifyLeft
	case "center":
		*j = JustifyCenter
	case "right":
		*j = JustifyRight
	default:
		return fmt.Errorf("invalid justification %q", str)
	}
	return nil
}

func (j Justification) Value() (driver.Value, error) {
	return int64(j), nil
}

func (j *Justification) Scan(value interface{}) error {
	if value == nil {
		*j = JustifyLeft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*j = Justification(v)
	case int:
		*j = Justification(v)
	}
	return nil
}
