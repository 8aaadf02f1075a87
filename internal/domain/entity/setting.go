// Package entity contains the core business objects of the storefront.
package entity

import "time"

// SettingType declares how a setting value is interpreted.
type SettingType string

const (
	SettingTypeText    SettingType = "TEXT"
	SettingTypeNumber  SettingType = "NUMBER"
	SettingTypeBoolean SettingType = "BOOLEAN"
	SettingTypeJSON    SettingType = "JSON"
)

// IsValid checks if the SettingType is a valid value.
func (t SettingType) IsValid() bool {
	switch t {
	case SettingTypeText, SettingTypeNumber, SettingTypeBoolean, SettingTypeJSON:
		return true
	default:
		return false
	}
}

// Setting is a key/value business rule editable from the back office.
type Setting struct {
	Key         string      `json:"key"`
	Value       string      `json:"value"`
	Type        SettingType `json:"type"`
	Description string      `json:"description"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
