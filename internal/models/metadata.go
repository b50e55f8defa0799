package models

import (
	"encoding/json"
)

// pluginID namespaces every persisted key so the tracker never collides
// with metadata written by unrelated extensions.
const pluginID = "com.initiative-tracker"

// PluginKey returns the namespaced form of a metadata key.
func PluginKey(key string) string {
	return pluginID + "/" + key
}

// Scene metadata keys
const (
	// KeyOrder is the position to participant id map written by the
	// counting sequencer's sort action
	KeyOrder = "order"

	// KeyRoundCount is the current round number
	KeyRoundCount = "roundCount"

	// KeyPreviousStack is the history of activations used to undo
	// ready toggles in zipper mode
	KeyPreviousStack = "previousStack"
)

// Room metadata keys (cross-session settings)
const (
	// KeySortAscending controls the counting sort direction
	KeySortAscending = "sortAscending"

	// KeyAdvancedControls enables the previous-turn control
	KeyAdvancedControls = "advancedControls"

	// KeyDisplayRound enables round count tracking
	KeyDisplayRound = "displayRound"

	// KeyDisableNotifications suppresses informational notifications
	KeyDisableNotifications = "disableNotifications"

	// KeyZipperEnabled switches the tracker into zipper mode
	KeyZipperEnabled = "zipperEnabled"

	// KeyHighlightMode controls the side effect fired on activation
	KeyHighlightMode = "highlightMode"
)

// HighlightMode is the side effect applied to a newly active participant
type HighlightMode int

const (
	// HighlightNone fires no side effect
	HighlightNone HighlightMode = 0

	// HighlightSelect selects the active participant's token
	HighlightSelect HighlightMode = 1

	// HighlightLabel attaches a "Your Turn!" label to the token
	HighlightLabel HighlightMode = 2
)

// Role identifies what a panel user is allowed to do
type Role string

const (
	// RoleGM is the game master
	RoleGM Role = "GM"

	// RolePlayer is a regular player
	RolePlayer Role = "PLAYER"
)

// Metadata is a decoded scope-level metadata blob keyed by namespaced key.
// Values are raw JSON; malformed values read back as their fallback.
type Metadata map[string]json.RawMessage

// ReadBool reads a boolean metadata value, returning fallback when the key
// is absent or not a boolean.
func ReadBool(m Metadata, key string, fallback bool) bool {
	raw, ok := m[PluginKey(key)]
	if !ok {
		return fallback
	}

	var value bool
	if err := json.Unmarshal(raw, &value); err != nil {
		return fallback
	}
	return value
}

// ReadInt reads an integer metadata value, returning fallback when the key
// is absent or not a number.
func ReadInt(m Metadata, key string, fallback int) int {
	raw, ok := m[PluginKey(key)]
	if !ok {
		return fallback
	}

	var value int
	if err := json.Unmarshal(raw, &value); err != nil {
		return fallback
	}
	return value
}

// ReadStringSlice reads an ordered list of strings, returning an empty
// slice when the key is absent or any entry is not a string.
func ReadStringSlice(m Metadata, key string) []string {
	raw, ok := m[PluginKey(key)]
	if !ok {
		return []string{}
	}

	var value []string
	if err := json.Unmarshal(raw, &value); err != nil {
		return []string{}
	}
	if value == nil {
		return []string{}
	}
	return value
}

// ReadStringMap reads a string to string map, returning an empty map when
// the key is absent or the value has the wrong shape.
func ReadStringMap(m Metadata, key string) map[string]string {
	raw, ok := m[PluginKey(key)]
	if !ok {
		return map[string]string{}
	}

	var value map[string]string
	if err := json.Unmarshal(raw, &value); err != nil {
		return map[string]string{}
	}
	if value == nil {
		return map[string]string{}
	}
	return value
}

// Settings holds the room-scoped tracker configuration
type Settings struct {
	SortAscending        bool          `json:"sortAscending"`
	AdvancedControls     bool          `json:"advancedControls"`
	DisplayRound         bool          `json:"displayRound"`
	DisableNotifications bool          `json:"disableNotifications"`
	ZipperEnabled        bool          `json:"zipperEnabled"`
	HighlightMode        HighlightMode `json:"highlightMode"`
}

// SettingsFromMetadata decodes room metadata into Settings, falling back
// to defaults for anything missing or malformed.
func SettingsFromMetadata(m Metadata) Settings {
	return Settings{
		SortAscending:        ReadBool(m, KeySortAscending, false),
		AdvancedControls:     ReadBool(m, KeyAdvancedControls, false),
		DisplayRound:         ReadBool(m, KeyDisplayRound, false),
		DisableNotifications: ReadBool(m, KeyDisableNotifications, false),
		ZipperEnabled:        ReadBool(m, KeyZipperEnabled, false),
		HighlightMode:        HighlightMode(ReadInt(m, KeyHighlightMode, int(HighlightNone))),
	}
}
