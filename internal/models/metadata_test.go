package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MetadataTestSuite struct {
	suite.Suite
}

func TestMetadataTestSuite(t *testing.T) {
	suite.Run(t, new(MetadataTestSuite))
}

func (s *MetadataTestSuite) TestPluginKey() {
	s.Equal("com.initiative-tracker/order", PluginKey(KeyOrder))
}

func (s *MetadataTestSuite) TestReadBool() {
	m := Metadata{
		PluginKey(KeyZipperEnabled):    json.RawMessage(`true`),
		PluginKey(KeyDisplayRound):     json.RawMessage(`"yes"`),
		PluginKey(KeySortAscending):    json.RawMessage(`false`),
		PluginKey(KeyAdvancedControls): json.RawMessage(`{}`),
	}

	s.True(ReadBool(m, KeyZipperEnabled, false))
	s.False(ReadBool(m, KeySortAscending, true))
	s.True(ReadBool(m, KeyDisplayRound, true), "non-boolean falls back")
	s.False(ReadBool(m, KeyAdvancedControls, false), "non-boolean falls back")
	s.True(ReadBool(m, KeyDisableNotifications, true), "absent key falls back")
}

func (s *MetadataTestSuite) TestReadInt() {
	m := Metadata{
		PluginKey(KeyRoundCount):    json.RawMessage(`3`),
		PluginKey(KeyHighlightMode): json.RawMessage(`"label"`),
	}

	s.Equal(3, ReadInt(m, KeyRoundCount, 1))
	s.Equal(0, ReadInt(m, KeyHighlightMode, 0), "non-numeric falls back")
	s.Equal(1, ReadInt(m, "missing", 1))
}

func (s *MetadataTestSuite) TestReadStringSlice() {
	m := Metadata{
		PluginKey(KeyPreviousStack): json.RawMessage(`["a","b"]`),
		PluginKey("mixed"):          json.RawMessage(`["a",2]`),
		PluginKey("null"):           json.RawMessage(`null`),
	}

	s.Equal([]string{"a", "b"}, ReadStringSlice(m, KeyPreviousStack))
	s.Equal([]string{}, ReadStringSlice(m, "mixed"), "non-string entry falls back")
	s.Equal([]string{}, ReadStringSlice(m, "null"))
	s.Equal([]string{}, ReadStringSlice(m, "missing"))
}

func (s *MetadataTestSuite) TestReadStringMap() {
	m := Metadata{
		PluginKey(KeyOrder): json.RawMessage(`{"0":"alice","1":"bran"}`),
		PluginKey("bad"):    json.RawMessage(`["alice"]`),
		PluginKey("null"):   json.RawMessage(`null`),
	}

	s.Equal(map[string]string{"0": "alice", "1": "bran"}, ReadStringMap(m, KeyOrder))
	s.Equal(map[string]string{}, ReadStringMap(m, "bad"))
	s.Equal(map[string]string{}, ReadStringMap(m, "null"))
	s.Equal(map[string]string{}, ReadStringMap(m, "missing"))
}

func (s *MetadataTestSuite) TestSettingsFromMetadataDefaults() {
	settings := SettingsFromMetadata(Metadata{})

	s.False(settings.SortAscending)
	s.False(settings.AdvancedControls)
	s.False(settings.DisplayRound)
	s.False(settings.DisableNotifications)
	s.False(settings.ZipperEnabled)
	s.Equal(HighlightNone, settings.HighlightMode)
}

func (s *MetadataTestSuite) TestSettingsFromMetadata() {
	m := Metadata{
		PluginKey(KeySortAscending): json.RawMessage(`true`),
		PluginKey(KeyZipperEnabled): json.RawMessage(`true`),
		PluginKey(KeyHighlightMode): json.RawMessage(`2`),
	}

	settings := SettingsFromMetadata(m)

	s.True(settings.SortAscending)
	s.True(settings.ZipperEnabled)
	s.Equal(HighlightLabel, settings.HighlightMode)
	s.False(settings.AdvancedControls)
}
