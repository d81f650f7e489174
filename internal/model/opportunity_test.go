package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSkills(t *testing.T) {
	got := NewSkills(" first aid", "Cooking", "", "cooking", "First Aid ")
	assert.Equal(t, Skills{"Cooking", "first aid"}, got)
	assert.Empty(t, NewSkills())
}

func TestSkillsRoundTrip(t *testing.T) {
	cases := map[string]Skills{
		"commas":      NewSkills("first aid, CPR", "driving"),
		"quotes":      NewSkills(`say "hi"`),
		"backslashes": NewSkills(`C:\tools\`, `a\b`),
		"braces":      NewSkills("{json}", "NULL"),
		"empty":       {},
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			v, err := in.Value()
			require.NoError(t, err)

			var out Skills
			require.NoError(t, out.Scan(v))
			assert.Equal(t, in, out)

			// drivers may hand the literal back as bytes
			var fromBytes Skills
			require.NoError(t, fromBytes.Scan([]byte(v.(string))))
			assert.Equal(t, in, fromBytes)
		})
	}
}

func TestSkillsScanNull(t *testing.T) {
	var s Skills
	require.NoError(t, s.Scan(nil))
	assert.NotNil(t, s)
	assert.Empty(t, s)
}

func TestSkillsScanRejectsGarbage(t *testing.T) {
	var s Skills
	assert.Error(t, s.Scan(42))
}
