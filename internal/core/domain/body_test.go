package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster_AllValid(t *testing.T) {
	roster := Roster()
	require.Len(t, roster, 15)
	for _, b := range roster {
		assert.True(t, b.IsValid(), "%s should be valid", b)
	}
	assert.Equal(t, BodySun, roster[0])
	assert.Equal(t, BodyMoon, roster[1])
}

func TestBody_IsValid_ExcludesEarthAndPoints(t *testing.T) {
	assert.False(t, BodyEarth.IsValid())
	assert.False(t, BodyNorthNode.IsValid())
	assert.False(t, Body("vulcan").IsValid())
}

func TestBody_IsMinor(t *testing.T) {
	for _, b := range MinorBodies() {
		assert.True(t, b.IsMinor())
	}
	assert.False(t, BodyPluto.IsMinor())
}

func TestBody_Class(t *testing.T) {
	tests := []struct {
		body Body
		want BodyClass
	}{
		{BodySun, ClassLuminary},
		{BodyMoon, ClassLuminary},
		{BodyMercury, ClassPersonal},
		{BodyMars, ClassPersonal},
		{BodyJupiter, ClassSocial},
		{BodySaturn, ClassSocial},
		{BodyPluto, ClassOuter},
		{BodyChiron, ClassMinor},
		{BodyLilith, ClassPoint},
		{Body("x"), ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.body), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.body.Class())
		})
	}
}

func TestParseBody(t *testing.T) {
	tests := []struct {
		input   string
		want    Body
		wantErr bool
	}{
		{"Mars", BodyMars, false},
		{"  sun ", BodySun, false},
		{"North Node", BodyNorthNode, false},
		{"south-node", BodySouthNode, false},
		{"Chiron", BodyChiron, false},
		{"vulcan", "", true},
		{"earth", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBody(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownBody)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBody_DisplayName(t *testing.T) {
	assert.Equal(t, "Mercury", BodyMercury.DisplayName())
	assert.Equal(t, "North Node", BodyNorthNode.DisplayName())
	assert.Equal(t, "Unknown", Body("").DisplayName())
}

func TestPoint_IsAngle(t *testing.T) {
	assert.True(t, PointAscendant.IsAngle())
	assert.True(t, PointImumCoeli.IsAngle())
	assert.False(t, BodySun.Point().IsAngle())
	assert.Equal(t, "Midheaven", PointMidheaven.DisplayName())
	assert.Equal(t, "Venus", BodyVenus.Point().DisplayName())
}
