package conditional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionAtOrAbove(t *testing.T) {
	tests := []struct {
		v, o Version
		want bool
	}{
		{Version{3, 0, 0}, Version{3, 0, 0}, true},
		{Version{3, 0, 1}, Version{3, 0, 0}, true},
		{Version{1, 1, 1}, Version{3, 0, 0}, false},
		{Version{1, 1, 0}, Version{1, 1, 1}, false},
		{Version{1, 2, 0}, Version{1, 1, 9}, true},
		{Version{1, 0, 2}, Version{1, 0, 2}, true},
		{Version{}, Version{}, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.AtOrAbove(tt.o), "%v >= %v", tt.v, tt.o)
	}
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "3.2.1", Version{3, 2, 1}.String())
	assert.True(t, Version{}.IsZero())
	assert.False(t, Version{1, 0, 0}.IsZero())
}

func TestRequirementInRange(t *testing.T) {
	r := Requirement{Since: v110, Until: v300}
	assert.False(t, r.InRange(Version{1, 0, 2}))
	assert.True(t, r.InRange(Version{1, 1, 0}))
	assert.True(t, r.InRange(Version{1, 1, 1}))
	assert.False(t, r.InRange(Version{3, 0, 0}))
	assert.True(t, Requirement{}.InRange(Version{}))
}

func TestFlavor(t *testing.T) {
	assert.True(t, Any.Matches(LibreSSL))
	assert.True(t, OpenSSL.Matches(OpenSSL))
	assert.False(t, BoringSSL.Matches(OpenSSL))
	assert.Equal(t, "LibreSSL", LibreSSL.String())
	assert.Equal(t, "Flavor(9)", Flavor(9).String())
}

func TestTableValidate(t *testing.T) {
	assert.NoError(t, table.validate())
	assert.Error(t, Table{{Name: "a", Symbols: []string{"x"}}, {Name: "a", Symbols: []string{"y"}}}.validate())
	assert.Error(t, Table{{Name: "a"}}.validate())
	assert.Error(t, Table{{Symbols: []string{"x"}}}.validate())
	assert.Error(t, Table{{Name: "a", Symbols: []string{""}}}.validate())
}

func TestRequirementsWellFormed(t *testing.T) {
	for _, e := range table {
		for _, p := range e.Requires.Probe {
			assert.NotEmpty(t, p, e.Name)
		}
		if !e.Requires.Since.IsZero() && !e.Requires.Until.IsZero() {
			assert.True(t, e.Requires.Until.AtOrAbove(e.Requires.Since), e.Name)
		}
	}
}
