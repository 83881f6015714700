package conditional_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/golang-fips/openssl-conditional/conditional"
)

func namesOf(t conditional.Table) []string {
	out := make([]string, len(t))
	for i, e := range t {
		out[i] = e.Name
	}
	return out
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(conditional.All())
	require.NoError(t, err)

	var got conditional.Table
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, conditional.Names(), namesOf(got))
	assert.Equal(t, conditional.BuildConditionalMap(), got.Map())

	// A plain map decodes the same content.
	var m map[string][]string
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, conditional.BuildConditionalMap(), m)
}

func TestJSONKeepsTableOrder(t *testing.T) {
	data, err := json.Marshal(conditional.All())
	require.NoError(t, err)
	s := string(data)
	last := -1
	for _, n := range conditional.Names() {
		i := strings.Index(s, `"`+n+`"`)
		require.GreaterOrEqual(t, i, 0, n)
		assert.Greater(t, i, last, n)
		last = i
	}
}

func TestJSONRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"array":     `["a"]`,
		"duplicate": `{"a":["x"],"a":["y"]}`,
		"empty":     `{"a":[]}`,
		"notList":   `{"a":"x"}`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			var tbl conditional.Table
			assert.Error(t, json.Unmarshal([]byte(in), &tbl))
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(conditional.All())
	require.NoError(t, err)

	var got conditional.Table
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, conditional.Names(), namesOf(got))
	assert.Equal(t, conditional.BuildConditionalMap(), got.Map())
}

func TestYAMLShape(t *testing.T) {
	tbl := conditional.Table{{Name: conditional.FlagFIPS, Symbols: conditional.HasFIPS()}}
	data, err := yaml.Marshal(tbl)
	require.NoError(t, err)
	assert.Equal(t, "Cryptography_HAS_FIPS:\n    - FIPS_mode_set\n    - FIPS_mode\n", string(data))
}

func TestYAMLRejectsInvalid(t *testing.T) {
	var tbl conditional.Table
	assert.Error(t, yaml.Unmarshal([]byte("- a\n- b\n"), &tbl))
	assert.Error(t, yaml.Unmarshal([]byte("a: []\n"), &tbl))
	assert.Error(t, yaml.Unmarshal([]byte("a: [x]\na: [y]\n"), &tbl))
}
