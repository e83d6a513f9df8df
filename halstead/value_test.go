package halstead

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValue_Basics(t *testing.T) {
	assert.False(t, Undefined.IsDefined())
	assert.Equal(t, "undefined", Undefined.String())
	assert.Nil(t, Undefined.Ptr())

	v := Defined(17.41)
	f, ok := v.Float64()
	assert.True(t, ok)
	assert.Equal(t, 17.41, f)
	assert.Equal(t, "17.41", v.String())
	require.NotNil(t, v.Ptr())
	assert.Equal(t, 17.41, *v.Ptr())

	// zero is a real value, distinct from undefined
	assert.True(t, Defined(0).IsDefined())
	assert.Equal(t, "0", Defined(0).String())
}

func TestValueOf(t *testing.T) {
	f := 1.5
	assert.Equal(t, Defined(1.5), ValueOf(&f))
	assert.Equal(t, Undefined, ValueOf(nil))
}

func TestValue_JSON(t *testing.T) {
	type wrapper struct {
		A Value `json:"a"`
		B Value `json:"b"`
	}

	b, err := json.Marshal(wrapper{A: Defined(1.5), B: Undefined})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1.5,"b":null}`, string(b))

	var back wrapper
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, Defined(1.5), back.A)
	assert.Equal(t, Undefined, back.B)

	assert.Error(t, json.Unmarshal([]byte(`{"a":"x"}`), &back))
}

func TestValue_YAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]Value{"volume": Defined(11.61), "effort": Undefined})
	require.NoError(t, err)
	assert.Equal(t, "effort: null\nvolume: 11.61\n", string(out))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 11.61, round2(11.609640474436812))
	assert.Equal(t, 17.41, round2(17.414460711655217))
	assert.Equal(t, 0.0, round2(0.004))
	assert.Equal(t, 0.01, round2(0.006))
}
