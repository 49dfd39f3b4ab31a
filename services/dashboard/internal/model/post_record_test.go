package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString_Unmarshal(t *testing.T) {
	var v struct {
		A FlexString `json:"a"`
		B FlexString `json:"b"`
		C FlexString `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"abc","b":42,"c":null}`), &v))

	assert.Equal(t, FlexString("abc"), v.A)
	assert.Equal(t, FlexString("42"), v.B)
	assert.Equal(t, FlexString(""), v.C)
}

func TestFlexString_RejectsObjects(t *testing.T) {
	var v FlexString
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &v))
}

func TestPageEnvelope_NullVersusEmpty(t *testing.T) {
	var env PageEnvelope
	require.NoError(t, json.Unmarshal([]byte(`{"content":null,"listData":[]}`), &env))
	assert.Nil(t, env.Content)
	require.NotNil(t, env.ListData)
	assert.Empty(t, *env.ListData)
}
