package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetric_JSON(t *testing.T) {
	type wrapper struct {
		IRR     Metric `json:"irr"`
		Payback Metric `json:"payback"`
	}

	raw, err := json.Marshal(wrapper{IRR: Defined(8.637670), Payback: Undefined()})
	require.NoError(t, err)
	require.JSONEq(t, `{"irr": 8.6, "payback": "N/A"}`, string(raw))

	var back wrapper
	require.NoError(t, json.Unmarshal(raw, &back))
	require.True(t, back.IRR.Defined)
	require.Equal(t, 8.6, back.IRR.Value)
	require.False(t, back.Payback.Defined)
}

func TestMetric_String(t *testing.T) {
	require.Equal(t, "9.5", Defined(9.4968).String())
	require.Equal(t, "0.0", Defined(0).String())
	require.Equal(t, "-3.0", Defined(-3).String())
	require.Equal(t, NotAvailable, Undefined().String())
}

func TestMetric_RoundsExactBinaryValue(t *testing.T) {
	// 0.15 and 1.45 are stored just below the tie; 0.25 is exact and rounds up
	require.Equal(t, "0.1", Defined(0.15).String())
	require.Equal(t, "1.4", Defined(1.45).String())
	require.Equal(t, "0.3", Defined(0.25).String())
	require.Equal(t, "-0.3", Defined(-0.25).String())
	require.Equal(t, 0.1, Defined(0.15).Value)

	require.Equal(t, "0.1", Metric{Value: 0.15, Defined: true}.String())
}

func TestMetric_ZeroIsNotUndefined(t *testing.T) {
	m := Defined(0)
	require.True(t, m.Defined)
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	require.Equal(t, "0.0", string(raw))
}
