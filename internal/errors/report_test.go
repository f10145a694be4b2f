package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportErrorRoundTripsThroughErrorsAs(t *testing.T) {
	rep := New("parser", PAR001, "unexpected token").WithData("found", ">>")
	err := WrapReport(rep)

	got, ok := AsReport(err)
	require.True(t, ok)
	assert.Equal(t, PAR001, got.Code)
	assert.Equal(t, ">>", got.Data["found"])
}

func TestReportToJSONIncludesCode(t *testing.T) {
	rep := New("checker", CHK003, "operation not implemented")
	out, err := rep.ToJSON(true)
	require.NoError(t, err)
	assert.Contains(t, out, CHK003)
}

func TestWrapReportNilIsNilError(t *testing.T) {
	assert.Nil(t, WrapReport(nil))
}
