package diagnostic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dimension-mapper/internal/diagnostic"
)

func TestDiagnostics(t *testing.T) {
	var d diagnostic.Diagnostics

	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning(diagnostic.CodeRaggedDepth, "[1]", "branch ends at level %d", 1)
	d.AddInfo(diagnostic.CodeEmpty, "", "document is empty")
	assert.True(t, d.IsValid())

	d.AddError(diagnostic.CodeDepthMismatch, "[0][1]", "expected a sequence, found %s", "int")
	d.AddError(diagnostic.CodeNonNumeric, "", "leaf is not a number")

	assert.True(t, d.HasErrors())
	assert.EqualError(t, d.Error(),
		"[0][1]: [depth-mismatch] expected a sequence, found int; [non-numeric] leaf is not a number")

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, diagnostic.SeverityError, all[0].Severity)
	assert.Equal(t, diagnostic.SeverityWarning, all[2].Severity)
	assert.Equal(t, "info", all[3].Severity.String())
	assert.Equal(t, "unknown", diagnostic.Severity(9).String())
}
