package report_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvance/txengine/internal/core/domain"
	"github.com/tvance/txengine/internal/report"
)

func TestWriteSnapshots(t *testing.T) {
	snapshots := []domain.AccountSnapshot{
		{
			ClientID:  1,
			Available: decimal.RequireFromString("3.5"),
			Held:      decimal.Zero,
			Total:     decimal.RequireFromString("3.5"),
		},
		{
			ClientID:  2,
			Available: decimal.Zero,
			Held:      decimal.RequireFromString("5"),
			Total:     decimal.RequireFromString("5"),
			Locked:    true,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteSnapshots(&buf, snapshots))

	want := "client,available,held,total,locked\n" +
		"1,3.5000,0.0000,3.5000,false\n" +
		"2,0.0000,5.0000,5.0000,true\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteSnapshots_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteSnapshots(&buf, nil))
	assert.Equal(t, "client,available,held,total,locked\n", buf.String())
}
