package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvance/txengine/internal/core/services"
	"github.com/tvance/txengine/internal/report"
	"github.com/tvance/txengine/internal/repositories/memory"
)

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestProcessFile_EndToEnd(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,5.0\n" +
		"withdrawal,1,2,1.5\n" +
		"deposit,2,3,2.0\n" +
		"dispute,2,3\n" +
		"chargeback,2,3\n" +
		"deposit,2,4,1.0\n" + // rejected: account locked
		"garbage row that is not a transaction\n"

	path := writeTempCSV(t, input)
	processor := services.NewProcessorService(memory.NewLedgerRepository())
	ctx := context.Background()

	stats, err := processFile(ctx, processor, path)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Applied)
	assert.Equal(t, 1, stats.Rejected)
	assert.Equal(t, 1, stats.Malformed)

	var out bytes.Buffer
	require.NoError(t, report.WriteSnapshots(&out, processor.Snapshots(ctx)))

	want := "client,available,held,total,locked\n" +
		"1,3.5000,0.0000,3.5000,false\n" +
		"2,0.0000,0.0000,0.0000,true\n"
	assert.Equal(t, want, out.String())
}

func TestProcessFile_MissingInputIsFatal(t *testing.T) {
	processor := services.NewProcessorService(memory.NewLedgerRepository())

	_, err := processFile(context.Background(), processor, filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
