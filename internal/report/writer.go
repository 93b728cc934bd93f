// Package report serializes the final account snapshot to a delimited text
// stream.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/tvance/txengine/internal/core/domain"
)

// fractionalDigits is the fixed output precision for all monetary columns,
// matching the precision of input amounts.
const fractionalDigits = 4

// WriteSnapshots emits one CSV row per account, totals computed at emission
// time.
func WriteSnapshots(w io.Writer, snapshots []domain.AccountSnapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, snapshot := range snapshots {
		record := []string{
			strconv.FormatUint(uint64(snapshot.ClientID), 10),
			snapshot.Available.StringFixed(fractionalDigits),
			snapshot.Held.StringFixed(fractionalDigits),
			snapshot.Total.StringFixed(fractionalDigits),
			strconv.FormatBool(snapshot.Locked),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
