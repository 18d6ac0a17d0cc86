package projection

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"solar-quote/internal/model"
)

// WriteLedgerCSV writes one row per projected year with a header line.
func WriteLedgerCSV(w io.Writer, ledger []model.YearRecord) error {
	if ledger == nil {
		ledger = []model.YearRecord{}
	}
	return gocsv.Marshal(ledger, w)
}

// WriteLedgerCSVFile writes the ledger to path, truncating any existing file.
func WriteLedgerCSVFile(path string, ledger []model.YearRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteLedgerCSV(f, ledger)
}
