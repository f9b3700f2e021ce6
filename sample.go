package finsight

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Sample dataset, one realistic month of data per file. The CSV content
// doubles as living documentation of the expected file formats.
const (
	sampleTransactionsCSV = `Date,Description,Amount,Type,Category
2024-01-01,Salary Payment,5000.00,income,salary
2024-01-02,Whole Foods Market,-156.89,expense,grocery
2024-01-03,Shell Gas Station,-65.42,expense,transportation
2024-01-04,Netflix Subscription,-15.99,expense,entertainment
2024-01-05,Chipotle Mexican Grill,-12.85,expense,dining
2024-01-06,Electric Company Bill,-134.67,expense,utilities
2024-01-07,Amazon Purchase,-289.99,expense,shopping
2024-01-08,Starbucks Coffee,-6.75,expense,dining
2024-01-09,Uber Ride,-45.30,expense,transportation
2024-01-10,CVS Pharmacy,-25.99,expense,healthcare
`

	sampleNetWorthCSV = `Date,Assets,Liabilities
2024-01-31,85420.50,32150.75
2024-02-29,87890.25,31980.50
2024-03-31,91250.80,31750.25
2024-04-30,94560.40,31520.00
`

	sampleInvestmentsCSV = `Symbol,Name,Shares,Purchase_Price,Purchase_Date
AAPL,Apple Inc.,50,145.30,2024-01-15
GOOGL,Alphabet Inc.,25,128.50,2024-01-22
MSFT,Microsoft Corporation,40,352.80,2024-02-05
SPY,SPDR S&P 500 ETF,100,398.45,2024-01-08
`

	sampleGoalsCSV = `Goal_Name,Target_Amount,Current_Amount,Target_Date
Emergency Fund,25000,12500,2024-12-31
House Down Payment,80000,35000,2026-06-30
Retirement Fund,1000000,125000,2055-12-31
Vacation Fund,8000,3200,2025-06-15
`
)

// SampleZip builds the downloadable sample dataset as a ZIP archive in
// memory. It is what `pfd sample` writes, and tests use it as a known-good
// dataset.
func SampleZip() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	members := []struct {
		name, content string
	}{
		{TransactionsFile, sampleTransactionsCSV},
		{NetWorthFile, sampleNetWorthCSV},
		{InvestmentsFile, sampleInvestmentsCSV},
		{GoalsFile, sampleGoalsCSV},
	}
	for _, m := range members {
		w, err := zw.Create(m.name)
		if err != nil {
			return nil, fmt.Errorf("cannot create sample member %q: %w", m.name, err)
		}
		if _, err := w.Write([]byte(m.content)); err != nil {
			return nil, fmt.Errorf("cannot write sample member %q: %w", m.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SampleDataset decodes the in-memory sample archive.
func SampleDataset() (*Dataset, error) {
	raw, err := SampleZip()
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, err
	}
	return DecodeDataset(zr)
}
