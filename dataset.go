package finsight

import (
	"archive/zip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Fixed dataset member names. Matching is case-insensitive; only the
// transactions file is mandatory.
const (
	TransactionsFile = "transactions.csv"
	NetWorthFile     = "net_worth.csv"
	InvestmentsFile  = "investments.csv"
	GoalsFile        = "goals.csv"
)

// ErrMissingColumn reports a required column absent from an input table.
// Wrapped errors name the file and the column.
var ErrMissingColumn = errors.New("missing required column")

// Dataset holds every table of one uploaded dataset. Transactions is always
// present; the other tables may be empty when their file was not supplied.
type Dataset struct {
	Transactions []Transaction
	NetWorth     []NetWorthEntry
	Holdings     []Holding
	Goals        []Goal
}

// LoadDataset reads a dataset from a ZIP archive, a directory of CSV files,
// or a single transactions CSV file.
func LoadDataset(path string) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return DecodeDataset(os.DirFS(path))
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		zr, err := zip.OpenReader(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open dataset %q: %w", path, err)
		}
		defer zr.Close()
		return DecodeDataset(zr)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		txs, err := DecodeTransactions(f)
		if err != nil {
			return nil, err
		}
		return &Dataset{Transactions: txs}, nil
	default:
		return nil, fmt.Errorf("unsupported dataset %q: want a .zip, a .csv or a directory", path)
	}
}

// DecodeDataset reads a dataset from a file system (a zip.Reader or a
// directory). Member names are matched case-insensitively at the root; the
// transactions file is required, the others are optional.
func DecodeDataset(fsys fs.FS) (*Dataset, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	members := make(map[string]string) // lowercased name -> actual name
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		members[strings.ToLower(e.Name())] = e.Name()
	}

	name, ok := members[TransactionsFile]
	if !ok {
		return nil, fmt.Errorf("dataset is missing the required file %q", TransactionsFile)
	}

	ds := &Dataset{}
	if err := decodeMember(fsys, name, func(r io.Reader) (err error) {
		ds.Transactions, err = DecodeTransactions(r)
		return err
	}); err != nil {
		return nil, err
	}

	if name, ok := members[NetWorthFile]; ok {
		if err := decodeMember(fsys, name, func(r io.Reader) (err error) {
			ds.NetWorth, err = DecodeNetWorth(r)
			return err
		}); err != nil {
			return nil, err
		}
	}
	if name, ok := members[InvestmentsFile]; ok {
		if err := decodeMember(fsys, name, func(r io.Reader) (err error) {
			ds.Holdings, err = DecodeHoldings(r)
			return err
		}); err != nil {
			return nil, err
		}
	}
	if name, ok := members[GoalsFile]; ok {
		if err := decodeMember(fsys, name, func(r io.Reader) (err error) {
			ds.Goals, err = DecodeGoals(r)
			return err
		}); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

func decodeMember(fsys fs.FS, name string, decode func(io.Reader) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return decode(f)
}

// csvTable is a parsed CSV file with case-insensitive column access.
type csvTable struct {
	file  string
	index map[string]int
	rows  [][]string
}

func readCSV(file string, r io.Reader) (*csvTable, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file, want a header row", file)
	}
	t := &csvTable{file: file, index: make(map[string]int), rows: records[1:]}
	for i, col := range records[0] {
		t.index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return t, nil
}

// require fails fast when a structurally required column is absent.
func (t *csvTable) require(cols ...string) error {
	for _, col := range cols {
		if _, ok := t.index[col]; !ok {
			return fmt.Errorf("%s: %w %q", t.file, ErrMissingColumn, col)
		}
	}
	return nil
}

// get returns the trimmed cell for a column, or "" when the column is absent
// from the file or the row is short.
func (t *csvTable) get(row []string, col string) string {
	i, ok := t.index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t *csvTable) rowErr(n int, err error) error {
	// n is a zero-based data row index; +2 accounts for the header line.
	return fmt.Errorf("%s line %d: %w", t.file, n+2, err)
}

// DecodeTransactions parses a transactions CSV. Required columns: Date,
// Description, Amount, Type. Category is optional and stays empty when the
// column is absent; the classifier fills it later.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	t, err := readCSV(TransactionsFile, r)
	if err != nil {
		return nil, err
	}
	if err := t.require("date", "description", "amount", "type"); err != nil {
		return nil, err
	}
	txs := make([]Transaction, 0, len(t.rows))
	for n, row := range t.rows {
		var tx Transaction
		if tx.Date, err = ParseDate(t.get(row, "date")); err != nil {
			return nil, t.rowErr(n, err)
		}
		tx.Description = t.get(row, "description")
		if tx.Amount, err = ParseMoney(t.get(row, "amount")); err != nil {
			return nil, t.rowErr(n, err)
		}
		if tx.Type, err = ParseTransactionType(t.get(row, "type")); err != nil {
			return nil, t.rowErr(n, err)
		}
		tx.Category = t.get(row, "category")
		txs = append(txs, tx)
	}
	return txs, nil
}

// DecodeNetWorth parses a net-worth CSV. Required columns: Date, Assets,
// Liabilities. Net worth itself is derived.
func DecodeNetWorth(r io.Reader) ([]NetWorthEntry, error) {
	t, err := readCSV(NetWorthFile, r)
	if err != nil {
		return nil, err
	}
	if err := t.require("date", "assets", "liabilities"); err != nil {
		return nil, err
	}
	entries := make([]NetWorthEntry, 0, len(t.rows))
	for n, row := range t.rows {
		on, err := ParseDate(t.get(row, "date"))
		if err != nil {
			return nil, t.rowErr(n, err)
		}
		assets, err := ParseMoney(t.get(row, "assets"))
		if err != nil {
			return nil, t.rowErr(n, err)
		}
		liabilities, err := ParseMoney(t.get(row, "liabilities"))
		if err != nil {
			return nil, t.rowErr(n, err)
		}
		entries = append(entries, NewNetWorthEntry(on, assets, liabilities))
	}
	return entries, nil
}

// DecodeHoldings parses an investments CSV. Required columns: Symbol, Shares,
// Purchase_Price. Name and Purchase_Date are optional.
func DecodeHoldings(r io.Reader) ([]Holding, error) {
	t, err := readCSV(InvestmentsFile, r)
	if err != nil {
		return nil, err
	}
	if err := t.require("symbol", "shares", "purchase_price"); err != nil {
		return nil, err
	}
	holdings := make([]Holding, 0, len(t.rows))
	for n, row := range t.rows {
		var h Holding
		h.Symbol = t.get(row, "symbol")
		h.Name = t.get(row, "name")
		if h.Shares, err = ParseQuantity(t.get(row, "shares")); err != nil {
			return nil, t.rowErr(n, err)
		}
		if h.PurchasePrice, err = ParseMoney(t.get(row, "purchase_price")); err != nil {
			return nil, t.rowErr(n, err)
		}
		if on := t.get(row, "purchase_date"); on != "" {
			if h.PurchaseDate, err = ParseDate(on); err != nil {
				return nil, t.rowErr(n, err)
			}
		}
		holdings = append(holdings, h)
	}
	return holdings, nil
}

// DecodeGoals parses a goals CSV. Required columns: Goal_Name, Target_Amount,
// Current_Amount, Target_Date.
func DecodeGoals(r io.Reader) ([]Goal, error) {
	t, err := readCSV(GoalsFile, r)
	if err != nil {
		return nil, err
	}
	if err := t.require("goal_name", "target_amount", "current_amount", "target_date"); err != nil {
		return nil, err
	}
	goals := make([]Goal, 0, len(t.rows))
	for n, row := range t.rows {
		var g Goal
		g.Name = t.get(row, "goal_name")
		if g.TargetAmount, err = ParseMoney(t.get(row, "target_amount")); err != nil {
			return nil, t.rowErr(n, err)
		}
		if g.CurrentAmount, err = ParseMoney(t.get(row, "current_amount")); err != nil {
			return nil, t.rowErr(n, err)
		}
		if g.TargetDate, err = ParseDate(t.get(row, "target_date")); err != nil {
			return nil, t.rowErr(n, err)
		}
		goals = append(goals, g)
	}
	return goals, nil
}
