// Package csvfile stores the ledger as a comma separated text file.
//
// The first line is the header "Type,Summe,Beschreibung,Datum", every following
// line is one transaction in ledger order. Fields that contain a comma, a quote
// or a line break are quoted; all other fields are written verbatim, so files
// written by older versions without quoting still load. A line that is not
// valid quoted CSV is read as plain comma separated text.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type Store struct {
	fs     afero.Fs
	path   string
	logger *pterm.Logger
}

func NewStore(fs afero.Fs, path string, logger *pterm.Logger) *Store {
	return &Store{fs: fs, path: path, logger: logger}
}

func (s *Store) Location() string {
	return s.path
}

// Load reads the whole file. A missing file is an empty ledger.
// Rows without exactly four fields are skipped; a row whose amount does not
// parse fails the whole load and nothing is returned.
func (s *Store) Load() ([]model.Transaction, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("ledger file not found, starting empty", s.logger.Args("path", s.path))
			return []model.Transaction{}, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", model.ErrPersistenceReadFailed, s.path, err)
	}

	txs, skipped, err := decode(bytes.TrimPrefix(data, utf8BOM))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", model.ErrPersistenceReadFailed, s.path, err)
	}

	if skipped > 0 {
		s.logger.Warn("skipped malformed ledger rows", s.logger.Args("path", s.path, "rows", skipped))
	}
	s.logger.Debug("ledger loaded", s.logger.Args("path", s.path, "transactions", len(txs)))

	return txs, nil
}

func decode(data []byte) ([]model.Transaction, int, error) {
	lines := strings.Split(string(data), "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	txs := make([]model.Transaction, 0)
	skipped := 0

	// lines[0] is the header
	for i := 1; i < len(lines); {
		if lines[i] == "" {
			i++
			continue
		}

		record, next := readRecord(lines, i)
		if len(record) != constants.LedgerFields {
			skipped++
			i = next
			continue
		}

		amount, err := utils.ParseAmount(record[1])
		if err != nil {
			return nil, 0, fmt.Errorf("line %d: %w", i+1, err)
		}

		txs = append(txs, model.NewTransaction(model.Kind(record[0]), amount, record[2], record[3]))
		i = next
	}

	return txs, skipped, nil
}

// readRecord returns the record starting at lines[start] and the index of the
// line after it. A quoted field may continue on the following lines only when
// the joined text is one valid record with all four fields. Anything else is
// split on commas as a single unquoted line, so a stray quote never reaches
// past its own line.
func readRecord(lines []string, start int) ([]string, int) {
	end := start
	text := lines[start]
	for strings.Count(text, `"`)%2 == 1 && end+1 < len(lines) {
		end++
		text += "\n" + lines[end]
	}

	if record, ok := parseRecord(text); ok && (end == start || len(record) == constants.LedgerFields) {
		return record, end + 1
	}
	return strings.Split(lines[start], ","), start + 1
}

func parseRecord(text string) ([]string, bool) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	record, err := reader.Read()
	if err != nil {
		return nil, false
	}
	if _, err := reader.Read(); !errors.Is(err, io.EOF) {
		return nil, false
	}
	return record, true
}

// Save replaces the file with the given transactions. The content goes to a
// temporary file in the same directory first and is renamed over the target.
func (s *Store) Save(txs []model.Transaction) error {
	if err := s.save(txs); err != nil {
		return fmt.Errorf("%w: %s: %w", model.ErrPersistenceWriteFailed, s.path, err)
	}
	s.logger.Debug("ledger saved", s.logger.Args("path", s.path, "transactions", len(txs)))
	return nil
}

func (s *Store) save(txs []model.Transaction) error {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("can not create directory %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("can not create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if err := Encode(tmp, txs); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return err
	}
	if err := s.fs.Chmod(tmpName, 0644); err != nil {
		s.fs.Remove(tmpName)
		return err
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		s.fs.Remove(tmpName)
		return err
	}
	return nil
}

// Encode writes the header and one row per transaction to w.
func Encode(w io.Writer, txs []model.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(constants.LedgerHeader); err != nil {
		return err
	}
	for _, tx := range txs {
		record := []string{
			string(tx.Kind),
			utils.FormatStored(tx.Amount),
			tx.Description,
			tx.Date,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// Preserve copies the current file to path+suffix and returns the copy's path.
// It is a no-op when the file does not exist.
func (s *Store) Preserve(suffix string) (string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	backup := s.path + suffix
	if err := afero.WriteFile(s.fs, backup, data, 0644); err != nil {
		return "", err
	}
	return backup, nil
}
