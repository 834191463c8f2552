package budget

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeRecords decodes a JSON array of records and checks each of them.
// An empty input holds no records.
func DecodeRecords(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("could not decode records: %w", err)
	}

	ids := make(map[int]struct{}, len(records))
	var errs error
	for _, rec := range records {
		if _, dup := ids[rec.ID]; dup {
			errs = errors.Join(errs, fmt.Errorf("duplicate record id %d", rec.ID))
		}
		ids[rec.ID] = struct{}{}
		if err := rec.Validate(); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}
	return records, nil
}

// EncodeRecords writes records as an indented JSON array.
func EncodeRecords(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}

// LoadSession reads the ledger file at 'path' into a new session.
//
// A missing file gives an empty session. So does a corrupt file, after it has
// been moved aside to '<path>.corrupt' (or '<path>.corrupt.N' if taken), so that
// saving the session never overwrites it.
func LoadSession(path string, opts ...SessionOption) (*Session, error) {
	s := NewSession(nil, opts...)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info().Str("path", path).Msg("ledger file does not exist, starting with an empty ledger")
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger %q: %w", path, err)
	}
	records, err := DecodeRecords(f)
	f.Close()
	if err != nil {
		backup, merr := moveAside(path)
		if merr != nil {
			return nil, fmt.Errorf("corrupt ledger %q could not be moved aside: %w", path, errors.Join(err, merr))
		}
		s.log.Warn().Err(err).Str("path", path).Str("backup", backup).Msg("corrupt ledger file moved aside, starting with an empty ledger")
		return s, nil
	}
	loaded := NewSession(records, opts...)
	loaded.log.Debug().Str("path", path).Int("records", loaded.Len()).Int("next_id", loaded.NextID()).Msg("ledger loaded")
	return loaded, nil
}

// moveAside renames the file at 'path' to the first free '<path>.corrupt' name.
func moveAside(path string) (string, error) {
	backup := path + ".corrupt"
	for i := 1; ; i++ {
		_, err := os.Lstat(backup)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		if err != nil {
			return "", err
		}
		backup = fmt.Sprintf("%s.corrupt.%d", path, i)
	}
	if err := os.Rename(path, backup); err != nil {
		return "", err
	}
	return backup, nil
}

// SaveSession accrues interest and overwrites the ledger file at 'path' with
// every record of the session.
func SaveSession(path string, s *Session) error {
	s.Accrue()
	var buf bytes.Buffer
	if err := EncodeRecords(&buf, s.records); err != nil {
		return err
	}

	// Write to a sibling file first, so that a failure never truncates the ledger.
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("could not save ledger %q: %w", path, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("could not save ledger %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not save ledger %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not save ledger %q: %w", path, err)
	}
	s.log.Debug().Str("path", path).Int("records", s.Len()).Msg("ledger saved")
	return nil
}

// Query evaluates the JSONPath expression 'expr' against a ledger document,
// for instance `$[?(@.tipo=="receita")].valor` lists every income amount.
func Query(r io.Reader, expr string) (any, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode ledger document: %w", err)
	}
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}
	return v, nil
}
