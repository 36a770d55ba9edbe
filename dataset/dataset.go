// Package dataset handles the data file side of an experiment record:
// matching CSV headers against a technique's expected columns, reading
// headers, and building dataset descriptors with checksums.
package dataset

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"io"
	"path/filepath"
	"strings"

	"github.com/c360/semfair/document"
	"github.com/c360/semfair/errors"
	"github.com/c360/semfair/technique"
)

// ColumnMatch pairs an expected column with the header that satisfied it.
type ColumnMatch struct {
	Expected string `json:"expected"` // canonical column name, e.g. "Potential (V)"
	Header   string `json:"header"`   // actual header from the file
}

// MatchResult reports how a file's headers line up with a technique's
// expected columns. Order is deterministic: Found follows the technique's
// column order, Unexpected follows the input header order.
type MatchResult struct {
	Found      []ColumnMatch `json:"found"`
	Missing    []string      `json:"missing"`
	Unexpected []string      `json:"unexpected"`
}

// Complete reports whether every expected column was found.
func (m MatchResult) Complete() bool {
	return len(m.Missing) == 0
}

// Match checks the given headers against the expected columns for a
// technique. Each header can satisfy at most one expected column; the first
// matching header wins. Returns ErrUnknownTechnique for techniques the
// registry does not know.
func Match(reg *technique.Registry, t technique.Technique, headers []string) (MatchResult, error) {
	specs, err := reg.ColumnSpecsFor(t)
	if err != nil {
		return MatchResult{}, err
	}

	var result MatchResult
	claimed := make([]bool, len(headers))
	for _, spec := range specs {
		matched := false
		for i, h := range headers {
			if claimed[i] || !spec.Matches(h) {
				continue
			}
			claimed[i] = true
			result.Found = append(result.Found, ColumnMatch{Expected: spec.Name, Header: h})
			matched = true
			break
		}
		if !matched {
			result.Missing = append(result.Missing, spec.Name)
		}
	}
	for i, h := range headers {
		if !claimed[i] {
			result.Unexpected = append(result.Unexpected, h)
		}
	}
	return result, nil
}

// ReadHeader reads the first CSV record from r and returns its trimmed
// cells. The reader tolerates ragged rows since only the header matters.
func ReadHeader(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	record, err := cr.Read()
	if err != nil {
		return nil, errors.WrapInvalid(err, "dataset", "ReadHeader", "read CSV header")
	}
	for i, cell := range record {
		record[i] = strings.TrimSpace(cell)
	}
	return record, nil
}

// Checksum returns the SHA-256 digest of r's contents in the
// "sha256:<hex>" form used by dataset descriptors.
func Checksum(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", errors.Wrap(err, "dataset", "Checksum", "hash dataset contents")
	}
	return "sha256:" + hex.EncodeToString(h.Sum(nil)), nil
}

// ChecksumBytes returns the SHA-256 digest of b in "sha256:<hex>" form.
func ChecksumBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return "sha256:" + hex.EncodeToString(sum[:])
}

// Describe builds a dataset descriptor for a file's raw contents: filename,
// format from the extension, UTF-8 encoding, size, and checksum. Expected
// columns are left for the caller, who knows the technique.
func Describe(filename string, data []byte) document.DatasetInfo {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	return document.DatasetInfo{
		Filename:  filepath.Base(filename),
		Format:    format,
		Encoding:  "utf-8",
		SizeBytes: int64(len(data)),
		Checksum:  ChecksumBytes(data),
	}
}
