package export

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/semfair/document"
	fairengine "github.com/c360/semfair/engine"
	"github.com/c360/semfair/errors"
	"github.com/c360/semfair/schema"
)

// Exportable reports whether the document may leave the system. A document
// that violates the structural schema or carries stale quality metrics is
// rejected; the pipeline must score a record immediately before export.
func Exportable(d *document.Document) error {
	if d == nil {
		return errors.WrapInvalid(errors.ErrNilDocument, "export", "Exportable", "check document")
	}
	if fieldErrs := schema.Default().Check(d); len(fieldErrs) > 0 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: %d violations, first: %s: %s",
				errors.ErrInvalidDocument, len(fieldErrs), fieldErrs[0].Field, fieldErrs[0].Message),
			"export", "Exportable", "check schema contract")
	}
	if !d.QualityCurrent() {
		return errors.WrapInvalid(errors.ErrStaleMetrics, "export", "Exportable", "check quality metrics")
	}
	return nil
}

// Record renders the document as the durable YAML metadata record. It is
// the only persistent artifact of a session, so it carries every section
// including the quality metrics.
func Record(d *document.Document) ([]byte, error) {
	if err := Exportable(d); err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(err, "export", "Record", "marshal metadata record")
	}
	return out, nil
}

// BundleName returns the conventional archive name for a document:
// fair_bundle_<technique>_<id prefix>.zip.
func BundleName(d *document.Document) string {
	tech := strings.ToLower(d.Technique.Name)
	if tech == "" {
		tech = "unknown"
	}
	id := d.ExperimentID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("fair_bundle_%s_%s.zip", tech, id)
}

// Bundle writes the complete FAIR bundle as a ZIP archive: the dataset
// bytes under data/, the YAML record and citation file under metadata/,
// and the README plus assessment report under documentation/. A nil
// result omits the report.
func Bundle(w io.Writer, d *document.Document, data []byte, res *fairengine.Result) error {
	record, err := Record(d)
	if err != nil {
		return err
	}
	citation, err := Citation(d)
	if err != nil {
		return err
	}

	dataName := d.Dataset.Filename
	if dataName == "" {
		dataName = "data.csv"
	}

	zw := zip.NewWriter(w)
	entries := []struct {
		name string
		body []byte
	}{
		{"data/" + dataName, data},
		{"metadata/metadata.yaml", record},
		{"metadata/CITATION.cff", citation},
		{"documentation/README.md", Readme(d)},
	}
	if res != nil {
		entries = append(entries, struct {
			name string
			body []byte
		}{"documentation/report.md", RenderReport(d, res)})
	}

	for _, entry := range entries {
		f, err := zw.Create(entry.name)
		if err != nil {
			return errors.Wrap(err, "export", "Bundle", "create archive entry "+entry.name)
		}
		if _, err := f.Write(entry.body); err != nil {
			return errors.Wrap(err, "export", "Bundle", "write archive entry "+entry.name)
		}
	}

	if err := zw.Close(); err != nil {
		return errors.Wrap(err, "export", "Bundle", "finalize archive")
	}
	return nil
}

// WriteBundle writes the bundle to a file at path, creating it with 0644.
func WriteBundle(path string, d *document.Document, data []byte, res *fairengine.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "export", "WriteBundle", "create bundle file")
	}

	if err := Bundle(f, d, data, res); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return errors.Wrap(err, "export", "WriteBundle", "close bundle file")
	}
	return nil
}
