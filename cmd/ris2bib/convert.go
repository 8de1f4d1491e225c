package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/matsen/ris2bib/internal/config"
	"github.com/matsen/ris2bib/internal/export"
	"github.com/matsen/ris2bib/internal/logger"
	"github.com/matsen/ris2bib/internal/ris"
)

// fileError reports an input or output file that could not be used.
type fileError struct {
	op   string // read or write
	path string
	err  error
}

func (e *fileError) Error() string {
	return fmt.Sprintf("Could not %s file %s", e.op, e.path)
}

func (e *fileError) Unwrap() error {
	return e.err
}

// errInvalidUTF8 is the read error for input that is not UTF-8 text.
var errInvalidUTF8 = errors.New("invalid UTF-8")

func runConvert(opts *options, path string, stdout, stderr io.Writer) error {
	settings, err := config.Resolve(opts.logLevel)
	if err != nil {
		return err
	}
	log := logger.New(stderr, settings.LogLevel)

	bibtex, err := convertFile(path, log)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := io.WriteString(stdout, bibtex)
		return err
	}

	if err := export.WriteBibFile(opts.output, bibtex); err != nil {
		log.Debug("write failed", "path", opts.output, "error", err)
		return &fileError{op: "write", path: opts.output, err: err}
	}
	log.Info("wrote bibliography", "path", opts.output, "bytes", len(bibtex))
	return nil
}

// convertFile reads a RIS file and renders every non-blank record as BibTeX.
// Nothing is rendered unless the whole file was read as UTF-8 text.
func convertFile(path string, log *logger.Logger) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil && !utf8.Valid(data) {
		err = errInvalidUTF8
	}
	if err != nil {
		log.Debug("read failed", "path", path, "error", err)
		return "", &fileError{op: "read", path: path, err: err}
	}

	blocks := ris.Records(string(data))
	log.Debug("split input", "path", path, "bytes", len(data), "records", len(blocks))

	recs := make([]ris.Record, 0, len(blocks))
	for i, block := range blocks {
		rec := ris.Parse(block)
		recLog := log.With("record", i+1)
		if rec.Len() == 0 {
			// Still emitted, with every field defaulted
			recLog.Warn("record has no tagged lines", "path", path)
		}
		recLog.Debug("parsed record",
			"key", export.CiteKey(rec),
			"type", rec.Value(ris.TagType),
			"tags", rec.Len())
		recs = append(recs, rec)
	}

	return export.ToBibTeXList(recs), nil
}
