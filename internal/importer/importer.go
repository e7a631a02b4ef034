// Package importer implements the bill-import parsing engine: it converts
// heterogeneous export files from third-party finance apps into canonical
// ImportedRecords ready for preview and commit.
//
// The engine is stateless. Every Parse call takes all its inputs as
// parameters and returns a fresh ImportResult, so independent goroutines
// may parse multiple files concurrently with no synchronization.
package importer

import (
	"strings"
	"unicode/utf8"

	"fjacquet/bill-import/internal/models"
	"fjacquet/bill-import/internal/parsererror"
	"fjacquet/bill-import/internal/sources"
	"fjacquet/bill-import/internal/textutils"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Options tune engine behavior. The zero value is usable.
type Options struct {
	// Delimiter between fields; ',' when zero.
	Delimiter rune

	// HeaderScanLimit caps how many leading lines the header locator
	// examines; 0 scans the whole file.
	HeaderScanLimit int
}

// Engine parses export files into ImportResults.
type Engine struct {
	opts Options
}

// New creates an engine with the given options.
func New(opts Options) *Engine {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	return &Engine{opts: opts}
}

// Parse converts raw file content for the given source into an
// ImportResult. The only fatal errors are an empty file and content that is
// not valid UTF-8; every row-level problem is accumulated in the result and
// never aborts the batch.
func (e *Engine) Parse(content string, src sources.Source) (*models.ImportResult, error) {
	if !utf8.ValidString(content) {
		return nil, &parsererror.ValidationError{Source: string(src), Reason: "content is not valid UTF-8"}
	}
	if strings.TrimSpace(content) == "" {
		return nil, &parsererror.ValidationError{Source: string(src), Reason: "file is empty"}
	}

	desc, known := sources.Get(src)
	if !known {
		log.WithField("source", src).Info("Unknown source, using generic fallback parser")
	}

	lines := textutils.SplitLines(content)
	if len(lines) == 0 {
		return nil, &parsererror.ValidationError{Source: string(src), Reason: "file is empty"}
	}

	result := &models.ImportResult{}

	headerIdx, found := locateHeader(lines, desc, e.opts.HeaderScanLimit)
	if !found {
		// Silent degrade kept from the original behavior, but surfaced as
		// a warning so downstream consumers can see the fallback happened.
		result.AddWarning("header row not found, treating first line as header")
		log.WithField("source", desc.ID).Warn("Header row not found, falling back to first line")
	}

	header := textutils.Tokenize(lines[headerIdx], e.opts.Delimiter)
	cols := resolveColumns(header, desc)

	log.WithFields(logrus.Fields{
		"source":    desc.ID,
		"headerRow": headerIdx,
		"dataRows":  len(lines) - headerIdx - 1,
	}).Info("Parsing import file")

	for i, line := range lines[headerIdx+1:] {
		e.processRow(i+1, line, header, cols, desc, result)
	}

	log.WithFields(logrus.Fields{
		"source":  desc.ID,
		"success": result.SuccessCount,
		"failed":  result.FailedCount,
	}).Info("Import parse completed")

	return result, nil
}
