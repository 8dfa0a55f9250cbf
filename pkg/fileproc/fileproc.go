// Package fileproc pretty-prints whole files. A file is parsed as an
// ordered sequence of independent top-level documents; each is printed
// through the normal pipeline in document mode and the results are
// concatenated preserving the original blank-line separation.
package fileproc

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/resin-fmt/resin/pkg/config"
	"github.com/resin-fmt/resin/pkg/errors"
	"github.com/resin-fmt/resin/pkg/logging"
	"github.com/resin-fmt/resin/pkg/printer"
	"github.com/resin-fmt/resin/pkg/sexpr"
)

// Process reads inPath, pretty-prints every top-level form in it and
// writes the result to outPath, fully replacing any existing content.
// It returns the number of top-level documents printed. The write goes
// to a temporary file first and is moved into place, so a failure never
// leaves a partial output file.
func Process(inPath, outPath string, opts map[string]interface{}) (int, error) {
	logger := logging.GetLogger("fileproc")

	res, _, err := config.Global().Resolve(opts, 0, false, "")
	if err != nil {
		return 0, err
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileRead, "reading %s", inPath)
	}

	docs, err := sexpr.ParseAll(normalize(string(data), res))
	if err != nil {
		return 0, err
	}
	logger.Debug().
		Str("path", inPath).
		Int("documents", len(docs)).
		Msg("Parsed input file")

	var sb strings.Builder
	for i, doc := range docs {
		// A document's block carries its own separation from the
		// previous one, so concatenation needs no inserted separators.
		if i > 0 {
			sb.WriteString(strings.Repeat("\n", doc.BlankBefore))
		}
		stream, _, _, err := printer.Tokens(doc, opts)
		if err != nil {
			return 0, err
		}
		sb.WriteString(stream.String())
		sb.WriteString("\n")
	}

	if err := writeReplacing(outPath, sb.String()); err != nil {
		return 0, err
	}
	return len(docs), nil
}

// normalize splits the raw file into lines, drops carriage returns,
// expands tabs per the resolved tab settings and rejoins with plain
// newlines. Trailing content survives the round trip.
func normalize(text string, res *config.Resolved) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if res.Schema.Tab.Expand {
			line = sexpr.ExpandTabs(line, res.Schema.Tab.Width)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// writeReplacing writes content to path via a temp file in the same
// directory followed by a rename.
func writeReplacing(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".resin-*")
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "creating temp file in %s", dir)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrFileWrite, "writing %s", tmpPath)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrFileWrite, "closing %s", tmpPath)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrFileWrite, "replacing %s", path)
	}
	return nil
}
