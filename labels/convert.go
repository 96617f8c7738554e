// This file is part of dbg2mlb.
//
// dbg2mlb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dbg2mlb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dbg2mlb.  If not, see <https://www.gnu.org/licenses/>.

package labels

import (
	"bytes"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/jetsetilly/dbg2mlb/curated"
	"github.com/jetsetilly/dbg2mlb/dbgfile"
	"github.com/jetsetilly/dbg2mlb/logger"
)

// Labels classifies every symbol in the store, in id order.
//
// If cfg.Lenient is false the first error stops the process and no labels
// are returned. Otherwise every symbol is tried and the labels that could be
// created are returned along with a *multierror.Error describing the
// symbols that could not.
func Labels(store *dbgfile.Store, cfg Config) ([]*Label, error) {
	cl, err := NewClassifier(store, cfg)
	if err != nil {
		return nil, err
	}

	var labels []*Label
	var errs *multierror.Error

	for _, sym := range store.Symbols() {
		l, err := cl.Classify(sym)
		if err != nil {
			if !cfg.Lenient {
				return nil, err
			}
			logger.Log(logger.Allow, "labels", err)
			errs = multierror.Append(errs, err)
			continue // for loop
		}
		if l != nil {
			labels = append(labels, l)
		}
	}

	logger.Logf(logger.Allow, "labels", "%d labels from %d symbols", len(labels), len(store.Symbols()))

	return labels, errs.ErrorOrNil()
}

// Write labels to io.Writer in MLB format, one per line.
func Write(output io.Writer, labels []*Label) error {
	for _, l := range labels {
		if _, err := io.WriteString(output, l.String()+"\n"); err != nil {
			return curated.Errorf(SinkError, err)
		}
	}
	return nil
}

// Convert the symbols in the store and write the labels to io.Writer.
// Returns the number of labels written.
//
// Nothing is written unless all symbols can be converted, or cfg.Lenient is
// true. In the lenient case the error from Labels() is returned after the
// labels have been written.
func Convert(store *dbgfile.Store, cfg Config, output io.Writer) (int, error) {
	labels, err := Labels(store, cfg)
	if err != nil && !cfg.Lenient {
		return 0, err
	}

	if werr := Write(output, labels); werr != nil {
		return 0, werr
	}

	return len(labels), err
}

// ConvertFile is like Convert() except that the output is a named file. The
// file is only created once the labels have been generated.
func ConvertFile(store *dbgfile.Store, cfg Config, filename string) (int, error) {
	labels, lerr := Labels(store, cfg)
	if lerr != nil && !cfg.Lenient {
		return 0, lerr
	}

	var b bytes.Buffer
	if err := Write(&b, labels); err != nil {
		return 0, err
	}

	f, err := os.Create(filename)
	if err != nil {
		return 0, curated.Errorf(SinkUnavailable, err)
	}

	_, err = b.WriteTo(f)
	if err != nil {
		_ = f.Close()
		return 0, curated.Errorf(SinkError, err)
	}

	if err := f.Close(); err != nil {
		return 0, curated.Errorf(SinkError, err)
	}

	return len(labels), lerr
}
