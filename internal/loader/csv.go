package loader

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"clinicart/internal/repos"
)

const (
	ProductsFile = "Products.csv"
	StockFile    = "Stock.csv"
	PincodesFile = "Pincodes.csv"
)

// CSVSource reads the three catalog exports from a directory.
type CSVSource struct {
	Dir string
}

func NewCSVSource(dir string) *CSVSource { return &CSVSource{Dir: dir} }

func (s *CSVSource) Products(ctx context.Context) ([]repos.ProductRow, error) {
	var out []repos.ProductRow
	err := s.read(ctx, ProductsFile, []string{"Product ID", "Product Name", "Price"}, func(f []string) {
		out = append(out, repos.ProductRow{ID: f[0], Name: f[1], Price: f[2]})
	})
	return out, err
}

func (s *CSVSource) Stock(ctx context.Context) ([]repos.StockRow, error) {
	var out []repos.StockRow
	err := s.read(ctx, StockFile, []string{"Product ID", "Stock Available"}, func(f []string) {
		out = append(out, repos.StockRow{ID: f[0], StockAvailable: f[1]})
	})
	return out, err
}

func (s *CSVSource) Pincodes(ctx context.Context) ([]repos.PincodeRow, error) {
	var out []repos.PincodeRow
	err := s.read(ctx, PincodesFile, []string{"Pincode", "Logistics Provider", "TAT"}, func(f []string) {
		out = append(out, repos.PincodeRow{Pincode: f[0], Provider: f[1], TAT: f[2]})
	})
	return out, err
}

// read streams name, handing emit the wanted columns of each record in the
// order given. Columns are matched by header name; absent cells come through
// empty so the row fails validation later instead of aborting the file.
func (s *CSVSource) read(ctx context.Context, name string, columns []string, emit func([]string)) error {
	f, err := os.Open(filepath.Join(s.Dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(stripBOM(f))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%s: read header: %w", name, err)
	}
	idx := make([]int, len(columns))
	for i, col := range columns {
		idx[i] = -1
		for j, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				idx[i] = j
				break
			}
		}
		if idx[i] < 0 {
			return fmt.Errorf("%s: missing column %q", name, col)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		fields := make([]string, len(columns))
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return fmt.Errorf("%s: %w", name, err)
			}
			// keep the row count aligned; the empty row is skipped downstream
			emit(fields)
			continue
		}
		for i, j := range idx {
			if j < len(rec) {
				fields[i] = strings.TrimSpace(rec[j])
			}
		}
		emit(fields)
	}
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = br.Discard(3)
	}
	return br
}
