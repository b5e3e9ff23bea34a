package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// catalogRow fila del CSV: name,price,quantity.
type catalogRow struct {
	Line     int
	Name     string
	Price    decimal.Decimal
	Quantity int64
}

// decoderFor devuelve un lector UTF-8 para el charset indicado.
func decoderFor(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.ReplaceAll(charset, "_", "-")) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("charset no soportado: %q", charset)
	}
}

// readCatalog lee el catálogo. La primera fila se toma como encabezado si su columna price no es numérica.
func readCatalog(r io.Reader, charset string) ([]catalogRow, error) {
	in, err := decoderFor(r, charset)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var rows []catalogRow
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)

		price, perr := decimal.NewFromString(strings.TrimSpace(rec[1]))
		if first {
			first = false
			if perr != nil {
				continue
			}
		}
		if perr != nil {
			return nil, fmt.Errorf("línea %d: precio inválido %q", line, rec[1])
		}
		name := strings.TrimSpace(rec[0])
		if name == "" {
			return nil, fmt.Errorf("línea %d: nombre vacío", line)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("línea %d: precio negativo", line)
		}
		qty, err := strconv.ParseInt(strings.TrimSpace(rec[2]), 10, 64)
		if err != nil || qty < 0 {
			return nil, fmt.Errorf("línea %d: cantidad inválida %q", line, rec[2])
		}
		rows = append(rows, catalogRow{Line: line, Name: name, Price: price.Round(2), Quantity: qty})
	}
	return rows, nil
}
