package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/cmms-inventario/internal/application/dto"
)

// Columnas esperadas del CSV de catálogo (encabezado obligatorio, orden libre).
var partColumns = []string{"part_code", "part_name", "unit_of_issue", "unit_price", "minimum_quantity", "category", "criticality"}

// decodeReader envuelve r con el decodificador del charset indicado.
// Los exportes del sistema anterior vienen en ISO-8859-1.
func decodeReader(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.ReplaceAll(charset, "_", "-")) {
	case "", "utf-8", "utf8":
		return r, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("charset no soportado: %s", charset)
	}
}

// parseParts lee el catálogo de repuestos. Acepta ';' o ',' como separador.
func parseParts(r io.Reader, sep rune) ([]dto.CreatePartRequest, error) {
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range partColumns[:2] {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("falta la columna %q", col)
		}
	}

	var out []dto.CreatePartRequest
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		get := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		if get("part_code") == "" {
			continue
		}
		req := dto.CreatePartRequest{
			PartCode:    get("part_code"),
			PartName:    get("part_name"),
			UnitOfIssue: get("unit_of_issue"),
			Category:    get("category"),
			Criticality: strings.ToLower(get("criticality")),
		}
		if v := get("unit_price"); v != "" {
			price, err := decimal.NewFromString(strings.ReplaceAll(v, ",", "."))
			if err != nil {
				return nil, fmt.Errorf("línea %d: unit_price inválido %q", line, v)
			}
			req.UnitPrice = &price
		}
		if v := get("minimum_quantity"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("línea %d: minimum_quantity inválido %q", line, v)
			}
			req.MinimumQuantity = n
		}
		out = append(out, req)
	}
	return out, nil
}

// splitLocations separa la lista de ubicaciones del flag -locations ("Bodega|Taller").
func splitLocations(s string) []string {
	var out []string
	seen := map[string]bool{}
	for _, name := range strings.Split(s, "|") {
		name = strings.TrimSpace(name)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true
		out = append(out, name)
	}
	return out
}
