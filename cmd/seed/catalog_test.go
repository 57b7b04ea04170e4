package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestParseParts_Latin1(t *testing.T) {
	csvText := "part_code;part_name;unit_of_issue;unit_price;minimum_quantity;category;criticality\n" +
		"RD-001;Rodamiento 6204;UND;12,50;4;Mecánica;HIGH\n" +
		";fila sin código;;;;;\n" +
		"VB-010;Válvula de bola 1\";UND;;;Hidráulica;\n"
	encoded, err := charmap.ISO8859_1.NewEncoder().String(csvText)
	require.NoError(t, err)

	r, err := decodeReader(bytes.NewBufferString(encoded), "ISO-8859-1")
	require.NoError(t, err)
	parts, err := parseParts(r, ';')
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, "RD-001", parts[0].PartCode)
	assert.Equal(t, "Mecánica", parts[0].Category)
	assert.Equal(t, "high", parts[0].Criticality)
	assert.Equal(t, int64(4), parts[0].MinimumQuantity)
	require.NotNil(t, parts[0].UnitPrice)
	assert.Equal(t, "12.5", parts[0].UnitPrice.String())

	assert.Equal(t, "Hidráulica", parts[1].Category)
	assert.Nil(t, parts[1].UnitPrice)
}

func TestParseParts_Errores(t *testing.T) {
	_, err := parseParts(strings.NewReader("codigo;nombre\nA;B\n"), ';')
	assert.ErrorContains(t, err, "part_code")

	_, err = parseParts(strings.NewReader("part_code,part_name,minimum_quantity\nA,B,diez\n"), ',')
	assert.ErrorContains(t, err, "línea 2")

	_, err = decodeReader(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}

func TestSplitLocations(t *testing.T) {
	assert.Equal(t, []string{"Bodega central", "Taller"}, splitLocations(" Bodega central | Taller|bodega central||"))
	assert.Empty(t, splitLocations(""))
}
