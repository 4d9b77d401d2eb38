package services

import (
	"strings"

	"orderwizard/internal/core/domain/model/form"
)

const (
	// ExportFileName is the download name of the CSV export.
	ExportFileName = "pedido.csv"

	// ExportContentType is the media type of the CSV export.
	ExportContentType = "text/csv"
)

// EncodeCSV renders one `key,"value"` line per field in the fixed key order,
// joined by "\n" with no trailing newline.
//
// Values are written verbatim. A value containing a quote, comma or newline
// produces a malformed line; downstream consumers rely on this exact format.
func EncodeCSV(state form.State) []byte {
	values := state.Values()

	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(v.Field.String())
		b.WriteString(`,"`)
		b.WriteString(v.Value)
		b.WriteByte('"')
	}
	return []byte(b.String())
}
