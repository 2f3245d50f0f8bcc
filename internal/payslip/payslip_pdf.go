package payslip

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	pageWidth   = 595
	pageHeight  = 842
	marginLeft  = 50
	valueColumn = 420
	lineHeight  = 16
)

// pdfLine is one row of the payslip page. A row with a Value is rendered as a
// label/amount pair; Heading rows use the bold face.
type pdfLine struct {
	Label   string
	Value   string
	Heading bool
}

// renderPayslipPDF writes a single-page PDF 1.4 document with the built-in
// Helvetica faces. Rows that do not fit on the page are dropped.
func renderPayslipPDF(rows []pdfLine) []byte {
	if len(rows) == 0 {
		rows = []pdfLine{{Label: "Payslip", Heading: true}}
	}

	var stream strings.Builder
	y := pageHeight - 60
	for _, row := range rows {
		if y < 40 {
			break
		}
		font := "F1"
		if row.Heading {
			font = "F2"
		}
		writeText(&stream, font, marginLeft, y, row.Label)
		if row.Value != "" {
			writeText(&stream, "F1", valueColumn, y, row.Value)
		}
		y -= lineHeight
	}
	content := stream.String()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 4 0 R /F2 5 0 R >> >> /Contents 6 0 R >>", pageWidth, pageHeight),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, body := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xref)

	return out.Bytes()
}

func writeText(b *strings.Builder, font string, x, y int, text string) {
	fmt.Fprintf(b, "BT /%s 11 Tf %d %d Td (%s) Tj ET\n", font, x, y, escapePDFText(text))
}

var pdfTextEscaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`, "\r", "", "\n", " ")

func escapePDFText(v string) string {
	return pdfTextEscaper.Replace(v)
}
