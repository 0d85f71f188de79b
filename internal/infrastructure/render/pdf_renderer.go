package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"recibozap/internal/domain/entities"
	"recibozap/internal/usecase/interfaces"
)

// PDFRenderer draws the A4 receipt document. Coordinates are millimeters on a
// portrait A4 page (210x297).
type PDFRenderer struct {
	now func() time.Time
}

var _ interfaces.IReceiptRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{now: time.Now}
}

func (r *PDFRenderer) Render(_ context.Context, receipt entities.Receipt) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(102, 126, 234)
	centeredText(pdf, tr, 30, "RECIBOZAP")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	centeredText(pdf, tr, 40, "Recibo de Prestação de Serviços")

	pdf.SetLineWidth(0.5)
	pdf.Line(20, 50, 190, 50)

	// Receipt metadata
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, 60, tr(fmt.Sprintf("Recibo Nº: %s", receipt.Number)))
	pdf.Text(130, 60, tr(fmt.Sprintf("Data de emissão: %s", r.now().Format("02/01/2006"))))

	// Client section
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, 80, tr("DADOS DO CLIENTE"))

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(20, 95, tr(fmt.Sprintf("Nome: %s", receipt.ClientName)))
	pdf.Text(20, 105, tr(fmt.Sprintf("CPF/CNPJ: %s", receipt.ClientDocument)))

	// Service section
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, 125, tr("DADOS DO SERVIÇO"))

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(20, 140, tr(fmt.Sprintf("Serviço: %s", receipt.ServiceName)))

	dateY := 150.0
	if receipt.ServiceDescription != "" {
		// SplitText expects UTF-8; translate per line only when drawing.
		lines := pdf.SplitText(fmt.Sprintf("Descrição: %s", receipt.ServiceDescription), 170)
		y := 150.0
		for _, line := range lines {
			pdf.Text(20, y, tr(line))
			y += 6
		}
		dateY = 170
	}
	pdf.Text(20, dateY, tr(fmt.Sprintf("Data do serviço: %s", receipt.ServiceDate)))

	// Amount
	amountY := dateY + 20
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(20, amountY, tr(fmt.Sprintf("VALOR: R$ %s", FormatAmountBR(receipt.Amount))))

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(20, amountY+15, tr(fmt.Sprintf("Valor por extenso: %s", AmountInWords(receipt.Amount))))

	// Declaration and signature
	declarationY := amountY + 35
	pdf.Text(20, declarationY, tr("Declaro que recebi a quantia acima referente aos serviços prestados."))

	signatureY := declarationY + 25
	pdf.Line(20, signatureY, 100, signatureY)
	pdf.Text(20, signatureY+10, tr("Assinatura do Prestador"))

	// Digital signature block
	digitalSigY := signatureY + 25
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(20, digitalSigY, tr("Documento assinado digitalmente pelo ReciboZap"))
	pdf.Text(20, digitalSigY+8, tr(fmt.Sprintf("Hash de verificação: %s", receipt.DocumentHash)))
	pdf.Text(20, digitalSigY+16, tr(fmt.Sprintf("Gerado em: %s", r.now().Format("02/01/2006 15:04:05"))))

	// Footer
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(150, 150, 150)
	centeredText(pdf, tr, 280, "Este documento foi gerado automaticamente pelo ReciboZap")
	centeredText(pdf, tr, 285, "www.recibozap.com.br")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func centeredText(pdf *fpdf.Fpdf, tr func(string) string, y float64, text string) {
	s := tr(text)
	w := pdf.GetStringWidth(s)
	pdf.Text(105-w/2, y, s)
}

// FormatAmountBR renders an amount with Brazilian separators: thousands with
// dots, cents with a comma (1234.5 -> "1.234,50").
func FormatAmountBR(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(s, ".", 2)
	intPart, cents := parts[0], parts[1]

	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ".") + "," + cents
	if neg {
		out = "-" + out
	}
	return out
}
