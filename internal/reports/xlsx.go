package reports

import (
	"fmt"
	"io"

	"github.com/kilincfaruk/FuatAtolye/internal/ledger"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const statementSheet = "Ekstre"

// WriteStatementXLSX renders a customer's complete statement for the window,
// all pages in order plus the opening row, as a spreadsheet. Row content comes
// from the statement engine page by page; nothing is recomputed here.
func WriteStatementXLSX(w io.Writer, customer string, entries []ledger.Entry, window ledger.Window) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(statementSheet)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create statement sheet")
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Tarih", "Açıklama", "İşçilik", "Ödeme (Nakit)", "Has Borç", "Has Ödeme", "Gümüş", "Not"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(statementSheet, cell, h)
	}

	first := ledger.BuildStatement(customer, entries, window, 1)
	rowNo := 2
	var last StatementReport
	for page := 1; page <= first.PageCount; page++ {
		st := ledger.BuildStatement(customer, entries, window, page)
		report := BuildStatementReport(st)
		for _, row := range report.Rows {
			values := []any{row.Date, row.Description, row.CashCharge, row.CashPayment, row.GoldCharge, row.GoldPayment, row.SilverAmount, row.Note}
			for j, v := range values {
				cell, _ := excelize.CoordinatesToCellName(j+1, rowNo)
				f.SetCellValue(statementSheet, cell, v)
			}
			rowNo++
		}
		last = report
	}

	summaryRow := rowNo + 1
	f.SetCellValue(statementSheet, fmt.Sprintf("A%d", summaryRow), "Kapanış Bakiyesi")
	f.SetCellValue(statementSheet, fmt.Sprintf("C%d", summaryRow), last.ClosingCash)
	f.SetCellValue(statementSheet, fmt.Sprintf("E%d", summaryRow), last.ClosingGold)

	if err := f.Write(w); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write statement workbook")
	}
	return nil
}
