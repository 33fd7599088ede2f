package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/omarsakr/SakrStore/utils"
)

// DownloadOrderSummary generates a PDF snapshot of the current cart so the
// customer can keep a copy of what they are about to order. The cart is
// reconciled first, so the figures match what the checkout message carries.
func DownloadOrderSummary(c *gin.Context) {
	utils.LogInfo("Starting order summary download")

	store := cartStore(c)
	result, err := reconcileCart(c, store)
	if err != nil {
		catalogError(c, err)
		return
	}
	if len(result.Items) == 0 {
		utils.BadRequest(c, utils.ErrCartEmpty, nil)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Store info
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "Sakr Store")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "Cairo, Egypt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "ORDER SUMMARY")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, "Generated: "+time.Now().Format("2006-01-02 15:04:05"))
	pdf.Ln(10)

	// Items table header
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(80, 8, "Product", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "Price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "Total", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	for _, item := range result.Items {
		pdf.CellFormat(80, 8, tr(utils.Truncate(item.Product.Name, utils.MaxCardDescriptionLength)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%.2f", item.Total), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// Summary section
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(125, 8, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(25, 8, fmt.Sprintf("%.2f", result.Subtotal), "", 1, "R", false, 0, "")
	if result.Discount > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(125, 8, "Discount ("+result.CouponCode+"):", "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(25, 8, fmt.Sprintf("-%.2f", result.Discount), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(125, 10, "Total ("+utils.Currency+"):", "", 0, "L", false, 0, "")
	pdf.CellFormat(25, 10, fmt.Sprintf("%.2f", result.Total), "", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, "Thank you for shopping with Sakr Store!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Order summary PDF generation failed: %v", err)
		utils.InternalServerError(c, "Failed to generate order summary", err.Error())
		return
	}
	utils.LogInfo("Order summary PDF generated with %d line items", len(result.Items))

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=order-summary.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
