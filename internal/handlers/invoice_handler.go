package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// InvoiceHandler handles invoice PDF uploads and retrieval.
type InvoiceHandler struct {
	invoiceService     services.InvoiceServicer
	activityLogService services.ActivityLogServicer
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService services.InvoiceServicer, activityLogService services.ActivityLogServicer) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:     invoiceService,
		activityLogService: activityLogService,
	}
}

// personIDFromForm parses the optional person_id multipart field.
func personIDFromForm(c *gin.Context) (*uint, error) {
	v := c.PostForm("person_id")
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "person_id must be a positive integer")
	}
	id := uint(n)
	return &id, nil
}

// UploadInvoice handles attaching an invoice PDF to an expense. Expects a
// multipart form with an "invoice" file field, an expense_id field, and
// an optional person_id field.
// @Summary     Upload an invoice PDF
// @Tags        invoices
// @Accept      mpfd
// @Produce     json
// @Param       invoice    formData file true  "Invoice PDF"
// @Param       expense_id formData int  true  "Expense ID"
// @Param       person_id  formData int  false "Person ID"
// @Success     201 {object} models.Invoice "Invoice stored"
// @Failure     400 {object} ErrorResponse "Not a PDF or invalid fields"
// @Failure     404 {object} ErrorResponse "Expense or person not found"
// @Failure     413 {object} ErrorResponse "File too large"
// @Failure     507 {object} ErrorResponse "Insufficient storage"
// @Router      /invoices [post]
func (h *InvoiceHandler) UploadInvoice(c *gin.Context) {
	expenseID, err := strconv.ParseUint(c.PostForm("expense_id"), 10, 32)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "expense_id must be a positive integer"))
		return
	}

	personID, err := personIDFromForm(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, originalName, err := readUploadedFile(c, "invoice")
	if err != nil {
		respondWithError(c, err)
		return
	}

	invoice, err := h.invoiceService.UploadInvoice(uint(expenseID), personID, data, originalName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("invoice_uploaded", "invoice", invoice.ID,
		"Uploaded invoice "+invoice.OriginalFilename,
		map[string]any{"expense_id": expenseID})

	c.JSON(http.StatusCreated, gin.H{"invoice": invoice})
}

// GetInvoice handles retrieving invoice metadata.
// @Summary     Get invoice by ID
// @Tags        invoices
// @Produce     json
// @Param       id path int true "Invoice ID"
// @Success     200 {object} models.Invoice "Invoice metadata"
// @Failure     404 {object} ErrorResponse "Invoice not found"
// @Router      /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// GetInvoiceFile streams the invoice PDF inline. A row whose file has gone
// missing on disk is a distinct 404 from an unknown invoice ID.
// @Summary     Download an invoice PDF
// @Tags        invoices
// @Produce     application/pdf
// @Param       id path int true "Invoice ID"
// @Success     200 {file} file "Invoice PDF"
// @Failure     404 {object} ErrorResponse "Invoice or file not found"
// @Router      /invoices/{id}/file [get]
func (h *InvoiceHandler) GetInvoiceFile(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	f, info, invoice, err := h.invoiceService.OpenInvoiceFile(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `inline; filename="`+invoice.OriginalFilename+`"`)
	c.Header("Cache-Control", "private, max-age=300")
	c.DataFromReader(http.StatusOK, info.Size(), "application/pdf", f, nil)
}

// ReplaceInvoice handles swapping an invoice's document for a new PDF.
// The old file is only removed once the new one is safely stored.
// @Summary     Replace an invoice PDF
// @Tags        invoices
// @Accept      mpfd
// @Produce     json
// @Param       id        path     int  true  "Invoice ID"
// @Param       invoice   formData file true  "Replacement PDF"
// @Param       person_id formData int  false "Person ID"
// @Success     200 {object} models.Invoice "Invoice updated"
// @Failure     400 {object} ErrorResponse "Not a PDF"
// @Failure     404 {object} ErrorResponse "Invoice not found"
// @Failure     413 {object} ErrorResponse "File too large"
// @Router      /invoices/{id} [put]
func (h *InvoiceHandler) ReplaceInvoice(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	personID, err := personIDFromForm(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, originalName, err := readUploadedFile(c, "invoice")
	if err != nil {
		respondWithError(c, err)
		return
	}

	invoice, err := h.invoiceService.ReplaceInvoice(id, personID, data, originalName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("invoice_replaced", "invoice", id,
		"Replaced invoice with "+invoice.OriginalFilename,
		map[string]any{"expense_id": invoice.ExpenseID})

	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// DeleteInvoice handles deleting an invoice row and its stored file.
// @Summary     Delete an invoice
// @Tags        invoices
// @Produce     json
// @Param       id path int true "Invoice ID"
// @Success     200 {object} MessageResponse "Invoice deleted"
// @Failure     404 {object} ErrorResponse "Invoice not found"
// @Router      /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.invoiceService.DeleteInvoice(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("invoice_deleted", "invoice", id, "Deleted invoice", nil)

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

// GetInvoicesByExpense handles listing an expense's invoices.
// @Summary     List invoices for an expense
// @Tags        invoices
// @Produce     json
// @Param       id path int true "Expense ID"
// @Success     200 {object} map[string]any "Invoices"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id}/invoices [get]
func (h *InvoiceHandler) GetInvoicesByExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	invoices, err := h.invoiceService.GetInvoicesByExpense(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}
