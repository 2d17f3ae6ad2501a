package govghprotocol

import "github.com/shopspring/decimal"

// Payment statuses reported by GovGH webhooks. The provider may introduce
// statuses we do not know yet; those map to Unknown.
const (
	Success PaymentStatus = "success"
	Failed  PaymentStatus = "failed"
	Pending PaymentStatus = "pending"
	Unknown PaymentStatus = "unknown"
)

type PaymentStatus string

const (
	RequestCreate = "create"

	// Status code the checkout endpoint returns on success.
	StatusOK = 0
)

type CheckoutRequest struct {
	Request       string        `json:"request"`
	APIKey        string        `json:"api_key"`
	MDABranchCode string        `json:"mda_branch_code"`
	FirstName     string        `json:"firstname"`
	LastName      string        `json:"lastname"`
	PhoneNumber   string        `json:"phonenumber"`
	Email         string        `json:"email"`
	ApplicationID string        `json:"application_id"`
	InvoiceItems  []InvoiceItem `json:"invoice_items"`
	RedirectURL   string        `json:"redirect_url"`
	PostURL       string        `json:"post_url"`
}

type InvoiceItem struct {
	ServiceCode   string          `json:"service_code"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Memo          string          `json:"memo"`
	AccountNumber string          `json:"account_number"`
}

type CheckoutResponse struct {
	Status        int    `json:"status"`
	CheckoutURL   string `json:"checkout_url"`
	InvoiceNumber string `json:"invoice_number"`
	Message       string `json:"message"`
}

type WebhookPayload struct {
	InvoiceNumber string `json:"invoice_number"`
	Status        string `json:"status"`
}
