package response

type PaymentRedirectResponse struct {
	RedirectURL string `json:"redirectUrl"`
}
