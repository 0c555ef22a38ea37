package request

// EnrollRequest is the body for POST /enroll
type EnrollRequest struct {
	// ReferralToken is the start parameter carried at first contact,
	// e.g. "promo_12345". Optional.
	ReferralToken string `json:"referral_token,omitempty"`
}

// DeclareWinnerRequest is the body for POST /tables/{id}/winner
type DeclareWinnerRequest struct {
	// Winner selects the winning player: "@username", a bare username,
	// or a player id.
	Winner string `json:"winner"`
}
