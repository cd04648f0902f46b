package http

import "prodcheck/internal/modules/verify/domain"

// ResultView is what the result page shows for one status.
type ResultView struct {
	Code    string `json:"code"`
	Status  string `json:"status"`
	Class   string `json:"class"`
	Icon    string `json:"icon"`
	Label   string `json:"label"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func viewFor(r domain.Result) ResultView {
	v := ResultView{Code: r.Code, Status: r.Status.Wire()}
	if v.Code == "" {
		v.Code = "N/A"
	}
	switch r.Status {
	case domain.StatusFresh:
		v.Class = "verified"
		v.Icon = "✓"
		v.Label = "Verified & Authentic"
		v.Title = "100% Genuine Product"
		v.Message = "Congratulations! Your product has been successfully verified as authentic and genuine."
	case domain.StatusExpired:
		v.Class = "expired"
		v.Icon = "⏳"
		v.Label = "Expired Code"
		v.Title = "Expired Code"
		v.Message = "This code was genuine but has already been used earlier. Please check with the retailer if needed."
	default:
		v.Class = "invalid"
		v.Icon = "⚠️"
		v.Label = "Invalid Code"
		v.Title = "Invalid Code"
		v.Message = "Sorry! The code you entered is invalid. Please try again or contact support."
	}
	return v
}
