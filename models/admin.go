package models

// OutstandingBalance pairs a lead with how much of its computed total is unpaid.
type OutstandingBalance struct {
	LeadID       string `json:"leadId"`
	CheckoutCode string `json:"checkoutCode"`
	FullName     string `json:"fullName"`
	Total        int64  `json:"total"`
	AmountPaid   int64  `json:"amountPaid"`
	Outstanding  int64  `json:"outstanding"`
}

// DashboardStats is the aggregate view recomputed for every dashboard render.
type DashboardStats struct {
	TotalLeads     int                   `json:"totalLeads"`
	TotalPax       int                   `json:"totalPax"`
	ByStatus       map[LeadStatus]int    `json:"byStatus"`
	ByPayment      map[PaymentStatus]int `json:"byPayment"`
	TotalRevenue   int64                 `json:"totalRevenue"`
	PaidRevenue    int64                 `json:"paidRevenue"`
	ConversionRate float64               `json:"conversionRate"`
	Outstanding    []OutstandingBalance  `json:"outstanding"`
}
