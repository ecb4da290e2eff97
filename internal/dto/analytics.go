package dto

type ImpactTotals struct {
	Listings  int64 `json:"listings"`
	Available int64 `json:"available"`
	Claimed   int64 `json:"claimed"`
	Completed int64 `json:"completed"`
}

type ImpactMetrics struct {
	QuantityDiverted float64 `json:"quantity_diverted"`
	UniqueDonors     int64   `json:"unique_donors"`
	UniqueRecipients int64   `json:"unique_recipients"`
}

type ImpactResponse struct {
	Totals ImpactTotals  `json:"totals"`
	Impact ImpactMetrics `json:"impact"`
}
