package models

// MoneyData is the derived money aggregate. It is never stored; every field is
// recomputed from the transaction ledger and the wishlist on each read.
type MoneyData struct {
	TotalLiquid    float64 `json:"totalLiquid"`
	TotalNonLiquid float64 `json:"totalNonLiquid"`
	TotalMoney     float64 `json:"totalMoney"`
	TotalAllocated float64 `json:"totalAllocated"`
	Unallocated    float64 `json:"unallocated"`
}
