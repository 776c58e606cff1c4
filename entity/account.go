package entity

import "github.com/shopspring/decimal"

// ClientAccount is the exported view of one client's balances.
type ClientAccount struct {
	Client    uint16          `json:"client"`
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
	Total     decimal.Decimal `json:"total"`
	Locked    bool            `json:"locked"`
}
