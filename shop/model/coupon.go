package model

import (
	"time"
)

type Coupon struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
