package snapshot

import (
	"strconv"
	"time"
)

const (
	OrdersKey = "orders"

	StatusTTL = 1800 * time.Second
	ListTTL   = 432000 * time.Second
)

func StatusKey(code string) string {
	return "order:" + code + ":status"
}

func DeliveredKey(orderID int64) string {
	return "keyOrder:" + strconv.FormatInt(orderID, 10)
}
