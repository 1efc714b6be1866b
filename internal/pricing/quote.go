// Package pricing compares price and availability for one item across a
// fixed ordered list of named sources.
package pricing

// Quote is one source's answer for a single item.
type Quote struct {
	Site       string `json:"site"`
	Price      int    `json:"price"`
	Shipping   int    `json:"shipping"`
	TotalPrice int    `json:"total_price"`
	Condition  string `json:"condition"`
	InStock    bool   `json:"in_stock"`
	URL        string `json:"url"`
	IsCheapest bool   `json:"is_cheapest"`
}

// flagCheapest marks every quote whose total matches the minimum.
// Ties are all flagged.
func flagCheapest(quotes []Quote) {
	if len(quotes) == 0 {
		return
	}
	min := quotes[0].TotalPrice
	for _, q := range quotes[1:] {
		if q.TotalPrice < min {
			min = q.TotalPrice
		}
	}
	for i := range quotes {
		quotes[i].IsCheapest = quotes[i].TotalPrice == min
	}
}
