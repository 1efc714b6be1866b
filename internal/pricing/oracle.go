package pricing

import (
	"context"
	"fmt"
	"strconv"
)

// profile is a deterministic stand-in for a source without a live
// integration. The arithmetic is a placeholder keyed off the item id,
// not meaningful domain logic.
type profile struct {
	site        string
	urlFormat   string
	baseFactors []int

	// Discount band applied to the base factor. A zero discountMod
	// means the base factor is used as-is.
	discountBase float64
	discountMod  int
	discountSpan float64

	// Shipping: free at or above freeShipMin, otherwise shipFee.
	// perItemShip switches to the seller-paid roll used by flea-market
	// style sources.
	freeShipMin int
	shipFee     int
	perItemShip bool

	conditions []string

	// In stock when seed%100 exceeds stockFloor; negative means always.
	stockFloor int
}

func (p profile) Name() string { return p.site }

func (p profile) Quote(_ context.Context, itemID string) (*Quote, error) {
	n := seed(itemID)

	base := p.baseFactors[n%len(p.baseFactors)]
	price := base
	if p.discountMod > 0 {
		rate := p.discountBase + float64(n%p.discountMod)/100*p.discountSpan
		price = int(float64(base) * rate)
	}

	var shipping int
	switch {
	case p.perItemShip:
		if n%10 > 6 {
			shipping = 0
		} else {
			shipping = p.shipFee
		}
	case p.freeShipMin > 0 && price >= p.freeShipMin:
		shipping = 0
	default:
		shipping = p.shipFee
	}

	condition := p.conditions[n%len(p.conditions)]
	inStock := p.stockFloor < 0 || n%100 > p.stockFloor

	return &Quote{
		Site:       p.site,
		Price:      price,
		Shipping:   shipping,
		TotalPrice: price + shipping,
		Condition:  condition,
		InStock:    inStock,
		URL:        fmt.Sprintf(p.urlFormat, itemID),
	}, nil
}

// seed derives a deterministic integer from the digits in the last six
// characters of the item id.
func seed(itemID string) int {
	tail := itemID
	if len(tail) > 6 {
		tail = tail[len(tail)-6:]
	}
	digits := ""
	for _, r := range tail {
		if r >= '0' && r <= '9' {
			digits += string(r)
		}
	}
	if digits == "" {
		digits = "123456"
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 123456
	}
	return n
}

// bookProfiles is the fixed source order for book price comparison.
// The 楽天ブックス slot is replaced by the live source when configured.
var bookProfiles = []profile{
	{
		site:         "Amazon",
		urlFormat:    "https://www.amazon.co.jp/s?k=%s",
		baseFactors:  []int{1200, 1500, 1800, 2200, 2500, 2800, 3200, 3500, 4200, 4800, 5500, 6200},
		discountBase: 0.6, discountMod: 100, discountSpan: 0.3,
		freeShipMin: 2000, shipFee: 350,
		conditions: []string{"中古 - 非常に良い", "中古 - 良い", "中古 - 可", "新品"},
		stockFloor: 15,
	},
	{
		site:         "楽天ブックス",
		urlFormat:    "https://books.rakuten.co.jp/search?sitem=%s",
		baseFactors:  []int{1400, 1600, 2000, 2400, 2800, 3200, 3600, 4000},
		discountBase: 0.7, discountMod: 50, discountSpan: 0.25,
		freeShipMin: 3980, shipFee: 280,
		conditions: []string{"新品"},
		stockFloor: -1,
	},
	{
		site:        "ブックオフオンライン",
		urlFormat:   "https://www.bookoffonline.co.jp/display/L001,st=u,q=%s",
		baseFactors: []int{400, 600, 800, 1200, 1500, 1800},
		freeShipMin: 1500, shipFee: 350,
		conditions: []string{"中古 - 良い", "中古 - 可", "中古 - 傷あり"},
		stockFloor: 25,
	},
	{
		site:         "honto",
		urlFormat:    "https://honto.jp/netstore/search.html?k=%s",
		baseFactors:  []int{1300, 1700, 2100, 2600, 3100, 3600, 4200, 4800},
		discountBase: 0.75, discountMod: 40, discountSpan: 0.2,
		freeShipMin: 1500, shipFee: 220,
		conditions: []string{"新品", "中古 - 非常に良い", "中古 - 良い"},
		stockFloor: 12,
	},
	{
		site:         "TSUTAYA",
		urlFormat:    "https://store-tsutaya.tsite.jp/search?k=%s",
		baseFactors:  []int{1250, 1550, 1950, 2350, 2750, 3250, 3750, 4250},
		discountBase: 0.72, discountMod: 45, discountSpan: 0.23,
		freeShipMin: 1500, shipFee: 330,
		conditions: []string{"新品", "中古 - 良い", "中古 - 可"},
		stockFloor: 18,
	},
	{
		site:         "紀伊國屋書店",
		urlFormat:    "https://www.kinokuniya.co.jp/f/dsg-01-%s",
		baseFactors:  []int{1400, 1800, 2300, 2800, 3300, 3800, 4300, 5000},
		discountBase: 0.78, discountMod: 35, discountSpan: 0.17,
		freeShipMin: 2500, shipFee: 270,
		conditions: []string{"新品", "中古 - 非常に良い"},
		stockFloor: 20,
	},
	{
		site:         "ヨドバシ.com",
		urlFormat:    "https://www.yodobashi.com/category/25034/25166/?word=%s",
		baseFactors:  []int{1350, 1650, 2050, 2450, 2850, 3350, 3850, 4350},
		discountBase: 0.73, discountMod: 42, discountSpan: 0.22,
		conditions: []string{"新品"},
		stockFloor: 15,
	},
	{
		site:        "メルカリ",
		urlFormat:   "https://jp.mercari.com/search?keyword=%s",
		baseFactors: []int{300, 500, 800, 1200, 1600, 2000, 2500},
		shipFee:     175, perItemShip: true,
		conditions: []string{"中古 - 目立った傷や汚れなし", "中古 - やや傷や汚れあり", "新品、未使用"},
		stockFloor: 35,
	},
}

// gourmetProfiles is the fixed source order for reservation comparison.
// Prices are per-person dinner estimates.
var gourmetProfiles = []profile{
	{
		site:         "食べログ",
		urlFormat:    "https://tabelog.com/rstLst/?sk=%s",
		baseFactors:  []int{3000, 4000, 5000, 6500, 8000, 10000},
		discountBase: 0.9, discountMod: 20, discountSpan: 0.1,
		conditions: []string{"ディナーコース", "飲み放題付きコース", "席のみ予約"},
		stockFloor: 10,
	},
	{
		site:         "ぐるなび",
		urlFormat:    "https://r.gnavi.co.jp/search/?kw=%s",
		baseFactors:  []int{2800, 3800, 4800, 6000, 7500, 9500},
		discountBase: 0.85, discountMod: 30, discountSpan: 0.15,
		conditions: []string{"ディナーコース", "クーポン付きプラン", "席のみ予約"},
		stockFloor: 15,
	},
	{
		site:         "ホットペッパーグルメ",
		urlFormat:    "https://www.hotpepper.jp/SA11/keyword/?kw=%s",
		baseFactors:  []int{2500, 3500, 4500, 5500, 7000, 9000},
		discountBase: 0.8, discountMod: 40, discountSpan: 0.2,
		conditions: []string{"ポイント還元プラン", "ディナーコース", "席のみ予約"},
		stockFloor: 12,
	},
	{
		site:         "一休.com",
		urlFormat:    "https://restaurant.ikyu.com/search/?kw=%s",
		baseFactors:  []int{5000, 6500, 8000, 10000, 12000, 15000},
		discountBase: 0.75, discountMod: 25, discountSpan: 0.2,
		conditions: []string{"プレミアムディナー", "記念日プラン", "ディナーコース"},
		stockFloor: 20,
	},
}
