// Package api exposes the search and price-comparison pipelines over
// HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"searchscout/internal/books"
	bookssearch "searchscout/internal/books/search"
	"searchscout/internal/clients/openbd"
	"searchscout/internal/common/logger"
	"searchscout/internal/gourmet"
	gourmetsearch "searchscout/internal/gourmet/search"
	"searchscout/internal/pricing"
)

type Handler struct {
	books         *books.Service
	gourmet       *gourmet.Service
	bookPrices    *pricing.Comparator
	gourmetPrices *pricing.Comparator
	logger        logger.Logger
}

func NewHandler(
	bookSvc *books.Service,
	gourmetSvc *gourmet.Service,
	bookPrices *pricing.Comparator,
	gourmetPrices *pricing.Comparator,
	log logger.Logger,
) *Handler {
	return &Handler{
		books:         bookSvc,
		gourmet:       gourmetSvc,
		bookPrices:    bookPrices,
		gourmetPrices: gourmetPrices,
		logger:        log,
	}
}

func (h *Handler) Search(c *gin.Context) {
	var req searchRequest
	c.ShouldBindJSON(&req)
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	result := h.books.Search(c.Request.Context(), req.Query)

	if result.Status == books.StatusISBNConfirmed {
		c.JSON(http.StatusOK, gin.H{
			"status":         result.Status,
			"isbn":           result.ISBN,
			"book_info":      bookInfoJSON(result.BookInfo),
			"extracted_info": result.ExtractedInfo,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         result.Status,
		"candidates":     candidatesJSON(result),
		"extracted_info": result.ExtractedInfo,
		"total_count":    len(result.Candidates),
	})
}

func (h *Handler) PriceComparison(c *gin.Context) {
	var req priceComparisonRequest
	c.ShouldBindJSON(&req)
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	quotes := h.bookPrices.Compare(c.Request.Context(), req.ISBN)
	record := h.books.BookInfo(c.Request.Context(), req.ISBN)

	c.JSON(http.StatusOK, gin.H{
		"isbn":             req.ISBN,
		"book_info":        bookInfoJSON(record),
		"price_comparison": quotes,
	})
}

func (h *Handler) RestaurantSearch(c *gin.Context) {
	var req searchRequest
	c.ShouldBindJSON(&req)
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	result := h.gourmet.Search(c.Request.Context(), req.Query)

	restaurants := result.Restaurants
	if restaurants == nil {
		restaurants = []gourmetsearch.Candidate{}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        result.Status,
		"restaurants":   restaurants,
		"search_params": result.SearchParams,
		"total_count":   len(result.Restaurants),
	})
}

func (h *Handler) RestaurantPriceComparison(c *gin.Context) {
	var req restaurantPriceComparisonRequest
	c.ShouldBindJSON(&req)
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	quotes := h.gourmetPrices.Compare(c.Request.Context(), req.RestaurantID)

	c.JSON(http.StatusOK, gin.H{
		"restaurant_id":    req.RestaurantID,
		"price_comparison": quotes,
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func candidatesJSON(result books.Result) []bookssearch.Candidate {
	if result.Candidates == nil {
		return []bookssearch.Candidate{}
	}
	return result.Candidates
}

func bookInfoJSON(record *openbd.Record) gin.H {
	if record == nil {
		return nil
	}
	return gin.H{
		"isbn":      record.ISBN,
		"title":     record.Title,
		"author":    record.Author,
		"publisher": record.Publisher,
		"pubdate":   record.PubDate,
		"cover":     record.Cover,
	}
}
