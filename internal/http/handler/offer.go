// Package handler provides HTTP handler functions for the Keksobooking API.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/keksobooking/api/internal/apperr"
	"github.com/keksobooking/api/internal/domain"
	"github.com/keksobooking/api/internal/service"
	"github.com/keksobooking/api/internal/validation"
	"github.com/keksobooking/api/pkg/logger"
)

// OfferService defines the handler's dependency contract.
type OfferService interface {
	ListOffers(ctx context.Context, skip, limit int) (domain.OffersPage, error)
	GetOfferByDate(ctx context.Context, date int64) (domain.Offer, error)
	CreateOffer(ctx context.Context, fields map[string]any) (domain.Offer, error)
}

// Handler handles HTTP requests for offers.
type Handler struct {
	svc OfferService
}

// NewHandler constructs a Handler with the given OfferService.
func NewHandler(svc OfferService) *Handler {
	return &Handler{svc: svc}
}

// List handles listing offers with skip/limit slicing.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	payload := map[string]any{}
	if v, ok := c.GetQuery("limit"); ok {
		payload["limit"] = v
	}
	if v, ok := c.GetQuery("skip"); ok {
		payload["skip"] = v
	}
	validated, err := validation.Validate(payload, validation.GetOffers)
	if err != nil {
		_ = c.Error(err)
		return
	}

	skip := intField(validated, "skip", service.DefaultSkip)
	limit := intField(validated, "limit", service.DefaultLimit)
	page, err := h.svc.ListOffers(ctx, skip, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	logger.With(ctx, map[string]any{"count": len(page.Data), "total": page.Total, "skip": page.Skip, "limit": page.Limit}).Debug("offers listed")
	c.JSON(http.StatusOK, page)
}

// Get handles fetching an offer by its date key.
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	raw := c.Param("date")
	validated, err := validation.Validate(map[string]any{"date": raw}, validation.GetOffer)
	if err != nil {
		_ = c.Error(err)
		return
	}
	date := int64(validated["date"].(float64))

	offer, err := h.svc.GetOfferByDate(ctx, date)
	if err != nil {
		if errors.Is(err, service.ErrOfferNotFound) {
			_ = c.Error(apperr.NewNotFound(fmt.Sprintf("offer with date equals to %s wasn't found", raw)))
			return
		}
		_ = c.Error(err)
		return
	}
	logger.With(ctx, map[string]any{"date": date}).Debug("offer retrieved")
	c.JSON(http.StatusOK, offer)
}

// Create handles the creation of a new offer from a JSON or multipart payload.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	payload, err := offerPayload(c)
	if err != nil {
		logger.Error(ctx, "failed to read offer payload: %s", err.Error())
		_ = c.Error(apperr.NewBadRequest("invalid request body"))
		return
	}

	validated, err := validation.Validate(payload, validation.PostOffer)
	if err != nil {
		_ = c.Error(err)
		return
	}

	offer, err := h.svc.CreateOffer(ctx, validated)
	if err != nil {
		_ = c.Error(err)
		return
	}
	logger.With(ctx, map[string]any{"date": offer.Date, "type": offer.Type}).Info("offer created")

	// Echo back exactly the normalized fields plus the derived location.
	validated["location"] = offer.Location
	c.JSON(http.StatusOK, validated)
}

// offerPayload collects raw field values from a JSON object body or a
// multipart form. Form values stay strings (the validation engine coerces
// them); uploaded avatar/preview files contribute their metadata only.
func offerPayload(c *gin.Context) (map[string]any, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		payload := make(map[string]any, len(form.Value)+2)
		for name, values := range form.Value {
			switch len(values) {
			case 0:
			case 1:
				payload[name] = values[0]
			default:
				items := make([]any, len(values))
				for i, v := range values {
					items[i] = v
				}
				payload[name] = items
			}
		}
		for _, name := range []string{"avatar", "preview"} {
			if files := form.File[name]; len(files) > 0 {
				fh := files[0]
				payload[name] = map[string]any{
					"name":     fh.Filename,
					"mimetype": fh.Header.Get("Content-Type"),
				}
			}
		}
		return payload, nil
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func intField(fields map[string]any, name string, fallback int) int {
	if f, ok := fields[name].(float64); ok {
		return int(f)
	}
	return fallback
}
