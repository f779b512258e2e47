package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/himalayan-adventures/trek-api/internal/booking"
	"github.com/himalayan-adventures/trek-api/internal/models"
	"github.com/himalayan-adventures/trek-api/internal/store"
)

type TrekHandler struct {
	store store.Store
}

func NewTrekHandler(s store.Store) *TrekHandler {
	return &TrekHandler{store: s}
}

type ListTreksInput struct {
	Difficulty string  `query:"difficulty" enum:"easy,moderate,strenuous," doc:"Filter by difficulty tier"`
	Season     string  `query:"season" doc:"Filter by best-season month, e.g. July"`
	Duration   string  `query:"duration" enum:"short,medium,long," doc:"Duration bucket: short (<=5d), medium (6-10d), long (>=11d)"`
	MinPrice   float64 `query:"min_price" doc:"Minimum base price"`
	MaxPrice   float64 `query:"max_price" doc:"Maximum base price"`
	Q          string  `query:"q" doc:"Text search over title, description and highlights"`
	Featured   bool    `query:"featured" doc:"Only featured treks"`
	Sort       string  `query:"sort" enum:"price,duration,altitude," doc:"Sort key"`
	Desc       bool    `query:"desc" doc:"Sort descending"`
	Limit      int     `query:"limit" minimum:"0" maximum:"100"`
	Offset     int     `query:"offset" minimum:"0"`
}

type ListTreksOutput struct {
	Body struct {
		Treks []models.Trek `json:"treks"`
		Count int           `json:"count"`
	}
}

func (h *TrekHandler) HandleListTreks(ctx context.Context, input *ListTreksInput) (*ListTreksOutput, error) {
	treks, err := h.store.ListTreks(ctx, store.TrekFilter{
		Difficulty:   input.Difficulty,
		Season:       input.Season,
		Duration:     input.Duration,
		MinPrice:     input.MinPrice,
		MaxPrice:     input.MaxPrice,
		Query:        input.Q,
		FeaturedOnly: input.Featured,
		SortBy:       input.Sort,
		SortDesc:     input.Desc,
		Limit:        input.Limit,
		Offset:       input.Offset,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list treks: " + err.Error())
	}

	res := &ListTreksOutput{}
	res.Body.Treks = treks
	res.Body.Count = len(treks)
	return res, nil
}

type GetTrekInput struct {
	Slug string `path:"slug" doc:"Trek slug, e.g. chandratal-lake-trek"`
}

type GetTrekOutput struct {
	Body models.Trek
}

func (h *TrekHandler) HandleGetTrek(ctx context.Context, input *GetTrekInput) (*GetTrekOutput, error) {
	trek, err := h.store.GetTrekBySlug(ctx, input.Slug)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("Trek not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load trek: " + err.Error())
	}
	return &GetTrekOutput{Body: *trek}, nil
}

type TrekReviewsInput struct {
	Slug string `path:"slug"`
}

type TrekReviewsOutput struct {
	Body struct {
		Reviews []models.Review `json:"reviews"`
	}
}

func (h *TrekHandler) HandleTrekReviews(ctx context.Context, input *TrekReviewsInput) (*TrekReviewsOutput, error) {
	trek, err := h.store.GetTrekBySlug(ctx, input.Slug)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("Trek not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load trek: " + err.Error())
	}

	reviews, err := h.store.ListTrekReviews(ctx, trek.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load reviews: " + err.Error())
	}

	res := &TrekReviewsOutput{}
	res.Body.Reviews = reviews
	return res, nil
}

type CatalogOutput struct {
	Body struct {
		Packages []booking.Package `json:"packages"`
		AddOns   []booking.AddOn   `json:"add_ons"`
	}
}

// HandleCatalog exposes the package tiers and add-ons the booking flow prices
// against.
func (h *TrekHandler) HandleCatalog(ctx context.Context, input *struct{}) (*CatalogOutput, error) {
	res := &CatalogOutput{}
	res.Body.Packages = booking.Packages
	res.Body.AddOns = booking.AddOns
	return res, nil
}
