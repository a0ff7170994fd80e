package service

import (
	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/pkg/api"
)

func expenseToAPI(e *models.Expense) *api.Expense {
	return &api.Expense{
		ID:          e.ID,
		PayerID:     e.PayerID,
		Amount:      e.Amount,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		SharedWith:  e.SharedWith,
	}
}

func repaymentToAPI(r *models.Repayment) *api.Repayment {
	return &api.Repayment{
		ID:        r.ID,
		FromID:    r.FromID,
		ToID:      r.ToID,
		Amount:    r.Amount,
		Note:      r.Note,
		CreatedAt: r.CreatedAt,
	}
}

func itemToAPI(item *models.ItineraryItem) *api.ItineraryItem {
	return &api.ItineraryItem{
		ID:       item.ID,
		Day:      int32(item.Day),
		Time:     item.Time,
		Title:    item.Title,
		Location: item.Location,
		Type:     string(item.Type),
		Notes:    item.Notes,
	}
}

func itemsToAPI(items []*models.ItineraryItem) []*api.ItineraryItem {
	out := make([]*api.ItineraryItem, len(items))
	for i, item := range items {
		out[i] = itemToAPI(item)
	}
	return out
}

func placeToAPI(p models.Place) *api.Place {
	return &api.Place{
		Name:            p.Name,
		Address:         p.Address,
		Rating:          p.Rating,
		UserRatingCount: int32(p.UserRatingCount),
		GoogleMapsURI:   p.MapsURI,
		Day:             int32(p.Day),
		Source:          string(p.Source),
	}
}

func placesToAPI(places []models.Place) []*api.Place {
	out := make([]*api.Place, len(places))
	for i, p := range places {
		out[i] = placeToAPI(p)
	}
	return out
}
