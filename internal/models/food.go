package models

import "github.com/AnshRaj112/tripboard-backend/internal/store"

// FoodRecommendation is a dish worth trying and where to get it.
type FoodRecommendation struct {
	ID         string `json:"id"`
	Food       string `json:"food"`
	WhereToGet string `json:"where_to_get"`
}

func (r FoodRecommendation) Fields() store.Fields {
	return store.Fields{"food": r.Food, "where_to_get": r.WhereToGet}
}

func FoodRecommendationFromFields(id string, doc store.Fields) FoodRecommendation {
	return FoodRecommendation{
		ID:         id,
		Food:       doc.String("food"),
		WhereToGet: doc.String("where_to_get"),
	}
}

type FoodForm struct {
	Food       string `json:"food" yaml:"food" validate:"required"`
	WhereToGet string `json:"where_to_get" yaml:"where_to_get" validate:"required"`
}

func FoodFormFrom(r FoodRecommendation) FoodForm {
	return FoodForm{Food: r.Food, WhereToGet: r.WhereToGet}
}

func (f FoodForm) FoodRecommendation() (FoodRecommendation, error) {
	if err := check(f, "Please make sure both food name and location are filled."); err != nil {
		return FoodRecommendation{}, err
	}
	return FoodRecommendation{Food: f.Food, WhereToGet: f.WhereToGet}, nil
}
