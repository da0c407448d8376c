package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/config"
	"github.com/shopspring/decimal"
)

type Space struct {
	ID          int             `gorm:"primary_key" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name" binding:"required"`
	Category    SpaceCategory   `gorm:"size:50;not null" json:"category" binding:"required"`
	PricePerDay decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price_per_day"`
	IsAvailable *bool           `gorm:"not null;default:true" json:"is_available"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewSpace struct {
	Name        string          `json:"name" binding:"required"`
	Category    SpaceCategory   `json:"category" binding:"required"`
	PricePerDay decimal.Decimal `json:"price_per_day"`
	IsAvailable *bool           `json:"is_available"`
}

func CreateSpace(ctx context.Context, input NewSpace) (*Space, error) {
	if !input.Category.Valid() {
		return nil, errors.New("invalid space category")
	}
	if input.PricePerDay.IsNegative() {
		return nil, errors.New("price per day must not be negative")
	}

	space := Space{
		Name:        input.Name,
		Category:    input.Category,
		PricePerDay: input.PricePerDay,
		IsAvailable: input.IsAvailable,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&space).Error; err != nil {
		return nil, err
	}
	return &space, nil
}

func GetSpaces(ctx context.Context) ([]Space, error) {
	var spaces []Space
	db := config.GetDB()
	if err := db.WithContext(ctx).Order("name").Find(&spaces).Error; err != nil {
		return nil, err
	}
	return spaces, nil
}

func GetSpace(ctx context.Context, id int) (*Space, error) {
	var space Space
	db := config.GetDB()
	if err := db.WithContext(ctx).First(&space, id).Error; err != nil {
		return nil, err
	}
	return &space, nil
}
