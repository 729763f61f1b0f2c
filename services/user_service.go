package services

import (
	"context"

	"github.com/art12345678655/wellness-mini-app/models"

	"gorm.io/gorm"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

func (s *UserService) CreateUser(ctx context.Context, email, fullName string) (*models.User, error) {
	u := &models.User{Email: email, FullName: fullName}
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateTargets overwrites the user's daily targets. Nil clears a target,
// which downstream reads treat as "no target set", not zero.
func (s *UserService) UpdateTargets(ctx context.Context, userID uint, calories, protein, carbs, fat *float64) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	u.CalorieTarget = calories
	u.ProteinTargetG = protein
	u.CarbsTargetG = carbs
	u.FatTargetG = fat

	if err := s.db.WithContext(ctx).Save(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
