package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/oguzkaya/canteen-server/internal/models"
)

// groupMealRows folds flat meal rows into one product-id list per meal group,
// each list sorted ascending.
func groupMealRows(meals []models.Meal) map[int][]int {
	groups := make(map[int][]int)
	for _, meal := range meals {
		groups[meal.MealGroupID] = append(groups[meal.MealGroupID], meal.ProductID)
	}
	for _, products := range groups {
		sort.Ints(products)
	}
	return groups
}

// matchMealGroup reports the id of the meal group whose product multiset is
// exactly productIDs. Order-independent, duplicate-sensitive: a group holding
// duplicate product ids only matches inputs with the same duplicates, and a
// group with extra products never matches a subset of itself.
func matchMealGroup(meals []models.Meal, productIDs []int) (int, bool) {
	want := append([]int(nil), productIDs...)
	sort.Ints(want)

	for groupID, products := range groupMealRows(meals) {
		if len(products) != len(want) {
			continue
		}
		match := true
		for i := range products {
			if products[i] != want[i] {
				match = false
				break
			}
		}
		if match {
			return groupID, true
		}
	}

	return 0, false
}

func mealResponse(groupID int, productIDs []int) *models.MealResponse {
	sorted := append([]int(nil), productIDs...)
	sort.Ints(sorted)
	return &models.MealResponse{
		ID:         groupID,
		ProductIDs: sorted,
	}
}

func (s *DefaultService) GetAllMeals(ctx context.Context) ([]models.MealResponse, error) {
	meals, err := s.repo.GetAllMeals(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting meals: %w", err)
	}

	groups := groupMealRows(meals)
	ids := make([]int, 0, len(groups))
	for groupID := range groups {
		ids = append(ids, groupID)
	}
	sort.Ints(ids)

	responses := make([]models.MealResponse, 0, len(ids))
	for _, groupID := range ids {
		responses = append(responses, *mealResponse(groupID, groups[groupID]))
	}

	return responses, nil
}

func (s *DefaultService) GetMealByID(ctx context.Context, mealGroupID int) (*models.MealResponse, error) {
	meals, err := s.repo.GetMealsByGroupID(ctx, mealGroupID)
	if err != nil {
		return nil, fmt.Errorf("error getting meal: %w", err)
	}

	if len(meals) == 0 {
		return nil, nil // Meal not found
	}

	productIDs := make([]int, 0, len(meals))
	for _, meal := range meals {
		productIDs = append(productIDs, meal.ProductID)
	}

	return mealResponse(mealGroupID, productIDs), nil
}

func (s *DefaultService) GetMealsByProductID(ctx context.Context, productID int) ([]models.Meal, error) {
	meals, err := s.repo.GetMealsByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("error getting meals: %w", err)
	}

	return meals, nil
}

// CreateMeal resolves the product set to an existing meal group or creates a
// new one. Calling it twice with the same set never produces duplicate groups.
func (s *DefaultService) CreateMeal(ctx context.Context, req models.CreateMealRequest) (*models.MealResponse, error) {
	candidates, err := s.repo.GetMealsByProductIDs(ctx, req.ProductIDs)
	if err != nil {
		return nil, fmt.Errorf("error matching meal: %w", err)
	}

	if groupID, ok := matchMealGroup(candidates, req.ProductIDs); ok {
		return mealResponse(groupID, req.ProductIDs), nil
	}

	groupID, err := s.repo.CreateMealGroup(ctx, req.ProductIDs)
	if err != nil {
		return nil, fmt.Errorf("error creating meal: %w", err)
	}

	return mealResponse(groupID, req.ProductIDs), nil
}

func (s *DefaultService) DeleteMeal(ctx context.Context, mealGroupID int) (bool, error) {
	deleted, err := s.repo.DeleteMealGroup(ctx, mealGroupID)
	if err != nil {
		return false, fmt.Errorf("error deleting meal: %w", err)
	}

	return deleted, nil
}
