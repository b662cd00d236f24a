package food

import (
	"SaveBite/domain"
	"SaveBite/entities"
	"SaveBite/pkg/expiry"
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, auth domain.AuthContext, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, auth domain.AuthContext, id uint, req domain.UpdateFoodItemRequest) (domain.FoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, auth domain.AuthContext, id uint) error
		GetFoodItems(ctx context.Context, auth domain.AuthContext) ([]domain.FoodItemResponse, error)
		GetGroupedFoodItems(ctx context.Context, auth domain.AuthContext) (domain.GroupedFoodItemsResponse, error)
		GetFoodItemByID(ctx context.Context, auth domain.AuthContext, id uint) (domain.FoodItemResponse, error)
		GetDashboardStats(ctx context.Context, auth domain.AuthContext) (domain.DashboardStatsResponse, error)
		GetAllFoodItems(ctx context.Context) ([]domain.AdminFoodItemResponse, error)
	}

	// CategoryLookup resolves the category a food item is filed under.
	CategoryLookup interface {
		GetCategoryByID(ctx context.Context, id uint) (*entities.Category, error)
	}

	// Rescheduler rebuilds a user's expiry reminders.
	Rescheduler interface {
		RescheduleForUser(ctx context.Context, auth domain.AuthContext) (domain.RescheduleResult, error)
	}

	foodService struct {
		foodRepository FoodRepository
		categories     CategoryLookup
		reminders      Rescheduler
		now            func() time.Time
		logger         *zap.Logger
	}
)

func NewFoodService(
	foodRepository FoodRepository,
	categories CategoryLookup,
	reminders Rescheduler,
	clock func() time.Time,
	logger *zap.Logger,
) FoodService {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &foodService{
		foodRepository: foodRepository,
		categories:     categories,
		reminders:      reminders,
		now:            clock,
		logger:         logger,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, auth domain.AuthContext, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
	if req.Quantity < 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}
	if _, err := expiry.ParseDate(req.ExpiryDate, s.now().Location()); err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	category, err := s.lookupCategory(ctx, req.CategoryID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	foodItem := &entities.FoodItem{
		UserID:     auth.UserID,
		CategoryID: category.ID,
		Name:       strings.TrimSpace(req.Name),
		Quantity:   req.Quantity,
		ExpiryDate: strings.TrimSpace(req.ExpiryDate),
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}
	foodItem.Category = category

	s.reschedule(ctx, auth)
	return s.toResponse(foodItem, s.now()), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, auth domain.AuthContext, id uint, req domain.UpdateFoodItemRequest) (domain.FoodItemResponse, error) {
	foodItem, err := s.ownedFoodItem(ctx, auth, id)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	if req.Name != "" {
		foodItem.Name = strings.TrimSpace(req.Name)
	}

	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
		}
		foodItem.Quantity = *req.Quantity
	}

	if req.ExpiryDate != "" {
		if _, err := expiry.ParseDate(req.ExpiryDate, s.now().Location()); err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
		}
		foodItem.ExpiryDate = strings.TrimSpace(req.ExpiryDate)
	}

	if req.CategoryID != 0 && req.CategoryID != foodItem.CategoryID {
		category, err := s.lookupCategory(ctx, req.CategoryID)
		if err != nil {
			return domain.FoodItemResponse{}, err
		}
		foodItem.CategoryID = category.ID
		foodItem.Category = category
	}

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	s.reschedule(ctx, auth)
	return s.toResponse(foodItem, s.now()), nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, auth domain.AuthContext, id uint) error {
	if _, err := s.ownedFoodItem(ctx, auth, id); err != nil {
		return err
	}

	if err := s.foodRepository.DeleteFoodItem(ctx, id); err != nil {
		return err
	}

	s.reschedule(ctx, auth)
	return nil
}

func (s *foodService) GetFoodItems(ctx context.Context, auth domain.AuthContext) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItemsByUser(ctx, auth.UserID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, s.toResponse(item, now))
	}

	s.reschedule(ctx, auth)
	return response, nil
}

func (s *foodService) GetGroupedFoodItems(ctx context.Context, auth domain.AuthContext) (domain.GroupedFoodItemsResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItemsByUser(ctx, auth.UserID)
	if err != nil {
		return domain.GroupedFoodItemsResponse{}, err
	}

	records := make([]domain.FoodRecord, 0, len(foodItems))
	for _, item := range foodItems {
		records = append(records, toRecord(item))
	}

	now := s.now()
	groups := expiry.GroupByStatus(records, now)

	s.reschedule(ctx, auth)
	return domain.GroupedFoodItemsResponse{
		Expired: recordsToResponses(groups.Expired, now),
		Warning: recordsToResponses(groups.Warning, now),
		Fresh:   recordsToResponses(groups.Fresh, now),
		Total:   groups.Len(),
	}, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, auth domain.AuthContext, id uint) (domain.FoodItemResponse, error) {
	foodItem, err := s.ownedFoodItem(ctx, auth, id)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	return s.toResponse(foodItem, s.now()), nil
}

func (s *foodService) GetDashboardStats(ctx context.Context, auth domain.AuthContext) (domain.DashboardStatsResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItemsByUser(ctx, auth.UserID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	now := s.now()
	stats := domain.DashboardStatsResponse{TotalItems: len(foodItems)}
	for _, item := range foodItems {
		status, err := expiry.Classify(item.ExpiryDate, now)
		if err != nil {
			stats.UnknownExpiryItems++
			stats.FreshItems++
			continue
		}
		switch status.Tag {
		case domain.ExpiryExpired:
			stats.ExpiredItems++
		case domain.ExpiryWarning:
			stats.WarningItems++
		default:
			stats.FreshItems++
		}
	}
	return stats, nil
}

func (s *foodService) GetAllFoodItems(ctx context.Context) ([]domain.AdminFoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetAllFoodItems(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	response := make([]domain.AdminFoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, domain.AdminFoodItemResponse{
			FoodItemResponse: s.toResponse(item, now),
			UserID:           item.UserID,
		})
	}
	return response, nil
}

func (s *foodService) ownedFoodItem(ctx context.Context, auth domain.AuthContext, id uint) (*entities.FoodItem, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}

	if foodItem.UserID != auth.UserID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return foodItem, nil
}

func (s *foodService) lookupCategory(ctx context.Context, id uint) (*entities.Category, error) {
	category, err := s.categories.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// reschedule refreshes the caller's reminders. Failures are logged only:
// reminders never block working with the food list.
func (s *foodService) reschedule(ctx context.Context, auth domain.AuthContext) {
	if s.reminders == nil {
		return
	}
	if _, err := s.reminders.RescheduleForUser(ctx, auth); err != nil {
		s.logger.Warn("reschedule reminders failed",
			zap.Uint("user_id", auth.UserID),
			zap.Error(err),
		)
	}
}

func (s *foodService) toResponse(item *entities.FoodItem, now time.Time) domain.FoodItemResponse {
	return recordToResponse(toRecord(item), now)
}

func toRecord(item *entities.FoodItem) domain.FoodRecord {
	record := domain.FoodRecord{
		ID:         int(item.ID),
		Name:       item.Name,
		ExpiryDate: item.ExpiryDate,
		Quantity:   item.Quantity,
	}
	if item.Category != nil {
		record.CategoryName = item.Category.Name
	}
	return record
}

func recordToResponse(record domain.FoodRecord, now time.Time) domain.FoodItemResponse {
	response := domain.FoodItemResponse{
		ID:           uint(record.ID),
		Name:         record.Name,
		ExpiryDate:   record.ExpiryDate,
		Quantity:     record.Quantity,
		CategoryName: record.CategoryName,
	}
	if status, err := expiry.Classify(record.ExpiryDate, now); err == nil {
		response.Status = &status
	}
	return response
}

func recordsToResponses(records []domain.FoodRecord, now time.Time) []domain.FoodItemResponse {
	response := make([]domain.FoodItemResponse, 0, len(records))
	for _, record := range records {
		response = append(response, recordToResponse(record, now))
	}
	return response
}
