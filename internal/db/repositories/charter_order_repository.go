package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"

	"github.com/pfjetdev/pfjet-sub000/internal/constants"
	"github.com/pfjetdev/pfjet-sub000/internal/models/gorm"
)

type CharterOrderRepository struct {
	db *gormlib.DB
}

func NewCharterOrderRepository(db *gormlib.DB) *CharterOrderRepository {
	return &CharterOrderRepository{db: db}
}

func (r *CharterOrderRepository) Create(ctx context.Context, order *gorm.CharterOrder) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = constants.OrderStatusNew
	}
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *CharterOrderRepository) FindByID(ctx context.Context, id string) (*gorm.CharterOrder, error) {
	var order gorm.CharterOrder
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// List returns orders newest-first, optionally filtered by status.
func (r *CharterOrderRepository) List(ctx context.Context, status string) ([]gorm.CharterOrder, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []gorm.CharterOrder
	err := q.Find(&orders).Error
	return orders, err
}

// UpdateStatus moves an order through the inquiry workflow. Unknown
// statuses are rejected before touching the database.
func (r *CharterOrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if _, ok := constants.ValidOrderStatuses[status]; !ok {
		return fmt.Errorf("invalid order status %q", status)
	}
	res := r.db.WithContext(ctx).
		Model(&gorm.CharterOrder{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gormlib.ErrRecordNotFound
	}
	return nil
}

func (r *CharterOrderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&gorm.CharterOrder{}, "id = ?", id).Error
}
