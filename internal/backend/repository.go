package backend

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/saulo-duarte/planner-miniapp/internal/habit"
	"github.com/saulo-duarte/planner-miniapp/internal/task"
	"github.com/saulo-duarte/planner-miniapp/internal/user"
	util "github.com/saulo-duarte/planner-miniapp/internal/utils"
)

var ErrNotFound = errors.New("record not found")

// Repository stores one entity type. Every query is scoped to the owning
// user_id.
type Repository[T any] interface {
	ListByUser(ctx context.Context, userID int64) ([]T, error)
	FindByID(ctx context.Context, userID, id int64) (*T, error)
	Create(ctx context.Context, record *T) error
	Update(ctx context.Context, record *T) error
	Delete(ctx context.Context, userID, id int64) error
}

type repository[T any] struct {
	db       *gorm.DB
	idColumn string
}

func NewRepository[T any](db *gorm.DB, idColumn string) Repository[T] {
	return &repository[T]{db: db, idColumn: idColumn}
}

func (r *repository[T]) ListByUser(ctx context.Context, userID int64) ([]T, error) {
	records := []T{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order(r.idColumn).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository[T]) FindByID(ctx context.Context, userID, id int64) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).Where(r.idColumn+" = ? AND user_id = ?", id, userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository[T]) Create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository[T]) Update(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *repository[T]) Delete(ctx context.Context, userID, id int64) error {
	res := r.db.WithContext(ctx).Where(r.idColumn+" = ? AND user_id = ?", id, userID).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type UserRepository interface {
	FindOrCreate(ctx context.Context, telegramID int64) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindOrCreate(ctx context.Context, telegramID int64) (*user.User, error) {
	u := user.User{TelegramID: telegramID}
	if err := r.db.WithContext(ctx).Where("telegram_id = ?", telegramID).FirstOrCreate(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

type StatisticsRepository interface {
	// Snapshot records the user's counters for day, replacing an earlier
	// snapshot of the same day.
	Snapshot(ctx context.Context, userID int64, day util.Date) error
	ListByUser(ctx context.Context, userID int64) ([]user.Statistic, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) Snapshot(ctx context.Context, userID int64, day util.Date) error {
	db := r.db.WithContext(ctx)

	var completed, pending, habits int64
	if err := db.Model(&task.Task{}).Where("user_id = ? AND is_completed = ?", userID, true).Count(&completed).Error; err != nil {
		return err
	}
	if err := db.Model(&task.Task{}).Where("user_id = ? AND is_completed = ?", userID, false).Count(&pending).Error; err != nil {
		return err
	}
	if err := db.Model(&habit.Habit{}).Where("user_id = ? AND is_active = ?", userID, true).Count(&habits).Error; err != nil {
		return err
	}

	stat := user.Statistic{UserID: userID, Date: day}
	return db.Where("user_id = ? AND date = ?", userID, day).
		Assign(map[string]any{
			"tasks_completed":    completed,
			"tasks_pending":      pending,
			"habits_followed":    habits,
			"productivity_score": user.ProductivityScore(int(completed), int(pending)),
		}).
		FirstOrCreate(&stat).Error
}

func (r *statisticsRepository) ListByUser(ctx context.Context, userID int64) ([]user.Statistic, error) {
	stats := []user.Statistic{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date").Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
