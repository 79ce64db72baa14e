package habit

import (
	"context"

	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	"github.com/saulo-duarte/planner-miniapp/internal/config"
)

const Collection = "/habits"

type Gateway interface {
	FetchByUser(ctx context.Context, userID int64) ([]Habit, error)
	Create(ctx context.Context, userID int64, data HabitData) (*Habit, error)
	Update(ctx context.Context, userID, habitID int64, patch HabitPatch) (*Habit, error)
	Delete(ctx context.Context, userID, habitID int64) (string, error)
}

type gateway struct {
	client *apiclient.Client
}

func NewGateway(client *apiclient.Client) Gateway {
	return &gateway{client: client}
}

func (g *gateway) FetchByUser(ctx context.Context, userID int64) ([]Habit, error) {
	var habits []Habit
	if err := g.client.Get(ctx, Collection, userID, &habits); err != nil {
		config.WithContext(ctx).WithError(err).Error("Error fetching habits")
		return nil, err
	}
	if habits == nil {
		habits = []Habit{}
	}
	return habits, nil
}

func (g *gateway) Create(ctx context.Context, userID int64, data HabitData) (*Habit, error) {
	log := config.WithContext(ctx)

	if err := data.Validate(); err != nil {
		log.WithError(err).Warn("Error creating habit")
		return nil, err
	}

	var created Habit
	if err := g.client.Post(ctx, Collection, userID, data, &created); err != nil {
		log.WithError(err).Error("Error creating habit")
		return nil, err
	}
	return &created, nil
}

func (g *gateway) Update(ctx context.Context, userID, habitID int64, patch HabitPatch) (*Habit, error) {
	var updated Habit
	if err := g.client.Put(ctx, apiclient.ItemPath(Collection, habitID), userID, patch, &updated); err != nil {
		config.WithContext(ctx).WithError(err).WithField("habit_id", habitID).Error("Error updating habit")
		return nil, err
	}
	return &updated, nil
}

func (g *gateway) Delete(ctx context.Context, userID, habitID int64) (string, error) {
	var resp apiclient.MessageResponse
	if err := g.client.Delete(ctx, apiclient.ItemPath(Collection, habitID), userID, &resp); err != nil {
		config.WithContext(ctx).WithError(err).WithField("habit_id", habitID).Error("Error deleting habit")
		return "", err
	}
	return resp.Message, nil
}
