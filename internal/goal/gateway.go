package goal

import (
	"context"

	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	"github.com/saulo-duarte/planner-miniapp/internal/config"
)

const Collection = "/goals"

type Gateway interface {
	FetchByUser(ctx context.Context, userID int64) ([]Goal, error)
	Create(ctx context.Context, userID int64, data GoalData) (*Goal, error)
	Update(ctx context.Context, userID, goalID int64, patch GoalPatch) (*Goal, error)
	Delete(ctx context.Context, userID, goalID int64) (string, error)
}

type gateway struct {
	client *apiclient.Client
}

func NewGateway(client *apiclient.Client) Gateway {
	return &gateway{client: client}
}

func (g *gateway) FetchByUser(ctx context.Context, userID int64) ([]Goal, error) {
	var goals []Goal
	if err := g.client.Get(ctx, Collection, userID, &goals); err != nil {
		config.WithContext(ctx).WithError(err).Error("Error fetching goals")
		return nil, err
	}
	if goals == nil {
		goals = []Goal{}
	}
	return goals, nil
}

func (g *gateway) Create(ctx context.Context, userID int64, data GoalData) (*Goal, error) {
	log := config.WithContext(ctx)

	if err := data.Validate(); err != nil {
		log.WithError(err).Warn("Error creating goal")
		return nil, err
	}

	var created Goal
	if err := g.client.Post(ctx, Collection, userID, data, &created); err != nil {
		log.WithError(err).Error("Error creating goal")
		return nil, err
	}

	log.WithField("goal_id", created.GoalID).Info("Goal created")
	return &created, nil
}

func (g *gateway) Update(ctx context.Context, userID, goalID int64, patch GoalPatch) (*Goal, error) {
	var updated Goal
	if err := g.client.Put(ctx, apiclient.ItemPath(Collection, goalID), userID, patch, &updated); err != nil {
		config.WithContext(ctx).WithError(err).WithField("goal_id", goalID).Error("Error updating goal")
		return nil, err
	}
	return &updated, nil
}

func (g *gateway) Delete(ctx context.Context, userID, goalID int64) (string, error) {
	var resp apiclient.MessageResponse
	if err := g.client.Delete(ctx, apiclient.ItemPath(Collection, goalID), userID, &resp); err != nil {
		config.WithContext(ctx).WithError(err).WithField("goal_id", goalID).Error("Error deleting goal")
		return "", err
	}
	return resp.Message, nil
}
