package schedule

import (
	"context"

	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	"github.com/saulo-duarte/planner-miniapp/internal/config"
)

const Collection = "/schedules"

type Gateway interface {
	FetchByUser(ctx context.Context, userID int64) ([]Schedule, error)
	Create(ctx context.Context, userID int64, data ScheduleData) (*Schedule, error)
	Update(ctx context.Context, userID, scheduleID int64, patch SchedulePatch) (*Schedule, error)
	Delete(ctx context.Context, userID, scheduleID int64) (string, error)
}

type gateway struct {
	client *apiclient.Client
}

func NewGateway(client *apiclient.Client) Gateway {
	return &gateway{client: client}
}

func (g *gateway) FetchByUser(ctx context.Context, userID int64) ([]Schedule, error) {
	var schedules []Schedule
	if err := g.client.Get(ctx, Collection, userID, &schedules); err != nil {
		config.WithContext(ctx).WithError(err).Error("Error fetching schedules")
		return nil, err
	}
	if schedules == nil {
		schedules = []Schedule{}
	}
	return schedules, nil
}

func (g *gateway) Create(ctx context.Context, userID int64, data ScheduleData) (*Schedule, error) {
	log := config.WithContext(ctx)

	if err := data.Validate(); err != nil {
		log.WithError(err).Warn("Error creating schedule")
		return nil, err
	}

	var created Schedule
	if err := g.client.Post(ctx, Collection, userID, data, &created); err != nil {
		log.WithError(err).Error("Error creating schedule")
		return nil, err
	}
	return &created, nil
}

func (g *gateway) Update(ctx context.Context, userID, scheduleID int64, patch SchedulePatch) (*Schedule, error) {
	var updated Schedule
	if err := g.client.Put(ctx, apiclient.ItemPath(Collection, scheduleID), userID, patch, &updated); err != nil {
		config.WithContext(ctx).WithError(err).WithField("schedule_id", scheduleID).Error("Error updating schedule")
		return nil, err
	}
	return &updated, nil
}

func (g *gateway) Delete(ctx context.Context, userID, scheduleID int64) (string, error) {
	var resp apiclient.MessageResponse
	if err := g.client.Delete(ctx, apiclient.ItemPath(Collection, scheduleID), userID, &resp); err != nil {
		config.WithContext(ctx).WithError(err).WithField("schedule_id", scheduleID).Error("Error deleting schedule")
		return "", err
	}
	return resp.Message, nil
}
