package user

import (
	"context"

	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	"github.com/saulo-duarte/planner-miniapp/internal/config"
)

const (
	Resource           = "/user"
	StatisticsResource = "/user/statistics"
)

type Gateway interface {
	Fetch(ctx context.Context, userID int64) (*User, error)
	Update(ctx context.Context, userID int64, patch UserPatch) (*User, error)
	Statistics(ctx context.Context, userID int64) ([]Statistic, error)
}

type gateway struct {
	client *apiclient.Client
}

func NewGateway(client *apiclient.Client) Gateway {
	return &gateway{client: client}
}

func (g *gateway) Fetch(ctx context.Context, userID int64) (*User, error) {
	var u User
	if err := g.client.Get(ctx, Resource, userID, &u); err != nil {
		config.WithContext(ctx).WithError(err).Error("Error fetching user")
		return nil, err
	}
	return &u, nil
}

func (g *gateway) Update(ctx context.Context, userID int64, patch UserPatch) (*User, error) {
	var u User
	if err := g.client.Put(ctx, Resource, userID, patch, &u); err != nil {
		config.WithContext(ctx).WithError(err).Error("Error updating user")
		return nil, err
	}
	return &u, nil
}

func (g *gateway) Statistics(ctx context.Context, userID int64) ([]Statistic, error) {
	var stats []Statistic
	if err := g.client.Get(ctx, StatisticsResource, userID, &stats); err != nil {
		config.WithContext(ctx).WithError(err).Error("Error fetching user statistics")
		return nil, err
	}
	if stats == nil {
		stats = []Statistic{}
	}
	return stats, nil
}
