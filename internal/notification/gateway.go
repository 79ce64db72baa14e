package notification

import (
	"context"

	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	"github.com/saulo-duarte/planner-miniapp/internal/config"
)

const Collection = "/notifications"

type Gateway interface {
	FetchByUser(ctx context.Context, userID int64) ([]Setting, error)
	Create(ctx context.Context, userID int64, data SettingData) (*Setting, error)
	Update(ctx context.Context, userID, settingID int64, patch SettingPatch) (*Setting, error)
	Delete(ctx context.Context, userID, settingID int64) (string, error)
}

type gateway struct {
	client *apiclient.Client
}

func NewGateway(client *apiclient.Client) Gateway {
	return &gateway{client: client}
}

func (g *gateway) FetchByUser(ctx context.Context, userID int64) ([]Setting, error) {
	var settings []Setting
	if err := g.client.Get(ctx, Collection, userID, &settings); err != nil {
		config.WithContext(ctx).WithError(err).Error("Error fetching notification settings")
		return nil, err
	}
	if settings == nil {
		settings = []Setting{}
	}
	return settings, nil
}

func (g *gateway) Create(ctx context.Context, userID int64, data SettingData) (*Setting, error) {
	log := config.WithContext(ctx)

	if err := data.Validate(); err != nil {
		log.WithError(err).Warn("Error creating notification setting")
		return nil, err
	}

	var created Setting
	if err := g.client.Post(ctx, Collection, userID, data, &created); err != nil {
		log.WithError(err).Error("Error creating notification setting")
		return nil, err
	}
	return &created, nil
}

// Update sends the patch with the caller's tguser_id like every other
// entity endpoint.
func (g *gateway) Update(ctx context.Context, userID, settingID int64, patch SettingPatch) (*Setting, error) {
	var updated Setting
	if err := g.client.Put(ctx, apiclient.ItemPath(Collection, settingID), userID, patch, &updated); err != nil {
		config.WithContext(ctx).WithError(err).WithField("setting_id", settingID).Error("Error updating notification setting")
		return nil, err
	}
	return &updated, nil
}

func (g *gateway) Delete(ctx context.Context, userID, settingID int64) (string, error) {
	var resp apiclient.MessageResponse
	if err := g.client.Delete(ctx, apiclient.ItemPath(Collection, settingID), userID, &resp); err != nil {
		config.WithContext(ctx).WithError(err).WithField("setting_id", settingID).Error("Error deleting notification setting")
		return "", err
	}
	return resp.Message, nil
}
