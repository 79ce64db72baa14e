package task

import (
	"context"

	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/sirupsen/logrus"
)

const Collection = "/tasks"

type Gateway interface {
	FetchByUser(ctx context.Context, userID int64) ([]Task, error)
	Create(ctx context.Context, userID int64, data TaskData) (*Task, error)
	Update(ctx context.Context, userID, taskID int64, patch TaskPatch) (*Task, error)
	Delete(ctx context.Context, userID, taskID int64) (string, error)
}

type gateway struct {
	client *apiclient.Client
}

func NewGateway(client *apiclient.Client) Gateway {
	return &gateway{client: client}
}

func (g *gateway) FetchByUser(ctx context.Context, userID int64) ([]Task, error) {
	log := config.WithContext(ctx)

	var tasks []Task
	if err := g.client.Get(ctx, Collection, userID, &tasks); err != nil {
		log.WithError(err).Error("Error fetching tasks")
		return nil, err
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

func (g *gateway) Create(ctx context.Context, userID int64, data TaskData) (*Task, error) {
	log := config.WithContext(ctx)

	if err := data.Validate(); err != nil {
		log.WithError(err).Warn("Error creating task")
		return nil, err
	}

	var created Task
	if err := g.client.Post(ctx, Collection, userID, data, &created); err != nil {
		log.WithError(err).Error("Error creating task")
		return nil, err
	}

	log.WithField("task_id", created.TaskID).Info("Task created")
	return &created, nil
}

func (g *gateway) Update(ctx context.Context, userID, taskID int64, patch TaskPatch) (*Task, error) {
	log := config.WithContext(ctx).WithField("task_id", taskID)

	var updated Task
	if err := g.client.Put(ctx, apiclient.ItemPath(Collection, taskID), userID, patch, &updated); err != nil {
		log.WithError(err).Error("Error updating task")
		return nil, err
	}
	return &updated, nil
}

func (g *gateway) Delete(ctx context.Context, userID, taskID int64) (string, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"task_id":   taskID,
		"tguser_id": userID,
	})

	var resp apiclient.MessageResponse
	if err := g.client.Delete(ctx, apiclient.ItemPath(Collection, taskID), userID, &resp); err != nil {
		log.WithError(err).Error("Error deleting task")
		return "", err
	}

	log.Info("Task deleted")
	return resp.Message, nil
}
