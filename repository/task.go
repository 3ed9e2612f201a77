package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tasktracker/model"
)

// TaskRepository is the persistence boundary for tasks. FindByID returns
// (nil, nil) when no task has the given id.
type TaskRepository interface {
	FindByID(ctx context.Context, id string) (*model.Task, error)
	FindAllByOwner(ctx context.Context, userID string) ([]model.Task, error)
	Insert(ctx context.Context, task *model.Task) error
	Replace(ctx context.Context, task *model.Task) error
	Remove(ctx context.Context, id string) error
}

const tasksCollection = "Tasks"

type FirestoreTaskRepository struct {
	client *firestore.Client
}

func NewFirestoreTaskRepository(client *firestore.Client) *FirestoreTaskRepository {
	return &FirestoreTaskRepository{client: client}
}

func (r *FirestoreTaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	doc, err := r.client.Collection(tasksCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var task model.Task
	if err := doc.DataTo(&task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *FirestoreTaskRepository) FindAllByOwner(ctx context.Context, userID string) ([]model.Task, error) {
	iter := r.client.Collection(tasksCollection).
		Where("userid", "==", userID).
		OrderBy("createdat", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	tasks := []model.Task{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var task model.Task
		if err := doc.DataTo(&task); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *FirestoreTaskRepository) Insert(ctx context.Context, task *model.Task) error {
	_, err := r.client.Collection(tasksCollection).Doc(task.TaskID).Create(ctx, task)
	return err
}

func (r *FirestoreTaskRepository) Replace(ctx context.Context, task *model.Task) error {
	_, err := r.client.Collection(tasksCollection).Doc(task.TaskID).Set(ctx, task)
	return err
}

func (r *FirestoreTaskRepository) Remove(ctx context.Context, id string) error {
	_, err := r.client.Collection(tasksCollection).Doc(id).Delete(ctx)
	return err
}
