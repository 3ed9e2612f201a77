package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tasktracker/model"
)

// UserRepository looks up and stores accounts. Find methods return
// (nil, nil) when no user matches.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Insert(ctx context.Context, user *model.User) error
}

// RefreshTokenRepository stores one hashed refresh token per user.
type RefreshTokenRepository interface {
	Save(ctx context.Context, record *model.RefreshTokenRecord) error
	Find(ctx context.Context, userID string) (*model.RefreshTokenRecord, error)
}

const (
	usersCollection         = "Users"
	refreshTokensCollection = "refreshTokens"
)

type FirestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) *FirestoreUserRepository {
	return &FirestoreUserRepository{client: client}
}

func (r *FirestoreUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	docs, err := r.client.Collection(usersCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}

	var user model.User
	if err := docs[0].DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *FirestoreUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *FirestoreUserRepository) Insert(ctx context.Context, user *model.User) error {
	_, err := r.client.Collection(usersCollection).Doc(user.UserID).Create(ctx, user)
	return err
}

type FirestoreRefreshTokenRepository struct {
	client *firestore.Client
}

func NewFirestoreRefreshTokenRepository(client *firestore.Client) *FirestoreRefreshTokenRepository {
	return &FirestoreRefreshTokenRepository{client: client}
}

func (r *FirestoreRefreshTokenRepository) Save(ctx context.Context, record *model.RefreshTokenRecord) error {
	_, err := r.client.Collection(refreshTokensCollection).Doc(record.UserID).Set(ctx, record)
	return err
}

func (r *FirestoreRefreshTokenRepository) Find(ctx context.Context, userID string) (*model.RefreshTokenRecord, error) {
	doc, err := r.client.Collection(refreshTokensCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var record model.RefreshTokenRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, err
	}
	return &record, nil
}
