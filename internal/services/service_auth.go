package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"posting-app/dto"
	"posting-app/internal/models"
	"posting-app/internal/repository"
)

var (
	ErrEmailTaken     = errors.New("user already registered")
	ErrBadCredentials = errors.New("invalid email or password")
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// Register creates a user with a hashed password. Duplicate email reports
// ErrEmailTaken whether it is caught by the pre-check or by the unique
// index (two registrations racing past the pre-check).
func Register(ctx context.Context, db *mongo.Database, req dto.RegisterRequest) (*models.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	exists, err := repository.ExistsUserByEmail(ctx, db, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:   req.Username,
		Email:      email,
		Name:       req.Name,
		Age:        req.Age,
		Password:   hash,
		ProfilePic: models.DefaultProfilePic,
		Posts:      []bson.ObjectID{},
	}

	id, err := repository.InsertUser(ctx, db, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	user.ID = id
	return &user, nil
}

// Login verifies credentials. Unknown email and wrong password are not
// distinguished.
func Login(ctx context.Context, db *mongo.Database, email, password string) (*models.User, error) {
	user, err := repository.FindUserByEmail(ctx, db, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if err := CheckPassword(user.Password, password); err != nil {
		return nil, ErrBadCredentials
	}
	return user, nil
}
