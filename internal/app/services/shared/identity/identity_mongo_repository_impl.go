package identity

import (
	"context"
	"errors"
	"neuroshield-service/internal/app/contracts"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/constvars"
	"neuroshield-service/internal/pkg/exceptions"
	"neuroshield-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// IdentityMongoRepository stores account credentials in the accounts
// collection. Subject ids are generated here and never reused.
type IdentityMongoRepository struct {
	Collection *mongo.Collection
}

func NewIdentityMongoRepository(db *mongo.Client, dbName string) contracts.IdentityProvider {
	return &IdentityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAccounts),
	}
}

func (r *IdentityMongoRepository) Signup(ctx context.Context, input *contracts.SignupAccountInput) (*models.Account, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := r.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(errors.New("an account with this email already exists"))
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	account := &models.Account{
		SubjectID:      uuid.NewString(),
		Email:          email,
		PasswordHash:   passwordHash,
		EmailConfirmed: false,
		Name:           input.Name,
		RequestedRole:  input.RequestedRole,
		Metadata:       input.Metadata,
		CreatedAt:      time.Now().UTC(),
	}

	_, err = r.Collection.InsertOne(ctx, account)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return account, nil
}

func (r *IdentityMongoRepository) VerifyCredentials(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := r.findByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(errors.New("no account for email"))
	}

	if !utils.CheckPasswordHash(password, account.PasswordHash) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(errors.New("password mismatch"))
	}
	return account, nil
}

func (r *IdentityMongoRepository) LookupSubject(ctx context.Context, subjectID string) (*models.Account, error) {
	var account models.Account
	err := r.Collection.FindOne(ctx, bson.M{"subject_id": subjectID}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &account, nil
}

func (r *IdentityMongoRepository) findByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &account, nil
}
