package repository

import (
	"context"
	"fmt"

	"fleet-booking/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type TeamMemberRepository interface {
	Create(ctx context.Context, member *entity.TeamMember) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.TeamMember, error)
	FindByEmail(ctx context.Context, email string) (*entity.TeamMember, error)
	FindAll(ctx context.Context) ([]*entity.TeamMember, error)
	Update(ctx context.Context, member *entity.TeamMember) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type teamMemberRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewTeamMemberRepository(db *mongo.Database, log *zap.Logger) TeamMemberRepository {
	return &teamMemberRepository{
		coll: db.Collection(TeamMemberCollection),
		log:  log.With(zap.String("repository", "team_member")),
	}
}

func (r *teamMemberRepository) Create(ctx context.Context, member *entity.TeamMember) error {
	if _, err := r.coll.InsertOne(ctx, member); err != nil {
		r.log.Error("Failed to create team member",
			zap.Error(err),
			zap.String("email", member.Email),
		)
		return fmt.Errorf("create team member %s: %w", member.Email, translateWriteError(err))
	}

	return nil
}

func (r *teamMemberRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.TeamMember, error) {
	member, err := findOne[entity.TeamMember](ctx, r.coll, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to find team member by ID",
			zap.Error(err),
			zap.String("member_id", id.Hex()),
		)
		return nil, fmt.Errorf("find team member by id %s: %w", id.Hex(), err)
	}

	return member, nil
}

func (r *teamMemberRepository) FindByEmail(ctx context.Context, email string) (*entity.TeamMember, error) {
	member, err := findOne[entity.TeamMember](ctx, r.coll, bson.M{"email": email})
	if err != nil {
		r.log.Error("Failed to find team member by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find team member by email %s: %w", email, err)
	}

	return member, nil
}

func (r *teamMemberRepository) FindAll(ctx context.Context) ([]*entity.TeamMember, error) {
	members, err := findMany[entity.TeamMember](ctx, r.coll, bson.M{}, newestFirst())
	if err != nil {
		r.log.Error("Failed to list team members", zap.Error(err))
		return nil, fmt.Errorf("list team members: %w", err)
	}

	return members, nil
}

func (r *teamMemberRepository) Update(ctx context.Context, member *entity.TeamMember) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": member.ID}, member)
	if err != nil {
		r.log.Error("Failed to update team member",
			zap.Error(err),
			zap.String("member_id", member.ID.Hex()),
		)
		return fmt.Errorf("update team member %s: %w", member.ID.Hex(), translateWriteError(err))
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("update team member %s: %w", member.ID.Hex(), ErrNotFound)
	}

	return nil
}

func (r *teamMemberRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete team member",
			zap.Error(err),
			zap.String("member_id", id.Hex()),
		)
		return fmt.Errorf("delete team member %s: %w", id.Hex(), err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("delete team member %s: %w", id.Hex(), ErrNotFound)
	}

	r.log.Info("Team member deleted", zap.String("member_id", id.Hex()))
	return nil
}
