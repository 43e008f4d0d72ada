package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const AssignmentCollection = "course_assignments"

type MongoAssignmentRepository struct {
	Collection *mongo.Collection
}

func NewMongoAssignmentRepository(db *mongo.Database) *MongoAssignmentRepository {
	return &MongoAssignmentRepository{Collection: db.Collection(AssignmentCollection)}
}

func companyFilter(companyID string) bson.M {
	return bson.M{"company_id": companyID}
}

func employeeFilter(companyID, employeeID string) bson.M {
	return bson.M{"company_id": companyID, "employee_id": employeeID}
}

func (r *MongoAssignmentRepository) FindByCompany(ctx context.Context, companyID string) ([]model.Assignment, error) {
	return r.find(ctx, companyFilter(companyID))
}

func (r *MongoAssignmentRepository) FindByEmployee(ctx context.Context, companyID, employeeID string) ([]model.Assignment, error) {
	return r.find(ctx, employeeFilter(companyID, employeeID))
}

func (r *MongoAssignmentRepository) find(ctx context.Context, filter bson.M) ([]model.Assignment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assignments := []model.Assignment{}
	if err = cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *MongoAssignmentRepository) FindByID(ctx context.Context, companyID, id string) (*model.Assignment, error) {
	return r.findOne(ctx, bson.M{"_id": id, "company_id": companyID})
}

func (r *MongoAssignmentRepository) FindByEmployeeAndCourse(ctx context.Context, companyID, employeeID, courseID string) (*model.Assignment, error) {
	filter := employeeFilter(companyID, employeeID)
	filter["course_id"] = courseID
	return r.findOne(ctx, filter)
}

func (r *MongoAssignmentRepository) findOne(ctx context.Context, filter bson.M) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.Collection.FindOne(ctx, filter).Decode(&assignment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.ErrAssignmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *MongoAssignmentRepository) Create(ctx context.Context, assignment *model.Assignment) error {
	if assignment.ID == "" {
		assignment.ID = primitive.NewObjectID().Hex()
	}
	if assignment.LessonProgress == nil {
		assignment.LessonProgress = []model.LessonProgress{}
	}

	_, err := r.Collection.InsertOne(ctx, assignment)
	return err
}

func (r *MongoAssignmentRepository) UpdateProgress(ctx context.Context, assignment *model.Assignment) error {
	filter := bson.M{"_id": assignment.ID, "company_id": assignment.CompanyID}
	update := bson.M{
		"$set": bson.M{
			"status":          assignment.Status,
			"lesson_progress": assignment.LessonProgress,
			"updated_at":      assignment.UpdatedAt,
		},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("update assignment %s: %w", assignment.ID, util.ErrAssignmentNotFound)
	}

	return nil
}

func (r *MongoAssignmentRepository) Ping(ctx context.Context) error {
	return r.Collection.Database().Client().Ping(ctx, readpref.Primary())
}
