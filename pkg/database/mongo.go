package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/config"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func InitMongo(cfg *config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetTimeout(cfg.QueryTimeout())

	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongodb: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Println("MongoDB connection established")

	db := client.Database(cfg.DBName)
	if err := CreateAssignmentIndexes(db); err != nil {
		log.Printf("Warning: failed to create assignment indexes: %v", err)
	}

	return client, db, nil
}

func AssignmentIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		// 报表：按公司读取并按创建时间排序
		{
			Keys: bson.D{
				{Key: "company_id", Value: 1},
				{Key: "created_at", Value: 1},
			},
			Options: options.Index().SetName("idx_company_created_at"),
		},
		// 员工作业列表
		{
			Keys: bson.D{
				{Key: "company_id", Value: 1},
				{Key: "employee_id", Value: 1},
			},
			Options: options.Index().SetName("idx_company_employee"),
		},
		// 分配课程时的查重
		{
			Keys: bson.D{
				{Key: "company_id", Value: 1},
				{Key: "employee_id", Value: 1},
				{Key: "course_id", Value: 1},
			},
			Options: options.Index().SetName("uniq_company_employee_course").SetUnique(true),
		},
	}
}

func CreateAssignmentIndexes(db *mongo.Database) error {
	collection := db.Collection(repository.AssignmentCollection)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := collection.Indexes().CreateMany(ctx, AssignmentIndexes()); err != nil {
		return fmt.Errorf("failed to create assignment indexes: %w", err)
	}

	log.Println("Assignment indexes created successfully")
	return nil
}
