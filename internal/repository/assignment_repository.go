package repository

import (
	"context"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"
)

// AssignmentRepository 课程分配记录存储，所有查询都限定在公司范围内
type AssignmentRepository interface {
	FindByCompany(ctx context.Context, companyID string) ([]model.Assignment, error)
	FindByEmployee(ctx context.Context, companyID, employeeID string) ([]model.Assignment, error)
	FindByID(ctx context.Context, companyID, id string) (*model.Assignment, error)
	// FindByEmployeeAndCourse 不存在时返回 util.ErrAssignmentNotFound
	FindByEmployeeAndCourse(ctx context.Context, companyID, employeeID, courseID string) (*model.Assignment, error)
	Create(ctx context.Context, assignment *model.Assignment) error
	UpdateProgress(ctx context.Context, assignment *model.Assignment) error
	Ping(ctx context.Context) error
}
