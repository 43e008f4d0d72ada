package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/util"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssignmentRecord 关系型数据库中的作业行，课时进度以 JSON 列保存
type AssignmentRecord struct {
	ID                   string                                   `gorm:"primaryKey;type:varchar(36)"`
	CompanyID            string                                   `gorm:"type:varchar(64);not null;uniqueIndex:idx_company_employee_course;index:idx_company_created"`
	EmployeeID           string                                   `gorm:"type:varchar(64);not null;uniqueIndex:idx_company_employee_course"`
	EmployeeName         string                                   `gorm:"size:100"`
	EmployeeEmail        string                                   `gorm:"size:100"`
	Department           string                                   `gorm:"size:100"`
	CourseID             string                                   `gorm:"type:varchar(64);not null;uniqueIndex:idx_company_employee_course"`
	CourseTitle          string                                   `gorm:"size:255"`
	TotalLessonsInCourse int                                      `gorm:"default:0"`
	Status               string                                   `gorm:"type:varchar(20);default:'not-started'"`
	LessonProgress       datatypes.JSONSlice[model.LessonProgress] `gorm:"type:json"`
	CreatedAt            time.Time                                `gorm:"index:idx_company_created"`
	UpdatedAt            time.Time
}

func (AssignmentRecord) TableName() string {
	return "course_assignments"
}

func toRecord(a *model.Assignment) *AssignmentRecord {
	return &AssignmentRecord{
		ID:                   a.ID,
		CompanyID:            a.CompanyID,
		EmployeeID:           a.EmployeeID,
		EmployeeName:         a.EmployeeName,
		EmployeeEmail:        a.EmployeeEmail,
		Department:           a.Department,
		CourseID:             a.CourseID,
		CourseTitle:          a.CourseTitle,
		TotalLessonsInCourse: a.TotalLessonsInCourse,
		Status:               string(a.Status),
		LessonProgress:       datatypes.NewJSONSlice(a.LessonProgress),
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

func (r *AssignmentRecord) toModel() model.Assignment {
	lessons := []model.LessonProgress(r.LessonProgress)
	if lessons == nil {
		lessons = []model.LessonProgress{}
	}
	return model.Assignment{
		ID:                   r.ID,
		CompanyID:            r.CompanyID,
		EmployeeID:           r.EmployeeID,
		EmployeeName:         r.EmployeeName,
		EmployeeEmail:        r.EmployeeEmail,
		Department:           r.Department,
		CourseID:             r.CourseID,
		CourseTitle:          r.CourseTitle,
		TotalLessonsInCourse: r.TotalLessonsInCourse,
		Status:               model.AssignmentStatus(r.Status),
		LessonProgress:       lessons,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

type GormAssignmentRepository struct {
	DB *gorm.DB
}

func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{DB: db}
}

func (r *GormAssignmentRepository) FindByCompany(ctx context.Context, companyID string) ([]model.Assignment, error) {
	return r.find(ctx, r.DB.WithContext(ctx).Where("company_id = ?", companyID))
}

func (r *GormAssignmentRepository) FindByEmployee(ctx context.Context, companyID, employeeID string) ([]model.Assignment, error) {
	return r.find(ctx, r.DB.WithContext(ctx).Where("company_id = ? AND employee_id = ?", companyID, employeeID))
}

func (r *GormAssignmentRepository) find(ctx context.Context, query *gorm.DB) ([]model.Assignment, error) {
	var records []AssignmentRecord
	if err := query.Order("created_at ASC").Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	assignments := make([]model.Assignment, 0, len(records))
	for i := range records {
		assignments = append(assignments, records[i].toModel())
	}
	return assignments, nil
}

func (r *GormAssignmentRepository) FindByID(ctx context.Context, companyID, id string) (*model.Assignment, error) {
	return r.first(r.DB.WithContext(ctx).Where("id = ? AND company_id = ?", id, companyID))
}

func (r *GormAssignmentRepository) FindByEmployeeAndCourse(ctx context.Context, companyID, employeeID, courseID string) (*model.Assignment, error) {
	return r.first(r.DB.WithContext(ctx).
		Where("company_id = ? AND employee_id = ? AND course_id = ?", companyID, employeeID, courseID))
}

func (r *GormAssignmentRepository) first(query *gorm.DB) (*model.Assignment, error) {
	var record AssignmentRecord
	err := query.First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssignmentNotFound
	}
	if err != nil {
		return nil, err
	}
	assignment := record.toModel()
	return &assignment, nil
}

func (r *GormAssignmentRepository) Create(ctx context.Context, assignment *model.Assignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}
	return r.DB.WithContext(ctx).Create(toRecord(assignment)).Error
}

func (r *GormAssignmentRepository) UpdateProgress(ctx context.Context, assignment *model.Assignment) error {
	result := r.DB.WithContext(ctx).Model(&AssignmentRecord{}).
		Where("id = ? AND company_id = ?", assignment.ID, assignment.CompanyID).
		Updates(map[string]interface{}{
			"status":          string(assignment.Status),
			"lesson_progress": datatypes.NewJSONSlice(assignment.LessonProgress),
			"updated_at":      assignment.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update assignment %s: %w", assignment.ID, util.ErrAssignmentNotFound)
	}
	return nil
}

func (r *GormAssignmentRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
