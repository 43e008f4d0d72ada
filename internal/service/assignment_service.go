package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/repository"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/util"
	"github.com/ogooluwanick/pulse-training-platform-sub001/pkg/logger"

	"go.uber.org/zap"
)

type AssignmentService struct {
	AssignmentRepo repository.AssignmentRepository
	Now            func() time.Time
}

func NewAssignmentService(assignmentRepo repository.AssignmentRepository) *AssignmentService {
	return &AssignmentService{AssignmentRepo: assignmentRepo, Now: time.Now}
}

// AssignCourse 为员工分配课程，同一公司内已存在的 员工+课程 组合会被跳过
func (s *AssignmentService) AssignCourse(ctx context.Context, scope model.TenantScope, req *model.AssignCourseRequest) (*model.AssignCourseResult, error) {
	if scope.CompanyID == "" {
		return nil, util.ErrCompanyRequired
	}

	result := &model.AssignCourseResult{
		Created: []model.Assignment{},
		Skipped: []string{},
	}
	now := s.Now()

	for _, e := range req.Employees {
		_, err := s.AssignmentRepo.FindByEmployeeAndCourse(ctx, scope.CompanyID, e.ID, req.CourseID)
		if err == nil {
			result.Skipped = append(result.Skipped, e.ID)
			continue
		}
		if !errors.Is(err, util.ErrAssignmentNotFound) {
			return nil, fmt.Errorf("lookup assignment for %s: %w", e.ID, err)
		}

		assignment := model.Assignment{
			CompanyID:            scope.CompanyID,
			EmployeeID:           e.ID,
			EmployeeName:         e.Name,
			EmployeeEmail:        e.Email,
			Department:           e.Department,
			CourseID:             req.CourseID,
			CourseTitle:          req.CourseTitle,
			TotalLessonsInCourse: req.TotalLessonsInCourse,
			Status:               model.AssignmentNotStarted,
			LessonProgress:       []model.LessonProgress{},
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if err := s.AssignmentRepo.Create(ctx, &assignment); err != nil {
			return nil, fmt.Errorf("create assignment for %s: %w", e.ID, err)
		}
		result.Created = append(result.Created, assignment)
	}

	logger.Log.Info("Course assigned",
		zap.String("companyId", scope.CompanyID),
		zap.String("courseId", req.CourseID),
		zap.Int("created", len(result.Created)),
		zap.Int("skipped", len(result.Skipped)),
	)

	return result, nil
}

// RecordLessonProgress 更新课时进度；employeeID 非空时只允许该员工修改自己的作业
func (s *AssignmentService) RecordLessonProgress(ctx context.Context, scope model.TenantScope, employeeID, assignmentID, lessonID string, status model.LessonStatus) (*model.Assignment, error) {
	assignment, err := s.AssignmentRepo.FindByID(ctx, scope.CompanyID, assignmentID)
	if err != nil {
		return nil, err
	}

	if employeeID != "" && assignment.EmployeeID != employeeID {
		return nil, util.ErrPermissionDenied
	}

	if !hasLesson(assignment, lessonID) && len(assignment.LessonProgress) >= assignment.TotalLessonsInCourse {
		return nil, util.ErrLessonOutOfRange
	}

	assignment.SetLessonStatus(lessonID, status, s.Now())

	if err := s.AssignmentRepo.UpdateProgress(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

func (s *AssignmentService) ListEmployeeAssignments(ctx context.Context, scope model.TenantScope, employeeID string) ([]model.Assignment, error) {
	if scope.CompanyID == "" {
		return nil, util.ErrCompanyRequired
	}
	return s.AssignmentRepo.FindByEmployee(ctx, scope.CompanyID, employeeID)
}

func hasLesson(a *model.Assignment, lessonID string) bool {
	for _, lp := range a.LessonProgress {
		if lp.LessonID == lessonID {
			return true
		}
	}
	return false
}
