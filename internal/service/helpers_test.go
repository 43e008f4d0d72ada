package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/util"
)

var testNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return testNow.Add(-time.Duration(n) * 24 * time.Hour)
}

type assignmentOpt func(*model.Assignment)

func withLessons(completed, total int) assignmentOpt {
	return func(a *model.Assignment) {
		a.TotalLessonsInCourse = total
		a.LessonProgress = nil
		for i := 0; i < completed; i++ {
			a.LessonProgress = append(a.LessonProgress, model.LessonProgress{
				LessonID: fmt.Sprintf("%s-l%d", a.CourseID, i+1),
				Status:   model.LessonCompleted,
			})
		}
	}
}

func withDepartment(dept string) assignmentOpt {
	return func(a *model.Assignment) { a.Department = dept }
}

func newAssignment(employee, course string, status model.AssignmentStatus, createdAt time.Time, opts ...assignmentOpt) model.Assignment {
	a := model.Assignment{
		ID:                   employee + "-" + course,
		CompanyID:            "acme",
		EmployeeID:           employee,
		EmployeeName:         "Employee " + employee,
		EmployeeEmail:        employee + "@acme.test",
		Department:           "Engineering",
		CourseID:             course,
		CourseTitle:          "Course " + course,
		TotalLessonsInCourse: 10,
		Status:               status,
		CreatedAt:            createdAt,
		UpdatedAt:            createdAt,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// fakeAssignmentRepo 内存实现，findErr 非空时所有读取失败
type fakeAssignmentRepo struct {
	mu          sync.Mutex
	assignments []model.Assignment
	findErr     error
	updates     int
	seq         int
}

func (r *fakeAssignmentRepo) FindByCompany(ctx context.Context, companyID string) ([]model.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []model.Assignment
	for _, a := range r.assignments {
		if a.CompanyID == companyID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAssignmentRepo) FindByEmployee(ctx context.Context, companyID, employeeID string) ([]model.Assignment, error) {
	all, err := r.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := []model.Assignment{}
	for _, a := range all {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAssignmentRepo) FindByID(ctx context.Context, companyID, id string) (*model.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.assignments {
		if a.CompanyID == companyID && a.ID == id {
			found := a
			found.LessonProgress = append([]model.LessonProgress(nil), a.LessonProgress...)
			return &found, nil
		}
	}
	return nil, util.ErrAssignmentNotFound
}

func (r *fakeAssignmentRepo) FindByEmployeeAndCourse(ctx context.Context, companyID, employeeID, courseID string) (*model.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, a := range r.assignments {
		if a.CompanyID == companyID && a.EmployeeID == employeeID && a.CourseID == courseID {
			found := a
			return &found, nil
		}
	}
	return nil, util.ErrAssignmentNotFound
}

func (r *fakeAssignmentRepo) Create(ctx context.Context, assignment *model.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	assignment.ID = fmt.Sprintf("asg-%d", r.seq)
	r.assignments = append(r.assignments, *assignment)
	return nil
}

func (r *fakeAssignmentRepo) UpdateProgress(ctx context.Context, assignment *model.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.assignments {
		if r.assignments[i].ID == assignment.ID && r.assignments[i].CompanyID == assignment.CompanyID {
			r.assignments[i] = *assignment
			r.updates++
			return nil
		}
	}
	return util.ErrAssignmentNotFound
}

func (r *fakeAssignmentRepo) Ping(ctx context.Context) error {
	return r.findErr
}
