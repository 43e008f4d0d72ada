package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReportService(repo *fakeAssignmentRepo) *ReportService {
	s := NewReportService(repo, time.Second)
	s.Now = func() time.Time { return testNow }
	return s
}

func TestGenerateReportSortsByCompletionDescending(t *testing.T) {
	repo := &fakeAssignmentRepo{assignments: []model.Assignment{
		newAssignment("low", "X", model.AssignmentInProgress, daysAgo(1), withLessons(2, 10)),
		newAssignment("tie1", "X", model.AssignmentInProgress, daysAgo(1), withLessons(5, 10)),
		newAssignment("top", "X", model.AssignmentCompleted, daysAgo(1)),
		newAssignment("tie2", "X", model.AssignmentInProgress, daysAgo(1), withLessons(5, 10)),
	}}

	report, err := newTestReportService(repo).GenerateReport(context.Background(), model.TenantScope{CompanyID: "acme"}, model.ReportQuery{})
	require.NoError(t, err)

	var ids []string
	for _, e := range report.EmployeeProgressList {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"top", "tie1", "tie2", "low"}, ids)
}

func TestGenerateReportScopedToCompany(t *testing.T) {
	other := newAssignment("Q", "X", model.AssignmentCompleted, daysAgo(1))
	other.CompanyID = "globex"
	repo := &fakeAssignmentRepo{assignments: []model.Assignment{
		newAssignment("A", "X", model.AssignmentNotStarted, daysAgo(1)),
		other,
	}}

	report, err := newTestReportService(repo).GenerateReport(context.Background(), model.TenantScope{CompanyID: "acme"}, model.ReportQuery{})
	require.NoError(t, err)

	require.Len(t, report.EmployeeProgressList, 1)
	assert.Equal(t, "A", report.EmployeeProgressList[0].ID)
	assert.Equal(t, 0.0, report.OverallCompletion)
}

func TestGenerateReportAppliesFilters(t *testing.T) {
	repo := &fakeAssignmentRepo{assignments: []model.Assignment{
		newAssignment("A", "X", model.AssignmentCompleted, daysAgo(1), withDepartment("Sales")),
		newAssignment("A", "Y", model.AssignmentNotStarted, daysAgo(1), withDepartment("Sales")),
		newAssignment("B", "X", model.AssignmentNotStarted, daysAgo(1), withDepartment("Engineering")),
	}}

	report, err := newTestReportService(repo).GenerateReport(context.Background(), model.TenantScope{CompanyID: "acme"}, model.ReportQuery{
		Department: "Sales",
		CourseID:   "X",
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.OverallCompletion)
	require.Len(t, report.EmployeeProgressList, 1)
	assert.Equal(t, "A", report.EmployeeProgressList[0].ID)
	// 课程统计基于过滤后的范围
	assert.Equal(t, []model.CourseCompletionStat{{CourseName: "Course X", Completion: 100}}, report.CourseCompletionStats)
}

func TestGenerateReportInvalidFilterReturnsEmptyReport(t *testing.T) {
	repo := &fakeAssignmentRepo{assignments: []model.Assignment{
		newAssignment("A", "X", model.AssignmentCompleted, daysAgo(1)),
	}}

	report, err := newTestReportService(repo).GenerateReport(context.Background(), model.TenantScope{CompanyID: "acme"}, model.ReportQuery{
		StartDate: "not-a-date",
	})
	require.NoError(t, err)

	assert.Equal(t, model.EmptyReport(), report)
}

func TestGenerateReportUpstreamFailure(t *testing.T) {
	repo := &fakeAssignmentRepo{findErr: errors.New("connection refused")}

	report, err := newTestReportService(repo).GenerateReport(context.Background(), model.TenantScope{CompanyID: "acme"}, model.ReportQuery{})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, util.ErrUpstreamFetch)
}

func TestGenerateReportMalformedData(t *testing.T) {
	broken := newAssignment("", "X", model.AssignmentCompleted, daysAgo(1))
	repo := &fakeAssignmentRepo{assignments: []model.Assignment{
		newAssignment("A", "X", model.AssignmentCompleted, daysAgo(1)),
		broken,
	}}

	report, err := newTestReportService(repo).GenerateReport(context.Background(), model.TenantScope{CompanyID: "acme"}, model.ReportQuery{})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, util.ErrUpstreamFetch)
}

func TestGenerateReportRequiresCompany(t *testing.T) {
	_, err := newTestReportService(&fakeAssignmentRepo{}).GenerateReport(context.Background(), model.TenantScope{}, model.ReportQuery{})
	assert.ErrorIs(t, err, util.ErrCompanyRequired)
}

func TestGenerateReportDoesNotMutateStore(t *testing.T) {
	repo := &fakeAssignmentRepo{assignments: []model.Assignment{
		newAssignment("A", "X", model.AssignmentInProgress, daysAgo(20), withLessons(3, 10)),
	}}
	before := append([]model.Assignment(nil), repo.assignments...)

	_, err := newTestReportService(repo).GenerateReport(context.Background(), model.TenantScope{CompanyID: "acme"}, model.ReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, before, repo.assignments)
	assert.Zero(t, repo.updates)
}
