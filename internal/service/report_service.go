package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/repository"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/util"
	"github.com/ogooluwanick/pulse-training-platform-sub001/pkg/logger"
	"github.com/ogooluwanick/pulse-training-platform-sub001/pkg/monitoring"
	"github.com/ogooluwanick/pulse-training-platform-sub001/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type ReportService struct {
	AssignmentRepo repository.AssignmentRepository
	QueryTimeout   time.Duration
	Now            func() time.Time
}

func NewReportService(assignmentRepo repository.AssignmentRepository, queryTimeout time.Duration) *ReportService {
	return &ReportService{
		AssignmentRepo: assignmentRepo,
		QueryTimeout:   queryTimeout,
		Now:            time.Now,
	}
}

// GenerateReport 生成公司范围内的合规报表。
// 过滤参数不合法时按“无匹配”处理返回空报表；数据源失败时返回 util.ErrUpstreamFetch
func (s *ReportService) GenerateReport(ctx context.Context, scope model.TenantScope, query model.ReportQuery) (*model.ReportData, error) {
	if scope.CompanyID == "" {
		return nil, util.ErrCompanyRequired
	}

	ctx, span := tracing.StartSpan(ctx, "ReportService.GenerateReport")
	defer span.End()
	span.SetAttributes(attribute.String("company.id", scope.CompanyID))

	filter, err := ParseReportFilter(query)
	if err != nil {
		logger.Log.Warn("Invalid report filter, returning empty report",
			zap.String("companyId", scope.CompanyID),
			zap.Error(err),
		)
		monitoring.ReportsGenerated.WithLabelValues("invalid_filter").Inc()
		return model.EmptyReport(), nil
	}

	assignments, err := s.fetchAssignments(ctx, scope)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch assignments")
		monitoring.ReportsGenerated.WithLabelValues("upstream_error").Inc()
		return nil, err
	}

	report := s.BuildReport(assignments, filter)

	monitoring.ReportsGenerated.WithLabelValues("ok").Inc()
	monitoring.ReportOverdueEmployees.Observe(float64(report.OverdueEmployeesCount))
	span.SetAttributes(
		attribute.Int("report.employees", len(report.EmployeeProgressList)),
		attribute.Int("report.overdue_employees", report.OverdueEmployeesCount),
	)

	logger.Log.Debug("Report generated",
		zap.String("companyId", scope.CompanyID),
		zap.Int("assignments", len(assignments)),
		zap.Int("employees", len(report.EmployeeProgressList)),
	)

	return report, nil
}

// BuildReport 过滤、汇总并按完成度降序排列员工（稳定排序）
func (s *ReportService) BuildReport(assignments []model.Assignment, filter model.ReportFilter) *model.ReportData {
	scoped := ApplyFilter(assignments, filter)
	monitoring.ReportAssignments.Observe(float64(len(scoped)))

	report := Aggregate(scoped, s.Now())
	sort.SliceStable(report.EmployeeProgressList, func(i, j int) bool {
		return report.EmployeeProgressList[i].CompletionPercentage > report.EmployeeProgressList[j].CompletionPercentage
	})
	return report
}

func (s *ReportService) fetchAssignments(ctx context.Context, scope model.TenantScope) ([]model.Assignment, error) {
	if s.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.QueryTimeout)
		defer cancel()
	}

	assignments, err := s.AssignmentRepo.FindByCompany(ctx, scope.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrUpstreamFetch, err)
	}

	if err := validateAssignments(assignments, scope); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrUpstreamFetch, err)
	}

	return assignments, nil
}

var errMalformedAssignment = errors.New("malformed assignment")

func validateAssignments(assignments []model.Assignment, scope model.TenantScope) error {
	for i := range assignments {
		a := &assignments[i]
		switch {
		case a.EmployeeID == "":
			return fmt.Errorf("%w %s: missing employee id", errMalformedAssignment, a.ID)
		case a.TotalLessonsInCourse < 0:
			return fmt.Errorf("%w %s: negative lesson count", errMalformedAssignment, a.ID)
		case a.CompanyID != "" && a.CompanyID != scope.CompanyID:
			return fmt.Errorf("%w %s: outside company scope", errMalformedAssignment, a.ID)
		}
	}
	return nil
}
