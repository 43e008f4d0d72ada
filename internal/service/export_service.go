package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/util"
	"github.com/ogooluwanick/pulse-training-platform-sub001/pkg/logger"
	"github.com/ogooluwanick/pulse-training-platform-sub001/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	employeeCSVHeader = []string{"Employee", "Email", "Department", "Completion (%)", "Status"}
	courseCSVHeader   = []string{"Course", "Completion (%)"}
)

type ExportService struct {
	Storage *StorageService
	Now     func() time.Time
}

func NewExportService(storage *StorageService) *ExportService {
	return &ExportService{Storage: storage, Now: time.Now}
}

// WriteCSV 员工明细在前（与报表顺序一致），空行后为课程完成率
func (s *ExportService) WriteCSV(w io.Writer, report *model.ReportData) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(employeeCSVHeader); err != nil {
		return err
	}
	for _, e := range report.EmployeeProgressList {
		row := []string{e.Name, e.Email, e.Department, strconv.Itoa(e.CompletionPercentage), string(e.Status)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	if err := cw.Write(nil); err != nil {
		return err
	}
	if err := cw.Write(courseCSVHeader); err != nil {
		return err
	}
	for _, c := range report.CourseCompletionStats {
		if err := cw.Write([]string{c.CourseName, strconv.Itoa(c.Completion)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Filename 下载文件名，例如 compliance-report-2024-05-01.csv
func (s *ExportService) Filename() string {
	return fmt.Sprintf("compliance-report-%s.csv", s.Now().Format(util.DateFormat))
}

// Archive 将报表 CSV 写入存储并返回下载地址
func (s *ExportService) Archive(ctx context.Context, scope model.TenantScope, report *model.ReportData) (*model.ExportResult, error) {
	var buf bytes.Buffer
	if err := s.WriteCSV(&buf, report); err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("exports/%s/%s.csv", scope.CompanyID, uuid.New().String())
	if err := s.Storage.Upload(ctx, objectName, bytes.NewReader(buf.Bytes()), int64(buf.Len()), util.MimeCSV); err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	url, err := s.Storage.GetURL(ctx, objectName)
	if err != nil {
		return nil, fmt.Errorf("export url: %w", err)
	}

	monitoring.ExportsArchived.WithLabelValues("archive").Inc()
	logger.Log.Info("Report export archived",
		zap.String("companyId", scope.CompanyID),
		zap.String("object", objectName),
		zap.Int("rows", len(report.EmployeeProgressList)),
	)

	return &model.ExportResult{
		URL:      url,
		Filename: s.Filename(),
		Rows:     len(report.EmployeeProgressList),
	}, nil
}
