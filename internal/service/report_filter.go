package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/util"
)

// ParseReportFilter 解析查询参数，日期支持 2006-01-02 与 RFC3339，
// 仅日期的 endDate 包含当天全天
func ParseReportFilter(q model.ReportQuery) (model.ReportFilter, error) {
	filter := model.ReportFilter{
		Department: strings.TrimSpace(q.Department),
		CourseID:   strings.TrimSpace(q.CourseID),
	}

	start, err := parseFilterDate(q.StartDate, false)
	if err != nil {
		return filter, fmt.Errorf("%w: startDate %q", util.ErrInvalidFilter, q.StartDate)
	}
	end, err := parseFilterDate(q.EndDate, true)
	if err != nil {
		return filter, fmt.Errorf("%w: endDate %q", util.ErrInvalidFilter, q.EndDate)
	}

	filter.StartDate = start
	filter.EndDate = end
	return filter, nil
}

func parseFilterDate(value string, endOfDay bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	t, err := time.Parse(util.DateFormat, value)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(day - time.Nanosecond)
	}
	return &t, nil
}

// ApplyFilter 返回满足全部过滤条件的作业，不修改入参
func ApplyFilter(assignments []model.Assignment, filter model.ReportFilter) []model.Assignment {
	scoped := make([]model.Assignment, 0, len(assignments))
	for i := range assignments {
		if filter.Matches(&assignments[i]) {
			scoped = append(scoped, assignments[i])
		}
	}
	return scoped
}
