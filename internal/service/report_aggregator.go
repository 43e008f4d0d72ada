package service

import (
	"math"
	"time"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"
)

// employeeAccumulator 单个员工的聚合中间结果
type employeeAccumulator struct {
	employeeID       string
	name             string
	email            string
	department       string
	totalLessons     int
	completedLessons int
	assignments      []model.Assignment
}

func (acc *employeeAccumulator) completionPercentage() int {
	if acc.totalLessons <= 0 {
		return 0
	}
	return roundPercent(acc.completedLessons, acc.totalLessons)
}

type courseAccumulator struct {
	title     string
	total     int
	completed int
}

// Aggregate 对已按租户和过滤条件筛选的作业做汇总，员工与课程按首次出现的顺序输出
func Aggregate(assignments []model.Assignment, now time.Time) *model.ReportData {
	report := model.EmptyReport()
	if len(assignments) == 0 {
		return report
	}

	var (
		employeeOrder []string
		employees     = make(map[string]*employeeAccumulator)
		courseOrder   []string
		courses       = make(map[string]*courseAccumulator)
		overdue       = make(map[string]struct{})
		completed     int
	)

	for i := range assignments {
		a := &assignments[i]

		acc, ok := employees[a.EmployeeID]
		if !ok {
			acc = &employeeAccumulator{
				employeeID: a.EmployeeID,
				name:       a.EmployeeName,
				email:      a.EmployeeEmail,
				department: a.Department,
			}
			employees[a.EmployeeID] = acc
			employeeOrder = append(employeeOrder, a.EmployeeID)
		}
		total, done := lessonCounts(a)
		acc.totalLessons += total
		acc.completedLessons += done
		acc.assignments = append(acc.assignments, *a)

		course, ok := courses[a.CourseID]
		if !ok {
			course = &courseAccumulator{title: a.CourseTitle}
			courses[a.CourseID] = course
			courseOrder = append(courseOrder, a.CourseID)
		}
		course.total++

		switch a.Status {
		case model.AssignmentCompleted:
			completed++
			course.completed++
		case model.AssignmentInProgress:
			report.CoursesInProgress++
		}

		// 逾期员工按员工去重计数，不依赖员工状态判定结果
		if IsOverdue(a, now) {
			overdue[a.EmployeeID] = struct{}{}
		}
	}

	report.OverallCompletion = math.Round(float64(completed)/float64(len(assignments))*1000) / 10
	report.OverdueEmployeesCount = len(overdue)

	for _, id := range courseOrder {
		c := courses[id]
		report.CourseCompletionStats = append(report.CourseCompletionStats, model.CourseCompletionStat{
			CourseName: c.title,
			Completion: roundPercent(c.completed, c.total),
		})
	}

	for _, id := range employeeOrder {
		acc := employees[id]
		pct := acc.completionPercentage()
		report.EmployeeProgressList = append(report.EmployeeProgressList, model.EmployeeProgressSummary{
			ID:                   acc.employeeID,
			Name:                 acc.name,
			Email:                acc.email,
			Department:           acc.department,
			CompletionPercentage: pct,
			Status:               ClassifyEmployee(acc.assignments, pct, now),
		})
	}

	return report
}

// lessonCounts 返回计入员工进度的 总课时/已完成课时。
// 已完成的作业按全部课时计，无课时的已完成作业按 1/1 计
func lessonCounts(a *model.Assignment) (total, completed int) {
	if a.IsCompleted() {
		if a.TotalLessonsInCourse <= 0 {
			return 1, 1
		}
		return a.TotalLessonsInCourse, a.TotalLessonsInCourse
	}
	return a.TotalLessonsInCourse, a.CompletedLessons()
}

func roundPercent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
