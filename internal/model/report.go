package model

import "time"

type EmployeeStatus string

const (
	StatusCompleted  EmployeeStatus = "Completed"
	StatusInProgress EmployeeStatus = "In Progress"
	StatusOverdue    EmployeeStatus = "Overdue"
	StatusNotStarted EmployeeStatus = "Not Started"
)

// EmployeeProgressSummary 员工进度汇总
type EmployeeProgressSummary struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Email                string         `json:"email"`
	Department           string         `json:"department"`
	CompletionPercentage int            `json:"completionPercentage"` // 0-100
	Status               EmployeeStatus `json:"status"`
}

// CourseCompletionStat 课程完成率
type CourseCompletionStat struct {
	CourseName string `json:"courseName"`
	Completion int    `json:"completion"` // 完成作业占比 0-100
}

// ReportData 合规报表
type ReportData struct {
	OverallCompletion     float64                   `json:"overallCompletion"` // 保留一位小数
	CoursesInProgress     int                       `json:"coursesInProgress"`
	OverdueEmployeesCount int                       `json:"overdueEmployeesCount"`
	CourseCompletionStats []CourseCompletionStat    `json:"courseCompletionStats"`
	EmployeeProgressList  []EmployeeProgressSummary `json:"employeeProgressList"`
}

// EmptyReport 无作业数据时的报表
func EmptyReport() *ReportData {
	return &ReportData{
		CourseCompletionStats: []CourseCompletionStat{},
		EmployeeProgressList:  []EmployeeProgressSummary{},
	}
}

// ReportQuery 报表查询参数（原始字符串）
type ReportQuery struct {
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	Department string `form:"department"`
	CourseID   string `form:"courseId"`
	CompanyID  string `form:"companyId"`
}

// ReportFilter 已解析的报表过滤条件，零值表示不过滤
type ReportFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Department string
	CourseID   string
}

// Matches 所有过滤条件取交集
func (f ReportFilter) Matches(a *Assignment) bool {
	if f.StartDate != nil && a.CreatedAt.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && a.CreatedAt.After(*f.EndDate) {
		return false
	}
	if f.Department != "" && a.Department != f.Department {
		return false
	}
	if f.CourseID != "" && a.CourseID != f.CourseID {
		return false
	}
	return true
}

// ExportResult 导出归档结果
type ExportResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Rows     int    `json:"rows"`
}
