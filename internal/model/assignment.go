package model

import (
	"time"
)

type AssignmentStatus string

const (
	AssignmentNotStarted AssignmentStatus = "not-started"
	AssignmentInProgress AssignmentStatus = "in-progress"
	AssignmentCompleted  AssignmentStatus = "completed"
)

type LessonStatus string

const (
	LessonNotStarted LessonStatus = "not-started"
	LessonInProgress LessonStatus = "in-progress"
	LessonCompleted  LessonStatus = "completed"
)

// LessonProgress 作业内单个课时的进度
type LessonProgress struct {
	LessonID    string       `json:"lessonId" bson:"lesson_id"`
	Status      LessonStatus `json:"status" bson:"status"`
	CompletedAt *time.Time   `json:"completedAt,omitempty" bson:"completed_at,omitempty"`
}

// Assignment 员工与课程的分配记录，员工与课程信息冗余存储，便于报表直接读取
type Assignment struct {
	ID                   string           `json:"id" bson:"_id"`
	CompanyID            string           `json:"companyId" bson:"company_id"`
	EmployeeID           string           `json:"employeeId" bson:"employee_id"`
	EmployeeName         string           `json:"employeeName" bson:"employee_name"`
	EmployeeEmail        string           `json:"employeeEmail" bson:"employee_email"`
	Department           string           `json:"department" bson:"department"`
	CourseID             string           `json:"courseId" bson:"course_id"`
	CourseTitle          string           `json:"courseTitle" bson:"course_title"`
	TotalLessonsInCourse int              `json:"totalLessonsInCourse" bson:"total_lessons_in_course"`
	Status               AssignmentStatus `json:"status" bson:"status"`
	LessonProgress       []LessonProgress `json:"lessonProgress" bson:"lesson_progress"`
	CreatedAt            time.Time        `json:"createdAt" bson:"created_at"`
	UpdatedAt            time.Time        `json:"updatedAt" bson:"updated_at"`
}

// CompletedLessons 已完成课时数，不超过课程总课时
func (a *Assignment) CompletedLessons() int {
	n := 0
	for _, lp := range a.LessonProgress {
		if lp.Status == LessonCompleted {
			n++
		}
	}
	if a.TotalLessonsInCourse >= 0 && n > a.TotalLessonsInCourse {
		n = a.TotalLessonsInCourse
	}
	return n
}

// ProgressPercent 单个作业的课时完成比例（0-100），课程无课时时为 0
func (a *Assignment) ProgressPercent() float64 {
	if a.TotalLessonsInCourse <= 0 {
		return 0
	}
	return float64(a.CompletedLessons()) / float64(a.TotalLessonsInCourse) * 100
}

func (a *Assignment) IsCompleted() bool {
	return a.Status == AssignmentCompleted
}

// SetLessonStatus 更新或追加课时进度，并根据课时重新计算作业状态。
// 已完成的作业保持 completed，课时记录不完整时也不会回退
func (a *Assignment) SetLessonStatus(lessonID string, status LessonStatus, now time.Time) {
	found := false
	for i := range a.LessonProgress {
		if a.LessonProgress[i].LessonID != lessonID {
			continue
		}
		found = true
		a.LessonProgress[i].Status = status
		a.LessonProgress[i].CompletedAt = completedAt(status, now)
	}
	if !found {
		a.LessonProgress = append(a.LessonProgress, LessonProgress{
			LessonID:    lessonID,
			Status:      status,
			CompletedAt: completedAt(status, now),
		})
	}

	a.Status = a.deriveStatus()
	a.UpdatedAt = now
}

func (a *Assignment) deriveStatus() AssignmentStatus {
	if a.IsCompleted() {
		return AssignmentCompleted
	}
	completed := a.CompletedLessons()
	if a.TotalLessonsInCourse > 0 && completed >= a.TotalLessonsInCourse {
		return AssignmentCompleted
	}
	for _, lp := range a.LessonProgress {
		if lp.Status == LessonCompleted || lp.Status == LessonInProgress {
			return AssignmentInProgress
		}
	}
	return AssignmentNotStarted
}

func completedAt(status LessonStatus, now time.Time) *time.Time {
	if status != LessonCompleted {
		return nil
	}
	t := now
	return &t
}

// AssignCourseRequest 为多名员工分配同一课程
type AssignCourseRequest struct {
	CourseID             string             `json:"courseId" binding:"required"`
	CourseTitle          string             `json:"courseTitle" binding:"required"`
	TotalLessonsInCourse int                `json:"totalLessonsInCourse" binding:"gte=0"`
	Employees            []AssigneeEmployee `json:"employees" binding:"required,min=1,dive"`
}

type AssigneeEmployee struct {
	ID         string `json:"id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department"`
}

// AssignCourseResult 新建与已存在（跳过）的作业
type AssignCourseResult struct {
	Created []Assignment `json:"created"`
	Skipped []string     `json:"skipped"`
}

type LessonProgressRequest struct {
	Status LessonStatus `json:"status" binding:"required,oneof=not-started in-progress completed"`
}
