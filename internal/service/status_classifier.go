package service

import (
	"time"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"
)

const (
	// OverdueDays 未完成作业超过该天数视为逾期
	OverdueDays = 14
	// AtRiskMinDays 与 AtRiskProgressThreshold 共同决定作业是否有风险
	AtRiskMinDays = 5
	// AtRiskProgressThreshold 课时完成比例低于该值（百分比）
	AtRiskProgressThreshold = 50
)

const day = 24 * time.Hour

// IsOverdue 作业未完成且创建超过 OverdueDays 天
func IsOverdue(a *model.Assignment, now time.Time) bool {
	return !a.IsCompleted() && now.Sub(a.CreatedAt) > OverdueDays*day
}

// IsAtRisk 作业未完成、创建超过 AtRiskMinDays 天且课时进度低于阈值
func IsAtRisk(a *model.Assignment, now time.Time) bool {
	return !a.IsCompleted() &&
		now.Sub(a.CreatedAt) > AtRiskMinDays*day &&
		a.ProgressPercent() < AtRiskProgressThreshold
}

// ClassifyEmployee 根据员工在范围内的全部作业判定状态，规则按顺序匹配：
// 逾期 > 已完成 > 进行中（有风险作业或有进度）> 未开始
func ClassifyEmployee(assignments []model.Assignment, completionPercentage int, now time.Time) model.EmployeeStatus {
	for i := range assignments {
		if IsOverdue(&assignments[i], now) {
			return model.StatusOverdue
		}
	}

	if completionPercentage == 100 {
		for i := range assignments {
			if assignments[i].IsCompleted() {
				return model.StatusCompleted
			}
		}
	}

	if completionPercentage > 0 {
		return model.StatusInProgress
	}
	for i := range assignments {
		if IsAtRisk(&assignments[i], now) {
			return model.StatusInProgress
		}
	}

	return model.StatusNotStarted
}
