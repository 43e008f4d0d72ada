package service

import (
	"testing"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEmpty(t *testing.T) {
	report := Aggregate(nil, testNow)

	require.NotNil(t, report)
	assert.Zero(t, report.OverallCompletion)
	assert.Zero(t, report.CoursesInProgress)
	assert.Zero(t, report.OverdueEmployeesCount)
	assert.NotNil(t, report.CourseCompletionStats)
	assert.NotNil(t, report.EmployeeProgressList)
	assert.Empty(t, report.CourseCompletionStats)
	assert.Empty(t, report.EmployeeProgressList)
}

func TestAggregateSingleCompletedAssignment(t *testing.T) {
	report := Aggregate([]model.Assignment{
		newAssignment("A", "X", model.AssignmentCompleted, daysAgo(20)),
	}, testNow)

	assert.Equal(t, 100.0, report.OverallCompletion)
	assert.Equal(t, 0, report.OverdueEmployeesCount)
	require.Len(t, report.EmployeeProgressList, 1)
	assert.Equal(t, "A", report.EmployeeProgressList[0].ID)
	assert.Equal(t, 100, report.EmployeeProgressList[0].CompletionPercentage)
	assert.Equal(t, model.StatusCompleted, report.EmployeeProgressList[0].Status)
}

func TestAggregateOverdueInProgress(t *testing.T) {
	report := Aggregate([]model.Assignment{
		newAssignment("B", "Y", model.AssignmentInProgress, daysAgo(20), withLessons(1, 10)),
	}, testNow)

	assert.Equal(t, 1, report.OverdueEmployeesCount)
	assert.Equal(t, 1, report.CoursesInProgress)
	require.Len(t, report.EmployeeProgressList, 1)
	assert.Equal(t, model.StatusOverdue, report.EmployeeProgressList[0].Status)
	assert.Equal(t, 10, report.EmployeeProgressList[0].CompletionPercentage)
}

func TestAggregateRecentNotStarted(t *testing.T) {
	report := Aggregate([]model.Assignment{
		newAssignment("C", "Z", model.AssignmentNotStarted, daysAgo(2)),
	}, testNow)

	require.Len(t, report.EmployeeProgressList, 1)
	assert.Equal(t, model.StatusNotStarted, report.EmployeeProgressList[0].Status)
	assert.Equal(t, 0, report.EmployeeProgressList[0].CompletionPercentage)
}

func TestAggregateAtRisk(t *testing.T) {
	report := Aggregate([]model.Assignment{
		newAssignment("D", "W", model.AssignmentInProgress, daysAgo(6), withLessons(2, 10)),
	}, testNow)

	require.Len(t, report.EmployeeProgressList, 1)
	assert.Equal(t, model.StatusInProgress, report.EmployeeProgressList[0].Status)
	assert.Equal(t, 0, report.OverdueEmployeesCount)
}

func TestAggregateOverdueCountedOncePerEmployee(t *testing.T) {
	report := Aggregate([]model.Assignment{
		newAssignment("B", "X", model.AssignmentNotStarted, daysAgo(20)),
		newAssignment("B", "Y", model.AssignmentInProgress, daysAgo(30), withLessons(3, 10)),
		newAssignment("C", "X", model.AssignmentCompleted, daysAgo(40)),
		newAssignment("D", "X", model.AssignmentNotStarted, daysAgo(15)),
	}, testNow)

	assert.Equal(t, 2, report.OverdueEmployeesCount)
}

func TestAggregateEmployeeLessonPercentage(t *testing.T) {
	report := Aggregate([]model.Assignment{
		newAssignment("A", "X", model.AssignmentInProgress, daysAgo(1), withLessons(3, 10)),
		newAssignment("A", "Y", model.AssignmentCompleted, daysAgo(1), withLessons(0, 5)),
		newAssignment("Z", "X", model.AssignmentNotStarted, daysAgo(1), withLessons(0, 0)),
	}, testNow)

	require.Len(t, report.EmployeeProgressList, 2)
	// (3 + 5) / 15
	assert.Equal(t, 53, report.EmployeeProgressList[0].CompletionPercentage)
	assert.Equal(t, model.StatusInProgress, report.EmployeeProgressList[0].Status)
	assert.Equal(t, 0, report.EmployeeProgressList[1].CompletionPercentage)
	assert.Equal(t, model.StatusNotStarted, report.EmployeeProgressList[1].Status)
}

func TestAggregateOverallAndCourseStats(t *testing.T) {
	report := Aggregate([]model.Assignment{
		newAssignment("A", "X", model.AssignmentCompleted, daysAgo(1)),
		newAssignment("B", "X", model.AssignmentInProgress, daysAgo(1), withLessons(2, 10)),
		newAssignment("A", "Y", model.AssignmentNotStarted, daysAgo(1)),
	}, testNow)

	assert.Equal(t, 33.3, report.OverallCompletion)
	assert.Equal(t, 1, report.CoursesInProgress)
	assert.Equal(t, []model.CourseCompletionStat{
		{CourseName: "Course X", Completion: 50},
		{CourseName: "Course Y", Completion: 0},
	}, report.CourseCompletionStats)
}

func TestAggregateOverallRoundsToOneDecimal(t *testing.T) {
	report := Aggregate([]model.Assignment{
		newAssignment("A", "X", model.AssignmentCompleted, daysAgo(1)),
		newAssignment("B", "X", model.AssignmentCompleted, daysAgo(1)),
		newAssignment("C", "X", model.AssignmentNotStarted, daysAgo(1)),
	}, testNow)

	assert.Equal(t, 66.7, report.OverallCompletion)
	assert.Equal(t, 67, report.CourseCompletionStats[0].Completion)
}

func TestAggregatePermutationInvariant(t *testing.T) {
	assignments := []model.Assignment{
		newAssignment("A", "X", model.AssignmentCompleted, daysAgo(3)),
		newAssignment("B", "X", model.AssignmentInProgress, daysAgo(20), withLessons(4, 10)),
		newAssignment("C", "Y", model.AssignmentNotStarted, daysAgo(7)),
		newAssignment("A", "Y", model.AssignmentInProgress, daysAgo(2), withLessons(6, 10)),
		newAssignment("D", "Z", model.AssignmentCompleted, daysAgo(12)),
	}
	reversed := make([]model.Assignment, len(assignments))
	for i := range assignments {
		reversed[len(assignments)-1-i] = assignments[i]
	}

	forward := Aggregate(assignments, testNow)
	backward := Aggregate(reversed, testNow)

	assert.Equal(t, forward.OverallCompletion, backward.OverallCompletion)
	assert.Equal(t, forward.CoursesInProgress, backward.CoursesInProgress)
	assert.Equal(t, forward.OverdueEmployeesCount, backward.OverdueEmployeesCount)
	assert.ElementsMatch(t, forward.EmployeeProgressList, backward.EmployeeProgressList)
	assert.ElementsMatch(t, forward.CourseCompletionStats, backward.CourseCompletionStats)
}

func TestAggregateIdempotent(t *testing.T) {
	assignments := []model.Assignment{
		newAssignment("A", "X", model.AssignmentCompleted, daysAgo(3)),
		newAssignment("B", "X", model.AssignmentInProgress, daysAgo(20), withLessons(4, 10)),
		newAssignment("C", "Y", model.AssignmentNotStarted, daysAgo(7)),
	}
	snapshot := make([]model.Assignment, len(assignments))
	copy(snapshot, assignments)

	first := Aggregate(assignments, testNow)
	second := Aggregate(assignments, testNow)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, assignments)
}

func TestAggregateCompletedCourseWithoutLessons(t *testing.T) {
	report := Aggregate([]model.Assignment{
		newAssignment("Z", "X", model.AssignmentCompleted, daysAgo(3), withLessons(0, 0)),
	}, testNow)

	assert.Equal(t, 100.0, report.OverallCompletion)
	require.Len(t, report.EmployeeProgressList, 1)
	assert.Equal(t, 100, report.EmployeeProgressList[0].CompletionPercentage)
	assert.Equal(t, model.StatusCompleted, report.EmployeeProgressList[0].Status)
}

func TestAggregateZeroLessonCoursesMixed(t *testing.T) {
	report := Aggregate([]model.Assignment{
		newAssignment("Z", "X", model.AssignmentCompleted, daysAgo(3), withLessons(0, 0)),
		newAssignment("Z", "Y", model.AssignmentNotStarted, daysAgo(1), withLessons(0, 0)),
		newAssignment("Z", "W", model.AssignmentInProgress, daysAgo(1), withLessons(1, 3)),
	}, testNow)

	require.Len(t, report.EmployeeProgressList, 1)
	// (1 + 0 + 1) / (1 + 0 + 3)
	assert.Equal(t, 50, report.EmployeeProgressList[0].CompletionPercentage)
	assert.Equal(t, model.StatusInProgress, report.EmployeeProgressList[0].Status)
}
