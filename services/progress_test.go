package services

import (
	"testing"

	"StudioCRMGo/models"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_Empty(t *testing.T) {
	progress := Summarize(nil)

	assert.Equal(t, 0, progress.Completed)
	assert.Equal(t, 0, progress.Total)
	assert.Equal(t, 0, progress.Percentage)
}

func TestSummarize_AllCompleted(t *testing.T) {
	tasks := []models.PortalTask{
		{IsCompleted: true},
		{IsCompleted: true},
	}

	progress := Summarize(tasks)

	assert.Equal(t, 2, progress.Completed)
	assert.Equal(t, 2, progress.Total)
	assert.Equal(t, 100, progress.Percentage)
}

func TestSummarize_TwoOfThree(t *testing.T) {
	tasks := []models.PortalTask{
		{IsCompleted: true},
		{IsCompleted: true},
		{IsCompleted: false},
	}

	progress := Summarize(tasks)

	assert.Equal(t, 2, progress.Completed)
	assert.Equal(t, 3, progress.Total)
	assert.Equal(t, 67, progress.Percentage)
}

func TestSummarize_RoundsHalfAwayFromZero(t *testing.T) {
	// 1/8 = 12.5% -> 13
	tasks := make([]models.PortalTask, 8)
	tasks[0].IsCompleted = true

	progress := Summarize(tasks)

	assert.Equal(t, 13, progress.Percentage)
}

func TestSummarize_DoesNotMutateInput(t *testing.T) {
	tasks := []models.PortalTask{{IsCompleted: false}}

	Summarize(tasks)

	assert.False(t, tasks[0].IsCompleted)
}
