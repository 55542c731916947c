package services

import (
	"math"

	"StudioCRMGo/models"
)

// Summarize 统计任务完成进度，纯函数。
// 百分比四舍五入到整数（math.Round，远离零方向），total为0时返回0。
func Summarize(tasks []models.PortalTask) models.Progress {
	progress := models.Progress{Total: len(tasks)}
	for _, task := range tasks {
		if task.IsCompleted {
			progress.Completed++
		}
	}
	if progress.Total > 0 {
		progress.Percentage = int(math.Round(float64(progress.Completed) / float64(progress.Total) * 100))
	}
	return progress
}
