package services

import (
	"errors"
	"time"

	"StudioCRMGo/models"
	"StudioCRMGo/utils"

	"gorm.io/gorm"
)

// TaskManager 客户门户任务列表管理器。
// 所有操作都带范围条件（父级类型+父级ID），跨范围的任务ID一律按"不存在"
// 处理，不区分"查无此行"和"属于别的范围"，避免泄露跨租户数据的存在性。
type TaskManager struct {
	db *gorm.DB
}

func NewTaskManager(db *gorm.DB) *TaskManager {
	return &TaskManager{db: db}
}

func scoped(db *gorm.DB, scope models.TaskScope) *gorm.DB {
	return db.Where("parent_kind = ? AND parent_id = ?", scope.Kind, scope.ParentID)
}

// parentExists 校验父级（报价单或客户账号）是否存在
func (m *TaskManager) parentExists(tx *gorm.DB, scope models.TaskScope) (bool, error) {
	var count int64
	var err error
	switch scope.Kind {
	case models.ParentQuote:
		err = tx.Model(&models.Quote{}).Where("id = ?", scope.ParentID).Count(&count).Error
	case models.ParentClient:
		err = tx.Model(&models.ClientAccount{}).Where("id = ?", scope.ParentID).Count(&count).Error
	default:
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List 返回范围内全部任务，按sort_order升序（同序按id），附带完成人最小信息
func (m *TaskManager) List(scope models.TaskScope) ([]models.PortalTask, error) {
	var tasks []models.PortalTask
	err := scoped(m.db, scope).
		Preload("CompletedByUser").
		Order("sort_order asc, id asc").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create 创建任务，排序号取范围内最大值+1（空范围为0）。
// 读取最大值和写入在同一事务内完成。
func (m *TaskManager) Create(scope models.TaskScope, req models.CreateTaskRequest) (*models.PortalTask, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var task models.PortalTask
	err := m.db.Transaction(func(tx *gorm.DB) error {
		exists, err := m.parentExists(tx, scope)
		if err != nil {
			return err
		}
		if !exists {
			return models.ErrNotFound
		}

		var maxOrder int
		if err := scoped(tx.Model(&models.PortalTask{}), scope).
			Select("COALESCE(MAX(sort_order), -1)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}

		task = models.PortalTask{
			ID:          utils.GenerateID(),
			ParentKind:  scope.Kind,
			ParentID:    scope.ParentID,
			Title:       req.Title,
			Description: req.Description,
			SortOrder:   maxOrder + 1,
		}
		return tx.Create(&task).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update 部分更新：只修改请求中出现的字段，未出现的字段保持原值
func (m *TaskManager) Update(scope models.TaskScope, taskID string, req models.UpdateTaskRequest) (*models.PortalTask, error) {
	var task models.PortalTask
	if err := scoped(m.db, scope).Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if err := (&models.CreateTaskRequest{Title: *req.Title}).Validate(); err != nil {
			return nil, err
		}
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return &task, nil
	}

	if err := m.db.Model(&task).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Toggle 翻转完成状态。完成时间和完成人随状态在同一条UPDATE里写入或清空，
// 不会出现状态与元数据不一致的中间态。
func (m *TaskManager) Toggle(scope models.TaskScope, taskID string, actingUserID string) (*models.PortalTask, error) {
	var task models.PortalTask
	err := m.db.Transaction(func(tx *gorm.DB) error {
		if err := scoped(tx, scope).Where("id = ?", taskID).First(&task).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if task.IsCompleted {
			updates["is_completed"] = false
			updates["completed_at"] = nil
			updates["completed_by"] = nil
			task.IsCompleted = false
			task.CompletedAt = nil
			task.CompletedBy = nil
		} else {
			now := time.Now()
			updates["is_completed"] = true
			updates["completed_at"] = now
			updates["completed_by"] = actingUserID
			task.IsCompleted = true
			task.CompletedAt = &now
			task.CompletedBy = &actingUserID
		}
		return tx.Model(&models.PortalTask{}).Where("id = ?", task.ID).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete 硬删除，不可恢复
func (m *TaskManager) Delete(scope models.TaskScope, taskID string) error {
	result := scoped(m.db, scope).Where("id = ?", taskID).Delete(&models.PortalTask{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
