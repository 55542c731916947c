package models

// 模块名称常量
const (
	ModuleDashboard    = "dashboard"
	ModuleContacts     = "contacts"
	ModuleLeads        = "leads"
	ModuleLeadboard    = "leadboard"
	ModuleInvoices     = "invoices"
	ModuleFinance      = "finance"
	ModuleProjects     = "projects"
	ModuleContracts    = "contracts"
	ModuleTickets      = "tickets"
	ModuleClientPortal = "clientportal"
	ModuleSettings     = "settings"
)

// ModuleGrant 模块访问授权记录，按用户+模块名查询，最近一次写入生效
type ModuleGrant struct {
	ID        string `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string `gorm:"type:varchar(50);index" json:"userId"`
	Module    string `gorm:"type:varchar(50)" json:"module"`
	HasAccess bool   `gorm:"default:false" json:"hasAccess"`
}

// ModuleSetting 模块全局开关
type ModuleSetting struct {
	Name        string `gorm:"type:varchar(50);primaryKey" json:"name"`
	IsEnabled   bool   `gorm:"default:true" json:"isEnabled"`
	Label       string `gorm:"type:varchar(100)" json:"label"`
	Description string `gorm:"type:varchar(255)" json:"description"`
}
