package employee

import "time"

// Employee は従業員エンティティです。EmployeeID は外部から付与される業務キーで、
// 作成後は変更されません。
type Employee struct {
	ID         string
	EmployeeID string
	FullName   string
	Email      string
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
