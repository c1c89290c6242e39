package employee

import "context"

// Repository は従業員エンティティの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
	Count(ctx context.Context) (int64, error)
}
