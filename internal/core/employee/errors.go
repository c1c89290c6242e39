package employee

import "errors"

var (
	// ErrEmployeeNotFound は従業員が存在しない場合に返却されます。
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrEmployeeIDAlreadyExists は従業員 ID 重複時に返却されます。
	ErrEmployeeIDAlreadyExists = errors.New("employee ID already exists")
	// ErrEmailAlreadyExists はメールアドレス重複時に返却されます。
	ErrEmailAlreadyExists = errors.New("email already registered")
	// ErrInvalidEmployeeID は従業員 ID が未指定の場合に返却されます。
	ErrInvalidEmployeeID = errors.New("employee_id is required")
	// ErrInvalidFullName は氏名が未指定の場合に返却されます。
	ErrInvalidFullName = errors.New("full_name is required")
	// ErrInvalidEmail はメールアドレスが不正な場合に返却されます。
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrInvalidDepartment は部署が未指定の場合に返却されます。
	ErrInvalidDepartment = errors.New("department is required")
	// ErrInvalidID はIDが不正な場合に返却されます。
	ErrInvalidID = errors.New("invalid id")
)
