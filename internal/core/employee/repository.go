package employee

import "context"

// Repository は社員レコードの読み込み元の抽象です。
type Repository interface {
	List(ctx context.Context) ([]*Employee, error)
}
