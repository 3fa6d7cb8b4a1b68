package repository

import (
	"context"
	"errors"

	"cornerstore/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	//商品名かカテゴリ名に含まれる文字列（大文字小文字は区別しない）。空なら全件
	Search string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	//Category 付きで返す
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
}
