package repository

import (
	"context"
	"errors"
	"strings"

	"cornerstore/internal/domain/model"
	repo "cornerstore/internal/repository"

	"gorm.io/gorm"
)

// LIKE のワイルドカードを文字として扱う
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 商品をCategoryとJOINして返す。Searchがあれば商品名/カテゴリ名の部分一致で絞る。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	var products []model.Product

	tx := r.db.WithContext(ctx).Joins("Category")

	//ILIKE は sqlite に無いので LOWER + LIKE
	if q.Search != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(q.Search)) + "%"
		tx = tx.Where(
			`LOWER("Category"."category_name") LIKE ? ESCAPE '\' OR LOWER("products"."product_name") LIKE ? ESCAPE '\'`,
			like, like,
		)
	}

	if err := tx.Order("products.id asc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の作成（categoryIdが無ければFK違反でエラー）
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	p.Category = nil
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の更新。4項目は値が同じでも必ず上書きする
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"product_name": p.ProductName,
		"price":        p.Price,
		"brand":        p.Brand,
		"category_id":  p.CategoryID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
