package logic

import (
	"errors"
	"time"

	"github.com/yiryeong/wanted-pre-onboarding/internal/domain"
	"github.com/yiryeong/wanted-pre-onboarding/internal/model"
	"gorm.io/gorm"
)

// ProductLogic funding product business logic
type ProductLogic struct {
	db *gorm.DB
}

// NewProductLogic creates the product business logic
func NewProductLogic(db *gorm.DB) *ProductLogic {
	return &ProductLogic{db: db}
}

// productRow one row of the grouped list/retrieve query
type productRow struct {
	Id              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	UserId          int64
	Title           string
	Description     string
	TargetAmount    int64
	OneTimeFunding  int64
	EndDate         time.Time
	Username        string
	ParticipantsNum int64
}

const productColumns = `p.id, p.created_at, p.updated_at, p.user_id, p.title, p.description,
	p.target_amount, p.one_time_funding, p.end_date,
	u.username, COALESCE(f.cnt, 0) AS participants_num`

// decoratedQuery joins the owner and the grouped funding counts so list
// and retrieve never issue one count query per product.
func (l *ProductLogic) decoratedQuery() *gorm.DB {
	return l.db.Table("product AS p").
		Select(productColumns).
		Joins("JOIN users u ON u.id = p.user_id").
		Joins("LEFT JOIN (SELECT product_id, COUNT(*) AS cnt FROM funding GROUP BY product_id) f ON f.product_id = p.id")
}

func (r productRow) toDomain() domain.Product {
	return domain.Product{
		Id:             r.Id,
		OwnerId:        r.UserId,
		Title:          r.Title,
		Description:    r.Description,
		TargetAmount:   r.TargetAmount,
		OneTimeFunding: r.OneTimeFunding,
		EndDate:        r.EndDate,
		CreateDate:     r.CreatedAt,
	}
}

// Create registers a product. Staff only; the owner is always the
// acting user regardless of payload.
func (l *ProductLogic) Create(actor domain.Actor, p domain.Product) (*model.ProductModel, error) {
	if err := domain.CanCreateProduct(actor); err != nil {
		return nil, err
	}
	p.OwnerId = actor.Id
	if err := domain.ValidateNewProduct(p); err != nil {
		return nil, err
	}

	record := model.ProductModel{
		UserId:         p.OwnerId,
		Title:          p.Title,
		Description:    p.Description,
		TargetAmount:   p.TargetAmount,
		OneTimeFunding: p.OneTimeFunding,
		EndDate:        p.EndDate,
	}
	if err := l.db.Create(&record).Error; err != nil {
		return nil, domain.NewUpstream("create product", err)
	}

	return &record, nil
}

// ListOptions optional search and ordering for List
type ListOptions struct {
	// case-insensitive title substring
	Search string
	// "create_date" or "total_funding", "-" prefix for descending
	OrderBy string
}

// List returns all products decorated with derived statistics.
func (l *ProductLogic) List(opts ListOptions, today time.Time) ([]domain.ProductView, error) {
	q := l.decoratedQuery()

	if opts.Search != "" {
		q = q.Where("p.title ILIKE ?", "%"+opts.Search+"%")
	}

	field := opts.OrderBy
	dir := "ASC"
	if len(field) > 0 && field[0] == '-' {
		field = field[1:]
		dir = "DESC"
	}
	switch field {
	case "create_date":
		q = q.Order("p.created_at " + dir)
	case "total_funding":
		q = q.Order("COALESCE(f.cnt, 0) * p.one_time_funding " + dir)
	default:
		q = q.Order("p.id ASC")
	}

	var rows []productRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, domain.NewUpstream("list products", err)
	}

	views := make([]domain.ProductView, len(rows))
	for i, r := range rows {
		views[i] = domain.Decorate(r.toDomain(), r.Username, r.ParticipantsNum, today)
	}
	return views, nil
}

// Get returns one decorated product.
func (l *ProductLogic) Get(id int64, today time.Time) (*domain.ProductView, error) {
	var rows []productRow
	if err := l.decoratedQuery().Where("p.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, domain.NewUpstream("get product", err)
	}
	if len(rows) == 0 {
		return nil, domain.NewNotFound("product", id)
	}

	view := domain.Decorate(rows[0].toDomain(), rows[0].Username, rows[0].ParticipantsNum, today)
	return &view, nil
}

// Update applies a partial update. Owner only; target_amount is frozen.
func (l *ProductLogic) Update(actor domain.Actor, id int64, upd domain.ProductUpdate) (*model.ProductModel, error) {
	var record model.ProductModel
	if err := l.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("product", id)
		}
		return nil, domain.NewUpstream("find product", err)
	}

	current := domain.Product{
		Id:             record.Id,
		OwnerId:        record.UserId,
		Title:          record.Title,
		Description:    record.Description,
		TargetAmount:   record.TargetAmount,
		OneTimeFunding: record.OneTimeFunding,
		EndDate:        record.EndDate,
		CreateDate:     record.CreatedAt,
	}
	if err := domain.CanModifyProduct(current, actor); err != nil {
		return nil, err
	}

	updated, err := domain.ApplyUpdate(current, upd)
	if err != nil {
		return nil, err
	}

	record.Title = updated.Title
	record.Description = updated.Description
	record.OneTimeFunding = updated.OneTimeFunding
	record.EndDate = updated.EndDate
	if err := l.db.Save(&record).Error; err != nil {
		return nil, domain.NewUpstream("update product", err)
	}

	return &record, nil
}

// Delete removes a product and its fundings. Owner only.
func (l *ProductLogic) Delete(actor domain.Actor, id int64) error {
	var record model.ProductModel
	if err := l.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFound("product", id)
		}
		return domain.NewUpstream("find product", err)
	}

	current := domain.Product{Id: record.Id, OwnerId: record.UserId}
	if err := domain.CanDeleteProduct(current, actor); err != nil {
		return err
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.FundingModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ProductModel{}, id).Error
	})
	if err != nil {
		return domain.NewUpstream("delete product", err)
	}
	return nil
}
