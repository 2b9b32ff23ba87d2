package mysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/vidstream/domain"
	"github.com/Guyuepp/vidstream/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

// visible narrows any comment query to rows that take part in normal reads.
// This is the SQL side of domain.Comment.Visible, kept in one place.
func (c *commentRepository) visible(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	result := c.DB.WithContext(ctx).Create(commentModel)
	if result.Error != nil {
		return result.Error
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	comment.UpdatedAt = commentModel.UpdatedAt
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	var comment model.Comment
	// 不过滤 is_deleted：点赞和级联删除都需要读到已删除的行
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		return domain.Comment{}, domain.ErrNotFound
	}
	return comment.ToDomain(), nil
}

// orderClause builds the ORDER BY for root listings. The id ASC tail makes
// ties on the sort key deterministic across repeated calls.
func orderClause(sortBy domain.CommentSort, order domain.SortOrder) string {
	column := "created_at"
	if sortBy == domain.CommentSortLikes {
		column = "likes"
	}
	direction := "desc"
	if order == domain.OrderAsc {
		direction = "asc"
	}
	return fmt.Sprintf("%s %s, id asc", column, direction)
}

func (c *commentRepository) FetchRoots(ctx context.Context, videoID int64, page, size int, sortBy domain.CommentSort, order domain.SortOrder) ([]domain.Comment, error) {
	var comments []model.Comment
	err := c.visible(c.DB.WithContext(ctx)).
		Where("video_id = ? AND parent_id IS NULL", videoID).
		Order(orderClause(sortBy, order)).
		Offset((page - 1) * size).
		Limit(size).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return res, nil
}

func (c *commentRepository) CountRoots(ctx context.Context, videoID int64) (int64, error) {
	var total int64
	err := c.visible(c.DB.WithContext(ctx).Model(&model.Comment{})).
		Where("video_id = ? AND parent_id IS NULL", videoID).
		Count(&total).Error
	return total, err
}

func (c *commentRepository) FetchChildren(ctx context.Context, parentID int64, page, size int) ([]domain.Comment, error) {
	var comments []model.Comment
	err := c.visible(c.DB.WithContext(ctx)).
		Where("parent_id = ?", parentID).
		Order("created_at desc, id desc").
		Offset((page - 1) * size).
		Limit(size).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return res, nil
}

func (c *commentRepository) CountChildren(ctx context.Context, parentID int64) (int64, error) {
	var total int64
	err := c.visible(c.DB.WithContext(ctx).Model(&model.Comment{})).
		Where("parent_id = ?", parentID).
		Count(&total).Error
	return total, err
}

func (c *commentRepository) FetchByParentIDs(ctx context.Context, parentIDs []int64) ([]domain.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}

	var comments []model.Comment
	err := c.visible(c.DB.WithContext(ctx)).
		Where("parent_id IN ?", parentIDs).
		Order("created_at asc, id asc").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return res, nil
}

func (c *commentRepository) CountByParentIDs(ctx context.Context, parentIDs []int64) (map[int64]int64, error) {
	res := make(map[int64]int64, len(parentIDs))
	if len(parentIDs) == 0 {
		return res, nil
	}

	var rows []struct {
		ParentID int64
		Total    int64
	}
	err := c.visible(c.DB.WithContext(ctx).Model(&model.Comment{})).
		Select("parent_id as parent_id, count(*) as total").
		Where("parent_id IN ?", parentIDs).
		Group("parent_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		res[row.ParentID] = row.Total
	}
	return res, nil
}

func (c *commentRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("content", content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) MarkDeleted(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id IN ?", ids).
		UpdateColumn("is_deleted", true).Error
}

// AddLiker relies on the unique (comment_id, user_id) index: the insert is
// the atomic membership test, so concurrent toggles by the same user can
// never double-add.
func (c *commentRepository) AddLiker(ctx context.Context, commentID, userID int64) (bool, error) {
	added := false
	err := c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := model.CommentLike{CommentID: commentID, UserID: userID}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		added = true
		return tx.Model(&model.Comment{}).
			Where("id = ?", commentID).
			Update("likes", gorm.Expr("likes + 1")).Error
	})
	return added, err
}

func (c *commentRepository) RemoveLiker(ctx context.Context, commentID, userID int64) (bool, error) {
	removed := false
	err := c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).
			Delete(&model.CommentLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Model(&model.Comment{}).
			Where("id = ? AND likes > 0", commentID).
			Update("likes", gorm.Expr("likes - 1")).Error
	})
	return removed, err
}

func (c *commentRepository) GetLikers(ctx context.Context, commentID int64) ([]int64, error) {
	var likers []int64
	err := c.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).
		Order("user_id").
		Pluck("user_id", &likers).Error
	return likers, err
}
