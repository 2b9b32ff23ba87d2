package request

import "github.com/Guyuepp/vidstream/domain"

type CreateComment struct {
	Content  string `json:"content" binding:"required,min=1,max=2000"`
	ParentID *int64 `json:"parent_id" binding:"omitempty,gt=0"`
}

// ToDomain: Request -> Domain
func (r *CreateComment) ToDomain(videoID, userID int64) domain.Comment {
	return domain.Comment{
		VideoID:  videoID,
		UserID:   userID,
		Content:  r.Content,
		ParentID: r.ParentID,
	}
}

type UpdateComment struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// ListComments 顶层评论分页查询参数, 省略时使用文档化的默认值
type ListComments struct {
	Page   int    `form:"page,default=1" binding:"gte=1"`
	Size   int    `form:"size,default=10" binding:"gte=1,lte=100"`
	SortBy string `form:"sort_by,default=created_at" binding:"oneof=created_at likes"`
	Order  string `form:"order,default=desc" binding:"oneof=asc desc"`
}

type ListReplies struct {
	Page int `form:"page,default=1" binding:"gte=1"`
	Size int `form:"size,default=10" binding:"gte=1,lte=100"`
}
