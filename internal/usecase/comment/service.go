package comment

import (
	"context"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/vidstream/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	userRepo    domain.UserRepository
	videoRepo   domain.VideoRepository
	bloomRepo   domain.BloomRepository
	moderator   domain.ContentModerator
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, userRepo domain.UserRepository, videoRepo domain.VideoRepository, bloomRepo domain.BloomRepository, moderator domain.ContentModerator) *service {
	return &service{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		videoRepo:   videoRepo,
		bloomRepo:   bloomRepo,
		moderator:   moderator,
	}
}

func (s *service) mustVideoExists(ctx context.Context, id int64) error {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says video %d does not exist", id)
		return domain.ErrNotFound
	}

	// 布隆过滤器有误判率, 命中后仍需回源确认
	if _, err := s.videoRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return nil
}

// cleanContent 审核并裁剪评论正文
func (s *service) cleanContent(ctx context.Context, content string) (string, error) {
	cleaned, err := s.moderator.Clean(ctx, content)
	if err != nil {
		return "", err
	}

	n := utf8.RuneCountInString(cleaned)
	if n < domain.CommentMinLen || n > domain.CommentMaxLen {
		return "", domain.ErrBadParamInput
	}
	return cleaned, nil
}

func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	cleaned, err := s.cleanContent(ctx, c.Content)
	if err != nil {
		return err
	}
	c.Content = cleaned

	if err := s.mustVideoExists(ctx, c.VideoID); err != nil {
		return err
	}

	if c.ParentID == nil {
		c.Level = 0
		return s.commentRepo.Store(ctx, c)
	}

	parent, err := s.commentRepo.GetByID(ctx, *c.ParentID)
	if err != nil {
		return err
	}
	if !parent.Visible() {
		return domain.ErrNotFound
	}
	// 不允许跨视频回复
	if parent.VideoID != c.VideoID {
		return domain.ErrBadParamInput
	}

	c.Level = parent.Level + 1
	if c.Level >= domain.MaxThreadDepth {
		return domain.ErrBadParamInput
	}

	return s.commentRepo.Store(ctx, c)
}

func (s *service) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if !c.Visible() {
		return domain.Comment{}, domain.ErrNotFound
	}

	// 全子树回复数
	counts, _, err := s.countDescendants(ctx, []int64{c.ID})
	if err != nil {
		return domain.Comment{}, err
	}
	c.Replies = counts[c.ID]

	if user, err := s.userRepo.GetByID(ctx, c.UserID); err == nil {
		c.User = &user
	}

	return c, nil
}

func (s *service) ListByVideo(ctx context.Context, videoID int64, page, size int, sortBy domain.CommentSort, order domain.SortOrder) (domain.CommentPage, error) {
	if page < 1 || size < 1 {
		return domain.CommentPage{}, domain.ErrBadParamInput
	}
	switch sortBy {
	case domain.CommentSortCreatedAt, domain.CommentSortLikes:
	default:
		return domain.CommentPage{}, domain.ErrBadParamInput
	}
	switch order {
	case domain.OrderAsc, domain.OrderDesc:
	default:
		return domain.CommentPage{}, domain.ErrBadParamInput
	}

	if err := s.mustVideoExists(ctx, videoID); err != nil {
		return domain.CommentPage{}, err
	}

	total, err := s.commentRepo.CountRoots(ctx, videoID)
	if err != nil {
		return domain.CommentPage{}, err
	}
	if total == 0 {
		return domain.CommentPage{Items: []domain.Comment{}, Page: page}, nil
	}

	items, err := s.commentRepo.FetchRoots(ctx, videoID, page, size, sortBy, order)
	if err != nil {
		return domain.CommentPage{}, err
	}

	rootIDs := make([]int64, len(items))
	for i := range items {
		rootIDs[i] = items[i].ID
	}

	counts, maxLevel, err := s.countDescendants(ctx, rootIDs)
	if err != nil {
		return domain.CommentPage{}, err
	}
	for i := range items {
		items[i].Replies = counts[items[i].ID]
	}

	if err := s.fillUserDetails(ctx, items); err != nil {
		return domain.CommentPage{}, err
	}

	return domain.CommentPage{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, size),
		MaxLevel:   maxLevel,
	}, nil
}

func (s *service) ListReplies(ctx context.Context, parentID int64, page, size int) (domain.CommentPage, error) {
	if page < 1 || size < 1 {
		return domain.CommentPage{}, domain.ErrBadParamInput
	}

	parent, err := s.commentRepo.GetByID(ctx, parentID)
	if err != nil {
		return domain.CommentPage{}, err
	}
	if !parent.Visible() {
		return domain.CommentPage{}, domain.ErrNotFound
	}

	total, err := s.commentRepo.CountChildren(ctx, parentID)
	if err != nil {
		return domain.CommentPage{}, err
	}

	// MaxLevel 统计整棵子树的深度, 与当前分页窗口无关
	_, maxLevel, err := s.countDescendants(ctx, []int64{parentID})
	if err != nil {
		return domain.CommentPage{}, err
	}

	if total == 0 {
		return domain.CommentPage{Items: []domain.Comment{}, Page: page, MaxLevel: maxLevel}, nil
	}

	items, err := s.commentRepo.FetchChildren(ctx, parentID, page, size)
	if err != nil {
		return domain.CommentPage{}, err
	}

	// 每个子节点只标注直接回复数
	childIDs := make([]int64, len(items))
	for i := range items {
		childIDs[i] = items[i].ID
	}
	directCounts, err := s.commentRepo.CountByParentIDs(ctx, childIDs)
	if err != nil {
		return domain.CommentPage{}, err
	}
	for i := range items {
		items[i].Replies = directCounts[items[i].ID]
	}

	if err := s.fillUserDetails(ctx, items); err != nil {
		return domain.CommentPage{}, err
	}

	return domain.CommentPage{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, size),
		MaxLevel:   maxLevel,
	}, nil
}

func (s *service) ResolveThread(ctx context.Context, rootID int64) (domain.CommentThread, error) {
	root, err := s.commentRepo.GetByID(ctx, rootID)
	if err != nil {
		return domain.CommentThread{}, err
	}
	if !root.Visible() {
		return domain.CommentThread{}, domain.ErrNotFound
	}

	descendants, maxDepth, err := s.collectDescendants(ctx, rootID)
	if err != nil {
		return domain.CommentThread{}, err
	}

	all := append([]domain.Comment{root}, descendants...)
	if err := s.fillUserDetails(ctx, all); err != nil {
		return domain.CommentThread{}, err
	}

	return domain.CommentThread{
		Root:        all[0],
		Descendants: all[1:],
		Replies:     int64(len(descendants)),
		MaxDepth:    maxDepth,
	}, nil
}

func (s *service) EditContent(ctx context.Context, id, userID int64, content string) (domain.Comment, error) {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if !c.Visible() {
		return domain.Comment{}, domain.ErrNotFound
	}
	if c.UserID != userID {
		return domain.Comment{}, domain.ErrForbidden
	}

	cleaned, err := s.cleanContent(ctx, content)
	if err != nil {
		return domain.Comment{}, err
	}

	if err := s.commentRepo.UpdateContent(ctx, id, cleaned); err != nil {
		return domain.Comment{}, err
	}

	// 回读拿到落库后的 UpdatedAt
	return s.commentRepo.GetByID(ctx, id)
}

// Delete 级联软删除: 先落库根节点, 再逐层删除后代。根节点删除成功即视为
// 操作成功的权威信号, 中途失败会返回错误但不会回滚根节点。
func (s *service) Delete(ctx context.Context, id, requesterID int64) (domain.Comment, error) {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if !c.Visible() {
		return domain.Comment{}, domain.ErrNotFound
	}

	if c.UserID != requesterID {
		requester, err := s.userRepo.GetByID(ctx, requesterID)
		if err != nil || !requester.IsAdmin() {
			return domain.Comment{}, domain.ErrForbidden
		}
	}

	if err := s.commentRepo.MarkDeleted(ctx, []int64{id}); err != nil {
		return domain.Comment{}, err
	}
	c.IsDeleted = true

	frontier := []int64{id}
	for depth := 1; depth <= domain.MaxThreadDepth && len(frontier) > 0; depth++ {
		children, err := s.commentRepo.FetchByParentIDs(ctx, frontier)
		if err != nil {
			return c, err
		}
		if len(children) == 0 {
			break
		}

		ids := make([]int64, len(children))
		for i := range children {
			ids[i] = children[i].ID
		}
		if err := s.commentRepo.MarkDeleted(ctx, ids); err != nil {
			return c, err
		}
		frontier = ids
	}

	return c, nil
}

func (s *service) ToggleLike(ctx context.Context, commentID, userID int64) (domain.LikeAction, error) {
	// 软删除的评论依然允许点赞切换, 不影响树结构
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return 0, err
	}

	// 同一用户的并发切换可能在插入和删除之间互相穿插, 重试几次收敛
	for range 3 {
		added, err := s.commentRepo.AddLiker(ctx, commentID, userID)
		if err != nil {
			return 0, err
		}
		if added {
			return domain.Like, nil
		}

		removed, err := s.commentRepo.RemoveLiker(ctx, commentID, userID)
		if err != nil {
			return 0, err
		}
		if removed {
			return domain.Unlike, nil
		}
	}

	return 0, domain.ErrConflict
}

// countDescendants 自给定根集合逐层下探, 统计每棵子树的可见后代数量,
// 并返回本次调用遇到的最大相对深度。
func (s *service) countDescendants(ctx context.Context, rootIDs []int64) (map[int64]int64, int, error) {
	counts := make(map[int64]int64, len(rootIDs))
	if len(rootIDs) == 0 {
		return counts, 0, nil
	}

	// rootOf 记录每个节点归属的根
	rootOf := make(map[int64]int64, len(rootIDs))
	frontier := make([]int64, len(rootIDs))
	for i, id := range rootIDs {
		rootOf[id] = id
		frontier[i] = id
		counts[id] = 0
	}

	maxLevel := 0
	for depth := 1; depth <= domain.MaxThreadDepth && len(frontier) > 0; depth++ {
		children, err := s.commentRepo.FetchByParentIDs(ctx, frontier)
		if err != nil {
			return nil, 0, err
		}
		if len(children) == 0 {
			break
		}

		maxLevel = depth
		frontier = frontier[:0]
		for i := range children {
			root := rootOf[*children[i].ParentID]
			rootOf[children[i].ID] = root
			counts[root]++
			frontier = append(frontier, children[i].ID)
		}
	}

	return counts, maxLevel, nil
}

// collectDescendants 返回 BFS 序的全部可见后代, Depth 为相对根的深度。
func (s *service) collectDescendants(ctx context.Context, rootID int64) ([]domain.Comment, int, error) {
	var descendants []domain.Comment
	maxDepth := 0

	frontier := []int64{rootID}
	for depth := 1; depth <= domain.MaxThreadDepth && len(frontier) > 0; depth++ {
		children, err := s.commentRepo.FetchByParentIDs(ctx, frontier)
		if err != nil {
			return nil, 0, err
		}
		if len(children) == 0 {
			break
		}

		maxDepth = depth
		frontier = frontier[:0]
		for i := range children {
			children[i].Depth = depth
			descendants = append(descendants, children[i])
			frontier = append(frontier, children[i].ID)
		}
	}

	return descendants, maxDepth, nil
}

// fillUserDetails 批量填充评论作者信息
func (s *service) fillUserDetails(ctx context.Context, comments []domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	userIDs := make([]int64, 0, len(comments))
	existMap := make(map[int64]bool)
	for i := range comments {
		if !existMap[comments[i].UserID] {
			userIDs = append(userIDs, comments[i].UserID)
			existMap[comments[i].UserID] = true
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return err
	}

	userMap := make(map[int64]domain.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	for i := range comments {
		if u, ok := userMap[comments[i].UserID]; ok {
			user := u
			comments[i].User = &user
		}
	}

	return nil
}

func totalPages(total int64, size int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
