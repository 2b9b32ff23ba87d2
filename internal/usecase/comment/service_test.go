package comment

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/vidstream/domain"
)

// fakeCommentRepo 内存版评论存储, 行为与 MySQL 实现保持一致
type fakeCommentRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*domain.Comment
	likers map[int64]map[int64]bool
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{
		byID:   make(map[int64]*domain.Comment),
		likers: make(map[int64]map[int64]bool),
	}
}

func (r *fakeCommentRepo) Store(ctx context.Context, c *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	c.ID = r.nextID
	// 用自增 ID 推出单调递增的创建时间, 让排序可预测
	c.CreatedAt = time.Unix(1700000000, 0).Add(time.Duration(r.nextID) * time.Second)
	c.UpdatedAt = c.CreatedAt

	stored := *c
	r.byID[c.ID] = &stored
	return nil
}

func (r *fakeCommentRepo) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return domain.Comment{}, domain.ErrNotFound
	}
	return *c, nil
}

func (r *fakeCommentRepo) visibleRoots(videoID int64) []domain.Comment {
	var roots []domain.Comment
	for _, c := range r.byID {
		if c.VideoID == videoID && c.ParentID == nil && !c.IsDeleted {
			roots = append(roots, *c)
		}
	}
	return roots
}

func (r *fakeCommentRepo) FetchRoots(ctx context.Context, videoID int64, page, size int, sortBy domain.CommentSort, order domain.SortOrder) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	roots := r.visibleRoots(videoID)
	sort.Slice(roots, func(i, j int) bool {
		var less bool
		var equal bool
		if sortBy == domain.CommentSortLikes {
			less = roots[i].Likes < roots[j].Likes
			equal = roots[i].Likes == roots[j].Likes
		} else {
			less = roots[i].CreatedAt.Before(roots[j].CreatedAt)
			equal = roots[i].CreatedAt.Equal(roots[j].CreatedAt)
		}
		if equal {
			return roots[i].ID < roots[j].ID
		}
		if order == domain.OrderDesc {
			return !less
		}
		return less
	})

	offset := (page - 1) * size
	if offset >= len(roots) {
		return []domain.Comment{}, nil
	}
	end := offset + size
	if end > len(roots) {
		end = len(roots)
	}
	return roots[offset:end], nil
}

func (r *fakeCommentRepo) CountRoots(ctx context.Context, videoID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.visibleRoots(videoID))), nil
}

func (r *fakeCommentRepo) visibleChildren(parentID int64) []domain.Comment {
	var children []domain.Comment
	for _, c := range r.byID {
		if c.ParentID != nil && *c.ParentID == parentID && !c.IsDeleted {
			children = append(children, *c)
		}
	}
	sort.Slice(children, func(i, j int) bool { return children[i].ID < children[j].ID })
	return children
}

func (r *fakeCommentRepo) FetchChildren(ctx context.Context, parentID int64, page, size int) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	children := r.visibleChildren(parentID)
	offset := (page - 1) * size
	if offset >= len(children) {
		return []domain.Comment{}, nil
	}
	end := offset + size
	if end > len(children) {
		end = len(children)
	}
	return children[offset:end], nil
}

func (r *fakeCommentRepo) CountChildren(ctx context.Context, parentID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.visibleChildren(parentID))), nil
}

func (r *fakeCommentRepo) FetchByParentIDs(ctx context.Context, parentIDs []int64) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []domain.Comment
	for _, pid := range parentIDs {
		all = append(all, r.visibleChildren(pid)...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *fakeCommentRepo) CountByParentIDs(ctx context.Context, parentIDs []int64) (map[int64]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[int64]int64, len(parentIDs))
	for _, pid := range parentIDs {
		counts[pid] = int64(len(r.visibleChildren(pid)))
	}
	return counts, nil
}

func (r *fakeCommentRepo) UpdateContent(ctx context.Context, id int64, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Content = content
	c.UpdatedAt = c.UpdatedAt.Add(time.Second)
	return nil
}

func (r *fakeCommentRepo) MarkDeleted(ctx context.Context, ids []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		if c, ok := r.byID[id]; ok {
			c.IsDeleted = true
		}
	}
	return nil
}

func (r *fakeCommentRepo) AddLiker(ctx context.Context, commentID, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.likers[commentID]
	if !ok {
		set = make(map[int64]bool)
		r.likers[commentID] = set
	}
	if set[userID] {
		return false, nil
	}
	set[userID] = true
	r.byID[commentID].Likes++
	return true, nil
}

func (r *fakeCommentRepo) RemoveLiker(ctx context.Context, commentID, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.likers[commentID]
	if set == nil || !set[userID] {
		return false, nil
	}
	delete(set, userID)
	r.byID[commentID].Likes--
	return true, nil
}

func (r *fakeCommentRepo) GetLikers(ctx context.Context, commentID int64) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []int64
	for id := range r.likers[commentID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

type fakeUserRepo struct {
	users map[int64]domain.User
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Insert(ctx context.Context, u *domain.User) error  { return nil }
func (r *fakeUserRepo) Update(ctx context.Context, u *domain.User) error  { return nil }
func (r *fakeUserRepo) AddCoins(ctx context.Context, id, d int64) error   { return nil }
func (r *fakeUserRepo) Count(ctx context.Context) (int64, error)          { return int64(len(r.users)), nil }

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (r *fakeUserRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	var users []domain.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

type fakeVideoRepo struct {
	domain.VideoRepository
	existing map[int64]bool
}

func (r *fakeVideoRepo) GetByID(ctx context.Context, id int64) (domain.Video, error) {
	if !r.existing[id] {
		return domain.Video{}, domain.ErrNotFound
	}
	return domain.Video{ID: id}, nil
}

type fakeBloomRepo struct {
	missing map[int64]bool
}

func (r *fakeBloomRepo) Add(ctx context.Context, id int64) error       { return nil }
func (r *fakeBloomRepo) BulkAdd(ctx context.Context, ids []int64) error { return nil }

func (r *fakeBloomRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return !r.missing[id], nil
}

type fakeModerator struct{}

func (m *fakeModerator) Clean(ctx context.Context, text string) (string, error) {
	cleaned := strings.TrimSpace(text)
	if strings.Contains(strings.ToLower(cleaned), "spamword") {
		return "", domain.ErrBadParamInput
	}
	return cleaned, nil
}

type fixture struct {
	svc  *service
	repo *fakeCommentRepo
}

func newFixture() fixture {
	repo := newFakeCommentRepo()
	users := &fakeUserRepo{users: map[int64]domain.User{
		1: {ID: 1, Name: "alice", Username: "alice", Role: domain.RoleUser},
		2: {ID: 2, Name: "bob", Username: "bob", Role: domain.RoleUser},
		9: {ID: 9, Name: "root", Username: "root", Role: domain.RoleAdmin},
	}}
	// 视频 66 是布隆误判的情形: 过滤器放行, 但库里并不存在
	videos := &fakeVideoRepo{existing: map[int64]bool{10: true, 11: true}}
	bloom := &fakeBloomRepo{missing: map[int64]bool{404: true}}
	return fixture{
		svc:  NewService(repo, users, videos, bloom, &fakeModerator{}),
		repo: repo,
	}
}

func (f fixture) mustCreate(t *testing.T, videoID, userID int64, parentID *int64, content string) domain.Comment {
	t.Helper()
	c := domain.Comment{VideoID: videoID, UserID: userID, ParentID: parentID, Content: content}
	require.NoError(t, f.svc.Create(context.Background(), &c))
	return c
}

func TestCreateRootComment(t *testing.T) {
	f := newFixture()

	c := f.mustCreate(t, 10, 1, nil, "  first!  ")

	assert.NotZero(t, c.ID)
	assert.Equal(t, 0, c.Level)
	assert.Equal(t, "first!", c.Content)
}

func TestCreateReplyAssignsLevel(t *testing.T) {
	f := newFixture()

	root := f.mustCreate(t, 10, 1, nil, "root")
	reply := f.mustCreate(t, 10, 2, &root.ID, "reply")
	nested := f.mustCreate(t, 10, 1, &reply.ID, "nested")

	assert.Equal(t, 1, reply.Level)
	assert.Equal(t, 2, nested.Level)
}

func TestCreateRejectsBadInput(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	root := f.mustCreate(t, 10, 1, nil, "root")
	otherVideo := f.mustCreate(t, 11, 1, nil, "other video")

	t.Run("unknown video", func(t *testing.T) {
		c := domain.Comment{VideoID: 404, UserID: 1, Content: "hello"}
		assert.ErrorIs(t, f.svc.Create(ctx, &c), domain.ErrNotFound)
	})

	t.Run("bloom false positive is caught by the video lookup", func(t *testing.T) {
		c := domain.Comment{VideoID: 66, UserID: 1, Content: "hello"}
		assert.ErrorIs(t, f.svc.Create(ctx, &c), domain.ErrNotFound)
	})

	t.Run("moderated content", func(t *testing.T) {
		c := domain.Comment{VideoID: 10, UserID: 1, Content: "buy spamword now"}
		assert.ErrorIs(t, f.svc.Create(ctx, &c), domain.ErrBadParamInput)
	})

	t.Run("blank content", func(t *testing.T) {
		c := domain.Comment{VideoID: 10, UserID: 1, Content: "   "}
		assert.ErrorIs(t, f.svc.Create(ctx, &c), domain.ErrBadParamInput)
	})

	t.Run("oversized content", func(t *testing.T) {
		c := domain.Comment{VideoID: 10, UserID: 1, Content: strings.Repeat("长", domain.CommentMaxLen+1)}
		assert.ErrorIs(t, f.svc.Create(ctx, &c), domain.ErrBadParamInput)
	})

	t.Run("cross video reply", func(t *testing.T) {
		c := domain.Comment{VideoID: 10, UserID: 1, ParentID: &otherVideo.ID, Content: "hello"}
		assert.ErrorIs(t, f.svc.Create(ctx, &c), domain.ErrBadParamInput)
	})

	t.Run("missing parent", func(t *testing.T) {
		missing := int64(9999)
		c := domain.Comment{VideoID: 10, UserID: 1, ParentID: &missing, Content: "hello"}
		assert.ErrorIs(t, f.svc.Create(ctx, &c), domain.ErrNotFound)
	})

	t.Run("deleted parent", func(t *testing.T) {
		_, err := f.svc.Delete(ctx, root.ID, root.UserID)
		require.NoError(t, err)

		c := domain.Comment{VideoID: 10, UserID: 2, ParentID: &root.ID, Content: "hello"}
		assert.ErrorIs(t, f.svc.Create(ctx, &c), domain.ErrNotFound)
	})
}

func TestCreateRejectsTooDeepReply(t *testing.T) {
	f := newFixture()

	// 手工塞一条已经到达深度上限前一层的评论
	deep := domain.Comment{VideoID: 10, UserID: 1, Content: "deep", Level: domain.MaxThreadDepth - 1}
	require.NoError(t, f.repo.Store(context.Background(), &deep))

	c := domain.Comment{VideoID: 10, UserID: 2, ParentID: &deep.ID, Content: "one level too far"}
	assert.ErrorIs(t, f.svc.Create(context.Background(), &c), domain.ErrBadParamInput)
}

func TestGetByIDCountsWholeSubtree(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	root := f.mustCreate(t, 10, 1, nil, "root")
	child := f.mustCreate(t, 10, 2, &root.ID, "child")
	f.mustCreate(t, 10, 1, &child.ID, "grandchild")

	got, err := f.svc.GetByID(ctx, root.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), got.Replies)
	require.NotNil(t, got.User)
	assert.Equal(t, "alice", got.User.Name)
}

func TestGetByIDHidesDeleted(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	c := f.mustCreate(t, 10, 1, nil, "bye")
	_, err := f.svc.Delete(ctx, c.ID, c.UserID)
	require.NoError(t, err)

	_, err = f.svc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByVideoPagination(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for range 5 {
		f.mustCreate(t, 10, 1, nil, "root")
	}

	seen := make(map[int64]bool)
	for page := 1; page <= 3; page++ {
		got, err := f.svc.ListByVideo(ctx, 10, page, 2, domain.CommentSortCreatedAt, domain.OrderDesc)
		require.NoError(t, err)

		assert.Equal(t, int64(5), got.Total)
		assert.Equal(t, 3, got.TotalPages)
		assert.Equal(t, page, got.Page)
		for _, c := range got.Items {
			assert.False(t, seen[c.ID], "comment %d appeared on two pages", c.ID)
			seen[c.ID] = true
		}
	}
	// 三页合起来应当恰好覆盖全部 5 条
	assert.Len(t, seen, 5)
}

func TestListByVideoRepliesAndMaxLevel(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// rootA 带一条二层链, rootB 没有回复
	rootA := f.mustCreate(t, 10, 1, nil, "a")
	rootB := f.mustCreate(t, 10, 2, nil, "b")
	childA := f.mustCreate(t, 10, 2, &rootA.ID, "a1")
	f.mustCreate(t, 10, 1, &childA.ID, "a11")

	got, err := f.svc.ListByVideo(ctx, 10, 1, 10, domain.CommentSortCreatedAt, domain.OrderAsc)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)

	counts := map[int64]int64{}
	for _, c := range got.Items {
		counts[c.ID] = c.Replies
	}
	assert.Equal(t, int64(2), counts[rootA.ID])
	assert.Equal(t, int64(0), counts[rootB.ID])
	assert.Equal(t, 2, got.MaxLevel)
}

func TestListByVideoSortsByLikes(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cold := f.mustCreate(t, 10, 1, nil, "cold")
	hot := f.mustCreate(t, 10, 2, nil, "hot")
	_, err := f.svc.ToggleLike(ctx, hot.ID, 1)
	require.NoError(t, err)

	got, err := f.svc.ListByVideo(ctx, 10, 1, 10, domain.CommentSortLikes, domain.OrderDesc)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)

	assert.Equal(t, hot.ID, got.Items[0].ID)
	assert.Equal(t, cold.ID, got.Items[1].ID)
}

func TestListByVideoValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cases := []struct {
		name   string
		page   int
		size   int
		sortBy domain.CommentSort
		order  domain.SortOrder
	}{
		{"zero page", 0, 10, domain.CommentSortCreatedAt, domain.OrderDesc},
		{"zero size", 1, 0, domain.CommentSortCreatedAt, domain.OrderDesc},
		{"bad sort key", 1, 10, "popularity", domain.OrderDesc},
		{"bad order", 1, 10, domain.CommentSortCreatedAt, "sideways"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.ListByVideo(ctx, 10, tc.page, tc.size, tc.sortBy, tc.order)
			assert.ErrorIs(t, err, domain.ErrBadParamInput)
		})
	}
}

func TestListByVideoEmpty(t *testing.T) {
	f := newFixture()

	got, err := f.svc.ListByVideo(context.Background(), 10, 1, 10, domain.CommentSortCreatedAt, domain.OrderDesc)
	require.NoError(t, err)

	assert.Empty(t, got.Items)
	assert.Zero(t, got.Total)
	assert.Zero(t, got.TotalPages)
}

func TestListReplies(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	root := f.mustCreate(t, 10, 1, nil, "root")
	c1 := f.mustCreate(t, 10, 2, &root.ID, "one")
	c2 := f.mustCreate(t, 10, 1, &root.ID, "two")
	f.mustCreate(t, 10, 2, &c1.ID, "one.one")

	got, err := f.svc.ListReplies(ctx, root.ID, 1, 10)
	require.NoError(t, err)

	// Total 只数直接回复, MaxLevel 看整棵子树
	assert.Equal(t, int64(2), got.Total)
	assert.Equal(t, 2, got.MaxLevel)
	require.Len(t, got.Items, 2)

	counts := map[int64]int64{}
	for _, c := range got.Items {
		counts[c.ID] = c.Replies
	}
	assert.Equal(t, int64(1), counts[c1.ID])
	assert.Equal(t, int64(0), counts[c2.ID])
}

func TestListRepliesOfDeletedParent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	root := f.mustCreate(t, 10, 1, nil, "root")
	_, err := f.svc.Delete(ctx, root.ID, root.UserID)
	require.NoError(t, err)

	_, err = f.svc.ListReplies(ctx, root.ID, 1, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveThread(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	root := f.mustCreate(t, 10, 1, nil, "root")
	c1 := f.mustCreate(t, 10, 2, &root.ID, "one")
	c2 := f.mustCreate(t, 10, 1, &root.ID, "two")
	c11 := f.mustCreate(t, 10, 2, &c1.ID, "one.one")

	got, err := f.svc.ResolveThread(ctx, root.ID)
	require.NoError(t, err)

	assert.Equal(t, root.ID, got.Root.ID)
	assert.Equal(t, int64(3), got.Replies)
	assert.Equal(t, 2, got.MaxDepth)

	// BFS 序: 浅层在前
	require.Len(t, got.Descendants, 3)
	assert.Equal(t, []int64{c1.ID, c2.ID, c11.ID}, []int64{got.Descendants[0].ID, got.Descendants[1].ID, got.Descendants[2].ID})
	assert.Equal(t, 1, got.Descendants[0].Depth)
	assert.Equal(t, 1, got.Descendants[1].Depth)
	assert.Equal(t, 2, got.Descendants[2].Depth)
	for _, d := range got.Descendants {
		assert.NotNil(t, d.User)
	}
}

func TestEditContent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	c := f.mustCreate(t, 10, 1, nil, "draft")

	got, err := f.svc.EditContent(ctx, c.ID, 1, "  final  ")
	require.NoError(t, err)
	assert.Equal(t, "final", got.Content)
	// 响应带的是落库后的编辑时间
	assert.True(t, got.UpdatedAt.After(c.UpdatedAt))

	stored, err := f.repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", stored.Content)
}

func TestEditContentForbiddenForOthers(t *testing.T) {
	f := newFixture()

	c := f.mustCreate(t, 10, 1, nil, "mine")

	_, err := f.svc.EditContent(context.Background(), c.ID, 2, "not yours")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteCascades(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a := f.mustCreate(t, 10, 1, nil, "a")
	b := f.mustCreate(t, 10, 2, &a.ID, "b")
	c := f.mustCreate(t, 10, 1, &b.ID, "c")
	sibling := f.mustCreate(t, 10, 2, nil, "untouched")

	before, err := f.svc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), before.Replies)

	got, err := f.svc.Delete(ctx, a.ID, a.UserID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)

	for _, id := range []int64{a.ID, b.ID, c.ID} {
		stored, err := f.repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, stored.IsDeleted, "comment %d should be soft deleted", id)
	}

	stored, err := f.repo.GetByID(ctx, sibling.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsDeleted)
}

func TestDeletePermissions(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("stranger is rejected", func(t *testing.T) {
		c := f.mustCreate(t, 10, 1, nil, "mine")
		_, err := f.svc.Delete(ctx, c.ID, 2)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("admin may delete anything", func(t *testing.T) {
		c := f.mustCreate(t, 10, 1, nil, "mine")
		got, err := f.svc.Delete(ctx, c.ID, 9)
		require.NoError(t, err)
		assert.True(t, got.IsDeleted)
	})

	t.Run("deleting twice is not found", func(t *testing.T) {
		c := f.mustCreate(t, 10, 1, nil, "mine")
		_, err := f.svc.Delete(ctx, c.ID, 1)
		require.NoError(t, err)
		_, err = f.svc.Delete(ctx, c.ID, 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestToggleLikeRoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	c := f.mustCreate(t, 10, 1, nil, "likeable")

	action, err := f.svc.ToggleLike(ctx, c.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Like, action)

	stored, err := f.repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Likes)

	action, err = f.svc.ToggleLike(ctx, c.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Unlike, action)

	stored, err = f.repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.Likes)
}

func TestToggleLikeOnDeletedComment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	c := f.mustCreate(t, 10, 1, nil, "gone but likeable")
	_, err := f.svc.Delete(ctx, c.ID, c.UserID)
	require.NoError(t, err)

	action, err := f.svc.ToggleLike(ctx, c.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Like, action)
}
