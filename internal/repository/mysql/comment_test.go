package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/vidstream/domain"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		// 单语句操作不额外包事务, 断言更直接
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gdb, mock
}

func commentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "video_id", "user_id", "content", "parent_id", "level", "likes", "is_deleted", "created_at", "updated_at",
	})
}

func TestCommentGetByID(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCommentRepository(gdb)

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `comment` WHERE id = \\?").
		WillReturnRows(commentRows().AddRow(7, 10, 1, "hello", nil, 0, 2, true, now, now))

	got, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), got.ID)
	assert.Nil(t, got.ParentID)
	assert.Equal(t, int64(2), got.Likes)
	// GetByID 不过滤软删除
	assert.True(t, got.IsDeleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentGetByIDNotFound(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCommentRepository(gdb)

	mock.ExpectQuery("SELECT \\* FROM `comment` WHERE id = \\?").
		WillReturnRows(commentRows())

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentFetchRoots(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCommentRepository(gdb)

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `comment` WHERE is_deleted = \\? AND \\(video_id = \\? AND parent_id IS NULL\\) ORDER BY likes desc, id asc").
		WillReturnRows(commentRows().
			AddRow(2, 10, 1, "second", nil, 0, 9, false, now, now).
			AddRow(1, 10, 2, "first", nil, 0, 3, false, now, now))

	got, err := repo.FetchRoots(context.Background(), 10, 1, 20, domain.CommentSortLikes, domain.OrderDesc)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentCountRoots(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCommentRepository(gdb)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `comment`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(5))

	total, err := repo.CountRoots(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentFetchByParentIDs(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCommentRepository(gdb)

	t.Run("empty input issues no query", func(t *testing.T) {
		got, err := repo.FetchByParentIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("children of many parents", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT \\* FROM `comment` WHERE is_deleted = \\? AND parent_id IN \\(\\?,\\?\\) ORDER BY created_at asc, id asc").
			WillReturnRows(commentRows().
				AddRow(3, 10, 1, "re: one", 1, 1, 0, false, now, now).
				AddRow(4, 10, 2, "re: two", 2, 1, 0, false, now, now))

		got, err := repo.FetchByParentIDs(context.Background(), []int64{1, 2})
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, got[0].ParentID)
		assert.Equal(t, int64(1), *got[0].ParentID)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentCountByParentIDs(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCommentRepository(gdb)

	mock.ExpectQuery("SELECT parent_id as parent_id, count\\(\\*\\) as total FROM `comment`").
		WillReturnRows(sqlmock.NewRows([]string{"parent_id", "total"}).
			AddRow(1, 3).
			AddRow(2, 1))

	got, err := repo.CountByParentIDs(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, int64(3), got[1])
	assert.Equal(t, int64(1), got[2])
	// 没有可见子节点的父节点不出现在结果里
	_, ok := got[3]
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentUpdateContent(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCommentRepository(gdb)

	mock.ExpectExec("UPDATE `comment` SET `content`=\\?,`updated_at`=\\? WHERE id = \\?").
		WithArgs("edited", sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateContent(context.Background(), 7, "edited"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentUpdateContentNotFound(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCommentRepository(gdb)

	mock.ExpectExec("UPDATE `comment` SET `content`=\\?,`updated_at`=\\? WHERE id = \\?").
		WithArgs("edited", sqlmock.AnyArg(), 404).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.UpdateContent(context.Background(), 404, "edited"), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentMarkDeleted(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCommentRepository(gdb)

	mock.ExpectExec("UPDATE `comment` SET `is_deleted`=\\? WHERE id IN \\(\\?,\\?\\)").
		WithArgs(true, 1, 2).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.MarkDeleted(context.Background(), []int64{1, 2}))
	require.NoError(t, repo.MarkDeleted(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentAddLiker(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCommentRepository(gdb)

	t.Run("first like bumps the counter", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `comment_likes`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE `comment` SET `likes`=likes \\+ 1,`updated_at`=\\? WHERE id = \\?").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		added, err := repo.AddLiker(context.Background(), 7, 3)
		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("duplicate like is a no-op", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `comment_likes`").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		added, err := repo.AddLiker(context.Background(), 7, 3)
		require.NoError(t, err)
		assert.False(t, added)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRemoveLiker(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCommentRepository(gdb)

	t.Run("existing like is removed", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `comment_likes` WHERE comment_id = \\? AND user_id = \\?").
			WithArgs(7, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE `comment` SET `likes`=likes - 1,`updated_at`=\\? WHERE id = \\? AND likes > 0").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		removed, err := repo.RemoveLiker(context.Background(), 7, 3)
		require.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("nothing to remove", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `comment_likes` WHERE comment_id = \\? AND user_id = \\?").
			WithArgs(7, 3).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		removed, err := repo.RemoveLiker(context.Background(), 7, 3)
		require.NoError(t, err)
		assert.False(t, removed)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentStore(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCommentRepository(gdb)

	mock.ExpectExec("INSERT INTO `comment`").
		WillReturnResult(sqlmock.NewResult(42, 1))

	c := domain.Comment{VideoID: 10, UserID: 1, Content: "hello"}
	require.NoError(t, repo.Store(context.Background(), &c))

	assert.Equal(t, int64(42), c.ID)
	assert.False(t, c.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
