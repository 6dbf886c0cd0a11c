package application

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-blogfeed/internal/domain/entity"
)

type postFixture struct {
	users    *fakeUserRepo
	groups   *fakeGroupRepo
	posts    *fakePostRepo
	comments *fakeCommentRepo
	svc      *PostService
}

func newPostFixture() *postFixture {
	f := &postFixture{
		users:    newFakeUserRepo(),
		groups:   newFakeGroupRepo(),
		posts:    newFakePostRepo(),
		comments: newFakeCommentRepo(),
	}
	f.svc = NewPostService(f.posts, f.comments, f.groups, nil, "", nil)
	return f
}

func TestCreatePostWithGroup(t *testing.T) {
	f := newPostFixture()
	author := f.users.mustCreate("alice")
	g := f.groups.mustCreate("g")

	p, err := f.svc.CreatePost(context.Background(), author.ID, CreatePostInput{Text: "hello", GroupSlug: "g"})
	require.NoError(t, err)
	assert.Equal(t, author.ID, p.AuthorID)
	require.NotNil(t, p.GroupID)
	assert.Equal(t, g.ID, *p.GroupID)
	assert.NotZero(t, p.ID)
}

func TestCreatePostUnknownGroup(t *testing.T) {
	f := newPostFixture()
	author := f.users.mustCreate("alice")

	_, err := f.svc.CreatePost(context.Background(), author.ID, CreatePostInput{Text: "hello", GroupSlug: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEditPostByNonAuthorLeavesPostUnchanged(t *testing.T) {
	f := newPostFixture()
	author := f.users.mustCreate("alice")
	intruder := f.users.mustCreate("mallory")

	p, err := f.svc.CreatePost(context.Background(), author.ID, CreatePostInput{Text: "original"})
	require.NoError(t, err)

	_, err = f.svc.EditPost(context.Background(), intruder.ID, p.ID, EditPostInput{Text: "hijacked"})
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := f.posts.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Text)
	assert.Equal(t, author.ID, got.AuthorID)
}

func TestEditPostPartialUpdate(t *testing.T) {
	f := newPostFixture()
	author := f.users.mustCreate("alice")
	g := f.groups.mustCreate("g")

	p, err := f.svc.CreatePost(context.Background(), author.ID, CreatePostInput{Text: "original", GroupSlug: "g"})
	require.NoError(t, err)

	// Only the text changes; the group reference stays.
	edited, err := f.svc.EditPost(context.Background(), author.ID, p.ID, EditPostInput{Text: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", edited.Text)
	require.NotNil(t, edited.GroupID)
	assert.Equal(t, g.ID, *edited.GroupID)
}

func TestEditPostDetachesGroup(t *testing.T) {
	f := newPostFixture()
	author := f.users.mustCreate("alice")
	f.groups.mustCreate("g")

	p, err := f.svc.CreatePost(context.Background(), author.ID, CreatePostInput{Text: "grouped", GroupSlug: "g"})
	require.NoError(t, err)
	require.NotNil(t, p.GroupID)

	// A submitted empty slug clears the group; nil would keep it.
	empty := ""
	edited, err := f.svc.EditPost(context.Background(), author.ID, p.ID, EditPostInput{GroupSlug: &empty})
	require.NoError(t, err)
	assert.Nil(t, edited.GroupID)
	assert.Nil(t, edited.GroupSlug)
	assert.Equal(t, "grouped", edited.Text)

	got, err := f.posts.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GroupID)
}

func TestEditPostReattachesGroup(t *testing.T) {
	f := newPostFixture()
	author := f.users.mustCreate("alice")
	g := f.groups.mustCreate("g")

	p, err := f.svc.CreatePost(context.Background(), author.ID, CreatePostInput{Text: "loose"})
	require.NoError(t, err)
	require.Nil(t, p.GroupID)

	slug := "g"
	edited, err := f.svc.EditPost(context.Background(), author.ID, p.ID, EditPostInput{GroupSlug: &slug})
	require.NoError(t, err)
	require.NotNil(t, edited.GroupID)
	assert.Equal(t, g.ID, *edited.GroupID)
}

func TestEditPostUnknownID(t *testing.T) {
	f := newPostFixture()
	author := f.users.mustCreate("alice")

	_, err := f.svc.EditPost(context.Background(), author.ID, 404, EditPostInput{Text: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCommentToUnknownPost(t *testing.T) {
	f := newPostFixture()
	author := f.users.mustCreate("alice")

	_, err := f.svc.AddComment(context.Background(), author.ID, 404, "hi")
	assert.ErrorIs(t, err, ErrNotFound)

	n, _ := f.comments.CountByPost(context.Background(), 404)
	assert.Zero(t, n)
}

func TestAddCommentAndGetPost(t *testing.T) {
	f := newPostFixture()
	author := f.users.mustCreate("alice")
	commenter := f.users.mustCreate("bob")

	p, err := f.svc.CreatePost(context.Background(), author.ID, CreatePostInput{Text: "post"})
	require.NoError(t, err)

	c, err := f.svc.AddComment(context.Background(), commenter.ID, p.ID, "nice one")
	require.NoError(t, err)
	assert.Equal(t, p.ID, c.PostID)

	detail, err := f.svc.GetPost(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "nice one", detail.Comments[0].Text)
}

type closeRecorder struct {
	closed bool
}

func (c *closeRecorder) Read(p []byte) (int, error) { return 0, io.EOF }
func (c *closeRecorder) Close() error               { c.closed = true; return nil }

func TestCreatePostClosesImageReader(t *testing.T) {
	f := newPostFixture()
	author := f.users.mustCreate("alice")

	rc := &closeRecorder{}
	img := &ImageUpload{Reader: rc, Filename: "pic.png", ContentType: "image/png"}
	// No blob store is configured, so the upload fails; the reader must
	// be closed regardless.
	_, err := f.svc.CreatePost(context.Background(), author.ID, CreatePostInput{Text: "x", Image: img})
	assert.Error(t, err)
	assert.True(t, rc.closed)
}

func TestEditPostClosesImageReaderOnForbidden(t *testing.T) {
	f := newPostFixture()
	author := f.users.mustCreate("alice")
	intruder := f.users.mustCreate("mallory")

	p, err := f.svc.CreatePost(context.Background(), author.ID, CreatePostInput{Text: "original"})
	require.NoError(t, err)

	rc := &closeRecorder{}
	img := &ImageUpload{Reader: rc, Filename: "pic.png", ContentType: "image/png"}
	_, err = f.svc.EditPost(context.Background(), intruder.ID, p.ID, EditPostInput{Image: img})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.True(t, rc.closed)
}

func TestDeletePostByNonAuthor(t *testing.T) {
	f := newPostFixture()
	author := f.users.mustCreate("alice")
	intruder := f.users.mustCreate("mallory")

	p, err := f.svc.CreatePost(context.Background(), author.ID, CreatePostInput{Text: "keep me"})
	require.NoError(t, err)

	err = f.svc.DeletePost(context.Background(), intruder.ID, p.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.posts.GetByID(context.Background(), p.ID)
	assert.NoError(t, err)
}

func TestDeletePostByAuthor(t *testing.T) {
	f := newPostFixture()
	author := f.users.mustCreate("alice")

	p := entity.Post{Text: "bye", AuthorID: author.ID, CreatedAt: time.Now()}
	require.NoError(t, f.posts.Create(context.Background(), &p))

	require.NoError(t, f.svc.DeletePost(context.Background(), author.ID, p.ID))

	_, err := f.posts.GetByID(context.Background(), p.ID)
	assert.Error(t, err)
}
