package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/oksasatya/go-blogfeed/internal/domain/entity"
	"github.com/oksasatya/go-blogfeed/internal/domain/repository"
)

// In-memory repository fakes mirroring the postgres implementations,
// including the created_at DESC, id DESC feed ordering.

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	u.ID = r.seq
	u.CreatedAt = time.Now()
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) mustCreate(username string) *entity.User {
	u := &entity.User{Username: username, Password: "x"}
	_ = r.Create(context.Background(), u)
	return u
}

type fakeGroupRepo struct {
	mu     sync.Mutex
	seq    int64
	groups map[string]entity.Group
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: map[string]entity.Group{}}
}

func (r *fakeGroupRepo) Create(_ context.Context, g *entity.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.groups[g.Slug]; ok {
		g.ID = existing.ID
	} else {
		r.seq++
		g.ID = r.seq
	}
	r.groups[g.Slug] = *g
	return nil
}

func (r *fakeGroupRepo) GetBySlug(_ context.Context, slug string) (*entity.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.groups[slug]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &g, nil
}

func (r *fakeGroupRepo) mustCreate(slug string) *entity.Group {
	g := &entity.Group{Slug: slug, Title: slug}
	_ = r.Create(context.Background(), g)
	return g
}

type fakePostRepo struct {
	mu    sync.Mutex
	seq   int64
	posts map[int64]entity.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[int64]entity.Post{}}
}

func (r *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	p.ID = r.seq
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	r.posts[p.ID] = *p
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id int64) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *fakePostRepo) Update(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[p.ID]; !ok {
		return repository.ErrNotFound
	}
	r.posts[p.ID] = *p
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) matching(f repository.PostFilter) []entity.Post {
	var out []entity.Post
	for _, p := range r.posts {
		if f.AuthorIn != nil {
			found := false
			for _, id := range f.AuthorIn {
				if p.AuthorID == id {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		} else if f.AuthorID != nil && p.AuthorID != *f.AuthorID {
			continue
		}
		if f.GroupID != nil && (p.GroupID == nil || *p.GroupID != *f.GroupID) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *fakePostRepo) List(_ context.Context, f repository.PostFilter, limit, offset int) ([]entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.matching(f)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakePostRepo) Count(_ context.Context, f repository.PostFilter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.matching(f)), nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	seq      int64
	comments []entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{}
}

func (r *fakeCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	c.ID = r.seq
	c.CreatedAt = time.Now()
	r.comments = append(r.comments, *c)
	return nil
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, postID int64) ([]entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) CountByPost(_ context.Context, postID int64) (int, error) {
	out, _ := r.ListByPost(context.Background(), postID)
	return len(out), nil
}

type pair struct{ user, author int64 }

type fakeFollowRepo struct {
	mu    sync.Mutex
	edges map[pair]struct{}
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: map[pair]struct{}{}}
}

func (r *fakeFollowRepo) Upsert(_ context.Context, userID, authorID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.edges[pair{userID, authorID}] = struct{}{}
	return nil
}

func (r *fakeFollowRepo) Delete(_ context.Context, userID, authorID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.edges, pair{userID, authorID})
	return nil
}

func (r *fakeFollowRepo) Exists(_ context.Context, userID, authorID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.edges[pair{userID, authorID}]
	return ok, nil
}

func (r *fakeFollowRepo) AuthorIDs(_ context.Context, userID int64) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []int64
	for e := range r.edges {
		if e.user == userID {
			ids = append(ids, e.author)
		}
	}
	return ids, nil
}

func (r *fakeFollowRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.edges)
}

var (
	_ repository.UserRepository    = (*fakeUserRepo)(nil)
	_ repository.GroupRepository   = (*fakeGroupRepo)(nil)
	_ repository.PostRepository    = (*fakePostRepo)(nil)
	_ repository.CommentRepository = (*fakeCommentRepo)(nil)
	_ repository.FollowRepository  = (*fakeFollowRepo)(nil)
)
