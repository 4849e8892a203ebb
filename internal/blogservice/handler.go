package blogservice

import (
	"context"
	"database/sql"

	"bloglist/internal/common"
)

func NewBlogService(db *sql.DB) *BlogService {
	return &BlogService{m: newBlogModel(db)}
}

type CreateBlogRequest struct {
	Title  string
	Author string
	URL    string
	Likes  int
	UserID int
}

type UpdateBlogRequest struct {
	ID     int
	Title  string
	Author string
	URL    string
	Likes  *int
}

// BlogStats aggregates the whole collection. The per-author fields are absent
// when there are no blogs at all.
type BlogStats struct {
	TotalLikes int               `json:"total_likes"`
	Favorite   *FavoriteBlogStat `json:"favorite,omitempty"`
	MostBlogs  *AuthorBlogCount  `json:"most_blogs,omitempty"`
	MostLikes  *AuthorLikeCount  `json:"most_likes,omitempty"`
}

// CreateBlog persists a new blog post owned by the requesting user and
// returns it with the creator attached. Title, author and url are all
// required; likes defaults to zero when absent.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateAuthor(v, req.Author)
	validateURL(v, req.URL)
	validateInt(v, req.UserID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog := &Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
		UserID: req.UserID,
	}

	if err := s.m.insert(ctx, blog); err != nil {
		return nil, err
	}

	return s.m.getBlogById(ctx, blog.ID)
}

// GetBlogByID returns a blog post by its ID.
func (s *BlogService) GetBlogByID(ctx context.Context, id int) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getBlogById(ctx, id)
}

// GetBlogs returns the entire collection, each entry with its creator.
func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	return s.m.getBlogs(ctx)
}

// UpdateBlog replaces the submitted fields on an existing blog post. Unlike
// creation, url is optional here and an absent url keeps the stored value.
func (s *BlogService) UpdateBlog(ctx context.Context, req *UpdateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateAuthor(v, req.Author)
	validateInt(v, req.ID, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	err := s.m.updateBlog(ctx, req.ID, req.Title, req.Author, req.URL, req.Likes)
	if err != nil {
		return nil, err
	}

	return s.m.getBlogById(ctx, req.ID)
}

// DeleteBlog removes a blog post. Callers must have checked that userId is the
// creator; the ownership condition is repeated in the delete itself.
func (s *BlogService) DeleteBlog(ctx context.Context, blogId, userId int) error {
	v := common.NewValidator()
	validateInt(v, blogId, "id")
	validateInt(v, userId, "user_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deleteBlog(ctx, blogId, userId)
}

// GetStats computes the aggregate statistics over the whole collection.
func (s *BlogService) GetStats(ctx context.Context) (*BlogStats, error) {
	blogs, err := s.m.getBlogs(ctx)
	if err != nil {
		return nil, err
	}

	stats := &BlogStats{TotalLikes: TotalLikes(blogs)}

	if len(blogs) == 0 {
		return stats, nil
	}

	favorite, err := FavoriteBlog(blogs)
	if err != nil {
		return nil, err
	}
	stats.Favorite = favorite

	mostBlogs, err := MostBlogs(blogs)
	if err != nil {
		return nil, err
	}
	stats.MostBlogs = mostBlogs

	mostLikes, err := MostLikes(blogs)
	if err != nil {
		return nil, err
	}
	stats.MostLikes = mostLikes

	return stats, nil
}
